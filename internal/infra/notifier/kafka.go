package notifier

import (
	"context"
	"encoding/json"
	"time"

	"numberpool/internal/pkg/config"
	"numberpool/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// KafkaNotifier publishes notification events to the topic the chat
// transport consumes. Keyed by recipient so one user's messages stay
// ordered within a partition.
type KafkaNotifier struct {
	writer *kafka.Writer
}

type notificationEvent struct {
	Recipient uuid.UUID `json:"recipient"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sent_at"`
}

func NewKafkaNotifier(cfg config.KafkaConfig) (*KafkaNotifier, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errs.New("kafka: at least one broker required")
	}
	if cfg.Topic == "" {
		return nil, errs.New("kafka: topic required")
	}

	w := kafka.NewWriter(kafka.WriterConfig{
		Brokers:      cfg.Brokers,
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Async:        false,
	})

	return &KafkaNotifier{writer: w}, nil
}

// Notify makes a single delivery attempt. Callers treat a failure as lost,
// not retryable; the triggering state change stands either way.
func (n *KafkaNotifier) Notify(ctx context.Context, recipient uuid.UUID, message string) error {
	payload, err := json.Marshal(notificationEvent{
		Recipient: recipient,
		Message:   message,
		SentAt:    time.Now().UTC(),
	})
	if err != nil {
		return errs.Wrap(err, "marshal notification")
	}

	msg := kafka.Message{
		Key:   []byte(recipient.String()),
		Value: payload,
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "publish notification")
	}
	return nil
}

func (n *KafkaNotifier) Close() error {
	if n == nil || n.writer == nil {
		return nil
	}
	return n.writer.Close()
}
