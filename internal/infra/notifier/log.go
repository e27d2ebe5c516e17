package notifier

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogNotifier stands in when no brokers are configured: every notification
// is visible in the service log and nothing leaves the process.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, recipient uuid.UUID, message string) error {
	n.logger.Info("notification", "recipient", recipient, "message", message)
	return nil
}
