package bootstrap

import (
	"context"
	"log/slog"

	"numberpool/internal/infra/notifier"
	"numberpool/internal/pkg/config"
	"numberpool/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier picks the Kafka publisher when brokers are configured and the
// log-only fallback otherwise.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.Notifier, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("no Kafka brokers configured, notifications go to the log only")
		return notifier.NewLogNotifier(logger), nil
	}

	kn, err := notifier.NewKafkaNotifier(cfg.Kafka)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return kn.Close()
		},
	})

	logger.Info("Kafka notifier initialized", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return kn, nil
}
