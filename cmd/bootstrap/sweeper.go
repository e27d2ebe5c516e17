package bootstrap

import (
	"context"
	"log/slog"

	"numberpool/internal/pkg/config"
	"numberpool/internal/usecase/commands"
	"numberpool/internal/worker"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(
		registerSweeper,
	),
)

func NewSweeper(sweep commands.SweepCommands, cfg config.Config, logger *slog.Logger) *worker.Sweeper {
	return worker.NewSweeper(sweep, cfg.Pool.SweepInterval, logger)
}

func registerSweeper(lc fx.Lifecycle, w *worker.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			w.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			w.Stop()
			return nil
		},
	})
}
