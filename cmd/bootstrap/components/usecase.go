package components

import (
	"numberpool/internal/pkg/clock"
	"numberpool/internal/pkg/config"
	"numberpool/internal/usecase"
	"numberpool/internal/usecase/commands"
	"numberpool/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		NewPoolCommands,
		NewPoolQueries,
	),
)

func NewPoolCommands(store commands.Store, notifier commands.Notifier, clk clock.Clock, cfg config.Config) (commands.PoolCommands, commands.SweepCommands) {
	return commands.NewPoolCommands(store, notifier, clk, cfg.Pool)
}

func NewPoolQueries(repo queries.SlotReadStore, cfg config.Config) queries.PoolQueries {
	return queries.NewPoolQueries(repo, cfg.Pool)
}
