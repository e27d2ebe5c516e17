package components

import (
	"context"

	"numberpool/internal/infra/readstore"
	"numberpool/internal/infra/repository"
	"numberpool/internal/pkg/config"
	"numberpool/internal/usecase/commands"
	"numberpool/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewSlotStore,
			fx.As(new(commands.Store)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
	),
	fx.Invoke(
		ensureSlotPool,
	),
)

// ensureSlotPool seeds missing slot rows at startup so every number in
// [1, POOL_SIZE] has exactly one row before the server accepts traffic.
func ensureSlotPool(lc fx.Lifecycle, store commands.Store, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return store.EnsurePool(ctx, cfg.Pool.Size)
		},
	})
}
