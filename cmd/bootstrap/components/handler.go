package components

import (
	"context"

	"numberpool/internal/handler"
	"numberpool/internal/handler/api"
	"numberpool/internal/handler/middleware"
	"numberpool/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotsHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(
		registerRateLimiterJanitor,
		handler.NewRouter,
	),
)

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.Rate)
}

func registerRateLimiterJanitor(lc fx.Lifecycle, rl *middleware.RateLimiter) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			rl.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			rl.Stop()
			return nil
		},
	})
}
