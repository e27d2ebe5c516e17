package worker

import (
	"context"
	"log/slog"
	"time"

	"numberpool/internal/usecase/commands"
)

// Sweeper periodically releases reservations that outlived the timeout. A
// crashed sweep tick is logged and retried on the next tick; expiry is a
// property of the data, so nothing is lost in between.
type Sweeper struct {
	sweep    commands.SweepCommands
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(sweep commands.SweepCommands, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		sweep:    sweep,
		interval: interval,
		logger:   logger,
	}
}

func (w *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	go w.run(ctx)
}

func (w *Sweeper) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

func (w *Sweeper) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("sweeper started", "interval", w.interval)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			if _, err := w.sweep.ReleaseExpired(ctx); err != nil {
				w.logger.Error("sweep failed", "error", err)
			}
		}
	}
}
