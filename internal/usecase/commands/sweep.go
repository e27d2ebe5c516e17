package commands

import (
	"context"
	"fmt"
	"log/slog"

	"numberpool/internal/domain/identity"
)

// ReleasedReservation identifies one slot freed by a sweep and who held it.
type ReleasedReservation struct {
	Number int
	Holder identity.Actor
}

type SweepCommands interface {
	ReleaseExpired(ctx context.Context) ([]ReleasedReservation, error)
}

// ReleaseExpired frees every reserved slot whose deadline has passed. The
// scan and the releases share one transaction, so an approve or reject
// cannot land between observing an expired slot and freeing it. Holders are
// notified after commit, best-effort.
func (p *poolCommandsImpl) ReleaseExpired(ctx context.Context) ([]ReleasedReservation, error) {
	cutoff := p.clock.Now().Add(-p.cfg.ReservationTimeout)

	var released []ReleasedReservation
	err := p.store.Transact(ctx, func(ctx context.Context, tx Tx) error {
		released = released[:0]
		expired, err := tx.ExpiredReservations(ctx, cutoff)
		if err != nil {
			return err
		}
		for _, s := range expired {
			holder := s.Holder()
			if !s.Release() {
				continue
			}
			if err := tx.SaveSlot(ctx, s); err != nil {
				return err
			}
			if err := tx.DeleteSubmission(ctx, s.Number()); err != nil {
				return err
			}
			released = append(released, ReleasedReservation{Number: s.Number(), Holder: holder})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(released) > 0 {
		slog.Info("released expired reservations", "count", len(released))
	}
	for _, r := range released {
		p.notify(ctx, r.Holder.ID(), fmt.Sprintf("Your reservation for number %d expired and was released.", r.Number))
	}
	return released, nil
}
