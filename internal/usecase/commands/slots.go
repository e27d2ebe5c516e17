package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"numberpool/internal/domain/identity"
	"numberpool/internal/domain/slot"
	"numberpool/internal/pkg/clock"
	"numberpool/internal/pkg/config"
	"numberpool/internal/pkg/errs"

	"github.com/google/uuid"
)

// SlotResult is the write-side snapshot returned by pool commands.
type SlotResult struct {
	Number     int
	Status     slot.Status
	HolderID   *uuid.UUID
	HolderName *string
	ReservedAt *time.Time
}

type PoolCommands interface {
	Claim(ctx context.Context, number int, requester identity.Actor) (*SlotResult, error)
	SubmitProof(ctx context.Context, requester identity.Actor, proofRef string) (*SlotResult, error)
	Approve(ctx context.Context, number int, reviewer identity.Actor) (*SlotResult, error)
	Reject(ctx context.Context, number int, reviewer identity.Actor) (*SlotResult, error)
}

type poolCommandsImpl struct {
	store    Store
	notifier Notifier
	clock    clock.Clock
	cfg      config.PoolConfig
}

func NewPoolCommands(store Store, notifier Notifier, clk clock.Clock, cfg config.PoolConfig) (PoolCommands, SweepCommands) {
	impl := &poolCommandsImpl{
		store:    store,
		notifier: notifier,
		clock:    clk,
		cfg:      cfg,
	}
	return impl, impl
}

// Claim reserves an available slot for the requester. A requester may hold at
// most one reserved slot at a time; this is what lets SubmitProof find the
// reservation by holder alone.
func (p *poolCommandsImpl) Claim(ctx context.Context, number int, requester identity.Actor) (*SlotResult, error) {
	if err := p.checkNumber(number); err != nil {
		return nil, err
	}
	if requester.IsZero() {
		return nil, errs.Mark(errs.New("requester identity missing"), errs.ErrDomainValidation)
	}

	var result *SlotResult
	err := p.store.Transact(ctx, func(ctx context.Context, tx Tx) error {
		held, err := tx.ReservedSlotByHolder(ctx, requester.ID())
		if err != nil {
			return err
		}
		if held != nil {
			return errs.Mark(errs.New(fmt.Sprintf("already holding slot %d", held.Number())), errs.ErrAlreadyHolding)
		}

		s, err := tx.SlotForUpdate(ctx, number)
		if err != nil {
			return err
		}
		if err := s.Claim(requester, p.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrSlotUnavailable)
		}
		if err := tx.SaveSlot(ctx, s); err != nil {
			return err
		}
		result = toSlotResult(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SubmitProof attaches payment evidence to the requester's reserved slot. A
// second submission for the same slot replaces the first.
func (p *poolCommandsImpl) SubmitProof(ctx context.Context, requester identity.Actor, proofRef string) (*SlotResult, error) {
	if proofRef == "" {
		return nil, errs.ErrProofRefRequired
	}
	if requester.IsZero() {
		return nil, errs.Mark(errs.New("requester identity missing"), errs.ErrDomainValidation)
	}

	var result *SlotResult
	err := p.store.Transact(ctx, func(ctx context.Context, tx Tx) error {
		s, err := tx.ReservedSlotByHolder(ctx, requester.ID())
		if err != nil {
			return err
		}
		if s == nil {
			return errs.ErrNoReservationFound
		}

		sub, err := slot.NewSubmission(s, requester, proofRef, p.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.UpsertSubmission(ctx, sub); err != nil {
			return err
		}
		result = toSlotResult(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Approve finalizes a slot whose proof the reviewer accepted. Requires a
// pending submission; clears it in the same transaction.
func (p *poolCommandsImpl) Approve(ctx context.Context, number int, reviewer identity.Actor) (*SlotResult, error) {
	if err := p.checkReviewer(reviewer); err != nil {
		return nil, err
	}
	if err := p.checkNumber(number); err != nil {
		return nil, err
	}

	var result *SlotResult
	var holder identity.Actor
	err := p.store.Transact(ctx, func(ctx context.Context, tx Tx) error {
		s, err := tx.SlotForUpdate(ctx, number)
		if err != nil {
			return err
		}
		sub, err := tx.SubmissionBySlot(ctx, number)
		if err != nil {
			return err
		}
		if sub == nil {
			return errs.ErrNoPendingSubmission
		}
		if err := s.Approve(); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.SaveSlot(ctx, s); err != nil {
			return err
		}
		if err := tx.DeleteSubmission(ctx, number); err != nil {
			return err
		}
		holder = s.Holder()
		result = toSlotResult(s)
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.notify(ctx, holder.ID(), fmt.Sprintf("Your reservation for number %d has been approved.", number))
	return result, nil
}

// Reject force-releases a number. Total and idempotent: rejecting an
// available slot succeeds as a no-op, and an approved slot is final and left
// untouched. The prior holder is notified only when a reservation was
// actually released.
func (p *poolCommandsImpl) Reject(ctx context.Context, number int, reviewer identity.Actor) (*SlotResult, error) {
	if err := p.checkReviewer(reviewer); err != nil {
		return nil, err
	}
	if err := p.checkNumber(number); err != nil {
		return nil, err
	}

	var result *SlotResult
	var prior identity.Actor
	var released bool
	err := p.store.Transact(ctx, func(ctx context.Context, tx Tx) error {
		s, err := tx.SlotForUpdate(ctx, number)
		if err != nil {
			return err
		}
		prior = s.Holder()
		released = s.Release()
		if released {
			if err := tx.SaveSlot(ctx, s); err != nil {
				return err
			}
			if err := tx.DeleteSubmission(ctx, number); err != nil {
				return err
			}
		}
		result = toSlotResult(s)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if released {
		p.notify(ctx, prior.ID(), fmt.Sprintf("Your reservation for number %d has been released by the reviewer.", number))
	}
	return result, nil
}

func (p *poolCommandsImpl) checkNumber(number int) error {
	if number < 1 || number > p.cfg.Size {
		return errs.Mark(errs.New(fmt.Sprintf("number %d not in [1, %d]", number, p.cfg.Size)), errs.ErrInvalidSlotNumber)
	}
	return nil
}

func (p *poolCommandsImpl) checkReviewer(reviewer identity.Actor) error {
	if reviewer.ID() != p.cfg.ReviewerID {
		return errs.ErrUnauthorizedReviewer
	}
	return nil
}

// notify is fire-and-forget: delivery failure is logged and never surfaced to
// the caller of the state-changing operation.
func (p *poolCommandsImpl) notify(ctx context.Context, recipient uuid.UUID, message string) {
	if err := p.notifier.Notify(ctx, recipient, message); err != nil {
		slog.Warn("notification delivery failed", "recipient", recipient, "error", err)
	}
}

func toSlotResult(s *slot.Slot) *SlotResult {
	r := &SlotResult{
		Number:     s.Number(),
		Status:     s.Status(),
		ReservedAt: s.ReservedAt(),
	}
	if !s.Holder().IsZero() {
		id := s.Holder().ID()
		name := s.Holder().Name()
		r.HolderID = &id
		r.HolderName = &name
	}
	return r
}
