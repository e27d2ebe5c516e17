package commands

import (
	"context"
	"time"

	"numberpool/internal/domain/slot"

	"github.com/google/uuid"
)

// Store is the transactional boundary around the slot pool. Transact runs fn
// as one serialized unit of work: no two transactions overlap, so a claim
// that observed an available slot cannot lose it before committing. fn
// returning an error aborts the transaction with nothing persisted.
type Store interface {
	Transact(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	EnsurePool(ctx context.Context, size int) error
}

// Tx exposes the read-modify-write primitives available inside a
// transaction. Lookups lock the rows they return for the remainder of the
// transaction.
type Tx interface {
	SlotForUpdate(ctx context.Context, number int) (*slot.Slot, error)
	ReservedSlotByHolder(ctx context.Context, holderID uuid.UUID) (*slot.Slot, error)
	ExpiredReservations(ctx context.Context, cutoff time.Time) ([]*slot.Slot, error)
	SaveSlot(ctx context.Context, s *slot.Slot) error
	SubmissionBySlot(ctx context.Context, number int) (*slot.Submission, error)
	UpsertSubmission(ctx context.Context, sub slot.Submission) error
	DeleteSubmission(ctx context.Context, number int) error
}

// Notifier delivers a message to one recipient, at most one attempt. Failures
// are the caller's to log and swallow; they never undo a committed state
// change.
type Notifier interface {
	Notify(ctx context.Context, recipient uuid.UUID, message string) error
}
