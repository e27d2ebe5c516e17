package slot

import (
	"errors"
	"time"

	"numberpool/internal/domain/identity"
)

var (
	ErrInvalidStatus    = errors.New("invalid slot status")
	ErrNotAvailable     = errors.New("slot is not available")
	ErrNotReserved      = errors.New("slot is not reserved")
	ErrApprovedFinal    = errors.New("slot is approved and final")
	ErrHolderMismatch   = errors.New("holder does not match reservation")
	ErrBrokenInvariants = errors.New("slot record violates invariants")
)

// Slot is one allocatable numbered unit. Holder is set iff the slot is not
// available; reservedAt is set iff the slot is reserved.
type Slot struct {
	number     int
	status     Status
	holder     identity.Actor
	reservedAt *time.Time
}

func NewAvailableSlot(number int) *Slot {
	return &Slot{
		number: number,
		status: StatusAvailable,
	}
}

// ReconstructSlot rebuilds a slot from persisted state and rejects records
// that break the holder/reservedAt presence invariants. Callers treat a
// failure here as corrupt storage, not user error.
func ReconstructSlot(number int, status Status, holder identity.Actor, reservedAt *time.Time) (*Slot, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	switch status {
	case StatusAvailable:
		if !holder.IsZero() || reservedAt != nil {
			return nil, ErrBrokenInvariants
		}
	case StatusReserved:
		if holder.IsZero() || reservedAt == nil {
			return nil, ErrBrokenInvariants
		}
	case StatusApproved:
		if holder.IsZero() || reservedAt != nil {
			return nil, ErrBrokenInvariants
		}
	}
	return &Slot{
		number:     number,
		status:     status,
		holder:     holder,
		reservedAt: reservedAt,
	}, nil
}

// Claim moves an available slot to reserved. Exactly one concurrent caller
// can succeed; the store's write serialization guarantees the losers see the
// reserved state here.
func (s *Slot) Claim(holder identity.Actor, now time.Time) error {
	if s.status == StatusApproved {
		return ErrApprovedFinal
	}
	if s.status != StatusAvailable {
		return ErrNotAvailable
	}
	ts := now.UTC()
	s.status = StatusReserved
	s.holder = holder
	s.reservedAt = &ts
	return nil
}

// Approve finalizes a reserved slot. The submission precondition is checked
// by the caller inside the same transaction.
func (s *Slot) Approve() error {
	if s.status == StatusApproved {
		return ErrApprovedFinal
	}
	if s.status != StatusReserved {
		return ErrNotReserved
	}
	s.status = StatusApproved
	s.reservedAt = nil
	return nil
}

// Release returns a reserved slot to the pool. It reports whether anything
// changed: releasing an available slot is a no-op, and an approved slot is
// never released.
func (s *Slot) Release() bool {
	if s.status != StatusReserved {
		return false
	}
	s.status = StatusAvailable
	s.holder = identity.Actor{}
	s.reservedAt = nil
	return true
}

// IsExpired reports whether a reserved slot's deadline has passed. The
// deadline is data-level (reservedAt + timeout), so it survives restarts.
func (s *Slot) IsExpired(now time.Time, timeout time.Duration) bool {
	if s.status != StatusReserved || s.reservedAt == nil {
		return false
	}
	return !now.Before(s.reservedAt.Add(timeout))
}

func (s *Slot) IsHeldBy(actor identity.Actor) bool {
	return s.status != StatusAvailable && s.holder.Equals(actor)
}

func (s *Slot) Number() int            { return s.number }
func (s *Slot) Status() Status         { return s.status }
func (s *Slot) Holder() identity.Actor { return s.holder }

func (s *Slot) ReservedAt() *time.Time {
	if s.reservedAt == nil {
		return nil
	}
	ts := *s.reservedAt
	return &ts
}
