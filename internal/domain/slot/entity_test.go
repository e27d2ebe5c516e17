//go:build unit

package slot_test

import (
	"testing"
	"time"

	"numberpool/internal/domain/identity"
	"numberpool/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	alice    = identity.NewActor(uuid.MustParse("11111111-1111-1111-1111-111111111111"), "alice")
	bob      = identity.NewActor(uuid.MustParse("22222222-2222-2222-2222-222222222222"), "bob")
)

func reservedSlot(t *testing.T, number int, holder identity.Actor, at time.Time) *slot.Slot {
	t.Helper()
	s := slot.NewAvailableSlot(number)
	require.NoError(t, s.Claim(holder, at))
	return s
}

func TestSlotClaim(t *testing.T) {
	t.Run("claims an available slot", func(t *testing.T) {
		s := slot.NewAvailableSlot(3)

		err := s.Claim(alice, baseTime)

		require.NoError(t, err)
		assert.Equal(t, slot.StatusReserved, s.Status())
		assert.True(t, s.IsHeldBy(alice))
		require.NotNil(t, s.ReservedAt())
		assert.Equal(t, baseTime, *s.ReservedAt())
	})

	t.Run("rejects a reserved slot", func(t *testing.T) {
		s := reservedSlot(t, 3, alice, baseTime)

		err := s.Claim(bob, baseTime.Add(time.Second))

		assert.ErrorIs(t, err, slot.ErrNotAvailable)
		assert.True(t, s.IsHeldBy(alice))
	})

	t.Run("rejects an approved slot", func(t *testing.T) {
		s := reservedSlot(t, 3, alice, baseTime)
		require.NoError(t, s.Approve())

		err := s.Claim(bob, baseTime.Add(time.Second))

		assert.ErrorIs(t, err, slot.ErrApprovedFinal)
	})
}

func TestSlotApprove(t *testing.T) {
	t.Run("finalizes a reserved slot", func(t *testing.T) {
		s := reservedSlot(t, 3, alice, baseTime)

		err := s.Approve()

		require.NoError(t, err)
		assert.Equal(t, slot.StatusApproved, s.Status())
		assert.True(t, s.IsHeldBy(alice))
		assert.Nil(t, s.ReservedAt())
	})

	t.Run("rejects an available slot", func(t *testing.T) {
		s := slot.NewAvailableSlot(3)

		assert.ErrorIs(t, s.Approve(), slot.ErrNotReserved)
	})

	t.Run("approved is final", func(t *testing.T) {
		s := reservedSlot(t, 3, alice, baseTime)
		require.NoError(t, s.Approve())

		assert.ErrorIs(t, s.Approve(), slot.ErrApprovedFinal)
	})
}

func TestSlotRelease(t *testing.T) {
	t.Run("returns a reserved slot to the pool", func(t *testing.T) {
		s := reservedSlot(t, 3, alice, baseTime)

		assert.True(t, s.Release())
		assert.Equal(t, slot.StatusAvailable, s.Status())
		assert.True(t, s.Holder().IsZero())
		assert.Nil(t, s.ReservedAt())
	})

	t.Run("no-op on an available slot", func(t *testing.T) {
		s := slot.NewAvailableSlot(3)

		assert.False(t, s.Release())
		assert.Equal(t, slot.StatusAvailable, s.Status())
	})

	t.Run("never releases an approved slot", func(t *testing.T) {
		s := reservedSlot(t, 3, alice, baseTime)
		require.NoError(t, s.Approve())

		assert.False(t, s.Release())
		assert.Equal(t, slot.StatusApproved, s.Status())
		assert.True(t, s.IsHeldBy(alice))
	})
}

func TestSlotIsExpired(t *testing.T) {
	timeout := time.Minute

	t.Run("not expired before the deadline", func(t *testing.T) {
		s := reservedSlot(t, 3, alice, baseTime)

		assert.False(t, s.IsExpired(baseTime.Add(30*time.Second), timeout))
		assert.False(t, s.IsExpired(baseTime.Add(timeout-time.Nanosecond), timeout))
	})

	t.Run("expired at and after the deadline", func(t *testing.T) {
		s := reservedSlot(t, 3, alice, baseTime)

		assert.True(t, s.IsExpired(baseTime.Add(timeout), timeout))
		assert.True(t, s.IsExpired(baseTime.Add(timeout+time.Second), timeout))
	})

	t.Run("never expires outside reserved status", func(t *testing.T) {
		s := slot.NewAvailableSlot(3)
		assert.False(t, s.IsExpired(baseTime.Add(time.Hour), timeout))

		s = reservedSlot(t, 3, alice, baseTime)
		require.NoError(t, s.Approve())
		assert.False(t, s.IsExpired(baseTime.Add(time.Hour), timeout))
	})
}

func TestReconstructSlot(t *testing.T) {
	ts := baseTime

	cases := []struct {
		name       string
		status     slot.Status
		holder     identity.Actor
		reservedAt *time.Time
		errIs      error
	}{
		{name: "valid available", status: slot.StatusAvailable},
		{name: "valid reserved", status: slot.StatusReserved, holder: alice, reservedAt: &ts},
		{name: "valid approved", status: slot.StatusApproved, holder: alice},
		{name: "available with holder", status: slot.StatusAvailable, holder: alice, errIs: slot.ErrBrokenInvariants},
		{name: "reserved without holder", status: slot.StatusReserved, reservedAt: &ts, errIs: slot.ErrBrokenInvariants},
		{name: "reserved without timestamp", status: slot.StatusReserved, holder: alice, errIs: slot.ErrBrokenInvariants},
		{name: "approved with timestamp", status: slot.StatusApproved, holder: alice, reservedAt: &ts, errIs: slot.ErrBrokenInvariants},
		{name: "unknown status", status: slot.Status("pending"), errIs: slot.ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := slot.ReconstructSlot(7, tc.status, tc.holder, tc.reservedAt)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 7, s.Number())
			assert.Equal(t, tc.status, s.Status())
		})
	}
}

func TestNewSubmission(t *testing.T) {
	t.Run("attaches proof to the holder's reserved slot", func(t *testing.T) {
		s := reservedSlot(t, 3, alice, baseTime)

		sub, err := slot.NewSubmission(s, alice, "receipt-001", baseTime.Add(time.Minute))

		require.NoError(t, err)
		assert.Equal(t, 3, sub.SlotNumber())
		assert.Equal(t, "receipt-001", sub.ProofRef())
		assert.True(t, sub.Holder().Equals(alice))
	})

	t.Run("rejects empty proof", func(t *testing.T) {
		s := reservedSlot(t, 3, alice, baseTime)

		_, err := slot.NewSubmission(s, alice, "", baseTime)

		assert.ErrorIs(t, err, slot.ErrEmptyProofRef)
	})

	t.Run("rejects a non-reserved slot", func(t *testing.T) {
		s := slot.NewAvailableSlot(3)

		_, err := slot.NewSubmission(s, alice, "receipt-001", baseTime)

		assert.ErrorIs(t, err, slot.ErrSubmissionNotAllowed)
	})

	t.Run("rejects a different holder", func(t *testing.T) {
		s := reservedSlot(t, 3, alice, baseTime)

		_, err := slot.NewSubmission(s, bob, "receipt-001", baseTime)

		assert.ErrorIs(t, err, slot.ErrHolderMismatch)
	})
}
