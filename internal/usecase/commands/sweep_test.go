//go:build unit

package commands_test

import (
	"time"

	"numberpool/internal/domain/slot"
)

func (s *PoolCommandsTestSuite) TestReleaseExpired() {
	s.Run("releases reservations past the timeout", func() {
		s.SetupTest()
		s.claim(2, alice)
		s.clock.Add(61 * time.Second)

		released, err := s.sweep.ReleaseExpired(s.ctx)

		s.Require().NoError(err)
		s.Require().Len(released, 1)
		s.Equal(2, released[0].Number)
		s.True(released[0].Holder.Equals(alice))
		s.Equal(slot.StatusAvailable, s.store.slotSnapshot(2).Status())

		sent := s.notifier.sent()
		s.Require().Len(sent, 1)
		s.Equal(alice.ID(), sent[0].Recipient)
	})

	s.Run("leaves reservations inside the window untouched", func() {
		s.SetupTest()
		s.claim(2, alice)
		s.clock.Add(30 * time.Second)

		released, err := s.sweep.ReleaseExpired(s.ctx)

		s.Require().NoError(err)
		s.Empty(released)
		s.Equal(slot.StatusReserved, s.store.slotSnapshot(2).Status())
		s.Empty(s.notifier.sent())
	})

	s.Run("deadline is inclusive", func() {
		s.SetupTest()
		s.claim(2, alice)
		s.clock.Add(time.Minute)

		released, err := s.sweep.ReleaseExpired(s.ctx)

		s.Require().NoError(err)
		s.Len(released, 1)
	})

	s.Run("approved slots never expire", func() {
		s.SetupTest()
		s.claim(2, alice)
		s.submit(alice, "receipt-001")
		_, err := s.commands.Approve(s.ctx, 2, reviewer)
		s.Require().NoError(err)
		s.clock.Add(time.Hour)

		released, err := s.sweep.ReleaseExpired(s.ctx)

		s.Require().NoError(err)
		s.Empty(released)
		s.Equal(slot.StatusApproved, s.store.slotSnapshot(2).Status())
	})

	s.Run("pending submission is dropped with the expired reservation", func() {
		s.SetupTest()
		s.claim(2, alice)
		s.submit(alice, "receipt-001")
		s.clock.Add(2 * time.Minute)

		released, err := s.sweep.ReleaseExpired(s.ctx)

		s.Require().NoError(err)
		s.Len(released, 1)
		s.Equal(0, s.store.submissionCount())
	})

	s.Run("sweeps multiple expired reservations in one pass", func() {
		s.SetupTest()
		s.claim(1, alice)
		s.claim(4, bob)
		s.clock.Add(2 * time.Minute)

		released, err := s.sweep.ReleaseExpired(s.ctx)

		s.Require().NoError(err)
		s.Require().Len(released, 2)
		s.Equal(1, released[0].Number)
		s.Equal(4, released[1].Number)
		s.Len(s.notifier.sent(), 2)
	})
}
