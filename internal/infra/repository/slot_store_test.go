package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"numberpool/internal/domain/identity"
	"numberpool/internal/domain/slot"
	"numberpool/internal/infra/repository"
	"numberpool/internal/pkg/errs"
	"numberpool/internal/usecase/commands"
	"numberpool/tests/common/dbtest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

var (
	testHolder = identity.NewActor(uuid.MustParse("11111111-1111-1111-1111-111111111111"), "alice")
	otherActor = identity.NewActor(uuid.MustParse("22222222-2222-2222-2222-222222222222"), "bob")
)

// slotState is the comparable projection used for round-trip assertions.
type slotState struct {
	Number     int
	Status     slot.Status
	HolderID   string
	HolderName string
	ReservedAt *time.Time
}

func stateOf(s *slot.Slot) slotState {
	st := slotState{
		Number:     s.Number(),
		Status:     s.Status(),
		ReservedAt: s.ReservedAt(),
	}
	if !s.Holder().IsZero() {
		st.HolderID = s.Holder().ID().String()
		st.HolderName = s.Holder().Name()
	}
	return st
}

func setupStore(t *testing.T) (context.Context, *repository.SlotStore) {
	t.Helper()
	ctx := context.Background()
	pool := dbtest.NewTestPool(t)
	dbtest.ApplyMigrations(t, ctx, pool)
	dbtest.TruncateAll(t, ctx, pool)

	store := repository.NewSlotStore(pool)
	if err := store.EnsurePool(ctx, 5); err != nil {
		t.Fatalf("ensure pool: %v", err)
	}
	return ctx, store
}

func claimSlot(t *testing.T, ctx context.Context, store *repository.SlotStore, number int, holder identity.Actor, at time.Time) {
	t.Helper()
	err := store.Transact(ctx, func(ctx context.Context, tx commands.Tx) error {
		s, err := tx.SlotForUpdate(ctx, number)
		if err != nil {
			return err
		}
		if err := s.Claim(holder, at); err != nil {
			return err
		}
		return tx.SaveSlot(ctx, s)
	})
	if err != nil {
		t.Fatalf("claim slot %d: %v", number, err)
	}
}

func TestSlotStoreRoundTrip(t *testing.T) {
	ctx, store := setupStore(t)

	reservedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	claimSlot(t, ctx, store, 3, testHolder, reservedAt)

	var got *slot.Slot
	err := store.Transact(ctx, func(ctx context.Context, tx commands.Tx) error {
		var err error
		got, err = tx.SlotForUpdate(ctx, 3)
		return err
	})
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	want := slotState{
		Number:     3,
		Status:     slot.StatusReserved,
		HolderID:   testHolder.ID().String(),
		HolderName: "alice",
		ReservedAt: &reservedAt,
	}
	if diff := cmp.Diff(want, stateOf(got)); diff != "" {
		t.Errorf("slot mismatch (-want +got):\n%s", diff)
	}
}

func TestEnsurePoolIsIdempotent(t *testing.T) {
	ctx, store := setupStore(t)

	reservedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	claimSlot(t, ctx, store, 2, testHolder, reservedAt)

	// re-running with a larger size adds rows without touching existing ones
	if err := store.EnsurePool(ctx, 8); err != nil {
		t.Fatalf("grow pool: %v", err)
	}

	err := store.Transact(ctx, func(ctx context.Context, tx commands.Tx) error {
		s, err := tx.SlotForUpdate(ctx, 2)
		if err != nil {
			return err
		}
		if s.Status() != slot.StatusReserved {
			t.Errorf("slot 2 status = %s, want reserved", s.Status())
		}
		s8, err := tx.SlotForUpdate(ctx, 8)
		if err != nil {
			return err
		}
		if s8.Status() != slot.StatusAvailable {
			t.Errorf("slot 8 status = %s, want available", s8.Status())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestReservedSlotByHolder(t *testing.T) {
	ctx, store := setupStore(t)

	reservedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	claimSlot(t, ctx, store, 4, testHolder, reservedAt)

	err := store.Transact(ctx, func(ctx context.Context, tx commands.Tx) error {
		s, err := tx.ReservedSlotByHolder(ctx, testHolder.ID())
		if err != nil {
			return err
		}
		if s == nil || s.Number() != 4 {
			t.Errorf("ReservedSlotByHolder = %v, want slot 4", s)
		}

		none, err := tx.ReservedSlotByHolder(ctx, otherActor.ID())
		if err != nil {
			return err
		}
		if none != nil {
			t.Errorf("ReservedSlotByHolder for non-holder = %v, want nil", none)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("transact: %v", err)
	}
}

func TestExpiredReservations(t *testing.T) {
	ctx, store := setupStore(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	claimSlot(t, ctx, store, 1, testHolder, base)
	claimSlot(t, ctx, store, 2, otherActor, base.Add(30*time.Second))

	err := store.Transact(ctx, func(ctx context.Context, tx commands.Tx) error {
		expired, err := tx.ExpiredReservations(ctx, base)
		if err != nil {
			return err
		}
		if len(expired) != 1 || expired[0].Number() != 1 {
			t.Errorf("expired = %d slots, want only slot 1", len(expired))
		}

		all, err := tx.ExpiredReservations(ctx, base.Add(time.Minute))
		if err != nil {
			return err
		}
		if len(all) != 2 {
			t.Errorf("expired at later cutoff = %d slots, want 2", len(all))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("transact: %v", err)
	}
}

func TestSubmissionLifecycle(t *testing.T) {
	ctx, store := setupStore(t)

	reservedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	claimSlot(t, ctx, store, 3, testHolder, reservedAt)

	submittedAt := reservedAt.Add(time.Minute)
	err := store.Transact(ctx, func(ctx context.Context, tx commands.Tx) error {
		s, err := tx.SlotForUpdate(ctx, 3)
		if err != nil {
			return err
		}
		sub, err := slot.NewSubmission(s, testHolder, "receipt-001", submittedAt)
		if err != nil {
			return err
		}
		return tx.UpsertSubmission(ctx, sub)
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	// second submission replaces the first
	err = store.Transact(ctx, func(ctx context.Context, tx commands.Tx) error {
		s, err := tx.SlotForUpdate(ctx, 3)
		if err != nil {
			return err
		}
		sub, err := slot.NewSubmission(s, testHolder, "receipt-002", submittedAt.Add(time.Minute))
		if err != nil {
			return err
		}
		return tx.UpsertSubmission(ctx, sub)
	})
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}

	err = store.Transact(ctx, func(ctx context.Context, tx commands.Tx) error {
		sub, err := tx.SubmissionBySlot(ctx, 3)
		if err != nil {
			return err
		}
		if sub == nil {
			t.Fatal("submission missing after upsert")
		}
		if sub.ProofRef() != "receipt-002" {
			t.Errorf("proofRef = %q, want receipt-002", sub.ProofRef())
		}

		if err := tx.DeleteSubmission(ctx, 3); err != nil {
			return err
		}
		gone, err := tx.SubmissionBySlot(ctx, 3)
		if err != nil {
			return err
		}
		if gone != nil {
			t.Error("submission still present after delete")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestTransactRollsBackOnError(t *testing.T) {
	ctx, store := setupStore(t)

	boom := errors.New("boom")
	err := store.Transact(ctx, func(ctx context.Context, tx commands.Tx) error {
		s, err := tx.SlotForUpdate(ctx, 5)
		if err != nil {
			return err
		}
		if err := s.Claim(testHolder, time.Now().UTC()); err != nil {
			return err
		}
		if err := tx.SaveSlot(ctx, s); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Transact err = %v, want boom", err)
	}

	err = store.Transact(ctx, func(ctx context.Context, tx commands.Tx) error {
		s, err := tx.SlotForUpdate(ctx, 5)
		if err != nil {
			return err
		}
		if s.Status() != slot.StatusAvailable {
			t.Errorf("slot 5 status = %s, want available after rollback", s.Status())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestSlotForUpdateMissingRowIsCorrupt(t *testing.T) {
	ctx, store := setupStore(t)

	err := store.Transact(ctx, func(ctx context.Context, tx commands.Tx) error {
		_, err := tx.SlotForUpdate(ctx, 99)
		return err
	})
	if !errors.Is(err, errs.ErrStoreCorrupt) {
		t.Fatalf("err = %v, want ErrStoreCorrupt", err)
	}
}
