package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"numberpool/internal/domain/identity"
	"numberpool/internal/domain/slot"
	"numberpool/internal/infra"
	"numberpool/internal/pkg/errs"
	"numberpool/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// All pool mutations serialize on one advisory lock. Two concurrent claims on
// the same number therefore never both observe it available.
const writeLockID int64 = 564130912

type SlotStore struct {
	pool *pgxpool.Pool
}

func NewSlotStore(pool *pgxpool.Pool) *SlotStore {
	return &SlotStore{pool: pool}
}

func (s *SlotStore) Transact(ctx context.Context, fn func(ctx context.Context, tx commands.Tx) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return errs.Mark(infra.WrapRepoErr("begin transaction", err), errs.ErrWriteFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	// xact-scoped: released automatically on commit or rollback.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, writeLockID); err != nil {
		return errs.Mark(infra.WrapRepoErr("acquire write lock", err), errs.ErrWriteFailed)
	}

	if err := fn(ctx, &slotTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(infra.WrapRepoErr("commit transaction", err), errs.ErrWriteFailed)
	}
	return nil
}

// EnsurePool creates any missing slot rows for numbers 1..size. Existing rows
// are left untouched, so restarts and pool-size growth are both safe.
func (s *SlotStore) EnsurePool(ctx context.Context, size int) error {
	const stmt = `
INSERT INTO slots (number, status)
SELECT n, 'available' FROM generate_series(1, $1) AS n
ON CONFLICT (number) DO NOTHING`

	if _, err := s.pool.Exec(ctx, stmt, size); err != nil {
		return errs.Mark(infra.WrapRepoErr("ensure slot pool", err), errs.ErrWriteFailed)
	}
	return nil
}

type slotTx struct {
	tx pgx.Tx
}

const slotColumns = `number, status, holder_id, holder_name, reserved_at`

func (t *slotTx) SlotForUpdate(ctx context.Context, number int) (*slot.Slot, error) {
	const query = `SELECT ` + slotColumns + ` FROM slots WHERE number = $1 FOR UPDATE`

	s, err := scanSlot(t.tx.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Pool initialization guarantees one row per number; a hole is
			// corrupt state, not a user error.
			return nil, errs.Mark(infra.WrapRepoErr("slot row missing", err, infra.KindCorrupt), errs.ErrStoreCorrupt)
		}
		return nil, err
	}
	return s, nil
}

func (t *slotTx) ReservedSlotByHolder(ctx context.Context, holderID uuid.UUID) (*slot.Slot, error) {
	const query = `SELECT ` + slotColumns + ` FROM slots WHERE holder_id = $1 AND status = 'reserved' FOR UPDATE`

	s, err := scanSlot(t.tx.QueryRow(ctx, query, holderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (t *slotTx) ExpiredReservations(ctx context.Context, cutoff time.Time) ([]*slot.Slot, error) {
	const query = `
SELECT ` + slotColumns + `
FROM slots
WHERE status = 'reserved' AND reserved_at <= $1
ORDER BY number
FOR UPDATE`

	rows, err := t.tx.Query(ctx, query, cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("query expired reservations", err)
	}
	defer rows.Close()

	var result []*slot.Slot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("iterate expired reservations", err)
	}
	return result, nil
}

func (t *slotTx) SaveSlot(ctx context.Context, s *slot.Slot) error {
	const stmt = `
UPDATE slots
SET status = $2, holder_id = $3, holder_name = $4, reserved_at = $5
WHERE number = $1`

	var holderID *uuid.UUID
	var holderName *string
	if !s.Holder().IsZero() {
		id := s.Holder().ID()
		name := s.Holder().Name()
		holderID = &id
		holderName = &name
	}

	tag, err := t.tx.Exec(ctx, stmt, s.Number(), s.Status().String(), holderID, holderName, s.ReservedAt())
	if err != nil {
		return errs.Mark(infra.WrapRepoErr("save slot", err), errs.ErrWriteFailed)
	}
	if tag.RowsAffected() == 0 {
		return errs.Mark(infra.WrapRepoErr("slot row vanished", nil, infra.KindCorrupt), errs.ErrStoreCorrupt)
	}
	return nil
}

func (t *slotTx) SubmissionBySlot(ctx context.Context, number int) (*slot.Submission, error) {
	const query = `
SELECT slot_number, holder_id, holder_name, proof_ref, submitted_at
FROM submissions
WHERE slot_number = $1`

	var (
		slotNumber  int
		holderID    uuid.UUID
		holderName  string
		proofRef    string
		submittedAt time.Time
	)
	err := t.tx.QueryRow(ctx, query, number).Scan(&slotNumber, &holderID, &holderName, &proofRef, &submittedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("find submission", err)
	}

	sub, err := slot.ReconstructSubmission(slotNumber, identity.NewActor(holderID, holderName), proofRef, submittedAt)
	if err != nil {
		return nil, errs.Mark(infra.WrapRepoErr("reconstruct submission", err, infra.KindCorrupt), errs.ErrStoreCorrupt)
	}
	return &sub, nil
}

func (t *slotTx) UpsertSubmission(ctx context.Context, sub slot.Submission) error {
	const stmt = `
INSERT INTO submissions (slot_number, holder_id, holder_name, proof_ref, submitted_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (slot_number) DO UPDATE
SET holder_id = EXCLUDED.holder_id,
    holder_name = EXCLUDED.holder_name,
    proof_ref = EXCLUDED.proof_ref,
    submitted_at = EXCLUDED.submitted_at`

	_, err := t.tx.Exec(ctx, stmt,
		sub.SlotNumber(), sub.Holder().ID(), sub.Holder().Name(), sub.ProofRef(), sub.SubmittedAt())
	if err != nil {
		return errs.Mark(infra.WrapRepoErr("upsert submission", err), errs.ErrWriteFailed)
	}
	return nil
}

func (t *slotTx) DeleteSubmission(ctx context.Context, number int) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM submissions WHERE slot_number = $1`, number); err != nil {
		return errs.Mark(infra.WrapRepoErr("delete submission", err), errs.ErrWriteFailed)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSlot(row rowScanner) (*slot.Slot, error) {
	var (
		number     int
		rawStatus  string
		holderID   *uuid.UUID
		holderName *string
		reservedAt *time.Time
	)
	if err := row.Scan(&number, &rawStatus, &holderID, &holderName, &reservedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("scan slot row", err)
	}

	status, err := slot.NewStatus(rawStatus)
	if err != nil {
		return nil, errs.Mark(infra.WrapRepoErr("unknown slot status", err, infra.KindCorrupt), errs.ErrStoreCorrupt)
	}

	var holder identity.Actor
	if holderID != nil {
		name := ""
		if holderName != nil {
			name = *holderName
		}
		holder = identity.NewActor(*holderID, name)
	}

	s, err := slot.ReconstructSlot(number, status, holder, reservedAt)
	if err != nil {
		return nil, errs.Mark(infra.WrapRepoErr("reconstruct slot", err, infra.KindCorrupt), errs.ErrStoreCorrupt)
	}
	return s, nil
}
