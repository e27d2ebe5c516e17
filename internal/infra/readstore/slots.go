package readstore

import (
	"context"
	"errors"
	"time"

	"numberpool/internal/domain/slot"
	"numberpool/internal/infra"
	"numberpool/internal/pkg/errs"
	"numberpool/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SlotReadStore serves listings from the latest committed snapshot, outside
// the write lock.
type SlotReadStore struct {
	pool *pgxpool.Pool
}

func NewSlotReadStore(pool *pgxpool.Pool) *SlotReadStore {
	return &SlotReadStore{pool: pool}
}

const slotViewQuery = `
SELECT s.number, s.status, s.holder_id, s.holder_name, s.reserved_at,
       sub.slot_number IS NOT NULL AS has_submitted
FROM slots s
LEFT JOIN submissions sub ON sub.slot_number = s.number`

func (r *SlotReadStore) FindByNumber(ctx context.Context, number int) (*queries.SlotView, error) {
	row := r.pool.QueryRow(ctx, slotViewQuery+` WHERE s.number = $1`, number)

	view, err := scanSlotView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(infra.WrapRepoErr("slot not found", err, infra.KindNotFound), errs.ErrSlotNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (r *SlotReadStore) FindAll(ctx context.Context, status *slot.Status) ([]*queries.SlotView, error) {
	query := slotViewQuery
	args := []any{}
	if status != nil {
		query += ` WHERE s.status = $1`
		args = append(args, status.String())
	}
	query += ` ORDER BY s.number`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("list slots", err)
	}
	defer rows.Close()

	var result []*queries.SlotView
	for rows.Next() {
		view, err := scanSlotView(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("iterate slots", err)
	}
	return result, nil
}

func (r *SlotReadStore) FindPendingSubmissions(ctx context.Context) ([]*queries.SubmissionView, error) {
	const query = `
SELECT slot_number, holder_id, holder_name, proof_ref, submitted_at
FROM submissions
ORDER BY submitted_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("list submissions", err)
	}
	defer rows.Close()

	var result []*queries.SubmissionView
	for rows.Next() {
		var view queries.SubmissionView
		if err := rows.Scan(&view.SlotNumber, &view.HolderID, &view.HolderName, &view.ProofRef, &view.SubmittedAt); err != nil {
			return nil, infra.WrapRepoErr("scan submission row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("iterate submissions", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSlotView(row rowScanner) (*queries.SlotView, error) {
	var (
		number       int
		status       string
		holderID     *uuid.UUID
		holderName   *string
		reservedAt   *time.Time
		hasSubmitted bool
	)
	if err := row.Scan(&number, &status, &holderID, &holderName, &reservedAt, &hasSubmitted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("scan slot row", err)
	}

	return &queries.SlotView{
		Number:       number,
		Status:       status,
		HolderID:     holderID,
		HolderName:   holderName,
		ReservedAt:   reservedAt,
		HasSubmitted: hasSubmitted,
	}, nil
}
