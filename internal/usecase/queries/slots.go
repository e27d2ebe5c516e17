package queries

import (
	"context"
	"time"

	"numberpool/internal/domain/slot"
	"numberpool/internal/pkg/config"
	"numberpool/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SlotView struct {
	Number       int        `json:"number"`
	Status       string     `json:"status"`
	HolderID     *uuid.UUID `json:"holder_id,omitempty"`
	HolderName   *string    `json:"holder_name,omitempty"`
	ReservedAt   *time.Time `json:"reserved_at,omitempty"`
	HasSubmitted bool       `json:"has_submitted"`
}

type SubmissionView struct {
	SlotNumber  int       `json:"slot_number"`
	HolderID    uuid.UUID `json:"holder_id"`
	HolderName  string    `json:"holder_name"`
	ProofRef    string    `json:"proof_ref"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type PoolQueries interface {
	GetSlot(ctx context.Context, number int) (*SlotView, error)
	ListSlots(ctx context.Context, status *slot.Status) ([]*SlotView, error)
	ListPendingSubmissions(ctx context.Context) ([]*SubmissionView, error)
}

// SlotReadStore reads committed snapshots outside the write lock; listings
// may lag in-flight transactions by one commit, which is fine for display.
type SlotReadStore interface {
	FindByNumber(ctx context.Context, number int) (*SlotView, error)
	FindAll(ctx context.Context, status *slot.Status) ([]*SlotView, error)
	FindPendingSubmissions(ctx context.Context) ([]*SubmissionView, error)
}

type poolQueriesImpl struct {
	repo SlotReadStore
	cfg  config.PoolConfig
}

func NewPoolQueries(repo SlotReadStore, cfg config.PoolConfig) PoolQueries {
	return &poolQueriesImpl{repo: repo, cfg: cfg}
}

func (q *poolQueriesImpl) GetSlot(ctx context.Context, number int) (*SlotView, error) {
	if number < 1 || number > q.cfg.Size {
		return nil, errs.ErrInvalidSlotNumber
	}
	return q.repo.FindByNumber(ctx, number)
}

func (q *poolQueriesImpl) ListSlots(ctx context.Context, status *slot.Status) ([]*SlotView, error) {
	return q.repo.FindAll(ctx, status)
}

func (q *poolQueriesImpl) ListPendingSubmissions(ctx context.Context) ([]*SubmissionView, error) {
	return q.repo.FindPendingSubmissions(ctx)
}
