package response

import (
	"time"

	"numberpool/internal/usecase/commands"
	"numberpool/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	Number     int        `json:"number"`
	Status     string     `json:"status"`
	HolderID   *uuid.UUID `json:"holderId,omitempty"`
	HolderName *string    `json:"holderName,omitempty"`
	ReservedAt *time.Time `json:"reservedAt,omitempty"`
}

type SlotViewResponse struct {
	Number       int        `json:"number"`
	Status       string     `json:"status"`
	HolderID     *uuid.UUID `json:"holderId,omitempty"`
	HolderName   *string    `json:"holderName,omitempty"`
	ReservedAt   *time.Time `json:"reservedAt,omitempty"`
	HasSubmitted bool       `json:"hasSubmitted"`
}

func FromSlotResult(r *commands.SlotResult) *SlotResponse {
	return &SlotResponse{
		Number:     r.Number,
		Status:     r.Status.String(),
		HolderID:   r.HolderID,
		HolderName: r.HolderName,
		ReservedAt: r.ReservedAt,
	}
}

func FromSlotView(v *queries.SlotView) *SlotViewResponse {
	return &SlotViewResponse{
		Number:       v.Number,
		Status:       v.Status,
		HolderID:     v.HolderID,
		HolderName:   v.HolderName,
		ReservedAt:   v.ReservedAt,
		HasSubmitted: v.HasSubmitted,
	}
}
