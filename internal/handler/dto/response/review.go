package response

import (
	"time"

	"numberpool/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubmissionResponse struct {
	SlotNumber  int       `json:"slotNumber"`
	HolderID    uuid.UUID `json:"holderId"`
	HolderName  string    `json:"holderName"`
	ProofRef    string    `json:"proofRef"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func FromSubmissionView(v *queries.SubmissionView) *SubmissionResponse {
	return &SubmissionResponse{
		SlotNumber:  v.SlotNumber,
		HolderID:    v.HolderID,
		HolderName:  v.HolderName,
		ProofRef:    v.ProofRef,
		SubmittedAt: v.SubmittedAt,
	}
}
