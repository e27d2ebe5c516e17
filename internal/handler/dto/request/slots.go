package request

import "strings"

type SubmitProofRequest struct {
	ProofRef string `json:"proof_ref" binding:"required"`
}

func (r SubmitProofRequest) GetProofRef() string {
	return strings.TrimSpace(r.ProofRef)
}
