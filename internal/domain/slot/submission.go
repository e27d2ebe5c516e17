package slot

import (
	"errors"
	"time"

	"numberpool/internal/domain/identity"
)

var (
	ErrEmptyProofRef        = errors.New("proof reference cannot be empty")
	ErrSubmissionNotAllowed = errors.New("submission requires a reserved slot")
)

// Submission is the evidence attached to one reserved slot while it awaits
// the reviewer's decision. At most one exists per slot number; a later
// submission replaces the earlier one.
type Submission struct {
	slotNumber  int
	holder      identity.Actor
	proofRef    string
	submittedAt time.Time
}

// NewSubmission creates a submission for the given reserved slot. The holder
// must match the slot's current holder.
func NewSubmission(s *Slot, holder identity.Actor, proofRef string, now time.Time) (Submission, error) {
	if proofRef == "" {
		return Submission{}, ErrEmptyProofRef
	}
	if s.Status() != StatusReserved {
		return Submission{}, ErrSubmissionNotAllowed
	}
	if !s.Holder().Equals(holder) {
		return Submission{}, ErrHolderMismatch
	}
	return Submission{
		slotNumber:  s.Number(),
		holder:      holder,
		proofRef:    proofRef,
		submittedAt: now.UTC(),
	}, nil
}

func ReconstructSubmission(slotNumber int, holder identity.Actor, proofRef string, submittedAt time.Time) (Submission, error) {
	if proofRef == "" {
		return Submission{}, ErrEmptyProofRef
	}
	if holder.IsZero() {
		return Submission{}, ErrBrokenInvariants
	}
	return Submission{
		slotNumber:  slotNumber,
		holder:      holder,
		proofRef:    proofRef,
		submittedAt: submittedAt,
	}, nil
}

func (s Submission) SlotNumber() int        { return s.slotNumber }
func (s Submission) Holder() identity.Actor { return s.holder }
func (s Submission) ProofRef() string       { return s.proofRef }
func (s Submission) SubmittedAt() time.Time { return s.submittedAt }
