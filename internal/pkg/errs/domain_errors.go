package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Slot errors
	ErrInvalidSlotNumber = errors.New("slot number out of range")
	ErrSlotNotFound      = errors.New("slot not found")
	ErrSlotUnavailable   = errors.New("slot unavailable")
	ErrAlreadyHolding    = errors.New("requester already holds a reserved slot")

	// Submission errors
	ErrNoReservationFound  = errors.New("no reservation found for requester")
	ErrNoPendingSubmission = errors.New("no pending submission for slot")
	ErrProofRefRequired    = errors.New("proof reference required")

	// Reviewer errors
	ErrUnauthorizedReviewer = errors.New("not the configured reviewer")

	// Store errors
	ErrStoreCorrupt = errors.New("persisted state unreadable")
	ErrWriteFailed  = errors.New("durable write failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
