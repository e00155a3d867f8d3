package claim_slots

import "errors"

var (
	// ErrValidation is returned when the request fails input validation.
	ErrValidation = errors.New("claim_slots.usecase: validation failed")

	// ErrServiceNotFound is returned when the requested service does not
	// exist or is inactive.
	ErrServiceNotFound = errors.New("claim_slots.usecase: service not found")

	// ErrSlotConflict is returned when any requested slot is missing, not
	// available, or lost to a concurrent claim.
	ErrSlotConflict = errors.New("claim_slots.usecase: slot no longer available")

	// ErrSlotsNotContiguous is returned when the requested slots do not
	// form one unbroken block on a single date.
	ErrSlotsNotContiguous = errors.New("claim_slots.usecase: slots are not contiguous")

	// ErrInternal is returned on storage or transaction failures.
	ErrInternal = errors.New("claim_slots.usecase: internal error")
)
