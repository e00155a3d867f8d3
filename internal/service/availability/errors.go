package availability

import "errors"

var (
	// ErrInvalidInput is returned when a request fails validation.
	ErrInvalidInput = errors.New("availability.service: invalid input")

	// ErrSlotNotFound is returned when the slot id does not exist.
	ErrSlotNotFound = errors.New("availability.service: slot not found")

	// ErrSlotBooked is returned when a delete targets a slot that is no
	// longer available.
	ErrSlotBooked = errors.New("availability.service: slot is booked or blocked")

	// ErrInternal is returned on storage or transaction failures.
	ErrInternal = errors.New("availability.service: internal error")
)
