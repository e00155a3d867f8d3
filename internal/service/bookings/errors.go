package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking id does not exist.
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInvalidTransition is returned when the requested status change
	// is not an edge of the booking state machine.
	ErrInvalidTransition = errors.New("bookings.service: invalid status transition")

	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("bookings.service: invalid input")

	// ErrInternal is returned on storage or transaction failures.
	ErrInternal = errors.New("bookings.service: internal error")
)
