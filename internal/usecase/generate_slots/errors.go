package generate_slots

import "errors"

var (
	// ErrValidation is returned when the requested horizon is invalid.
	ErrValidation = errors.New("generate_slots.usecase: validation failed")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("generate_slots.usecase: internal error")
)
