package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when the service id does not exist.
	ErrServiceNotFound = errors.New("catalog.service: service not found")

	// ErrInvalidInput is returned when a request fails validation.
	ErrInvalidInput = errors.New("catalog.service: invalid input")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("catalog.service: internal error")
)
