package scan_reminders

import "errors"

var (
	// ErrValidation is returned when the target date is malformed.
	ErrValidation = errors.New("scan_reminders.usecase: validation failed")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("scan_reminders.usecase: internal error")
)
