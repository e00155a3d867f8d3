package notifier

import "errors"

var (
	// ErrInternal is returned on request construction or transport
	// failures.
	ErrInternal = errors.New("notifier client: internal error")

	// ErrInvalidResponse is returned when the relay answers with an
	// unexpected status or body.
	ErrInvalidResponse = errors.New("notifier client: invalid response")

	// ErrServiceDegraded is returned when the relay is unreachable.
	// Reminder records stay unsent and are retried on the next scan.
	ErrServiceDegraded = errors.New("notifier unavailable: delivery deferred")
)
