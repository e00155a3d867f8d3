package notification

import "errors"

var (
	// ErrNotificationNotFound is returned when a record id does not exist.
	ErrNotificationNotFound = errors.New("notification.repository: notification not found")

	// ErrBuildQuery is returned when the SQL query cannot be built.
	ErrBuildQuery = errors.New("notification.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute.
	ErrExecQuery = errors.New("notification.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("notification.repository: failed to scan row")
)
