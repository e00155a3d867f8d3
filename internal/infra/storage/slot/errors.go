package slot

import "errors"

var (
	// ErrSlotNotFound is returned when a slot id does not exist.
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotLocked is returned when a FOR UPDATE NOWAIT read could not
	// take the row lock: another claim holds the slots right now.
	ErrSlotLocked = errors.New("slot.repository: slot is locked by a concurrent claim")

	// ErrSlotNotAvailable is returned when a delete targets a slot that
	// is booked or blocked.
	ErrSlotNotAvailable = errors.New("slot.repository: slot is not available")

	// ErrBuildQuery is returned when the SQL query cannot be built.
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute.
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
