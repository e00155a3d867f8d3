package service

import "errors"

var (
	// ErrServiceNotFound is returned when a service id does not exist.
	ErrServiceNotFound = errors.New("service.repository: service not found")

	// ErrBuildQuery is returned when the SQL query cannot be built.
	ErrBuildQuery = errors.New("service.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute.
	ErrExecQuery = errors.New("service.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("service.repository: failed to scan row")
)
