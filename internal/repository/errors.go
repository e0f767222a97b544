package repository

import "errors"

// Sentinel results of the store. Callers test with errors.Is; the root
// cause of an operation failure is logged here and never propagated.
var (
	// ErrNotFound means a lookup matched zero rows. It is a distinct
	// result, not a failure: list operations return an empty slice
	// instead and never report it.
	ErrNotFound = errors.New("record not found")

	// ErrOperationFailed means a statement could not complete
	// (constraint violation, backend unavailable). Uniform regardless
	// of root cause.
	ErrOperationFailed = errors.New("operation failed")
)
