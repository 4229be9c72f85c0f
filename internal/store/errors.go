package store

import "errors"

// Error kinds surfaced by the persistence gateway. Callers discriminate
// with errors.Is; every failure wraps exactly one of these.
var (
	// ErrStoreUnavailable indicates the backing store could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotFound indicates the referenced id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrWriteFailed indicates the store rejected or failed a write.
	ErrWriteFailed = errors.New("write failed")
)
