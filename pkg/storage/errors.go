package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrDuplicateKey is returned when an insert collides with an existing
	// record under the same identifier.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrClosed is returned when an operation is attempted on a storage
	// handle after Close.
	ErrClosed = errors.New("storage closed")
)
