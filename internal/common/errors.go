package common

import "errors"

var (
	// ErrNotFound is returned by storage backends for absent keys.
	ErrNotFound = errors.New("not found")

	// ErrStorageClosed is returned after a storage backend was closed.
	ErrStorageClosed = errors.New("storage closed")
)
