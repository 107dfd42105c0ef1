// Package kvstore provides the persistence contract for named key-value
// slots and the backends that implement it.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read when the slot has never been written
// or has been deleted.
var ErrNotFound = errors.New("slot not found")

// Store is an interface for slot storage operations.
// It abstracts the underlying backend, allowing for different implementations (e.g., in-memory, file, redis).
type Store interface {
	// Read returns the raw value of the named slot.
	// Returns ErrNotFound if the slot has no value.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write replaces the value of the named slot.
	Write(ctx context.Context, key string, value []byte) error

	// Delete removes the named slot. Deleting an absent slot is not an error.
	Delete(ctx context.Context, key string) error
}
