package state

import (
	"context"
)

// Repository is whole-value key/value storage. Every namespace (active user,
// roster, report ledger) is a single JSON document stored under one key and
// replaced as a whole on write; there are no partial updates.
type Repository interface {
	// Get returns the value stored under key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key.
	Clear(ctx context.Context) error
}
