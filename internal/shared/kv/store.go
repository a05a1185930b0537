// Package kv provides the local key-value substrate backing accounts,
// history and preferences. Values are JSON-encoded strings owned by the
// calling store; this layer never inspects them.
package kv

import "context"

// Store is a string key to JSON-encoded string value store.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
