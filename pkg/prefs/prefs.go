// Package prefs stores small per-user preferences as JSON values under
// string keys. Reads are non-throwing: a missing or unreadable value
// reports absent rather than failing, so callers always have a usable
// default path.
package prefs

import "context"

// Store is a key-value preference store.
type Store interface {
	// Get decodes the value under key into v, reporting whether a
	// usable value existed. Corrupt stored values read as absent.
	Get(ctx context.Context, key string, v any) bool

	// Set stores v under key, replacing any previous value.
	Set(ctx context.Context, key string, v any) error

	// Delete removes the value under key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
