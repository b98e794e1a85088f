// Package store provides keyed list persistence with seed-on-first-read
// semantics over a pluggable key-value backend.
package store

import "context"

// KV is the storage capability the rest of the app depends on. Absence of
// a key is not an error; Get reports it through the second return value.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
