package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection persists a homogeneous record list under a single key.
//
// Read seeds the key on first access. Callers that read-modify-write do so
// without transactional protection: two overlapping writers can both read
// the same pre-write list and the second write clobbers the first. That
// matches the contract of the emulated backend this layer ports.
type Collection[T any] struct {
	kv  KV
	key string
}

func NewCollection[T any](kv KV, key string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key}
}

// Read returns the persisted list, or persists and returns seed when the
// key has never been written. Absence is first use, not a failure.
func (c *Collection[T]) Read(ctx context.Context, seed []T) ([]T, error) {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		if err := c.Write(ctx, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", c.key, err)
	}
	return records, nil
}

// Write replaces the entire list under the key in a single put.
func (c *Collection[T]) Write(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", c.key, err)
	}
	return c.kv.Put(ctx, c.key, raw)
}

// Slot persists a single optional record under a key.
type Slot[T any] struct {
	kv  KV
	key string
}

func NewSlot[T any](kv KV, key string) *Slot[T] {
	return &Slot[T]{kv: kv, key: key}
}

// Get returns the stored record, or nil when the slot is empty.
func (s *Slot[T]) Get(ctx context.Context) (*T, error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var record T
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("decode slot %s: %w", s.key, err)
	}
	return &record, nil
}

func (s *Slot[T]) Set(ctx context.Context, record T) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", s.key, err)
	}
	return s.kv.Put(ctx, s.key, raw)
}

func (s *Slot[T]) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, s.key)
}
