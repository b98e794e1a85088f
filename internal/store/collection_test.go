package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestCollectionSeedsOnFirstRead(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	coll := NewCollection[record](kv, "records")

	seed := []record{{ID: "1", Name: "first"}}
	got, err := coll.Read(ctx, seed)
	require.NoError(t, err)
	assert.Equal(t, seed, got)

	// the seed must have been persisted, not just returned
	raw, ok, err := kv.Get(ctx, "records")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, raw)

	// a later read with a different seed returns the stored list
	got, err = coll.Read(ctx, []record{{ID: "other"}})
	require.NoError(t, err)
	assert.Equal(t, seed, got)
}

func TestCollectionWriteReplaces(t *testing.T) {
	ctx := context.Background()
	coll := NewCollection[record](NewMemory(), "records")

	_, err := coll.Read(ctx, []record{{ID: "1"}, {ID: "2"}})
	require.NoError(t, err)

	require.NoError(t, coll.Write(ctx, []record{{ID: "3"}}))

	got, err := coll.Read(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []record{{ID: "3"}}, got)
}

func TestCollectionNilWriteStoresEmptyList(t *testing.T) {
	ctx := context.Background()
	coll := NewCollection[record](NewMemory(), "records")

	require.NoError(t, coll.Write(ctx, nil))

	got, err := coll.Read(ctx, []record{{ID: "seed"}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSlotLifecycle(t *testing.T) {
	ctx := context.Background()
	slot := NewSlot[record](NewMemory(), "current")

	got, err := slot.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, slot.Set(ctx, record{ID: "1", Name: "alice"}))
	got, err = slot.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Name)

	require.NoError(t, slot.Clear(ctx))
	got, err = slot.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	// clearing an empty slot is a no-op
	require.NoError(t, slot.Clear(ctx))
}
