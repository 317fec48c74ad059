package kv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", "value", 0))

	value, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", "value", 0))
	require.NoError(t, store.Delete(ctx, "key"))

	_, err := store.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error
	assert.NoError(t, store.Delete(ctx, "key"))
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "key", "value", time.Hour))

	value, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)

	// Advance past the TTL
	store.now = func() time.Time { return now.Add(time.Hour + time.Second) }

	_, err = store.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_OverwriteResetsTTL(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Set(ctx, "key", "old", time.Minute))
	require.NoError(t, store.Set(ctx, "key", "new", time.Hour))

	store.now = func() time.Time { return now.Add(30 * time.Minute) }

	value, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "new", value)
}
