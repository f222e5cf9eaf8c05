package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		client.Close()
	})

	return NewRedisStore(client), mr
}

func TestGet_Missing(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetGetRemove(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "cart:user123", []byte(`{"v":1}`)))

	data, err := store.Get(ctx, "cart:user123")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":1}`), data)

	require.NoError(t, store.Remove(ctx, "cart:user123"))

	_, err = store.Get(ctx, "cart:user123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSet_NoExpiry(t *testing.T) {
	store, mr := setupTestStore(t)

	require.NoError(t, store.Set(context.Background(), "shipping:user123", []byte("x")))

	// snapshots must survive until removed, not expire
	assert.Equal(t, int64(0), int64(mr.TTL("shipping:user123")))
}
