package service_test

import (
	"context"
	"testing"

	"jewelry-storefront/internal/kv"
	"jewelry-storefront/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupShipping(t *testing.T) (service.ShippingStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		client.Close()
	})

	return service.NewShippingStore(kv.NewRedisStore(client)), mr
}

func TestShipping_RoundTrip(t *testing.T) {
	store, _ := setupShipping(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user123", testShippingInfo()))

	info, err := store.Load(ctx, "user123")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "Marie Dubois", info.FullName)
	assert.Equal(t, "75002", info.PostalCode)
}

func TestShipping_LoadMissing(t *testing.T) {
	store, _ := setupShipping(t)

	info, err := store.Load(context.Background(), "user123")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestShipping_CorruptBlobTreatedAsAbsent(t *testing.T) {
	store, mr := setupShipping(t)

	mr.Set("shipping:user123", "not-json")

	info, err := store.Load(context.Background(), "user123")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestShipping_Clear(t *testing.T) {
	store, _ := setupShipping(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "user123", testShippingInfo()))
	require.NoError(t, store.Clear(ctx, "user123"))

	info, err := store.Load(ctx, "user123")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestShipping_SaveNil(t *testing.T) {
	store, _ := setupShipping(t)

	assert.Error(t, store.Save(context.Background(), "user123", nil))
}
