package kv

import (
	"context"
	"errors"
)

// Store is a durable string-keyed snapshot store, scoped to a single browsing
// client's state (cart and shipping snapshots).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

var ErrNotFound = errors.New("key not found")
