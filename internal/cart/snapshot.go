package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"jewelry-storefront/internal/kv"
)

const snapshotVersion = 1

// SnapshotStore mirrors the full item list to durable storage.
type SnapshotStore interface {
	Save(ctx context.Context, ownerID string, items []Item) error
	Load(ctx context.Context, ownerID string) ([]Item, error)
	Drop(ctx context.Context, ownerID string) error
}

type snapshot struct {
	Version int    `json:"version"`
	Items   []Item `json:"items"`
}

func NewKVSnapshots(store kv.Store) *KVSnapshots {
	return &KVSnapshots{
		store: store,
	}
}

type KVSnapshots struct {
	store kv.Store
}

func (s *KVSnapshots) Save(ctx context.Context, ownerID string, items []Item) error {
	data, err := json.Marshal(snapshot{Version: snapshotVersion, Items: items})
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := s.store.Set(ctx, snapshotKey(ownerID), data); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	return nil
}

// Load validates the persisted blob before accepting it: unknown versions and
// malformed items are discarded, never partially applied.
func (s *KVSnapshots) Load(ctx context.Context, ownerID string) ([]Item, error) {
	data, err := s.store.Get(ctx, snapshotKey(ownerID))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, nil
	}
	if snap.Version != snapshotVersion {
		return nil, nil
	}

	for _, it := range snap.Items {
		if it.ID == "" || it.Quantity < 1 || it.Price.IsNegative() {
			return nil, nil
		}
	}

	return snap.Items, nil
}

func (s *KVSnapshots) Drop(ctx context.Context, ownerID string) error {
	if err := s.store.Remove(ctx, snapshotKey(ownerID)); err != nil {
		return fmt.Errorf("drop snapshot: %w", err)
	}
	return nil
}

func snapshotKey(ownerID string) string {
	return fmt.Sprintf("cart:%s", ownerID)
}
