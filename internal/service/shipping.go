package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"jewelry-storefront/internal/kv"
)

type ShippingInfo struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// ShippingStore persists shipping info independent of the session lifetime.
type ShippingStore interface {
	Save(ctx context.Context, userID string, info *ShippingInfo) error
	// Load returns nil without error when nothing has been saved yet.
	Load(ctx context.Context, userID string) (*ShippingInfo, error)
	Clear(ctx context.Context, userID string) error
}

type kvShippingStore struct {
	store kv.Store
}

func NewShippingStore(store kv.Store) ShippingStore {
	return &kvShippingStore{
		store: store,
	}
}

func (s *kvShippingStore) Save(ctx context.Context, userID string, info *ShippingInfo) error {
	if info == nil {
		return fmt.Errorf("shipping info is nil")
	}

	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal shipping info: %w", err)
	}

	if err := s.store.Set(ctx, shippingKey(userID), data); err != nil {
		return fmt.Errorf("store shipping info: %w", err)
	}
	return nil
}

func (s *kvShippingStore) Load(ctx context.Context, userID string) (*ShippingInfo, error) {
	data, err := s.store.Get(ctx, shippingKey(userID))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read shipping info: %w", err)
	}

	var info ShippingInfo
	if err := json.Unmarshal(data, &info); err != nil {
		// corrupt blob, treat as absent
		return nil, nil
	}

	return &info, nil
}

func (s *kvShippingStore) Clear(ctx context.Context, userID string) error {
	if err := s.store.Remove(ctx, shippingKey(userID)); err != nil {
		return fmt.Errorf("clear shipping info: %w", err)
	}
	return nil
}

func shippingKey(userID string) string {
	return fmt.Sprintf("shipping:%s", userID)
}
