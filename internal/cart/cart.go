// Package cart holds the in-memory cart of a single shopper, mirrored to the
// durable snapshot store on every mutation.
package cart

import (
	"context"
	"fmt"

	"jewelry-storefront/internal/model"

	"github.com/shopspring/decimal"
)

type Item struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
	Quantity int             `json:"quantity"`
}

// Store is explicitly constructed per owner; it keeps no global state.
type Store struct {
	ownerID string
	items   []Item
	snaps   SnapshotStore
}

func NewStore(ownerID string, snaps SnapshotStore) *Store {
	return &Store{
		ownerID: ownerID,
		snaps:   snaps,
	}
}

// Load restores the cart from the snapshot store. A missing or corrupt
// snapshot leaves the cart empty. Called once, right after construction.
func (s *Store) Load(ctx context.Context) error {
	items, err := s.snaps.Load(ctx, s.ownerID)
	if err != nil {
		return fmt.Errorf("load cart snapshot: %w", err)
	}
	s.items = items
	return nil
}

// Add appends the product with quantity 1, or bumps the quantity of the
// existing line with the same id.
func (s *Store) Add(ctx context.Context, p *model.Product) error {
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			return s.persist(ctx)
		}
	}

	s.items = append(s.items, Item{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		Quantity: 1,
	})
	return s.persist(ctx)
}

func (s *Store) Remove(ctx context.Context, productID string) error {
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}
	s.items = kept
	return s.persist(ctx)
}

// UpdateQuantity applies a relative quantity change. A computed quantity of
// zero or below removes the line; a quantity of zero is never persisted.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, delta int) error {
	for i := range s.items {
		if s.items[i].ID != productID {
			continue
		}
		q := s.items[i].Quantity + delta
		if q <= 0 {
			return s.Remove(ctx, productID)
		}
		s.items[i].Quantity = q
		return s.persist(ctx)
	}
	return nil
}

// Merge folds another cart's lines into this one, summing quantities for
// matching ids, and persists the result once. Used to carry a guest cart
// over when its owner signs in.
func (s *Store) Merge(ctx context.Context, items []Item) error {
	if len(items) == 0 {
		return nil
	}

	for _, in := range items {
		found := false
		for i := range s.items {
			if s.items[i].ID == in.ID {
				s.items[i].Quantity += in.Quantity
				found = true
				break
			}
		}
		if !found {
			s.items = append(s.items, in)
		}
	}
	return s.persist(ctx)
}

func (s *Store) Clear(ctx context.Context) error {
	s.items = nil
	return s.persist(ctx)
}

// Items returns a snapshot copy; mutating it does not touch the cart.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount folds over the current items, it is never cached separately.
func (s *Store) ItemCount() int {
	count := 0
	for _, it := range s.items {
		count += it.Quantity
	}
	return count
}

func (s *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

func (s *Store) persist(ctx context.Context) error {
	if err := s.snaps.Save(ctx, s.ownerID, s.items); err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}
	return nil
}
