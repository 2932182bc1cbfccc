package memstore

import (
	"sync"

	"github.com/google/uuid"

	"storefront-api/internal/domain/cart"
	"storefront-api/internal/pkg/errs"
)

// CartStore owns the mutable line-item list. The source system kept a
// single shared cart with no per-user isolation; that scope is preserved
// here, made explicit as one lock-guarded instance constructed at startup
// and torn down with the process. All mutations serialize on the write
// lock, so a read-modify-write on a quantity can never act on stale data.
type CartStore struct {
	mu    sync.RWMutex
	items []cart.LineItem
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// Add merges the quantity into an existing line for the product or appends
// a new line, and returns the affected line. Product existence is the
// caller's concern; the store only guards the one-line-per-product
// invariant.
func (s *CartStore) Add(productID string, quantity int) (cart.LineItem, error) {
	if quantity < 1 {
		return cart.LineItem{}, errs.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity += quantity
			return s.items[i], nil
		}
	}

	li, err := cart.NewLineItem(productID, quantity)
	if err != nil {
		return cart.LineItem{}, err
	}
	s.items = append(s.items, li)
	return li, nil
}

// SetQuantity replaces a line's quantity outright (absolute, unlike Add).
// A non-positive quantity removes the line; removed reports which happened.
func (s *CartStore) SetQuantity(id uuid.UUID, quantity int) (removed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			if quantity <= 0 {
				s.items = append(s.items[:i], s.items[i+1:]...)
				return true, nil
			}
			s.items[i].Quantity = quantity
			return false, nil
		}
	}
	return false, errs.ErrCartItemNotFound
}

func (s *CartStore) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return errs.ErrCartItemNotFound
}

// Clear removes all lines unconditionally and reports how many were removed.
func (s *CartStore) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.items)
	s.items = nil
	return n
}

// View returns the current lines in insertion order, unresolved. The slice
// is a copy; a concurrent mutation cannot tear it.
func (s *CartStore) View() []cart.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]cart.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CartStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Drain runs build on a snapshot of the current lines under the write lock
// and clears the cart only when build succeeds. Receipt creation and cart
// reset thereby form a single atomic step: no receipt without a cleared
// cart, no cleared cart without a receipt. An empty cart fails up front
// with ErrCartEmpty and a failing build leaves the cart untouched.
func (s *CartStore) Drain(build func(items []cart.LineItem) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return errs.ErrCartEmpty
	}

	snapshot := make([]cart.LineItem, len(s.items))
	copy(snapshot, s.items)

	if err := build(snapshot); err != nil {
		return err
	}
	s.items = nil
	return nil
}
