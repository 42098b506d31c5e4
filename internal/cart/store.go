package cart

import "sync"

// Store keeps every active cart in memory, keyed by cart token. Carts are
// ephemeral: nothing here is ever persisted, a restart starts everyone with
// an empty cart. Insertion order of line items is preserved for display.
type Store struct {
	mu    sync.RWMutex
	carts map[string][]LineItem
}

func NewStore() *Store {
	return &Store{carts: map[string][]LineItem{}}
}

// Items returns a copy of the cart's line items. Unknown tokens are empty
// carts, not errors.
func (s *Store) Items(token string) []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.carts[token]
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}

// Add appends a snapshot line item, or bumps the quantity when the product
// is already in the cart. Duplicate product ids never coexist.
func (s *Store) Add(token string, item LineItem) []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[token]
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			return s.copyLocked(token)
		}
	}
	s.carts[token] = append(items, item)
	return s.copyLocked(token)
}

// UpdateQuantity sets a line item's quantity; a result of zero or below
// removes the line instead, so a non-positive quantity is never stored.
// Missing items are a no-op.
func (s *Store) UpdateQuantity(token string, productID, quantity int) []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[token]
	for i := range items {
		if items[i].ProductID == productID {
			if quantity <= 0 {
				s.carts[token] = append(items[:i], items[i+1:]...)
			} else {
				items[i].Quantity = quantity
			}
			break
		}
	}
	return s.copyLocked(token)
}

// Remove drops a line item unconditionally; absent items are a no-op.
func (s *Store) Remove(token string, productID int) []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[token]
	for i := range items {
		if items[i].ProductID == productID {
			s.carts[token] = append(items[:i], items[i+1:]...)
			break
		}
	}
	return s.copyLocked(token)
}

// Clear empties the cart, used after a successful checkout.
func (s *Store) Clear(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, token)
}

func (s *Store) copyLocked(token string) []LineItem {
	items := s.carts[token]
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}

// Subtotal sums the line prices of the given items.
func Subtotal(items []LineItem) float64 {
	var sum float64
	for _, li := range items {
		sum += li.LinePrice()
	}
	return sum
}
