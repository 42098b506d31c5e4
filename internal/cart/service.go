package cart

import (
	"errors"

	"github.com/google/uuid"

	"github.com/greenbasket/grocery-backend/internal/pricing"
	"github.com/greenbasket/grocery-backend/internal/product"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product is out of stock")
)

// ProductSource is the slice of the product service the cart needs to take
// snapshots.
type ProductSource interface {
	GetByID(id int) (product.Product, error)
}

// Service orchestrates cart operations against the in-memory store.
type Service struct {
	store    *Store
	products ProductSource
}

func NewService(store *Store, products ProductSource) *Service {
	return &Service{store: store, products: products}
}

// NewToken issues a fresh cart token for first-time visitors.
func (s *Service) NewToken() string {
	return uuid.NewString()
}

func (s *Service) Get(token string) Cart {
	return s.view(token, s.store.Items(token))
}

// Add looks the product up, snapshots it into the cart and merges with any
// existing line for the same product. A zero quantity falls back to the
// unit's minimum orderable amount (500 g for kg, 1 otherwise).
func (s *Service) Add(token string, productID, quantity int) (Cart, error) {
	p, err := s.products.GetByID(productID)
	if err != nil {
		return Cart{}, ErrProductNotFound
	}
	if p.OutOfStock {
		return Cart{}, ErrOutOfStock
	}
	if quantity <= 0 {
		quantity = pricing.MinQuantity(p.Unit)
	}
	return s.view(token, s.store.Add(token, newLineItem(p, quantity))), nil
}

func (s *Service) UpdateQuantity(token string, productID, quantity int) Cart {
	return s.view(token, s.store.UpdateQuantity(token, productID, quantity))
}

func (s *Service) Remove(token string, productID int) Cart {
	return s.view(token, s.store.Remove(token, productID))
}

func (s *Service) Clear(token string) {
	s.store.Clear(token)
}

// Items exposes the raw line items for checkout.
func (s *Service) Items(token string) []LineItem {
	return s.store.Items(token)
}

func (s *Service) view(token string, items []LineItem) Cart {
	return Cart{
		Token:    token,
		Items:    items,
		Count:    len(items),
		Subtotal: Subtotal(items),
	}
}
