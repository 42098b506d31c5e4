package order

import (
	"errors"
	"fmt"

	"github.com/greenbasket/grocery-backend/internal/cart"
	"github.com/greenbasket/grocery-backend/internal/customer"
	"github.com/greenbasket/grocery-backend/internal/pricing"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrClosedOrder     = errors.New("order is closed and cannot change status")
	ErrBadDeliveryType = errors.New("delivery type must be delivery or pickup")
)

// CartSource is the slice of the cart service checkout needs.
type CartSource interface {
	Items(token string) []cart.LineItem
	Clear(token string)
}

// CustomerStore upserts the checkout customer before the order is written.
type CustomerStore interface {
	Upsert(c customer.Customer) error
}

// DeliveryConfig exposes the global free-delivery flag.
type DeliveryConfig interface {
	FreeDelivery() bool
}

type Service struct {
	repo      Repository
	carts     CartSource
	customers CustomerStore
	settings  DeliveryConfig
}

func NewService(repo Repository, carts CartSource, customers CustomerStore, settings DeliveryConfig) *Service {
	return &Service{repo: repo, carts: carts, customers: customers, settings: settings}
}

// CheckoutInput is the checkout form plus the shopper's cart token.
type CheckoutInput struct {
	CartToken    string
	Name         string
	Phone        string
	Address      string
	DeliveryType DeliveryType
}

// Checkout turns the cart into an immutable order record.
//
// The customer upsert deliberately precedes the order insert so a returning
// shopper's phone lookup stays current even if the order write fails. The
// two writes are not atomic: a failed order write can leave a customer row
// with no order, which is accepted as benign. The cart is only cleared
// after the order write succeeds; on any failure it is left untouched so
// the shopper can retry.
func (s *Service) Checkout(in CheckoutInput) (Order, error) {
	if in.DeliveryType != DeliveryTypeDelivery && in.DeliveryType != DeliveryTypePickup {
		return Order{}, ErrBadDeliveryType
	}

	items := s.carts.Items(in.CartToken)
	if len(items) == 0 {
		return Order{}, ErrEmptyCart
	}

	subtotal := cart.Subtotal(items)
	var charge float64
	if in.DeliveryType == DeliveryTypeDelivery && !s.settings.FreeDelivery() {
		charge = pricing.DeliveryCharge
	}

	address := in.Address
	if in.DeliveryType == DeliveryTypePickup {
		// the sentinel replaces whatever the form held
		address = pricing.PickupAddress
	}

	cust := customer.Customer{Phone: in.Phone, Name: in.Name, Address: address}
	if err := s.customers.Upsert(cust); err != nil {
		return Order{}, fmt.Errorf("save customer: %w", err)
	}

	ord := Order{
		Customer:       cust,
		Items:          items,
		Subtotal:       subtotal,
		DeliveryCharge: charge,
		Total:          subtotal + charge,
		DeliveryType:   in.DeliveryType,
		Status:         StatusNew,
	}
	created, err := s.repo.Create(ord)
	if err != nil {
		return Order{}, fmt.Errorf("save order: %w", err)
	}

	s.carts.Clear(in.CartToken)
	return created, nil
}

// ListByView returns the open or closed orders, newest first.
func (s *Service) ListByView(view string) ([]Order, error) {
	orders, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	return FilterByView(orders, view), nil
}

// SetStatus reclassifies an order. Any of the five status values may be set
// while the order is open; once it is Delivered or Cancelled further
// changes are refused, so a closed order can never silently reopen.
func (s *Service) SetStatus(id int, status Status) (Order, error) {
	if !status.Valid() {
		return Order{}, ErrInvalidStatus
	}
	current, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	if current.Status.IsClosed() {
		return Order{}, ErrClosedOrder
	}
	return s.repo.UpdateStatus(id, status)
}
