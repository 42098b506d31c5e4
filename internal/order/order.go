package order

import (
	"time"

	"github.com/greenbasket/grocery-backend/internal/cart"
	"github.com/greenbasket/grocery-backend/internal/customer"
)

// Status is one of five fixed values. "Open" orders are still being worked
// on; "Delivered" and "Cancelled" are terminal.
type Status string

const (
	StatusNew            Status = "New"
	StatusProcessing     Status = "Processing"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
	StatusCancelled      Status = "Cancelled"
)

// Statuses lists every legal status value in workflow order.
var Statuses = []Status{StatusNew, StatusProcessing, StatusOutForDelivery, StatusDelivered, StatusCancelled}

func (s Status) Valid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

func (s Status) IsClosed() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s Status) IsOpen() bool {
	return s.Valid() && !s.IsClosed()
}

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

// Order is an immutable checkout record; only the status ever changes after
// creation, and orders are never deleted. CreatedAt is assigned by the
// database at write time.
type Order struct {
	ID             int               `json:"id"`
	Customer       customer.Customer `json:"customer"`
	Items          []cart.LineItem   `json:"items"`
	Subtotal       float64           `json:"subtotal"`
	DeliveryCharge float64           `json:"deliveryCharge"`
	Total          float64           `json:"total"`
	DeliveryType   DeliveryType      `json:"deliveryType"`
	Status         Status            `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// FilterByView splits orders into the admin console's two tabs. Anything
// that is not "closed" is the open view. Classification is purely a
// function of the current status.
func FilterByView(orders []Order, view string) []Order {
	closed := view == "closed"
	out := make([]Order, 0, len(orders))
	for _, ord := range orders {
		if ord.Status.IsClosed() == closed {
			out = append(out, ord)
		}
	}
	return out
}
