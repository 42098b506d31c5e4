package order

import (
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("order not found")

type Repository interface {
	// Create writes the order and returns it with the store-assigned id
	// and creation timestamp filled in.
	Create(ord Order) (Order, error)
	GetByID(id int) (Order, error)
	// List returns all orders, newest first.
	List() ([]Order, error)
	UpdateStatus(id int, status Status) (Order, error)
	// TotalsSince returns order count and summed totals for orders created
	// at or after the given instant (dashboard stats).
	TotalsSince(t time.Time) (int, float64, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Order
	nextID  int
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{nextID: 1}
	maxID := 0
	for _, ord := range seed {
		r.storage = append(r.storage, ord)
		if ord.ID > maxID {
			maxID = ord.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ord.ID = r.nextID
	r.nextID++
	if ord.CreatedAt.IsZero() {
		ord.CreatedAt = time.Now().UTC()
	}
	r.storage = append(r.storage, ord)
	return ord, nil
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.storage {
		if ord.ID == id {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) List() ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, len(r.storage))
	// storage is append-only, so reversing gives newest first
	for i, ord := range r.storage {
		out[len(out)-1-i] = ord
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(id int, status Status) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage[i].Status = status
			return r.storage[i], nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) TotalsSince(t time.Time) (int, float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	var earnings float64
	for _, ord := range r.storage {
		if !ord.CreatedAt.Before(t) {
			count++
			earnings += ord.Total
		}
	}
	return count, earnings, nil
}
