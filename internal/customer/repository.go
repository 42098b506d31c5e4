package customer

import (
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("customer not found")

type Repository interface {
	// Upsert writes the customer, replacing name and address when the
	// phone key already exists.
	Upsert(c Customer) error
	GetByPhone(phone string) (Customer, error)
	// List returns all customers sorted by name ascending.
	List() []Customer
	Count() (int, error)
}

// InMemoryRepository backs tests and local runs.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Customer
}

func NewInMemoryRepository(seed []Customer) *InMemoryRepository {
	r := &InMemoryRepository{storage: map[string]Customer{}}
	for _, c := range seed {
		r.storage[c.Phone] = c
	}
	return r
}

func (r *InMemoryRepository) Upsert(c Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[c.Phone] = c
	return nil
}

func (r *InMemoryRepository) GetByPhone(phone string) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.storage[phone]
	if !ok {
		return Customer{}, ErrNotFound
	}
	return c, nil
}

func (r *InMemoryRepository) List() []Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Customer, 0, len(r.storage))
	for _, c := range r.storage {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *InMemoryRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.storage), nil
}
