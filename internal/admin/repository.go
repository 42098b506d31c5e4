package admin

import (
	"errors"
	"sync"
)

var (
	ErrNotFound           = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Repository interface {
	GetByEmail(email string) (Admin, error)
	Create(a Admin) (Admin, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Admin
	nextID  int
}

func NewInMemoryRepository(seed []Admin) *InMemoryRepository {
	r := &InMemoryRepository{nextID: 1}
	maxID := 0
	for _, a := range seed {
		r.storage = append(r.storage, a)
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) GetByEmail(email string) (Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.storage {
		if a.Email == email {
			return a, nil
		}
	}
	return Admin{}, ErrNotFound
}

func (r *InMemoryRepository) Create(a Admin) (Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == 0 {
		a.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, a)
	return a, nil
}
