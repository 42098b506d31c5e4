package settings

import "sync"

type Repository interface {
	// Get returns the current setting; a missing row is the zero value,
	// not an error.
	Get() (DeliverySetting, error)
	Set(s DeliverySetting) error
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	setting DeliverySetting
}

func NewInMemoryRepository(seed DeliverySetting) *InMemoryRepository {
	return &InMemoryRepository{setting: seed}
}

func (r *InMemoryRepository) Get() (DeliverySetting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.setting, nil
}

func (r *InMemoryRepository) Set(s DeliverySetting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setting = s
	return nil
}
