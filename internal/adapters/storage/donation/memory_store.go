package donation

import (
	"context"
	"fmt"
	"sync"

	domain "mandir/internal/domain/donation"
)

// MemoryStore implements Store with an in-process slice.
type MemoryStore struct {
	mu        sync.RWMutex
	donations []domain.Donation
}

// NewMemoryStore creates an empty donation store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// List returns all donations in insertion order.
// PRE: none
// POST: Returns a copy; callers cannot mutate store state
func (s *MemoryStore) List(ctx context.Context) ([]domain.Donation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Donation, len(s.donations))
	copy(out, s.donations)
	return out, nil
}

// GetByID retrieves a Donation by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *MemoryStore) GetByID(ctx context.Context, id string) (domain.Donation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.donations {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Donation{}, fmt.Errorf("donation not found: %s", id)
}

// Save inserts or updates a Donation.
// PRE: value has been validated
// POST: Entity is stored; an update keeps its original position
func (s *MemoryStore) Save(ctx context.Context, value domain.Donation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.donations {
		if v.ID == value.ID {
			s.donations[i] = value
			return nil
		}
	}
	s.donations = append(s.donations, value)
	return nil
}

// Delete removes a Donation by ID. Removing an absent ID is a no-op.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.donations {
		if v.ID == id {
			s.donations = append(s.donations[:i], s.donations[i+1:]...)
			return nil
		}
	}
	return nil
}
