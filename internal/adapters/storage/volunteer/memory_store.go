package volunteer

import (
	"context"
	"fmt"
	"sync"

	domain "mandir/internal/domain/volunteer"
)

// MemoryStore implements Store with an in-process slice.
type MemoryStore struct {
	mu         sync.RWMutex
	volunteers []domain.Volunteer
}

// NewMemoryStore creates an empty volunteer store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// List returns all volunteers in insertion order.
// PRE: none
// POST: Returns a copy; callers cannot mutate store state
func (s *MemoryStore) List(ctx context.Context) ([]domain.Volunteer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Volunteer, len(s.volunteers))
	copy(out, s.volunteers)
	return out, nil
}

// GetByID retrieves a Volunteer by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *MemoryStore) GetByID(ctx context.Context, id string) (domain.Volunteer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.volunteers {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Volunteer{}, fmt.Errorf("volunteer not found: %s", id)
}

// Save inserts or updates a Volunteer.
// PRE: value has been validated
// POST: Entity is stored; an update keeps its original position
func (s *MemoryStore) Save(ctx context.Context, value domain.Volunteer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.volunteers {
		if v.ID == value.ID {
			s.volunteers[i] = value
			return nil
		}
	}
	s.volunteers = append(s.volunteers, value)
	return nil
}

// Delete removes a Volunteer by ID. Removing an absent ID is a no-op.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.volunteers {
		if v.ID == id {
			s.volunteers = append(s.volunteers[:i], s.volunteers[i+1:]...)
			return nil
		}
	}
	return nil
}
