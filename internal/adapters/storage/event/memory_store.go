package event

import (
	"context"
	"fmt"
	"sync"

	domain "mandir/internal/domain/event"
)

// MemoryStore implements Store with an in-process slice.
type MemoryStore struct {
	mu     sync.RWMutex
	events []domain.Event
}

// NewMemoryStore creates an empty event store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// List returns all events in insertion order.
// PRE: none
// POST: Returns a copy; callers cannot mutate store state
func (s *MemoryStore) List(ctx context.Context) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

// GetByID retrieves an Event by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *MemoryStore) GetByID(ctx context.Context, id string) (domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.events {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Event{}, fmt.Errorf("event not found: %s", id)
}

// Save inserts or updates an Event.
// PRE: value has been validated
// POST: Entity is stored; an update keeps its original position
func (s *MemoryStore) Save(ctx context.Context, value domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.events {
		if v.ID == value.ID {
			s.events[i] = value
			return nil
		}
	}
	s.events = append(s.events, value)
	return nil
}

// Delete removes an Event by ID. Removing an absent ID is a no-op.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.events {
		if v.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return nil
}
