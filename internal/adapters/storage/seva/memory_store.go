package seva

import (
	"context"
	"fmt"
	"sync"

	domain "mandir/internal/domain/seva"
)

// MemoryStore implements Store with an in-process slice. Declaration
// order is insertion order; Save keeps an existing seva's position.
type MemoryStore struct {
	mu    sync.RWMutex
	sevas []domain.Seva
}

// NewMemoryStore creates an empty seva store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// List returns all sevas in insertion order.
// PRE: none
// POST: Returns a copy; callers cannot mutate store state
func (s *MemoryStore) List(ctx context.Context) ([]domain.Seva, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Seva, len(s.sevas))
	for i, v := range s.sevas {
		out[i] = cloneSeva(v)
	}
	return out, nil
}

// GetByID retrieves a Seva by its ID.
// PRE: id is non-empty
// POST: Returns a copy or an error if not found
func (s *MemoryStore) GetByID(ctx context.Context, id string) (domain.Seva, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.sevas {
		if v.ID == id {
			return cloneSeva(v), nil
		}
	}
	return domain.Seva{}, fmt.Errorf("seva not found: %s", id)
}

// cloneSeva copies the Bookings slice so a returned Seva never shares
// a backing array with the stored one.
func cloneSeva(v domain.Seva) domain.Seva {
	if v.Bookings != nil {
		bookings := make([]domain.Booking, len(v.Bookings))
		copy(bookings, v.Bookings)
		v.Bookings = bookings
	}
	return v
}

// Save inserts or updates a Seva.
// PRE: value has been validated
// POST: Entity is stored; an update keeps its original position
func (s *MemoryStore) Save(ctx context.Context, value domain.Seva) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.sevas {
		if v.ID == value.ID {
			s.sevas[i] = value
			return nil
		}
	}
	s.sevas = append(s.sevas, value)
	return nil
}

// Delete removes a Seva by ID. Removing an absent ID is a no-op.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.sevas {
		if v.ID == id {
			s.sevas = append(s.sevas[:i], s.sevas[i+1:]...)
			return nil
		}
	}
	return nil
}
