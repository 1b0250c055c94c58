package assignment

import (
	"context"
	"sync"

	domain "mandir/internal/domain/assignment"
)

// MemoryStore implements Store with an in-process slice.
type MemoryStore struct {
	mu          sync.RWMutex
	assignments []domain.Assignment
}

// NewMemoryStore creates an empty assignment store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// List returns all assignments in insertion order.
// PRE: none
// POST: Returns a copy; callers cannot mutate store state
func (s *MemoryStore) List(ctx context.Context) ([]domain.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Assignment, len(s.assignments))
	copy(out, s.assignments)
	return out, nil
}

// ListByDate returns all assignments on one date.
// PRE: date is a day key
// POST: Returns matching assignments in insertion order
func (s *MemoryStore) ListByDate(ctx context.Context, date string) ([]domain.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Assignment
	for _, a := range s.assignments {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListByVolunteerAndDate returns one volunteer's assignments on one date.
// PRE: volunteerID is non-empty, date is a day key
// POST: Returns matching assignments in insertion order
func (s *MemoryStore) ListByVolunteerAndDate(ctx context.Context, volunteerID, date string) ([]domain.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Assignment
	for _, a := range s.assignments {
		if a.VolunteerID == volunteerID && a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

// Insert appends an assignment. An assignment equal to an existing one
// is not duplicated.
// PRE: value has been validated
// POST: The triple is present exactly once
func (s *MemoryStore) Insert(ctx context.Context, value domain.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.assignments {
		if a.Equal(value) {
			return nil
		}
	}
	s.assignments = append(s.assignments, value)
	return nil
}

// Remove deletes an exact assignment triple. Removing an absent triple
// is a no-op.
// PRE: none
// POST: The triple is no longer present
func (s *MemoryStore) Remove(ctx context.Context, value domain.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.assignments {
		if a.Equal(value) {
			s.assignments = append(s.assignments[:i], s.assignments[i+1:]...)
			return nil
		}
	}
	return nil
}

// RemoveByVolunteerAndDate deletes every assignment of one volunteer
// on one date.
// PRE: volunteerID is non-empty, date is a day key
// POST: The volunteer has no assignments on that date
func (s *MemoryStore) RemoveByVolunteerAndDate(ctx context.Context, volunteerID, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.assignments[:0]
	for _, a := range s.assignments {
		if a.VolunteerID == volunteerID && a.Date == date {
			continue
		}
		kept = append(kept, a)
	}
	s.assignments = kept
	return nil
}
