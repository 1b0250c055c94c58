package report

import (
	"context"
	"sync"

	domain "mandir/internal/domain/report"
)

// MemoryStore implements Store with an in-process slice.
type MemoryStore struct {
	mu      sync.RWMutex
	records []domain.Record
}

// NewMemoryStore creates an empty report store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// List returns all records in insertion order.
// PRE: none
// POST: Returns a copy; callers cannot mutate store state
func (s *MemoryStore) List(ctx context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Save inserts or updates a Record.
// PRE: value has been validated
// POST: Entity is stored; an update keeps its original position
func (s *MemoryStore) Save(ctx context.Context, value domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.records {
		if v.ID == value.ID {
			s.records[i] = value
			return nil
		}
	}
	s.records = append(s.records, value)
	return nil
}
