package event

import (
	"context"

	domain "mandir/internal/domain/event"
)

// Store holds Event state in memory, preserving insertion order.
type Store interface {
	List(ctx context.Context) ([]domain.Event, error)
	GetByID(ctx context.Context, id string) (domain.Event, error)
	Save(ctx context.Context, value domain.Event) error
	Delete(ctx context.Context, id string) error
}
