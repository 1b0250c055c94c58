package volunteer

import (
	"context"

	domain "mandir/internal/domain/volunteer"
)

// Store holds Volunteer state in memory, preserving insertion order.
type Store interface {
	List(ctx context.Context) ([]domain.Volunteer, error)
	GetByID(ctx context.Context, id string) (domain.Volunteer, error)
	Save(ctx context.Context, value domain.Volunteer) error
	Delete(ctx context.Context, id string) error
}
