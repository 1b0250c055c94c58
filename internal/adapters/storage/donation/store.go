package donation

import (
	"context"

	domain "mandir/internal/domain/donation"
)

// Store holds Donation state in memory, preserving insertion order.
type Store interface {
	List(ctx context.Context) ([]domain.Donation, error)
	GetByID(ctx context.Context, id string) (domain.Donation, error)
	Save(ctx context.Context, value domain.Donation) error
	Delete(ctx context.Context, id string) error
}
