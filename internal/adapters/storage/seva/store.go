package seva

import (
	"context"

	domain "mandir/internal/domain/seva"
)

// Store holds Seva state. Sevas and their bookings are kept in memory
// and reseeded at startup; the store preserves insertion order.
type Store interface {
	List(ctx context.Context) ([]domain.Seva, error)
	GetByID(ctx context.Context, id string) (domain.Seva, error)
	Save(ctx context.Context, value domain.Seva) error
	Delete(ctx context.Context, id string) error
}
