package report

import (
	"context"

	domain "mandir/internal/domain/report"
)

// Store holds the reporting ledger in memory, preserving insertion
// order.
type Store interface {
	List(ctx context.Context) ([]domain.Record, error)
	Save(ctx context.Context, value domain.Record) error
}
