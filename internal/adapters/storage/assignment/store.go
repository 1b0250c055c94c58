package assignment

import (
	"context"

	domain "mandir/internal/domain/assignment"
)

// Store holds Assignment state in memory, preserving insertion order.
type Store interface {
	List(ctx context.Context) ([]domain.Assignment, error)
	ListByDate(ctx context.Context, date string) ([]domain.Assignment, error)
	ListByVolunteerAndDate(ctx context.Context, volunteerID, date string) ([]domain.Assignment, error)
	Insert(ctx context.Context, value domain.Assignment) error
	Remove(ctx context.Context, value domain.Assignment) error
	RemoveByVolunteerAndDate(ctx context.Context, volunteerID, date string) error
}
