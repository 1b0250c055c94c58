package projections

import (
	"context"

	domainAssignment "mandir/internal/domain/assignment"
	domainDonation "mandir/internal/domain/donation"
	domainEvent "mandir/internal/domain/event"
	domainReport "mandir/internal/domain/report"
	domainSeva "mandir/internal/domain/seva"
	domainVolunteer "mandir/internal/domain/volunteer"
)

// SevaStore interface for seva queries.
type SevaStore interface {
	List(ctx context.Context) ([]domainSeva.Seva, error)
}

// EventStore interface for event queries.
type EventStore interface {
	List(ctx context.Context) ([]domainEvent.Event, error)
	GetByID(ctx context.Context, id string) (domainEvent.Event, error)
}

// VolunteerStore interface for volunteer queries.
type VolunteerStore interface {
	List(ctx context.Context) ([]domainVolunteer.Volunteer, error)
}

// AssignmentStore interface for assignment queries.
type AssignmentStore interface {
	List(ctx context.Context) ([]domainAssignment.Assignment, error)
	ListByDate(ctx context.Context, date string) ([]domainAssignment.Assignment, error)
}

// DonationStore interface for donation queries.
type DonationStore interface {
	List(ctx context.Context) ([]domainDonation.Donation, error)
}

// ReportStore interface for report queries.
type ReportStore interface {
	List(ctx context.Context) ([]domainReport.Record, error)
}
