package projections

import (
	"context"
	"sort"
	"time"

	"mandir/internal/domain/datekey"
	"mandir/internal/domain/seva"
)

// UpcomingEventLimit caps the overview's upcoming events list.
const UpcomingEventLimit = 5

// GetOverviewQuery carries input for the overview projection.
type GetOverviewQuery struct {
	Now time.Time // if zero, time.Now() is used
}

// UpcomingEvent is one entry in the overview's event list.
type UpcomingEvent struct {
	ID       string
	Title    string
	Date     string
	Location string
}

// GetOverviewResult carries the output of the overview projection.
type GetOverviewResult struct {
	TodayBookings       int
	UpcomingEvents      []UpcomingEvent
	TotalDonationAmount int
	VolunteersAvailable int
	VolunteersOnLeave   int
}

// GetOverviewDeps holds dependencies for the overview projection.
type GetOverviewDeps struct {
	SevaStore      SevaStore
	EventStore     EventStore
	DonationStore  DonationStore
	VolunteerStore VolunteerStore
}

// QueryGetOverview builds the landing dashboard: today's seva
// bookings, the next dated events, donation totals and volunteer
// availability.
// PRE: none
// POST: Returns counters derived from the stores and query.Now
func QueryGetOverview(ctx context.Context, query GetOverviewQuery, deps GetOverviewDeps) (GetOverviewResult, error) {
	now := query.Now
	if now.IsZero() {
		now = time.Now()
	}
	today := datekey.DayKey(now)

	sevas, err := deps.SevaStore.List(ctx)
	if err != nil {
		return GetOverviewResult{}, err
	}
	events, err := deps.EventStore.List(ctx)
	if err != nil {
		return GetOverviewResult{}, err
	}
	donations, err := deps.DonationStore.List(ctx)
	if err != nil {
		return GetOverviewResult{}, err
	}
	volunteers, err := deps.VolunteerStore.List(ctx)
	if err != nil {
		return GetOverviewResult{}, err
	}

	result := GetOverviewResult{
		TodayBookings: len(seva.BookingsOnDay(sevas, today)),
	}

	// Day keys sort chronologically as strings.
	var upcoming []UpcomingEvent
	for _, e := range events {
		if !e.IsDated() || e.Date < today {
			continue
		}
		upcoming = append(upcoming, UpcomingEvent{ID: e.ID, Title: e.Title, Date: e.Date, Location: e.Location})
	}
	sort.SliceStable(upcoming, func(a, b int) bool {
		return upcoming[a].Date < upcoming[b].Date
	})
	if len(upcoming) > UpcomingEventLimit {
		upcoming = upcoming[:UpcomingEventLimit]
	}
	result.UpcomingEvents = upcoming

	for _, d := range donations {
		result.TotalDonationAmount += d.Amount
	}
	for _, v := range volunteers {
		if v.OnLeave {
			result.VolunteersOnLeave++
		} else {
			result.VolunteersAvailable++
		}
	}

	return result, nil
}
