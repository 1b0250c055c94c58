package projections

import (
	"context"
)

// GetEventsQuery carries input for the event list projection.
type GetEventsQuery struct {
	Search string
}

// EventSummary is one row of the event list.
type EventSummary struct {
	ID           string
	Title        string
	Date         string
	Time         string
	Location     string
	Volunteers   int
	Dated        bool
	BookingCount int
	TotalAdvance int
}

// GetEventsResult carries the output of the event list projection.
type GetEventsResult struct {
	Events []EventSummary
}

// GetEventsDeps holds dependencies for the event list projection.
type GetEventsDeps struct {
	EventStore EventStore
}

// QueryGetEvents lists events matching the search term, with booking
// totals rolled up per event. Insertion order is preserved.
// PRE: none
// POST: Returns one summary per matching event
func QueryGetEvents(ctx context.Context, query GetEventsQuery, deps GetEventsDeps) (GetEventsResult, error) {
	events, err := deps.EventStore.List(ctx)
	if err != nil {
		return GetEventsResult{}, err
	}

	var out []EventSummary
	for _, e := range events {
		if !e.MatchesSearch(query.Search) {
			continue
		}
		s := EventSummary{
			ID:           e.ID,
			Title:        e.Title,
			Date:         e.Date,
			Time:         e.Time,
			Location:     e.Location,
			Volunteers:   e.Volunteers,
			Dated:        e.IsDated(),
			BookingCount: len(e.Bookings),
		}
		for _, b := range e.Bookings {
			s.TotalAdvance += b.Advance
		}
		out = append(out, s)
	}
	return GetEventsResult{Events: out}, nil
}
