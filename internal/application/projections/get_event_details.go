package projections

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"

	"mandir/internal/domain/event"
)

// GetEventDetailsQuery carries input for the event detail projection.
type GetEventDetailsQuery struct {
	EventID string
}

// GetEventDetailsResult carries the output of the event detail
// projection. DescriptionHTML is the markdown description rendered to
// HTML.
type GetEventDetailsResult struct {
	Event           event.Event
	DescriptionHTML string
	BookingCount    int
	TotalAdvance    int
}

// GetEventDetailsDeps holds dependencies for the event detail projection.
type GetEventDetailsDeps struct {
	EventStore EventStore
}

var mdRenderer = goldmark.New()

// QueryGetEventDetails loads one event with its rendered description
// and booking totals.
// PRE: EventID is non-empty
// POST: Returns the event or an error if not found
func QueryGetEventDetails(ctx context.Context, query GetEventDetailsQuery, deps GetEventDetailsDeps) (GetEventDetailsResult, error) {
	if query.EventID == "" {
		return GetEventDetailsResult{}, fmt.Errorf("event_id is required")
	}

	e, err := deps.EventStore.GetByID(ctx, query.EventID)
	if err != nil {
		return GetEventDetailsResult{}, err
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(e.Description), &buf); err != nil {
		return GetEventDetailsResult{}, fmt.Errorf("render description: %w", err)
	}

	result := GetEventDetailsResult{
		Event:           e,
		DescriptionHTML: buf.String(),
		BookingCount:    len(e.Bookings),
	}
	for _, b := range e.Bookings {
		result.TotalAdvance += b.Advance
	}
	return result, nil
}
