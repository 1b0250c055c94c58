package projections

import (
	"context"
	"fmt"

	"mandir/internal/domain/assignment"
	"mandir/internal/domain/datekey"
)

// GetVolunteerBoardQuery carries input for the volunteer board
// projection. EventID and Date select the scheduling context.
type GetVolunteerBoardQuery struct {
	EventID string
	Date    string
}

// VolunteerRow is one volunteer with their status for the viewed
// event and date.
type VolunteerRow struct {
	ID      string
	Name    string
	Phone   string
	OnLeave bool
	Status  string // one of the assignment.Status constants
}

// DayAssignment is one assignment on the viewed date, resolved to
// display names.
type DayAssignment struct {
	VolunteerID   string
	VolunteerName string
	EventID       string
	EventTitle    string
}

// GetVolunteerBoardResult carries the output of the volunteer board projection.
type GetVolunteerBoardResult struct {
	Volunteers []VolunteerRow
	OnDate     []DayAssignment
	Assigned   int
	Available  int
	OnLeave    int
}

// GetVolunteerBoardDeps holds dependencies for the volunteer board projection.
type GetVolunteerBoardDeps struct {
	VolunteerStore  VolunteerStore
	AssignmentStore AssignmentStore
	EventStore      EventStore
}

// QueryGetVolunteerBoard builds the assignment board for one event and
// date: every volunteer with a derived status, plus all assignments
// already placed on that date.
// PRE: EventID is non-empty, Date is a day key
// POST: Returns rows in volunteer insertion order
func QueryGetVolunteerBoard(ctx context.Context, query GetVolunteerBoardQuery, deps GetVolunteerBoardDeps) (GetVolunteerBoardResult, error) {
	if query.EventID == "" {
		return GetVolunteerBoardResult{}, fmt.Errorf("event_id is required")
	}
	if !datekey.IsDayKey(query.Date) {
		return GetVolunteerBoardResult{}, fmt.Errorf("%w: %q", datekey.ErrMalformedDayKey, query.Date)
	}

	volunteers, err := deps.VolunteerStore.List(ctx)
	if err != nil {
		return GetVolunteerBoardResult{}, err
	}
	assignments, err := deps.AssignmentStore.ListByDate(ctx, query.Date)
	if err != nil {
		return GetVolunteerBoardResult{}, err
	}

	result := GetVolunteerBoardResult{}
	names := make(map[string]string, len(volunteers))
	for _, v := range volunteers {
		names[v.ID] = v.Name
		status := assignment.StatusFor(assignments, v.ID, query.EventID, query.Date, v.OnLeave)
		result.Volunteers = append(result.Volunteers, VolunteerRow{
			ID:      v.ID,
			Name:    v.Name,
			Phone:   v.Phone,
			OnLeave: v.OnLeave,
			Status:  status,
		})
		switch status {
		case assignment.StatusAssigned, assignment.StatusAssignedElsewhere:
			result.Assigned++
		case assignment.StatusOnLeave:
			result.OnLeave++
		case assignment.StatusAvailable:
			result.Available++
		}
	}

	for _, a := range assignments {
		da := DayAssignment{
			VolunteerID:   a.VolunteerID,
			VolunteerName: names[a.VolunteerID],
			EventID:       a.EventID,
			EventTitle:    a.EventID,
		}
		if ev, err := deps.EventStore.GetByID(ctx, a.EventID); err == nil {
			da.EventTitle = ev.Title
		}
		result.OnDate = append(result.OnDate, da)
	}

	return result, nil
}
