package assignment

import (
	"errors"

	"mandir/internal/domain/datekey"
)

// Status values describe a volunteer's relation to one event on one
// date. Assigned outranks AssignedElsewhere, which outranks OnLeave.
const (
	StatusAssigned          = "assigned"
	StatusAssignedElsewhere = "assigned_elsewhere"
	StatusOnLeave           = "on_leave"
	StatusAvailable         = "available"
)

var (
	ErrOnLeave      = errors.New("volunteer is on leave and cannot be assigned")
	ErrConflict     = errors.New("volunteer is already assigned to another event on this date")
	ErrEmptyField   = errors.New("assignment fields cannot be empty")
	ErrMalformedDay = errors.New("assignment date must be a day key")
)

// Assignment ties one volunteer to one event on one date.
type Assignment struct {
	VolunteerID string
	EventID     string
	Date        string
}

// Validate checks invariants.
// PRE: none
// POST: On success all fields are non-empty and Date is a day key
func (a *Assignment) Validate() error {
	if a.VolunteerID == "" || a.EventID == "" || a.Date == "" {
		return ErrEmptyField
	}
	if !datekey.IsDayKey(a.Date) {
		return ErrMalformedDay
	}
	return nil
}

// Equal reports whether two assignments name the same triple.
func (a Assignment) Equal(other Assignment) bool {
	return a.VolunteerID == other.VolunteerID && a.EventID == other.EventID && a.Date == other.Date
}

// StatusFor derives the display status of a volunteer for one event
// and date. An existing assignment to the event wins over everything;
// an assignment to a different event on the same date wins over leave.
// PRE: date is a YYYY-MM-DD day key
// POST: Returns exactly one of the Status constants
func StatusFor(assignments []Assignment, volunteerID, eventID, date string, onLeave bool) string {
	elsewhere := false
	for _, a := range assignments {
		if a.VolunteerID != volunteerID || a.Date != date {
			continue
		}
		if a.EventID == eventID {
			return StatusAssigned
		}
		elsewhere = true
	}
	if elsewhere {
		return StatusAssignedElsewhere
	}
	if onLeave {
		return StatusOnLeave
	}
	return StatusAvailable
}
