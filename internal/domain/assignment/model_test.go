package assignment_test

import (
	"testing"

	"mandir/internal/domain/assignment"
)

func TestAssignment_Validate(t *testing.T) {
	tests := []struct {
		name       string
		assignment assignment.Assignment
		wantErr    bool
	}{
		{
			name:       "valid",
			assignment: assignment.Assignment{VolunteerID: "v1", EventID: "1", Date: "2025-11-02"},
			wantErr:    false,
		},
		{
			name:       "empty volunteer",
			assignment: assignment.Assignment{VolunteerID: "", EventID: "1", Date: "2025-11-02"},
			wantErr:    true,
		},
		{
			name:       "empty event",
			assignment: assignment.Assignment{VolunteerID: "v1", EventID: "", Date: "2025-11-02"},
			wantErr:    true,
		},
		{
			name:       "empty date",
			assignment: assignment.Assignment{VolunteerID: "v1", EventID: "1", Date: ""},
			wantErr:    true,
		},
		{
			name:       "month key instead of day key",
			assignment: assignment.Assignment{VolunteerID: "v1", EventID: "1", Date: "2025-11"},
			wantErr:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.assignment.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	assignments := []assignment.Assignment{
		{VolunteerID: "v1", EventID: "1", Date: "2025-11-02"},
		{VolunteerID: "v4", EventID: "99", Date: "2025-11-02"},
	}

	tests := []struct {
		name        string
		volunteerID string
		eventID     string
		date        string
		onLeave     bool
		want        string
	}{
		{"assigned to this event", "v1", "1", "2025-11-02", false, assignment.StatusAssigned},
		{"assigned elsewhere", "v4", "1", "2025-11-02", false, assignment.StatusAssignedElsewhere},
		{"on leave", "v3", "1", "2025-11-02", true, assignment.StatusOnLeave},
		{"available", "v2", "1", "2025-11-02", false, assignment.StatusAvailable},
		{"assigned wins over on leave", "v1", "1", "2025-11-02", true, assignment.StatusAssigned},
		{"elsewhere wins over on leave", "v4", "1", "2025-11-02", true, assignment.StatusAssignedElsewhere},
		{"other date does not count", "v1", "1", "2025-11-03", false, assignment.StatusAvailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := assignment.StatusFor(assignments, tc.volunteerID, tc.eventID, tc.date, tc.onLeave)
			if got != tc.want {
				t.Errorf("StatusFor() = %s, want %s", got, tc.want)
			}
		})
	}
}
