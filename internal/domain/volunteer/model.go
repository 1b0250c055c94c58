package volunteer

import (
	"errors"
	"strings"
)

var (
	ErrEmptyID   = errors.New("volunteer id cannot be empty")
	ErrEmptyName = errors.New("volunteer name cannot be empty")
)

// Volunteer is a person who can be assigned to temple events. OnLeave
// marks a volunteer as unavailable for new assignments.
type Volunteer struct {
	ID      string
	Name    string
	Phone   string
	OnLeave bool
}

// Validate checks invariants and normalizes whitespace.
// PRE: none
// POST: On success, ID and Name are trimmed and non-empty
func (v *Volunteer) Validate() error {
	v.ID = strings.TrimSpace(v.ID)
	v.Name = strings.TrimSpace(v.Name)
	if v.ID == "" {
		return ErrEmptyID
	}
	if v.Name == "" {
		return ErrEmptyName
	}
	return nil
}
