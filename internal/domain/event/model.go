package event

import (
	"errors"
	"strings"

	"mandir/internal/domain/datekey"
)

// Undated marks events without a scheduled date, such as standing
// donation funds.
const Undated = "-"

var (
	ErrEmptyID    = errors.New("event id cannot be empty")
	ErrEmptyTitle = errors.New("event title cannot be empty")
	ErrBadDate    = errors.New("event date must be a day key or undated")
)

// Event is a temple event or standing fund. Description holds
// markdown authored by the admin and is rendered at read time.
type Event struct {
	ID          string
	Title       string
	Date        string
	Time        string
	Location    string
	Volunteers  int
	Description string
	Bookings    []Booking
}

// Booking is a seat reservation against an event, possibly carrying an
// advance payment.
type Booking struct {
	ID          string
	Name        string
	Address     string
	BookingDate string
	BookingTime string
	Advance     int
}

// Validate checks invariants and normalizes whitespace.
// PRE: none
// POST: On success, ID and Title are trimmed and non-empty, and Date
// is either Undated or a well-formed day key
func (e *Event) Validate() error {
	e.ID = strings.TrimSpace(e.ID)
	e.Title = strings.TrimSpace(e.Title)
	if e.ID == "" {
		return ErrEmptyID
	}
	if e.Title == "" {
		return ErrEmptyTitle
	}
	if e.Date != Undated && !datekey.IsDayKey(e.Date) {
		return ErrBadDate
	}
	return nil
}

// IsDated reports whether the event has a scheduled date.
func (e *Event) IsDated() bool {
	return e.Date != Undated
}

// MatchesSearch reports whether the event title contains the term,
// case-insensitively. An empty term matches everything.
func (e *Event) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), strings.ToLower(term))
}
