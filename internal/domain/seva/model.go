package seva

import (
	"errors"
	"fmt"
	"strings"

	"mandir/internal/domain/datekey"
)

// Domain errors
var (
	ErrEmptyID          = errors.New("seva ID cannot be empty")
	ErrEmptyName        = errors.New("seva name cannot be empty")
	ErrEmptyBookingName = errors.New("booking name cannot be empty")
	ErrBadBookingDate   = errors.New("booking date must be a YYYY-MM-DD day key")
)

// Seva represents a bookable temple ritual or service offering.
// Sevas are created from static configuration at startup and own their
// bookings exclusively; a booking's lifetime is its seva's lifetime.
type Seva struct {
	ID       string
	Name     string
	Short    string // one-line description
	Schedule string // free-text schedule, e.g. "Daily • 7:00 PM"
	Bookings []Booking
}

// Booking is a single reservation for a seva on a specific date.
// IDs are unique within the owning seva, not globally.
type Booking struct {
	ID          string
	Name        string // devotee name
	Email       string
	Phone       string
	Address     string
	BookingDate string // YYYY-MM-DD day key
	BookingTime string // free text, optional
	Notes       string
}

// Validate checks if the Seva and its bookings have valid data.
// PRE: Seva struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Seva) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	for _, b := range s.Bookings {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("booking %s: %w", b.ID, err)
		}
	}
	return nil
}

// Validate checks if the Booking has valid data.
// PRE: Booking struct is populated
// POST: Returns nil if valid, error otherwise
func (b *Booking) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyBookingName
	}
	if !datekey.IsDayKey(b.BookingDate) {
		return fmt.Errorf("%w: %q", ErrBadBookingDate, b.BookingDate)
	}
	return nil
}

// MatchesSearch reports whether the seva's name or short description
// contains the term, case-insensitively. An empty term matches everything.
// INVARIANT: Seva fields are not mutated
func (s *Seva) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(s.Name), needle) ||
		strings.Contains(strings.ToLower(s.Short), needle)
}
