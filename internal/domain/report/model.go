package report

import (
	"errors"
	"strings"

	"mandir/internal/domain/datekey"
)

// Record categories. Every ledger row belongs to exactly one.
const (
	CategoryDonations   = "Donations"
	CategoryEvents      = "Events"
	CategoryMaintenance = "Maintenance"
)

// ValidCategories lists the accepted categories in display order.
var ValidCategories = []string{CategoryDonations, CategoryEvents, CategoryMaintenance}

var (
	ErrEmptyEvent      = errors.New("report event cannot be empty")
	ErrInvalidCategory = errors.New("report category is not recognised")
	ErrBadDate         = errors.New("report date must be a day key")
)

// Record is one row of the financial and activity ledger that the
// reporting dashboards aggregate over.
type Record struct {
	ID         string
	Category   string
	Event      string
	Amount     int
	Volunteers int
	Date       string
	Channel    string
	Donor      string
}

// Validate checks invariants and normalizes whitespace.
// PRE: none
// POST: On success, Event is trimmed and non-empty, Category is one of
// ValidCategories, and Date is a well-formed day key
func (r *Record) Validate() error {
	r.Event = strings.TrimSpace(r.Event)
	if r.Event == "" {
		return ErrEmptyEvent
	}
	if !isValidCategory(r.Category) {
		return ErrInvalidCategory
	}
	if !datekey.IsDayKey(r.Date) {
		return ErrBadDate
	}
	return nil
}

func isValidCategory(c string) bool {
	for _, v := range ValidCategories {
		if c == v {
			return true
		}
	}
	return false
}
