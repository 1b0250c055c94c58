package donation

import (
	"errors"
	"strings"

	"mandir/internal/domain/datekey"
)

// Payment type values. Donations are either made through the online
// portal or recorded by hand at the temple office.
const (
	TypeOnline  = "Online"
	TypeOffline = "Offline"
)

// ValidTypes lists the accepted payment types in display order.
var ValidTypes = []string{TypeOnline, TypeOffline}

var (
	ErrEmptyDonor     = errors.New("donor name cannot be empty")
	ErrInvalidType    = errors.New("payment type must be Online or Offline")
	ErrBadDate        = errors.New("donation date must be a day key")
	ErrNegativeAmount = errors.New("donation amount cannot be negative")
)

// Donation is one recorded contribution. SeatsAvailable is tri-state:
// nil means the question does not apply to this donation.
type Donation struct {
	ID             string
	Donor          string
	PaymentType    string
	Event          string
	Date           string
	Method         string
	Amount         int
	SeatsAvailable *bool
}

// Validate checks invariants and normalizes whitespace.
// PRE: none
// POST: On success, Donor is trimmed and non-empty, PaymentType is one
// of ValidTypes, Date is a day key, and Amount is non-negative
func (d *Donation) Validate() error {
	d.Donor = strings.TrimSpace(d.Donor)
	if d.Donor == "" {
		return ErrEmptyDonor
	}
	if d.PaymentType != TypeOnline && d.PaymentType != TypeOffline {
		return ErrInvalidType
	}
	if !datekey.IsDayKey(d.Date) {
		return ErrBadDate
	}
	if d.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// Matches reports whether the donation matches a free-text search term
// over donor, event, method, and date. An empty term matches.
func (d *Donation) Matches(term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(d.Donor), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(d.Event), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(d.Method), needle) {
		return true
	}
	return strings.Contains(d.Date, term)
}
