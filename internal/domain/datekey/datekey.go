package datekey

import (
	"errors"
	"fmt"
	"time"
)

// Layout constants for the canonical key formats.
const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
)

// Domain errors
var (
	ErrMalformedDayKey   = errors.New("day key must be in YYYY-MM-DD form")
	ErrMalformedMonthKey = errors.New("month key must be in YYYY-MM form")
)

// DayKey formats a calendar date as a zero-padded YYYY-MM-DD key.
// Keys sort lexicographically in calendar order because every segment
// is fixed-width.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// MonthKey formats a calendar date as a zero-padded YYYY-MM key.
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// ParseDayKey parses a YYYY-MM-DD key back into a calendar date.
// PRE: none
// POST: Returns the date at midnight local time, or ErrMalformedDayKey
// It is the exact inverse of DayKey for well-formed input: unpadded
// segments and out-of-range calendar dates are rejected, never
// normalized.
func ParseDayKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDayKey, s)
	}
	return t, nil
}

// ParseMonthKey parses a YYYY-MM key into the first day of that month.
// PRE: none
// POST: Returns the first of the month, or ErrMalformedMonthKey
func ParseMonthKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(MonthLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedMonthKey, s)
	}
	return t, nil
}

// IsDayKey reports whether s is a well-formed day key.
// INVARIANT: IsDayKey(DayKey(t)) is always true
func IsDayKey(s string) bool {
	_, err := ParseDayKey(s)
	return err == nil
}

// MonthOf returns the YYYY-MM prefix of a day key.
// PRE: dayKey is well-formed
func MonthOf(dayKey string) string {
	if len(dayKey) < len(MonthLayout) {
		return dayKey
	}
	return dayKey[:len(MonthLayout)]
}

// AddDays shifts a day key by n calendar days.
// PRE: dayKey is well-formed
// POST: Returns the shifted key, or an error for malformed input
func AddDays(dayKey string, n int) (string, error) {
	t, err := ParseDayKey(dayKey)
	if err != nil {
		return "", err
	}
	return DayKey(t.AddDate(0, 0, n)), nil
}

// AddMonths shifts a month key by n calendar months. Month arithmetic
// rolls over year boundaries (2025-01 minus 1 month is 2024-12), never
// by fixed 30-day increments.
// PRE: monthKey is well-formed
// POST: Returns the shifted key, or an error for malformed input
func AddMonths(monthKey string, n int) (string, error) {
	t, err := ParseMonthKey(monthKey)
	if err != nil {
		return "", err
	}
	return MonthKey(t.AddDate(0, n, 0)), nil
}
