package datekey_test

import (
	"errors"
	"testing"
	"time"

	"mandir/internal/domain/datekey"
)

// TestDayKey_ZeroPadding tests that single-digit months and days are padded.
func TestDayKey_ZeroPadding(t *testing.T) {
	got := datekey.DayKey(time.Date(2025, 3, 7, 15, 30, 0, 0, time.Local))
	if got != "2025-03-07" {
		t.Errorf("DayKey() = %q, want 2025-03-07", got)
	}
}

// TestMonthKey tests month key formatting.
func TestMonthKey(t *testing.T) {
	got := datekey.MonthKey(time.Date(2024, 12, 31, 0, 0, 0, 0, time.Local))
	if got != "2024-12" {
		t.Errorf("MonthKey() = %q, want 2024-12", got)
	}
}

// TestParseDayKey_RoundTrip tests that ParseDayKey inverts DayKey.
func TestParseDayKey_RoundTrip(t *testing.T) {
	keys := []string{"2025-11-05", "2024-02-29", "2025-01-01", "1999-12-31"}
	for _, key := range keys {
		parsed, err := datekey.ParseDayKey(key)
		if err != nil {
			t.Fatalf("ParseDayKey(%q) error: %v", key, err)
		}
		if got := datekey.DayKey(parsed); got != key {
			t.Errorf("round trip %q -> %q", key, got)
		}
	}
}

// TestParseDayKey_Malformed tests rejection of malformed keys.
func TestParseDayKey_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "too few segments", in: "2025-11"},
		{name: "too many segments", in: "2025-11-05-01"},
		{name: "empty", in: ""},
		{name: "non numeric", in: "2025-xx-05"},
		{name: "segments out of order", in: "25-09-2025"},
		{name: "impossible calendar date", in: "2025-13-45"},
		{name: "unpadded segments", in: "2025-1-5"},
		{name: "non leap february 29", in: "2025-02-29"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := datekey.ParseDayKey(tt.in)
			if !errors.Is(err, datekey.ErrMalformedDayKey) {
				t.Errorf("ParseDayKey(%q) error = %v, want ErrMalformedDayKey", tt.in, err)
			}
		})
	}
}

// TestIsDayKey tests the validation gate used by booking-date checks.
func TestIsDayKey(t *testing.T) {
	if !datekey.IsDayKey("2025-11-05") {
		t.Error("IsDayKey(2025-11-05) = false, want true")
	}
	for _, in := range []string{"2025-13-45", "2025-1-5", "25-09-2025"} {
		if datekey.IsDayKey(in) {
			t.Errorf("IsDayKey(%q) = true, want false", in)
		}
	}
}

// TestAddDays tests day arithmetic across a month boundary.
func TestAddDays(t *testing.T) {
	got, err := datekey.AddDays("2025-11-01", -3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025-10-29" {
		t.Errorf("AddDays() = %q, want 2025-10-29", got)
	}
}

// TestAddMonths_YearRollover tests calendar month arithmetic across years.
func TestAddMonths_YearRollover(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{in: "2025-01", n: -1, want: "2024-12"},
		{in: "2025-01", n: -5, want: "2024-08"},
		{in: "2024-11", n: 2, want: "2025-01"},
		{in: "2025-06", n: 0, want: "2025-06"},
	}
	for _, tt := range tests {
		got, err := datekey.AddMonths(tt.in, tt.n)
		if err != nil {
			t.Fatalf("AddMonths(%q, %d) error: %v", tt.in, tt.n, err)
		}
		if got != tt.want {
			t.Errorf("AddMonths(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

// TestMonthOf tests month prefix extraction.
func TestMonthOf(t *testing.T) {
	if got := datekey.MonthOf("2025-11-05"); got != "2025-11" {
		t.Errorf("MonthOf() = %q, want 2025-11", got)
	}
}
