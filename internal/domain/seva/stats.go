package seva

import "mandir/internal/domain/datekey"

// PeriodStats summarises the booking activity of one viewed period.
type PeriodStats struct {
	TotalSevas     int
	SevasTouched   int
	TotalBookings  int
	CompletedCount int
}

// SeriesPoint is one bucket of a trend series. Key is a day or month
// key depending on the series that produced it.
type SeriesPoint struct {
	Key   string
	Count int
}

// Stats computes the summary counters for a period's flattened
// bookings. A seva counts as completed when at least one of its
// bookings is dated strictly before referenceDay; day keys compare
// correctly as strings.
// PRE: referenceDay is a YYYY-MM-DD day key
// POST: Counters are derived only from the inputs, never the clock
func Stats(sevas []Seva, flat []FlatBooking, referenceDay string) PeriodStats {
	touched := make(map[string]bool)
	completedSevas := make(map[string]bool)
	for _, fb := range flat {
		touched[fb.SevaID] = true
		if fb.BookingDate < referenceDay {
			completedSevas[fb.SevaID] = true
		}
	}
	return PeriodStats{
		TotalSevas:     len(sevas),
		SevasTouched:   len(touched),
		TotalBookings:  len(flat),
		CompletedCount: len(completedSevas),
	}
}

// DailySeries counts bookings per day over the window of days ending
// at endDay, inclusive. The result always has exactly window points in
// chronological order, zero-filled where no bookings fall.
// PRE: endDay is a YYYY-MM-DD day key; window > 0
// POST: len(result) == window; result[window-1].Key == endDay
func DailySeries(sevas []Seva, endDay string, window int) ([]SeriesPoint, error) {
	points := make([]SeriesPoint, 0, window)
	for i := window - 1; i >= 0; i-- {
		day, err := datekey.AddDays(endDay, -i)
		if err != nil {
			return nil, err
		}
		count := 0
		for _, s := range sevas {
			for _, b := range s.Bookings {
				if b.BookingDate == day {
					count++
				}
			}
		}
		points = append(points, SeriesPoint{Key: day, Count: count})
	}
	return points, nil
}

// MonthlySeries counts bookings per month over the window of months
// ending at endMonth, inclusive. Year boundaries roll over.
// PRE: endMonth is a YYYY-MM month key; window > 0
// POST: len(result) == window; result[window-1].Key == endMonth
func MonthlySeries(sevas []Seva, endMonth string, window int) ([]SeriesPoint, error) {
	points := make([]SeriesPoint, 0, window)
	for i := window - 1; i >= 0; i-- {
		month, err := datekey.AddMonths(endMonth, -i)
		if err != nil {
			return nil, err
		}
		prefix := month + "-"
		count := 0
		for _, s := range sevas {
			for _, b := range s.Bookings {
				if len(b.BookingDate) >= len(prefix) && b.BookingDate[:len(prefix)] == prefix {
					count++
				}
			}
		}
		points = append(points, SeriesPoint{Key: month, Count: count})
	}
	return points, nil
}
