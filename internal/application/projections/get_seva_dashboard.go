package projections

import (
	"context"
	"fmt"
	"sort"
	"time"

	"mandir/internal/domain/datekey"
	"mandir/internal/domain/seva"
)

// Seva dashboard view modes.
const (
	ModeDay   = "day"
	ModeMonth = "month"
)

// Series windows for the booking trend charts.
const (
	DailyWindow   = 7
	MonthlyWindow = 6
)

// GetSevaDashboardQuery carries input for the seva dashboard projection.
type GetSevaDashboardQuery struct {
	Mode   string // "day" or "month"
	Date   string // day key, required in day mode
	Month  string // month key, required in month mode
	Search string
	Now    time.Time // reference for completed counts; if zero, time.Now() is used
}

// SevaMonthSummary is one seva's booking totals for the viewed month.
type SevaMonthSummary struct {
	SevaID       string
	SevaName     string
	BookingCount int
	Completed    int
}

// GetSevaDashboardResult carries the output of the seva dashboard projection.
type GetSevaDashboardResult struct {
	Mode    string
	Stats   seva.PeriodStats
	Groups  []seva.SevaGroup   // day mode: bookings grouped by seva
	Summary []SevaMonthSummary // month mode: per-seva totals, busiest first
	Daily   []seva.SeriesPoint // 7-day trend ending at the viewed day
	Monthly []seva.SeriesPoint // 6-month trend ending at the viewed month
}

// GetSevaDashboardDeps holds dependencies for the seva dashboard projection.
type GetSevaDashboardDeps struct {
	SevaStore SevaStore
}

// QueryGetSevaDashboard builds the seva booking dashboard for one
// viewed day or month. All counters are derived from the query's
// reference dates, never the wall clock, so results are reproducible.
// PRE: Mode is "day" or "month"; the matching date key is well-formed
// POST: Returns period stats, groupings and trend series
func QueryGetSevaDashboard(ctx context.Context, query GetSevaDashboardQuery, deps GetSevaDashboardDeps) (GetSevaDashboardResult, error) {
	now := query.Now
	if now.IsZero() {
		now = time.Now()
	}
	referenceDay := datekey.DayKey(now)

	all, err := deps.SevaStore.List(ctx)
	if err != nil {
		return GetSevaDashboardResult{}, err
	}

	// Search narrows the sevas before any aggregation.
	sevas := all[:0:0]
	for _, s := range all {
		if s.MatchesSearch(query.Search) {
			sevas = append(sevas, s)
		}
	}

	switch query.Mode {
	case ModeDay:
		if !datekey.IsDayKey(query.Date) {
			return GetSevaDashboardResult{}, fmt.Errorf("%w: %q", datekey.ErrMalformedDayKey, query.Date)
		}
		flat := seva.BookingsOnDay(sevas, query.Date)
		daily, err := seva.DailySeries(sevas, query.Date, DailyWindow)
		if err != nil {
			return GetSevaDashboardResult{}, err
		}
		monthly, err := seva.MonthlySeries(sevas, datekey.MonthOf(query.Date), MonthlyWindow)
		if err != nil {
			return GetSevaDashboardResult{}, err
		}
		return GetSevaDashboardResult{
			Mode:    ModeDay,
			Stats:   seva.Stats(sevas, flat, referenceDay),
			Groups:  seva.GroupBySeva(flat),
			Daily:   daily,
			Monthly: monthly,
		}, nil

	case ModeMonth:
		if _, err := datekey.ParseMonthKey(query.Month); err != nil {
			return GetSevaDashboardResult{}, err
		}
		flat := seva.BookingsInMonth(sevas, query.Month)
		daily, err := seva.DailySeries(sevas, referenceDay, DailyWindow)
		if err != nil {
			return GetSevaDashboardResult{}, err
		}
		monthly, err := seva.MonthlySeries(sevas, query.Month, MonthlyWindow)
		if err != nil {
			return GetSevaDashboardResult{}, err
		}
		return GetSevaDashboardResult{
			Mode:    ModeMonth,
			Stats:   seva.Stats(sevas, flat, referenceDay),
			Summary: monthSummary(flat, referenceDay),
			Daily:   daily,
			Monthly: monthly,
		}, nil

	default:
		return GetSevaDashboardResult{}, fmt.Errorf("mode must be %q or %q", ModeDay, ModeMonth)
	}
}

// monthSummary folds flattened bookings into per-seva totals, ordered
// busiest first. Ties keep first-seen order.
func monthSummary(flat []seva.FlatBooking, referenceDay string) []SevaMonthSummary {
	index := make(map[string]int)
	var out []SevaMonthSummary
	for _, fb := range flat {
		i, ok := index[fb.SevaID]
		if !ok {
			i = len(out)
			index[fb.SevaID] = i
			out = append(out, SevaMonthSummary{SevaID: fb.SevaID, SevaName: fb.SevaName})
		}
		out[i].BookingCount++
		if fb.BookingDate < referenceDay {
			out[i].Completed++
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].BookingCount > out[b].BookingCount
	})
	return out
}
