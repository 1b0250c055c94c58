package projections

import (
	"context"
	"sort"
	"strings"

	"mandir/internal/domain/report"
)

// TopDonorLimit caps the donor leaderboard length.
const TopDonorLimit = 4

// GetReportsQuery carries input for the reports projection. Month
// (YYYY-MM) and Category narrow the ledger; empty means all.
type GetReportsQuery struct {
	Month    string
	Category string
}

// ReportKPIs are the headline counters of the reports dashboard.
type ReportKPIs struct {
	TotalAmount     int
	OnlineAmount    int
	OfflineAmount   int
	UniqueEvents    int
	TotalVolunteers int
}

// TrendPoint is one date's total on the amount trend line.
type TrendPoint struct {
	Date   string
	Amount int
}

// DonorTotal is one donor's aggregate for the leaderboard.
type DonorTotal struct {
	Donor  string
	Amount int
}

// GetReportsResult carries the output of the reports projection.
type GetReportsResult struct {
	KPIs      ReportKPIs
	Trend     []TrendPoint   // per-date totals, dates ascending
	TopDonors []DonorTotal   // highest first, at most TopDonorLimit
	Heatmap   map[string]int // record count per date
	Records   []report.Record
}

// GetReportsDeps holds dependencies for the reports projection.
type GetReportsDeps struct {
	ReportStore ReportStore
}

// QueryGetReports aggregates the ledger into the reports dashboard:
// headline KPIs, an amount trend, a donor leaderboard and an activity
// heatmap. Results depend only on the stored records and filters.
// PRE: Month, when set, is a YYYY-MM key; Category, when set, is valid
// POST: Returns aggregates over the filtered records
func QueryGetReports(ctx context.Context, query GetReportsQuery, deps GetReportsDeps) (GetReportsResult, error) {
	all, err := deps.ReportStore.List(ctx)
	if err != nil {
		return GetReportsResult{}, err
	}

	var records []report.Record
	for _, r := range all {
		if query.Month != "" && !strings.HasPrefix(r.Date, query.Month+"-") {
			continue
		}
		if query.Category != "" && r.Category != query.Category {
			continue
		}
		records = append(records, r)
	}

	kpis := ReportKPIs{}
	events := make(map[string]bool)
	byDate := make(map[string]int)
	heatmap := make(map[string]int)
	byDonor := make(map[string]int)
	var donorOrder []string

	for _, r := range records {
		kpis.TotalAmount += r.Amount
		kpis.TotalVolunteers += r.Volunteers
		switch r.Channel {
		case "Online":
			kpis.OnlineAmount += r.Amount
		case "Offline":
			kpis.OfflineAmount += r.Amount
		}
		events[r.Event] = true
		byDate[r.Date] += r.Amount
		heatmap[r.Date]++
		if r.Donor != "" {
			if _, ok := byDonor[r.Donor]; !ok {
				donorOrder = append(donorOrder, r.Donor)
			}
			byDonor[r.Donor] += r.Amount
		}
	}
	kpis.UniqueEvents = len(events)

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	trend := make([]TrendPoint, 0, len(dates))
	for _, d := range dates {
		trend = append(trend, TrendPoint{Date: d, Amount: byDate[d]})
	}

	// Leaderboard: highest first, ties by first appearance.
	sort.SliceStable(donorOrder, func(a, b int) bool {
		return byDonor[donorOrder[a]] > byDonor[donorOrder[b]]
	})
	if len(donorOrder) > TopDonorLimit {
		donorOrder = donorOrder[:TopDonorLimit]
	}
	top := make([]DonorTotal, 0, len(donorOrder))
	for _, d := range donorOrder {
		top = append(top, DonorTotal{Donor: d, Amount: byDonor[d]})
	}

	return GetReportsResult{
		KPIs:      kpis,
		Trend:     trend,
		TopDonors: top,
		Heatmap:   heatmap,
		Records:   records,
	}, nil
}
