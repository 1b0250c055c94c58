package projections

import (
	"context"
	"testing"

	domainReport "mandir/internal/domain/report"
)

type mockReportStore struct {
	records []domainReport.Record
}

// List returns all seeded records.
// PRE: none
// POST: Returns the seeded records in order
func (m *mockReportStore) List(_ context.Context) ([]domainReport.Record, error) {
	return m.records, nil
}

func reportFixtures() []domainReport.Record {
	return []domainReport.Record{
		{ID: "r1", Category: domainReport.CategoryDonations, Event: "Diwali Pooja", Amount: 12000, Volunteers: 3, Date: "2025-11-01", Channel: "Online", Donor: "Ravi Sharma"},
		{ID: "r2", Category: domainReport.CategoryEvents, Event: "Navratri Celebration", Amount: 8000, Volunteers: 5, Date: "2025-10-15", Channel: "Online"},
		{ID: "r3", Category: domainReport.CategoryMaintenance, Event: "Temple Cleanliness Drive", Amount: 2500, Volunteers: 2, Date: "2025-09-30", Channel: "Offline", Donor: "Local Trust"},
		{ID: "r4", Category: domainReport.CategoryDonations, Event: "Quick Donate", Amount: 5000, Volunteers: 1, Date: "2025-10-10", Channel: "Offline", Donor: "Sita Verma"},
		{ID: "r5", Category: domainReport.CategoryEvents, Event: "Mandala Pooja", Amount: 10000, Volunteers: 4, Date: "2025-11-03", Channel: "Online", Donor: "Kiran Rao"},
		{ID: "r6", Category: domainReport.CategoryMaintenance, Event: "Temple Maintenance", Amount: 750, Volunteers: 0, Date: "2025-10-05", Channel: "Online", Donor: "Sita Verma"},
	}
}

func TestQueryGetReports_KPIs(t *testing.T) {
	deps := GetReportsDeps{ReportStore: &mockReportStore{records: reportFixtures()}}

	result, err := QueryGetReports(context.Background(), GetReportsQuery{}, deps)
	if err != nil {
		t.Fatalf("QueryGetReports: %v", err)
	}

	if result.KPIs.TotalAmount != 38250 {
		t.Errorf("TotalAmount = %d, want 38250", result.KPIs.TotalAmount)
	}
	if result.KPIs.OnlineAmount != 30750 || result.KPIs.OfflineAmount != 7500 {
		t.Errorf("split = %d/%d, want 30750/7500", result.KPIs.OnlineAmount, result.KPIs.OfflineAmount)
	}
	if result.KPIs.UniqueEvents != 6 {
		t.Errorf("UniqueEvents = %d, want 6", result.KPIs.UniqueEvents)
	}
	if result.KPIs.TotalVolunteers != 15 {
		t.Errorf("TotalVolunteers = %d, want 15", result.KPIs.TotalVolunteers)
	}
}

func TestQueryGetReports_TrendIsSorted(t *testing.T) {
	deps := GetReportsDeps{ReportStore: &mockReportStore{records: reportFixtures()}}

	result, err := QueryGetReports(context.Background(), GetReportsQuery{}, deps)
	if err != nil {
		t.Fatalf("QueryGetReports: %v", err)
	}

	if len(result.Trend) != 6 {
		t.Fatalf("got %d trend points, want 6", len(result.Trend))
	}
	for i := 1; i < len(result.Trend); i++ {
		if result.Trend[i-1].Date >= result.Trend[i].Date {
			t.Errorf("trend not ascending at %d: %s >= %s", i, result.Trend[i-1].Date, result.Trend[i].Date)
		}
	}
	if result.Heatmap["2025-11-01"] != 1 {
		t.Errorf("heatmap[2025-11-01] = %d, want 1", result.Heatmap["2025-11-01"])
	}
}

func TestQueryGetReports_TopDonors(t *testing.T) {
	deps := GetReportsDeps{ReportStore: &mockReportStore{records: reportFixtures()}}

	result, err := QueryGetReports(context.Background(), GetReportsQuery{}, deps)
	if err != nil {
		t.Fatalf("QueryGetReports: %v", err)
	}

	if len(result.TopDonors) != 4 {
		t.Fatalf("got %d top donors, want 4", len(result.TopDonors))
	}
	if result.TopDonors[0].Donor != "Ravi Sharma" || result.TopDonors[0].Amount != 12000 {
		t.Errorf("TopDonors[0] = %+v", result.TopDonors[0])
	}
	// Sita Verma appears twice and is summed.
	for _, d := range result.TopDonors {
		if d.Donor == "Sita Verma" && d.Amount != 5750 {
			t.Errorf("Sita Verma total = %d, want 5750", d.Amount)
		}
	}
}

func TestQueryGetReports_Filters(t *testing.T) {
	deps := GetReportsDeps{ReportStore: &mockReportStore{records: reportFixtures()}}

	byMonth, err := QueryGetReports(context.Background(), GetReportsQuery{Month: "2025-10"}, deps)
	if err != nil {
		t.Fatalf("QueryGetReports: %v", err)
	}
	if len(byMonth.Records) != 3 {
		t.Errorf("october records = %d, want 3", len(byMonth.Records))
	}

	byCategory, err := QueryGetReports(context.Background(), GetReportsQuery{Category: domainReport.CategoryMaintenance}, deps)
	if err != nil {
		t.Fatalf("QueryGetReports: %v", err)
	}
	if len(byCategory.Records) != 2 || byCategory.KPIs.TotalAmount != 3250 {
		t.Errorf("maintenance = %d records totalling %d", len(byCategory.Records), byCategory.KPIs.TotalAmount)
	}
}
