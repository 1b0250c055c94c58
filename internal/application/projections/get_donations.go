package projections

import (
	"context"

	"mandir/internal/application/listutil"
	"mandir/internal/domain/donation"
)

// GetDonationsQuery carries input for the donation list projection.
// Recognised filters are "type" (Online/Offline) and "method".
type GetDonationsQuery struct {
	Params listutil.ListParams
}

// GetDonationsResult carries the output of the donation list projection.
type GetDonationsResult struct {
	Donations   []donation.Donation
	Page        listutil.PageInfo
	Methods     []string // distinct methods in insertion order, for the filter dropdown
	TotalAmount int      // sum over the whole filtered set, not just the page
}

// GetDonationsDeps holds dependencies for the donation list projection.
type GetDonationsDeps struct {
	DonationStore DonationStore
}

// QueryGetDonations lists donations with free-text search, exact
// filters and pagination. Ordering is insertion order.
// PRE: none
// POST: Returns at most PerPage donations plus page metadata
func QueryGetDonations(ctx context.Context, query GetDonationsQuery, deps GetDonationsDeps) (GetDonationsResult, error) {
	all, err := deps.DonationStore.List(ctx)
	if err != nil {
		return GetDonationsResult{}, err
	}

	typeFilter := query.Params.Filters["type"]
	methodFilter := query.Params.Filters["method"]

	var methods []string
	seen := make(map[string]bool)

	var filtered []donation.Donation
	total := 0
	for _, d := range all {
		if d.Method != "" && !seen[d.Method] {
			seen[d.Method] = true
			methods = append(methods, d.Method)
		}
		if typeFilter != "" && d.PaymentType != typeFilter {
			continue
		}
		if methodFilter != "" && d.Method != methodFilter {
			continue
		}
		if !d.Matches(query.Params.Search) {
			continue
		}
		filtered = append(filtered, d)
		total += d.Amount
	}

	page := listutil.NewPageInfo(query.Params.Page, query.Params.PerPage, len(filtered))
	start := page.Offset()
	end := page.EndRow()
	var rows []donation.Donation
	if start < len(filtered) {
		rows = filtered[start:end]
	}

	return GetDonationsResult{
		Donations:   rows,
		Page:        page,
		Methods:     methods,
		TotalAmount: total,
	}, nil
}
