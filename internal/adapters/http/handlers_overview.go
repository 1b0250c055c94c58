package web

import (
	"net/http"

	"mandir/internal/application/projections"
)

// handleAPIOverview handles GET /api/overview, the landing dashboard.
func handleAPIOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetOverview(r.Context(), projections.GetOverviewQuery{
		Now: timeNow(),
	}, projections.GetOverviewDeps{
		SevaStore:      stores.SevaStore,
		EventStore:     stores.EventStore,
		DonationStore:  stores.DonationStore,
		VolunteerStore: stores.VolunteerStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
