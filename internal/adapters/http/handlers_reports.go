package web

import (
	"net/http"

	"mandir/internal/application/projections"
	"mandir/internal/domain/report"
)

// handleAPIReports handles GET (dashboard) and POST (record) for
// /api/reports.
func handleAPIReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		q := r.URL.Query()
		result, err := projections.QueryGetReports(ctx, projections.GetReportsQuery{
			Month:    q.Get("month"),
			Category: q.Get("category"),
		}, projections.GetReportsDeps{ReportStore: stores.ReportStore})
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)

	case "POST":
		var input struct {
			Category   string `json:"category" validate:"required"`
			Event      string `json:"event" validate:"required"`
			Amount     int    `json:"amount" validate:"gte=0"`
			Volunteers int    `json:"volunteers" validate:"gte=0"`
			Date       string `json:"date" validate:"required"`
			Channel    string `json:"channel"`
			Donor      string `json:"donor"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(input); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "category, event and date are required"})
			return
		}

		rec := report.Record{
			ID:         generateID(),
			Category:   input.Category,
			Event:      input.Event,
			Amount:     input.Amount,
			Volunteers: input.Volunteers,
			Date:       input.Date,
			Channel:    input.Channel,
			Donor:      input.Donor,
		}
		if err := rec.Validate(); err != nil {
			domainError(w, err)
			return
		}
		if err := stores.ReportStore.Save(ctx, rec); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rec)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
