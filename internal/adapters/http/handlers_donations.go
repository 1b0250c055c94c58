package web

import (
	"net/http"

	"mandir/internal/application/listutil"
	"mandir/internal/application/projections"
	"mandir/internal/domain/donation"
)

// handleAPIDonations handles GET (list) and POST (record) for
// /api/donations.
func handleAPIDonations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		params := listutil.ParseListParams(r.URL.Query(), []string{"type", "method"})
		result, err := projections.QueryGetDonations(ctx, projections.GetDonationsQuery{
			Params: params,
		}, projections.GetDonationsDeps{DonationStore: stores.DonationStore})
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)

	case "POST":
		var input struct {
			Donor          string `json:"donor" validate:"required"`
			PaymentType    string `json:"payment_type" validate:"required"`
			Event          string `json:"event"`
			Date           string `json:"date" validate:"required"`
			Method         string `json:"method"`
			Amount         int    `json:"amount" validate:"gt=0"`
			SeatsAvailable *bool  `json:"seats_available"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(input); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "donor, payment_type, date and a positive amount are required"})
			return
		}

		d := donation.Donation{
			ID:             generateID(),
			Donor:          input.Donor,
			PaymentType:    input.PaymentType,
			Event:          input.Event,
			Date:           input.Date,
			Method:         input.Method,
			Amount:         input.Amount,
			SeatsAvailable: input.SeatsAvailable,
		}
		if err := d.Validate(); err != nil {
			domainError(w, err)
			return
		}
		if err := stores.DonationStore.Save(ctx, d); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, d)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
