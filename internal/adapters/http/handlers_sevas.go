package web

import (
	"net/http"
	"strings"

	"mandir/internal/application/projections"
	"mandir/internal/domain/datekey"
	"mandir/internal/domain/seva"
)

// handleAPISevas handles GET (dashboard) and POST (create) for /api/sevas.
//
// GET query parameters: mode (day|month, default day), date (day key,
// defaults to today), month (month key, defaults to current month), q.
func handleAPISevas(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		q := r.URL.Query()
		now := timeNow()

		query := projections.GetSevaDashboardQuery{
			Mode:   q.Get("mode"),
			Date:   q.Get("date"),
			Month:  q.Get("month"),
			Search: q.Get("q"),
			Now:    now,
		}
		if query.Mode == "" {
			query.Mode = projections.ModeDay
		}
		if query.Mode == projections.ModeDay && query.Date == "" {
			query.Date = datekey.DayKey(now)
		}
		if query.Mode == projections.ModeMonth && query.Month == "" {
			query.Month = datekey.MonthKey(now)
		}

		result, err := projections.QueryGetSevaDashboard(ctx, query, projections.GetSevaDashboardDeps{
			SevaStore: stores.SevaStore,
		})
		if err != nil {
			domainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)

	case "POST":
		var input struct {
			ID       string `json:"id" validate:"required"`
			Name     string `json:"name" validate:"required"`
			Short    string `json:"short"`
			Schedule string `json:"schedule"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(input); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "id and name are required"})
			return
		}

		s := seva.Seva{ID: input.ID, Name: input.Name, Short: input.Short, Schedule: input.Schedule}
		if err := s.Validate(); err != nil {
			domainError(w, err)
			return
		}
		if err := stores.SevaStore.Save(ctx, s); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, s)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleAPISevaBookings handles POST /api/sevas/{id}/bookings.
func handleAPISevaBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/sevas/")
	sevaID, tail, found := strings.Cut(rest, "/")
	if !found || tail != "bookings" || sevaID == "" {
		http.NotFound(w, r)
		return
	}

	var input struct {
		Name        string `json:"name" validate:"required"`
		Email       string `json:"email" validate:"omitempty,email"`
		Phone       string `json:"phone"`
		Address     string `json:"address"`
		BookingDate string `json:"booking_date" validate:"required"`
		BookingTime string `json:"booking_time"`
		Notes       string `json:"notes"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name and booking_date are required"})
		return
	}

	ctx := r.Context()
	s, err := stores.SevaStore.GetByID(ctx, sevaID)
	if err != nil {
		http.Error(w, "seva not found", http.StatusNotFound)
		return
	}

	booking := seva.Booking{
		ID:          generateID(),
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		BookingDate: input.BookingDate,
		BookingTime: input.BookingTime,
		Notes:       input.Notes,
	}
	if err := booking.Validate(); err != nil {
		domainError(w, err)
		return
	}

	s.Bookings = append(s.Bookings, booking)
	if err := stores.SevaStore.Save(ctx, s); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}
