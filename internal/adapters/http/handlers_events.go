package web

import (
	"net/http"
	"strings"

	"mandir/internal/application/projections"
	"mandir/internal/domain/event"
)

// handleAPIEvents handles GET (list) and POST (create) for /api/events.
func handleAPIEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		result, err := projections.QueryGetEvents(ctx, projections.GetEventsQuery{
			Search: r.URL.Query().Get("q"),
		}, projections.GetEventsDeps{EventStore: stores.EventStore})
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)

	case "POST":
		var input struct {
			ID          string `json:"id" validate:"required"`
			Title       string `json:"title" validate:"required"`
			Date        string `json:"date" validate:"required"`
			Time        string `json:"time"`
			Location    string `json:"location"`
			Volunteers  int    `json:"volunteers" validate:"gte=0"`
			Description string `json:"description"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(input); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "id, title and date are required"})
			return
		}

		e := event.Event{
			ID:          input.ID,
			Title:       input.Title,
			Date:        input.Date,
			Time:        input.Time,
			Location:    input.Location,
			Volunteers:  input.Volunteers,
			Description: input.Description,
		}
		if err := e.Validate(); err != nil {
			domainError(w, err)
			return
		}
		if err := stores.EventStore.Save(ctx, e); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, e)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleAPIEventDetails handles GET /api/events/{id} and
// POST /api/events/{id}/bookings.
func handleAPIEventDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rest := strings.TrimPrefix(r.URL.Path, "/api/events/")
	eventID, tail, _ := strings.Cut(rest, "/")
	if eventID == "" {
		http.NotFound(w, r)
		return
	}

	switch {
	case tail == "" && r.Method == "GET":
		result, err := projections.QueryGetEventDetails(ctx, projections.GetEventDetailsQuery{
			EventID: eventID,
		}, projections.GetEventDetailsDeps{EventStore: stores.EventStore})
		if err != nil {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, result)

	case tail == "bookings" && r.Method == "POST":
		var input struct {
			Name        string `json:"name" validate:"required"`
			Address     string `json:"address"`
			BookingDate string `json:"booking_date" validate:"required"`
			BookingTime string `json:"booking_time"`
			Advance     int    `json:"advance" validate:"gte=0"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(input); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name and booking_date are required"})
			return
		}

		e, err := stores.EventStore.GetByID(ctx, eventID)
		if err != nil {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}

		booking := event.Booking{
			ID:          generateID(),
			Name:        input.Name,
			Address:     input.Address,
			BookingDate: input.BookingDate,
			BookingTime: input.BookingTime,
			Advance:     input.Advance,
		}
		e.Bookings = append(e.Bookings, booking)
		if err := stores.EventStore.Save(ctx, e); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, booking)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
