package web

import (
	"net/http"

	"mandir/internal/application/orchestrators"
	"mandir/internal/application/projections"
	"mandir/internal/domain/volunteer"
)

func assignDeps() orchestrators.AssignVolunteerDeps {
	return orchestrators.AssignVolunteerDeps{
		VolunteerStore:  stores.VolunteerStore,
		AssignmentStore: stores.AssignmentStore,
		EventStore:      stores.EventStore,
		Settings:        settingsService,
		Email:           emailSender,
		EmailFrom:       emailFromAddress,
		EmailReplyTo:    emailReplyTo,
	}
}

// handleAPIVolunteers handles GET (assignment board) and POST (create)
// for /api/volunteers.
func handleAPIVolunteers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		q := r.URL.Query()
		result, err := projections.QueryGetVolunteerBoard(ctx, projections.GetVolunteerBoardQuery{
			EventID: q.Get("event_id"),
			Date:    q.Get("date"),
		}, projections.GetVolunteerBoardDeps{
			VolunteerStore:  stores.VolunteerStore,
			AssignmentStore: stores.AssignmentStore,
			EventStore:      stores.EventStore,
		})
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, result)

	case "POST":
		var input struct {
			ID    string `json:"id" validate:"required"`
			Name  string `json:"name" validate:"required"`
			Phone string `json:"phone"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(input); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "id and name are required"})
			return
		}

		v := volunteer.Volunteer{ID: input.ID, Name: input.Name, Phone: input.Phone}
		if err := v.Validate(); err != nil {
			domainError(w, err)
			return
		}
		if err := stores.VolunteerStore.Save(ctx, v); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, v)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func decodeAssignInput(w http.ResponseWriter, r *http.Request) (orchestrators.AssignVolunteerInput, bool) {
	var input struct {
		VolunteerID string `json:"volunteer_id" validate:"required"`
		EventID     string `json:"event_id" validate:"required"`
		Date        string `json:"date" validate:"required"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return orchestrators.AssignVolunteerInput{}, false
	}
	if err := validate.Struct(input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "volunteer_id, event_id and date are required"})
		return orchestrators.AssignVolunteerInput{}, false
	}
	return orchestrators.AssignVolunteerInput{
		VolunteerID: input.VolunteerID,
		EventID:     input.EventID,
		Date:        input.Date,
	}, true
}

// writeBoard responds with the refreshed assignment board so the
// caller can re-render without a second request.
func writeBoard(w http.ResponseWriter, r *http.Request, eventID, date string) {
	result, err := projections.QueryGetVolunteerBoard(r.Context(), projections.GetVolunteerBoardQuery{
		EventID: eventID,
		Date:    date,
	}, projections.GetVolunteerBoardDeps{
		VolunteerStore:  stores.VolunteerStore,
		AssignmentStore: stores.AssignmentStore,
		EventStore:      stores.EventStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleAPIAssign handles POST /api/volunteers/assign.
func handleAPIAssign(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	input, ok := decodeAssignInput(w, r)
	if !ok {
		return
	}
	if err := orchestrators.ExecuteAssignVolunteer(r.Context(), input, assignDeps()); err != nil {
		domainError(w, err)
		return
	}
	writeBoard(w, r, input.EventID, input.Date)
}

// handleAPIUnassign handles POST /api/volunteers/unassign.
func handleAPIUnassign(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	input, ok := decodeAssignInput(w, r)
	if !ok {
		return
	}
	if err := orchestrators.ExecuteUnassignVolunteer(r.Context(), input, assignDeps()); err != nil {
		domainError(w, err)
		return
	}
	writeBoard(w, r, input.EventID, input.Date)
}

// EventID is optional; when present the response is the refreshed
// board for that event on the date.
func decodeLeaveInput(w http.ResponseWriter, r *http.Request) (orchestrators.MarkLeaveInput, string, bool) {
	var input struct {
		VolunteerID string `json:"volunteer_id" validate:"required"`
		EventID     string `json:"event_id"`
		Date        string `json:"date" validate:"required"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return orchestrators.MarkLeaveInput{}, "", false
	}
	if err := validate.Struct(input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "volunteer_id and date are required"})
		return orchestrators.MarkLeaveInput{}, "", false
	}
	return orchestrators.MarkLeaveInput{
		VolunteerID: input.VolunteerID,
		ViewedDate:  input.Date,
	}, input.EventID, true
}

// handleAPIMarkOnLeave handles POST /api/volunteers/leave.
func handleAPIMarkOnLeave(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	input, eventID, ok := decodeLeaveInput(w, r)
	if !ok {
		return
	}
	if err := orchestrators.ExecuteMarkOnLeave(r.Context(), input, assignDeps()); err != nil {
		domainError(w, err)
		return
	}
	if eventID != "" {
		writeBoard(w, r, eventID, input.ViewedDate)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "on_leave"})
}

// handleAPIMarkAvailable handles POST /api/volunteers/available.
func handleAPIMarkAvailable(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	input, eventID, ok := decodeLeaveInput(w, r)
	if !ok {
		return
	}
	if err := orchestrators.ExecuteMarkAvailable(r.Context(), input, assignDeps()); err != nil {
		domainError(w, err)
		return
	}
	if eventID != "" {
		writeBoard(w, r, eventID, input.ViewedDate)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "available"})
}
