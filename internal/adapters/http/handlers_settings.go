package web

import (
	"net/http"

	"mandir/internal/application/orchestrators"
	"mandir/internal/domain/settings"
)

// handleAPISettings handles GET (load) and PUT (save) for /api/settings.
func handleAPISettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		cfg, err := settingsService.Load(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cfg)

	case "PUT", "POST":
		var input struct {
			Name          string `json:"name" validate:"required"`
			Email         string `json:"email" validate:"required,email"`
			DarkMode      bool   `json:"dark_mode"`
			Notifications bool   `json:"notifications"`
			Language      string `json:"language" validate:"required"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(input); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name, a valid email and language are required"})
			return
		}

		cfg := settings.Settings{
			Name:          input.Name,
			Email:         input.Email,
			DarkMode:      input.DarkMode,
			Notifications: input.Notifications,
			Language:      input.Language,
		}
		if err := settingsService.ExecuteUpdateSettings(ctx, orchestrators.UpdateSettingsInput{Settings: cfg}); err != nil {
			domainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cfg)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
