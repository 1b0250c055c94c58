package orchestrators

import (
	"context"
	"log/slog"
	"strconv"

	settingsstore "mandir/internal/adapters/storage/settings"
	"mandir/internal/domain/settings"
)

// SettingsService loads and saves typed settings over the key-value
// store. Each setting is persisted under its own key so a partial
// write never corrupts the others.
type SettingsService struct {
	Store settingsstore.Store
}

// Load reads the stored settings, falling back to defaults for any
// unset key.
// PRE: none
// POST: Returns a complete Settings value
func (s *SettingsService) Load(ctx context.Context) (settings.Settings, error) {
	stored, err := s.Store.GetAll(ctx)
	if err != nil {
		return settings.Settings{}, err
	}

	out := settings.Defaults()
	if v, ok := stored[settings.KeyName]; ok {
		out.Name = v
	}
	if v, ok := stored[settings.KeyEmail]; ok {
		out.Email = v
	}
	if v, ok := stored[settings.KeyDarkMode]; ok {
		out.DarkMode = v == "true"
	}
	if v, ok := stored[settings.KeyNotifications]; ok {
		out.Notifications = v == "true"
	}
	if v, ok := stored[settings.KeyLanguage]; ok {
		out.Language = v
	}
	return out, nil
}

// UpdateSettingsInput carries the new settings to persist.
type UpdateSettingsInput struct {
	Settings settings.Settings
}

// ExecuteUpdateSettings validates and persists the admin settings.
// PRE: none
// POST: All five settings keys reflect the input
func (s *SettingsService) ExecuteUpdateSettings(ctx context.Context, input UpdateSettingsInput) error {
	cfg := input.Settings
	if err := cfg.Validate(); err != nil {
		return err
	}

	pairs := map[string]string{
		settings.KeyName:          cfg.Name,
		settings.KeyEmail:         cfg.Email,
		settings.KeyDarkMode:      strconv.FormatBool(cfg.DarkMode),
		settings.KeyNotifications: strconv.FormatBool(cfg.Notifications),
		settings.KeyLanguage:      cfg.Language,
	}
	for k, v := range pairs {
		if err := s.Store.Set(ctx, k, v); err != nil {
			return err
		}
	}

	slog.Info("settings_event", "event", "settings_updated", "language", cfg.Language, "notifications", cfg.Notifications)
	return nil
}
