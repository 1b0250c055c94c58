package settings

import (
	"errors"
	"strings"
)

// Supported interface languages.
const (
	LanguageEnglish   = "en"
	LanguageHindi     = "hi"
	LanguageTamil     = "ta"
	LanguageMalayalam = "ml"
)

// ValidLanguages lists the accepted language codes.
var ValidLanguages = []string{LanguageEnglish, LanguageHindi, LanguageTamil, LanguageMalayalam}

// Storage keys for the settings key-value store. Each setting is
// persisted independently under its own key.
const (
	KeyName          = "admin_name"
	KeyEmail         = "admin_email"
	KeyDarkMode      = "admin_darkmode"
	KeyNotifications = "admin_notifications"
	KeyLanguage      = "admin_language"
)

var (
	ErrEmptyName       = errors.New("admin name cannot be empty")
	ErrInvalidEmail    = errors.New("admin email is malformed")
	ErrInvalidLanguage = errors.New("language is not supported")
)

// Settings holds the admin panel preferences.
type Settings struct {
	Name          string
	Email         string
	DarkMode      bool
	Notifications bool
	Language      string
}

// Defaults returns the settings used before the admin saves any.
func Defaults() Settings {
	return Settings{
		Name:     "Administrator",
		Email:    "admin@example.com",
		Language: LanguageEnglish,
	}
}

// Validate checks invariants and normalizes whitespace.
// PRE: none
// POST: On success, Name is trimmed and non-empty, Email contains an
// @, and Language is one of ValidLanguages
func (s *Settings) Validate() error {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	if s.Name == "" {
		return ErrEmptyName
	}
	if !strings.Contains(s.Email, "@") {
		return ErrInvalidEmail
	}
	valid := false
	for _, l := range ValidLanguages {
		if s.Language == l {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidLanguage
	}
	return nil
}
