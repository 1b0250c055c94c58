// Package config loads server configuration from MANDIR_ environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable the server reads at startup. Fields left
// unset fall back to development defaults; production deployments are
// expected to set at least MANDIR_CSRF_KEY and MANDIR_ADMIN_PASSWORD.
// The CSRF key and slow query threshold are read by their own packages.
type Config struct {
	Addr          string `env:"ADDR" envDefault:":8080"`
	Env           string `env:"ENV" envDefault:"development"`
	DBPath        string `env:"DB_PATH" envDefault:"mandir.db"`
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"lotus-pond-sunrise"`
	ResendAPIKey  string `env:"RESEND_KEY"`
	EmailFrom     string `env:"EMAIL_FROM" envDefault:"Mandir Admin <noreply@example.com>"`
	EmailReplyTo  string `env:"REPLY_TO" envDefault:"admin@example.com"`
	RateLimit     int    `env:"RATE_LIMIT" envDefault:"10"`
}

// Production reports whether the server runs with production hardening.
func (c Config) Production() bool {
	return c.Env == "production"
}

// Load parses the environment into a Config.
// PRE: none
// POST: Returns a Config with defaults applied for unset variables
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "MANDIR_"}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
