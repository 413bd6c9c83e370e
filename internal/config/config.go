// Package config reads the server settings from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloudeng.io/errors"
	"github.com/terraincognita07/rangepicker/internal/db"
)

const (
	insecureSecretPlaceholder = "change_me_in_production"
	minSecretKeyLength        = 32
)

type Config struct {
	Port          string
	Location      *time.Location
	SecretKey     string
	DBDriver      string
	DBPath        string
	DatabaseURL   string
	TokenTTL      time.Duration
	SessionTTL    time.Duration
	ReapInterval  time.Duration

	durationError error
}

// Load reads the environment. Unset variables fall back to defaults; call
// Validate before using the result.
func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		SecretKey:   strings.TrimSpace(os.Getenv("SECRET_KEY")),
		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", db.DriverSQLite)),
		DBPath:      getEnv("DB_PATH", filepath.Join("data", "rangepicker.db")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	cfg.Location = loadLocation(getEnv("TZ", "UTC"))

	durations := errors.M{}
	cfg.TokenTTL = getDuration("PICKER_TOKEN_TTL", 24*time.Hour, &durations)
	cfg.SessionTTL = getDuration("SESSION_IDLE_TTL", 30*time.Minute, &durations)
	cfg.ReapInterval = getDuration("SESSION_REAP_INTERVAL", time.Minute, &durations)
	cfg.durationError = durations.Err()
	return cfg
}

// Validate reports every problem at once.
func (cfg Config) Validate() error {
	errs := errors.M{}
	if cfg.durationError != nil {
		errs.Append(cfg.durationError)
	}
	if err := validateSecretKey(cfg.SecretKey); err != nil {
		errs.Append(err)
	}
	switch cfg.DBDriver {
	case db.DriverSQLite:
		if strings.TrimSpace(cfg.DBPath) == "" {
			errs.Append(fmt.Errorf("DB_PATH is required for the sqlite driver"))
		}
	case db.DriverPostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			errs.Append(fmt.Errorf("DATABASE_URL is required for the postgres driver"))
		}
	default:
		errs.Append(fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver))
	}
	if cfg.TokenTTL <= 0 {
		errs.Append(fmt.Errorf("PICKER_TOKEN_TTL must be positive"))
	}
	if cfg.SessionTTL <= 0 {
		errs.Append(fmt.Errorf("SESSION_IDLE_TTL must be positive"))
	}
	if cfg.ReapInterval <= 0 {
		errs.Append(fmt.Errorf("SESSION_REAP_INTERVAL must be positive"))
	}
	return errs.Err()
}

func (cfg Config) DatabaseTarget() string {
	if cfg.DBDriver == db.DriverPostgres {
		return "postgres"
	}
	return cfg.DBPath
}

func validateSecretKey(secret string) error {
	switch {
	case secret == "":
		return fmt.Errorf("SECRET_KEY is required")
	case secret == insecureSecretPlaceholder:
		return fmt.Errorf("SECRET_KEY must not use the placeholder value")
	case len(secret) < minSecretKeyLength:
		return fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return nil
}

func loadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getDuration(key string, fallback time.Duration, errs *errors.M) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		errs.Append(fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return value
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
