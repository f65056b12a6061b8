package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the board service.
type Config struct {
	DatabaseURL     string
	HTTPAddr        string
	SecretKey       string
	SummaryInterval time.Duration
	SummaryTime     string // daily HH:MM; takes precedence over the interval

	DefaultUserName     string
	DefaultUserEmail    string
	DefaultUserPassword string
}

// Load reads configuration from environment variables with sane defaults.
// A .env file in the working directory is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL:         strings.TrimSpace(os.Getenv("DATABASE_URL")),
		HTTPAddr:            strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		SecretKey:           strings.TrimSpace(os.Getenv("SECRET_KEY")),
		SummaryInterval:     parseInterval(strings.TrimSpace(os.Getenv("SUMMARY_INTERVAL_HOURS"))),
		SummaryTime:         strings.TrimSpace(os.Getenv("SUMMARY_TIME")),
		DefaultUserName:     strings.TrimSpace(os.Getenv("DEFAULT_USER_NAME")),
		DefaultUserEmail:    strings.TrimSpace(os.Getenv("DEFAULT_USER_EMAIL")),
		DefaultUserPassword: strings.TrimSpace(os.Getenv("DEFAULT_USER_PASSWORD")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "kanban.db"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8000"
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = "dev-secret-key-change-in-production"
	}
	if cfg.SummaryInterval == 0 {
		cfg.SummaryInterval = 24 * time.Hour
	}
	if cfg.DefaultUserName == "" {
		cfg.DefaultUserName = "Default User"
	}
	if cfg.DefaultUserEmail == "" {
		cfg.DefaultUserEmail = "default@example.com"
	}
	if cfg.DefaultUserPassword == "" {
		cfg.DefaultUserPassword = "secure_password_123"
	}

	if cfg.SummaryTime != "" {
		if _, err := time.Parse("15:04", cfg.SummaryTime); err != nil {
			return cfg, fmt.Errorf("SUMMARY_TIME %q: expected HH:MM", cfg.SummaryTime)
		}
	}

	return cfg, nil
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
