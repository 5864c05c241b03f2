package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"kitchen/internal/adapters/out/postgres"
	"kitchen/internal/jobs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort   = "8080"
	defaultTimezone   = "Asia/Kolkata"
	defaultSessionTTL = 12 * time.Hour
)

type Config struct {
	HTTPPort             string
	DB                   postgres.DatabaseConfig
	LogLevel             slog.Level
	SessionTTL           time.Duration
	SessionSweepSchedule string
	MerchantUsername     string
	MerchantPassword     string
	StoreTimezone        string
	TelegramToken        string
	TelegramChatID       int64
}

// LoadConfig reads envFile into the process environment when it exists and
// builds the configuration from the environment.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return ConfigFromEnv()
}

// ConfigFromEnv builds the configuration from environment variables alone.
func ConfigFromEnv() (Config, error) {
	config := Config{
		HTTPPort: envOr("HTTP_PORT", defaultHTTPPort),
		DB: postgres.DatabaseConfig{
			Driver:     envOr("DB_DRIVER", postgres.DriverPostgres),
			Host:       envOr("DB_HOST", "localhost"),
			Port:       envOr("DB_PORT", "5432"),
			User:       os.Getenv("DB_USER"),
			Password:   os.Getenv("DB_PASSWORD"),
			Name:       envOr("DB_NAME", "kitchen"),
			SSLMode:    envOr("DB_SSLMODE", "disable"),
			SQLitePath: os.Getenv("SQLITE_PATH"),
		},
		SessionSweepSchedule: envOr("SESSION_SWEEP_SCHEDULE", jobs.DefaultSessionSweepSchedule),
		MerchantUsername:     os.Getenv("MERCHANT_USERNAME"),
		MerchantPassword:     os.Getenv("MERCHANT_PASSWORD"),
		StoreTimezone:        envOr("STORE_TIMEZONE", defaultTimezone),
		TelegramToken:        os.Getenv("TELEGRAM_TOKEN"),
	}

	var errs []error

	if err := config.LogLevel.UnmarshalText([]byte(envOr("LOG_LEVEL", "info"))); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	config.SessionTTL = defaultSessionTTL
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("SESSION_TTL: %w", err))
		case ttl <= 0:
			errs = append(errs, fmt.Errorf("SESSION_TTL: must be positive, got %s", raw))
		default:
			config.SessionTTL = ttl
		}
	}

	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("TELEGRAM_CHAT_ID: %w", err))
		}
		config.TelegramChatID = chatID
	}

	if _, err := time.LoadLocation(config.StoreTimezone); err != nil {
		errs = append(errs, fmt.Errorf("STORE_TIMEZONE: %w", err))
	}

	return config, errors.Join(errs...)
}

// TelegramEnabled reports whether new-order notifications should be sent.
func (c Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
