// Package config loads server configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the full server configuration.
type Config struct {
	Port        string
	Environment string

	// AccessCode enables the bearer token gate when non-empty.
	AccessCode string

	// AllowedOrigins is the CORS allow-list.
	AllowedOrigins []string

	// Rate limiter settings for the global gate.
	RateLimitWindow      time.Duration
	RateLimitMaxRequests int

	// GoogleSheetsAPIKey authenticates report reads against the real
	// Sheets API. Reports are disabled when empty.
	GoogleSheetsAPIKey string

	// Telemetry settings.
	OTLPEndpoint     string
	TelemetryEnabled bool
}

// Load reads configuration from the environment, first loading a .env file
// if one is present. Missing values fall back to development defaults.
func Load() Config {
	// Absent .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	return Config{
		Port:                 getEnv("APP_PORT", "3000"),
		Environment:          getEnv("APP_ENV", "development"),
		AccessCode:           os.Getenv("ACCESS_CODE"),
		AllowedOrigins:       splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3001")),
		RateLimitWindow:      getEnvMillis("RATE_LIMIT_WINDOW_MS", 15*time.Minute),
		RateLimitMaxRequests: getEnvInt("RATE_LIMIT_MAX_REQUESTS", 100),
		GoogleSheetsAPIKey:   os.Getenv("GOOGLE_SHEETS_API_KEY"),
		OTLPEndpoint:         getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		TelemetryEnabled:     os.Getenv("OTEL_ENABLED") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getEnvMillis(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
