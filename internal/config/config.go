package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPPort              string
	LogLevel              string
	CatalogPath           string
	CategoriesPath        string
	CatalogWatch          bool
	RedisURL              string
	SubmitDelay           time.Duration
	SubmitTimeout         time.Duration
	SubmitRateLimitPerMin int
	SessionTTL            time.Duration
	RequestTimeout        time.Duration
}

// Load reads the runtime configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:              envOr("HTTP_PORT", "8080"),
		LogLevel:              envOr("LOG_LEVEL", "info"),
		CatalogPath:           envOr("CATALOG_PATH", ""),
		CategoriesPath:        envOr("CATEGORIES_PATH", ""),
		CatalogWatch:          boolOr("CATALOG_WATCH", false),
		RedisURL:              envOr("REDIS_URL", ""),
		SubmitDelay:           durationOr("SUBMIT_DELAY", 2*time.Second),
		SubmitTimeout:         durationOr("SUBMIT_TIMEOUT", 5*time.Second),
		SubmitRateLimitPerMin: intOr("SUBMIT_RATE_LIMIT_PER_MIN", 10),
		SessionTTL:            durationOr("SESSION_TTL", 30*time.Minute),
		RequestTimeout:        durationOr("REQUEST_TIMEOUT", 10*time.Second),
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if cfg.CatalogWatch && cfg.CatalogPath == "" {
		return Config{}, fmt.Errorf("CATALOG_WATCH requires CATALOG_PATH")
	}

	invalid := make([]string, 0, 5)
	if cfg.SubmitDelay < 0 {
		invalid = append(invalid, "SUBMIT_DELAY")
	}
	if cfg.SubmitTimeout <= 0 {
		invalid = append(invalid, "SUBMIT_TIMEOUT")
	}
	if cfg.SubmitRateLimitPerMin <= 0 {
		invalid = append(invalid, "SUBMIT_RATE_LIMIT_PER_MIN")
	}
	if cfg.SessionTTL <= 0 {
		invalid = append(invalid, "SESSION_TTL")
	}
	if cfg.RequestTimeout <= 0 {
		invalid = append(invalid, "REQUEST_TIMEOUT")
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("values must be positive: %s", strings.Join(invalid, ", "))
	}
	// The remote call has to settle before the request deadline cuts the response.
	if cfg.SubmitTimeout >= cfg.RequestTimeout {
		return Config{}, fmt.Errorf("SUBMIT_TIMEOUT must be less than REQUEST_TIMEOUT")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func durationOr(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func intOr(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func boolOr(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
