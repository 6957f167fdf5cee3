package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Limit           int           // Maximum requests per window per key
	Window          time.Duration // Fixed window length
	CleanupInterval time.Duration // How often expired windows are evicted
}

// DefaultConfig returns the built-in limits: 10 requests per minute per
// client, swept every 5 minutes.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		Limit:           10,
		Window:          time.Minute,
		CleanupInterval: 5 * time.Minute,
	}
}

// LoadConfig loads rate limiting configuration from environment variables,
// falling back to the defaults.
func LoadConfig() *Config {
	defaults := DefaultConfig()
	return &Config{
		Enabled:         getEnvBool("RATE_LIMIT_ENABLED", defaults.Enabled),
		Limit:           getEnvInt("RATE_LIMIT_MAX_REQUESTS", defaults.Limit),
		Window:          getEnvDuration("RATE_LIMIT_WINDOW", defaults.Window),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", defaults.CleanupInterval),
	}
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
