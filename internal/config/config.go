// Package config provides environment-driven configuration for the server.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds server configuration. Every field has a default so the
// server runs with no environment at all.
type Config struct {
	Port         int           // HTTP listen port
	FetchTimeout time.Duration // Outbound scholar fetch timeout
	UseBrowser   bool          // Headless-browser fallback for blocked profile fetches
	Verbose      bool          // Detailed scrape logging
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:         getEnvInt("PORT", 8080),
		FetchTimeout: getEnvDuration("SCHOLAR_FETCH_TIMEOUT", 30*time.Second),
		UseBrowser:   getEnvBool("SCHOLAR_USE_BROWSER", false),
		Verbose:      getEnvBool("VERBOSE", false),
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
