// Package config provides environment-driven configuration for the server
// and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration. All fields have working defaults so
// a bare `serve` works on a developer machine with Chrome installed.
type Config struct {
	Port int

	// Serverless switches the engine locator to the bundled-binary
	// strategy for managed deployments.
	Serverless bool

	// ChromePath is an operator-supplied engine binary override.
	ChromePath string

	// ExportTimeout bounds one render, launch through extraction.
	ExportTimeout time.Duration

	// MaxConcurrentExports caps simultaneous engine instances. Each export
	// still gets its own isolated instance.
	MaxConcurrentExports int64
}

// Load reads configuration from environment variables, applying defaults.
func Load() *Config {
	return &Config{
		Port:                 getEnvInt("PORT", 8080),
		Serverless:           getEnvBool("SERVERLESS", false),
		ChromePath:           os.Getenv("CHROME_PATH"),
		ExportTimeout:        getEnvDuration("EXPORT_TIMEOUT", 30*time.Second),
		MaxConcurrentExports: int64(getEnvInt("MAX_CONCURRENT_EXPORTS", 2)),
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.ExportTimeout <= 0 {
		return fmt.Errorf("config error: export timeout must be positive")
	}
	if c.MaxConcurrentExports <= 0 {
		return fmt.Errorf("config error: max concurrent exports must be positive")
	}
	return nil
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
