package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Tier is the rate limit applied to one endpoint path prefix and method.
// Limit <= 0 means unlimited.
type Tier struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Tiers           []Tier
}

// DefaultConfig returns the built-in tiers: exports are expensive (one
// browser launch each) and strictly limited, health checks are unlimited,
// everything else uses the default read limit.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    300,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Tiers: []Tier{
			{Path: "/api/export-pdf", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
			{Path: "/health", Method: "GET", Limit: 0},
		},
	}
}

// LoadConfig loads rate limiting configuration from environment variables,
// falling back to DefaultConfig values.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = getEnvBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}
	cfg.DefaultLimit = getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	if limit := getEnvInt("RATE_LIMIT_EXPORT_LIMIT", 0); limit > 0 {
		for i := range cfg.Tiers {
			if cfg.Tiers[i].Path == "/api/export-pdf" {
				cfg.Tiers[i].Limit = limit
			}
		}
	}
	return cfg
}

// tierFor matches an endpoint and method to its tier. Exact path match
// first, then prefix match for tiers ending in "/", then the default tier.
func (c *Config) tierFor(endpoint, method string) Tier {
	for _, t := range c.Tiers {
		if t.Path == endpoint && (t.Method == "" || t.Method == method) {
			return t
		}
	}
	for _, t := range c.Tiers {
		if strings.HasSuffix(t.Path, "/") && strings.HasPrefix(endpoint, t.Path) && (t.Method == "" || t.Method == method) {
			return t
		}
	}
	return Tier{Path: "*", Limit: c.DefaultLimit, Window: c.DefaultWindow}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
