package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_ExportTierExhaustsBurst(t *testing.T) {
	l := NewLimiter(DefaultConfig())
	defer l.Stop()

	// Burst of 5, then the bucket is dry.
	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/export-pdf", "POST")
		require.True(t, allowed, "request %d should be within burst", i+1)
	}

	allowed, info := l.Allow("1.2.3.4", "/api/export-pdf", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 20, info.Limit)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsIsolated(t *testing.T) {
	l := NewLimiter(DefaultConfig())
	defer l.Stop()

	for i := 0; i < 5; i++ {
		l.Allow("1.2.3.4", "/api/export-pdf", "POST")
	}

	allowed, _ := l.Allow("5.6.7.8", "/api/export-pdf", "POST")
	assert.True(t, allowed)
}

func TestAllow_HealthUnlimited(t *testing.T) {
	l := NewLimiter(DefaultConfig())
	defer l.Stop()

	for i := 0; i < 1000; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestAllow_UnknownEndpointGetsDefaultTier(t *testing.T) {
	l := NewLimiter(DefaultConfig())
	defer l.Stop()

	allowed, info := l.Allow("1.2.3.4", "/api/templates", "GET")

	assert.True(t, allowed)
	assert.Equal(t, 300, info.Limit)
}

func TestAllow_DisabledConfigSkipsLimiting(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/export-pdf", "POST")
		require.True(t, allowed)
	}
}

func TestTierFor_ExactThenPrefixThenDefault(t *testing.T) {
	cfg := &Config{
		Enabled:       true,
		DefaultLimit:  300,
		DefaultWindow: time.Minute,
		Tiers: []Tier{
			{Path: "/api/export-pdf", Method: "POST", Limit: 20, Window: time.Minute},
			{Path: "/api/admin/", Limit: 10, Window: time.Minute},
		},
	}

	assert.Equal(t, 20, cfg.tierFor("/api/export-pdf", "POST").Limit)
	assert.Equal(t, 10, cfg.tierFor("/api/admin/metrics", "GET").Limit)
	assert.Equal(t, 300, cfg.tierFor("/api/templates", "GET").Limit)
}

func TestTierFor_MethodMismatchFallsThrough(t *testing.T) {
	cfg := DefaultConfig()

	tier := cfg.tierFor("/api/export-pdf", "GET")
	assert.Equal(t, cfg.DefaultLimit, tier.Limit)
}

func TestLoadConfig_DisabledShortCircuits(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
	assert.Empty(t, cfg.Tiers)
}

func TestLoadConfig_ExportLimitOverride(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	t.Setenv("RATE_LIMIT_EXPORT_LIMIT", "50")

	cfg := LoadConfig()

	require.True(t, cfg.Enabled)
	assert.Equal(t, 50, cfg.tierFor("/api/export-pdf", "POST").Limit)
}

func TestBucket_RefillsOverTime(t *testing.T) {
	// 10 tokens per second, capacity 1.
	b := newBucket(1, 10)

	allowed, _, _ := b.take()
	require.True(t, allowed)
	allowed, _, _ = b.take()
	require.False(t, allowed)

	time.Sleep(150 * time.Millisecond)

	allowed, _, _ = b.take()
	assert.True(t, allowed)
}
