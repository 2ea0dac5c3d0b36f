package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"APP_ENV":              "",
		"PORT":                 "",
		"REDIS_URL":            "",
		"CORS_ALLOWED_ORIGINS": "",
		"REPORT_DEFAULT_POLICY": "",
		"REPORT_TOP_PRODUCTS":   "",
		"REPORT_REQUIRE_DATA":   "",
		"REPORT_CACHE_TTL":      "",
		"RATE_LIMIT_WINDOW":     "",
		"RATE_LIMIT_MAX":        "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Empty(t, cfg.RedisURL)
	require.Equal(t, "default", cfg.ReportDefaultPolicy)
	require.Equal(t, 10, cfg.ReportTopProducts)
	require.False(t, cfg.ReportRequireData)
	require.Equal(t, 5*time.Minute, cfg.ReportCacheTTL)
	require.Equal(t, time.Minute, cfg.RateLimitWindow)
	require.Equal(t, 60, cfg.RateLimitMax)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"APP_ENV":               "production",
		"PORT":                  "9090",
		"REDIS_URL":             "redis://localhost:6379/0",
		"CORS_ALLOWED_ORIGINS":  "https://a.example, https://b.example",
		"REPORT_DEFAULT_POLICY": "seasonal",
		"REPORT_TOP_PRODUCTS":   "5",
		"REPORT_REQUIRE_DATA":   "true",
		"REPORT_CACHE_TTL":      "90s",
		"RATE_LIMIT_WINDOW":     "30s",
		"RATE_LIMIT_MAX":        "120",
	})
	require.NoError(t, err)
	require.Equal(t, "production", cfg.AppEnv)
	require.Equal(t, ":9090", cfg.HTTPAddr())
	require.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.Equal(t, "seasonal", cfg.ReportDefaultPolicy)
	require.Equal(t, 5, cfg.ReportTopProducts)
	require.True(t, cfg.ReportRequireData)
	require.Equal(t, 90*time.Second, cfg.ReportCacheTTL)
	require.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	require.Equal(t, 120, cfg.RateLimitMax)
}

func TestParseDurationFallsBack(t *testing.T) {
	require.Equal(t, 5*time.Minute, parseDuration("not-a-duration", "5m"))
	require.Equal(t, 2*time.Second, parseDuration("2s", "5m"))
}
