package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tasklist")

	cfg := Load()
	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, []string{"http://localhost:5173", "https://tasks.example.com"}, cfg.AllowedOrigins)
	require.Equal(t, 10*time.Minute, cfg.CORSMaxAge)
	require.Equal(t, 100, cfg.APIRateLimit)
	require.Equal(t, time.Minute, cfg.APIRateWindow)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/tasklist")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("CORS_MAX_AGE_SECONDS", "120")
	t.Setenv("API_RATE_LIMIT", "10")
	t.Setenv("API_RATE_WINDOW_SECONDS", "30")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_JSON", "true")

	cfg := Load()
	require.Equal(t, "9090", cfg.AppPort)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	require.Equal(t, 2*time.Minute, cfg.CORSMaxAge)
	require.Equal(t, 10, cfg.APIRateLimit)
	require.Equal(t, 30*time.Second, cfg.APIRateWindow)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.LogJSON)
}
