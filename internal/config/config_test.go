package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "reminder_engine.db", cfg.DatabaseURL)
	assert.Equal(t, time.Minute, cfg.ScanInterval)
	assert.Equal(t, time.Minute, cfg.DueWindow)
	assert.Equal(t, 4, cfg.DispatchWorkers)
	assert.Equal(t, GatewayConsole, cfg.Gateway)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SCAN_INTERVAL", "30s")
	t.Setenv("DUE_WINDOW", "2m")
	t.Setenv("DISPATCH_WORKERS", "8")
	t.Setenv("DATABASE_URL", "data/reminders.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.ScanInterval)
	assert.Equal(t, 2*time.Minute, cfg.DueWindow)
	assert.Equal(t, 8, cfg.DispatchWorkers)
	assert.Equal(t, "data/reminders.db", cfg.DatabaseURL)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("SCAN_INTERVAL", "soon")
	t.Setenv("DISPATCH_WORKERS", "-3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.ScanInterval)
	assert.Equal(t, 1, cfg.DispatchWorkers)
}

func TestLoad_GatewayValidation(t *testing.T) {
	t.Setenv("GATEWAY", "telegram")
	_, err := Load()
	assert.Error(t, err, "telegram gateway needs a token")

	t.Setenv("GATEWAY", "email")
	_, err = Load()
	assert.Error(t, err, "email gateway needs an api key")

	t.Setenv("GATEWAY", "pigeon")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("GATEWAY", "email")
	t.Setenv("SENDGRID_API_KEY", "sg-test")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, GatewayEmail, cfg.Gateway)
}
