package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_EnvDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "./data", cfg.DataDir)
	require.NotEmpty(t, cfg.GeminiModel)
	require.Equal(t, time.Hour, cfg.ReminderInterval)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("REMINDER_INTERVAL", "15m")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "9999", cfg.Port)
	require.Equal(t, 15*time.Minute, cfg.ReminderInterval)
}

func TestCORSAllowedOrigins(t *testing.T) {
	cfg := Config{CORSAllowedOriginsStr: " http://localhost:5173 , https://app.example.com ,, "}
	require.Equal(t, []string{"http://localhost:5173", "https://app.example.com"}, cfg.CORSAllowedOrigins())

	// vacío => sin orígenes, no un slice con strings vacíos
	require.Empty(t, Config{}.CORSAllowedOrigins())
}

func TestAddr(t *testing.T) {
	cfg := Config{Port: "8080"}
	require.Equal(t, ":8080", cfg.Addr())

	cfg.BindAddr = "127.0.0.1"
	require.Equal(t, "127.0.0.1:8080", cfg.Addr())
}
