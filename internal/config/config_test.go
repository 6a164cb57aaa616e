package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lelo88/items-web-golang/internal/faults"
)

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()

	require.Error(t, err)
	require.True(t, faults.IsConfig(err))
	require.Equal(t, Config{}, cfg)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Host)
	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "postgres://example", cfg.DatabaseURL)
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", ":9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Host)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestAddr(t *testing.T) {
	cfg := Config{Host: "127.0.0.1", Port: "3000"}

	require.Equal(t, "127.0.0.1:3000", cfg.Addr())
}
