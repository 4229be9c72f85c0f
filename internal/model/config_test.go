package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.DatabasePath)
	assert.Equal(t, 2, cfg.WatchIntervalSec)
	assert.True(t, cfg.SeedOnFirstRun)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := &AppConfig{
		DatabasePath:     "/tmp/sites.db",
		WatchIntervalSec: 5,
		SeedOnFirstRun:   false,
		LogLevel:         "debug",
	}
	require.NoError(t, SaveConfig(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfigRejectsNonPositiveInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveConfig(path, &AppConfig{
		DatabasePath:     "x.db",
		WatchIntervalSec: -1,
		LogLevel:         "info",
	}))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.WatchIntervalSec, "non-positive interval falls back to default")
}
