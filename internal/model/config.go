package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// AppConfig is the top-level application configuration.
type AppConfig struct {
	// DatabasePath is the location of the SQLite database file.
	DatabasePath string `mapstructure:"database_path" yaml:"database_path"`

	// WatchIntervalSec is how often (in seconds) the store polls for
	// changes made by other processes.
	WatchIntervalSec int `mapstructure:"watch_interval_sec" yaml:"watch_interval_sec"`

	// SeedOnFirstRun controls whether empty storage is populated with
	// the starter sites and tasks.
	SeedOnFirstRun bool `mapstructure:"seed_on_first_run" yaml:"seed_on_first_run"`

	// LogLevel is the zerolog level name ("debug", "info", "warn", "error").
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/website-manager/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "website-manager", "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	dbPath := "website-manager.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".local", "share", "website-manager", "sites.db")
	}
	return &AppConfig{
		DatabasePath:     dbPath,
		WatchIntervalSec: 2,
		SeedOnFirstRun:   true,
		LogLevel:         "info",
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	defaults := defaultAppConfig()
	v.SetDefault("database_path", defaults.DatabasePath)
	v.SetDefault("watch_interval_sec", defaults.WatchIntervalSec)
	v.SetDefault("seed_on_first_run", defaults.SeedOnFirstRun)
	v.SetDefault("log_level", defaults.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaults, nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.WatchIntervalSec <= 0 {
		cfg.WatchIntervalSec = defaults.WatchIntervalSec
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database_path", cfg.DatabasePath)
	v.Set("watch_interval_sec", cfg.WatchIntervalSec)
	v.Set("seed_on_first_run", cfg.SeedOnFirstRun)
	v.Set("log_level", cfg.LogLevel)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
