package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`

	// ToastDurationSec is how long a notification stays visible.
	ToastDurationSec int `mapstructure:"toast_duration_sec" yaml:"toast_duration_sec"`
}

// SnapshotConfig controls the optional SQLite snapshot of the task
// collection. Snapshotting sits outside the core engine: the collection
// lives in memory and is written out wholesale after each mutation.
type SnapshotConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Display  DisplayConfig  `mapstructure:"display" yaml:"display"`
	Snapshot SnapshotConfig `mapstructure:"snapshot" yaml:"snapshot"`

	// SeedOnEmpty loads the built-in sample collection when no snapshot
	// exists or snapshotting is disabled.
	SeedOnEmpty bool `mapstructure:"seed_on_empty" yaml:"seed_on_empty"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/taskdeck/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "taskdeck", "config.yaml")
}

// DefaultSnapshotPath returns the default location of the snapshot database.
func DefaultSnapshotPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "taskdeck.db")
	}
	return filepath.Join(home, ".local", "share", "taskdeck", "taskdeck.db")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Display: DisplayConfig{
			Theme:            "default",
			ToastDurationSec: 5,
		},
		Snapshot: SnapshotConfig{
			Enabled: false,
			Path:    DefaultSnapshotPath(),
		},
		SeedOnEmpty: true,
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("display.theme", "default")
	v.SetDefault("display.toast_duration_sec", 5)
	v.SetDefault("snapshot.enabled", false)
	v.SetDefault("snapshot.path", DefaultSnapshotPath())
	v.SetDefault("seed_on_empty", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Display.ToastDurationSec <= 0 {
		cfg.Display.ToastDurationSec = 5
	}
	if cfg.Snapshot.Path == "" {
		cfg.Snapshot.Path = DefaultSnapshotPath()
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

	v.Set("display", cfg.Display)
	v.Set("snapshot", cfg.Snapshot)
	v.Set("seed_on_empty", cfg.SeedOnEmpty)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
