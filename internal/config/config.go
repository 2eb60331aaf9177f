// Package config handles configuration loading and management for lineup.
// It supports XDG config paths, project-level overrides, and environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for lineup.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Engine  EngineConfig  `mapstructure:"engine"`
	History HistoryConfig `mapstructure:"history"`
	Layout  LayoutConfig  `mapstructure:"layout"`
}

// OutputConfig holds report rendering settings.
type OutputConfig struct {
	// Format selects the renderer: text, json, or yaml.
	Format string `mapstructure:"format"`
	// Color toggles colored text output.
	Color bool `mapstructure:"color"`
}

// EngineConfig holds validation engine settings.
type EngineConfig struct {
	// Workers is the number of input partitions aggregated in parallel.
	Workers int `mapstructure:"workers"`
	// StrictPieces rejects non-canonical piece type tokens.
	StrictPieces bool `mapstructure:"strict_pieces"`
}

// HistoryConfig holds run-history settings.
type HistoryConfig struct {
	// Enabled toggles storing validation runs in the history database.
	Enabled bool `mapstructure:"enabled"`
}

// LayoutConfig holds starting-layout settings.
type LayoutConfig struct {
	// File is an optional YAML layout override file path.
	File string `mapstructure:"file"`
}

// Load loads configuration from XDG paths, project overrides, and
// environment variables. Precedence (highest to lowest):
// 1. Environment variables (LINEUP_*)
// 2. Project config (.lineup.yaml in current directory or parent)
// 3. User config (~/.config/lineup/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("LINEUP")
	v.AutomaticEnv()
	v.BindEnv("output.format", "LINEUP_FORMAT")
	v.BindEnv("engine.workers", "LINEUP_WORKERS")
	v.BindEnv("layout.file", "LINEUP_LAYOUT")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Layout.File = os.ExpandEnv(cfg.Layout.File)

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Layout.File = os.ExpandEnv(cfg.Layout.File)

	return cfg, nil
}

// Save writes the current configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(userConfigDir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(configPath)

	v.Set("output.format", cfg.Output.Format)
	v.Set("output.color", cfg.Output.Color)
	v.Set("engine.workers", cfg.Engine.Workers)
	v.Set("engine.strict_pieces", cfg.Engine.StrictPieces)
	v.Set("history.enabled", cfg.History.Enabled)
	v.Set("layout.file", cfg.Layout.File)

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("output.format", "text")
	v.SetDefault("output.color", true)

	v.SetDefault("engine.workers", 1)
	v.SetDefault("engine.strict_pieces", false)

	v.SetDefault("history.enabled", true)

	v.SetDefault("layout.file", "")
}

// getUserConfigDir returns the XDG config directory for lineup.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "lineup")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "lineup")
	}
	return filepath.Join(home, ".config", "lineup")
}

// findProjectConfig searches for .lineup.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".lineup.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
		Engine: EngineConfig{
			Workers:      1,
			StrictPieces: false,
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Layout: LayoutConfig{
			File: "",
		},
	}
}
