package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lineup/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify lineup configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/lineup/config.yaml
Project-specific overrides can be placed in .lineup.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		switch len(args) {
		case 0:
			displayAllConfig(cfg)
		case 1:
			displayConfigKey(cfg, args[0])
		default:
			setConfigKey(cfg, args[0], args[1])
		}
	},
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cfg *config.Config) {
	fmt.Printf("output.format: %s\n", cfg.Output.Format)
	fmt.Printf("output.color: %t\n", cfg.Output.Color)
	fmt.Printf("engine.workers: %d\n", cfg.Engine.Workers)
	fmt.Printf("engine.strict_pieces: %t\n", cfg.Engine.StrictPieces)
	fmt.Printf("history.enabled: %t\n", cfg.History.Enabled)

	layoutDisplay := cfg.Layout.File
	if layoutDisplay == "" {
		layoutDisplay = "(standard)"
	}
	fmt.Printf("layout.file: %s\n", layoutDisplay)
}

// displayConfigKey prints a single configuration value.
func displayConfigKey(cfg *config.Config, key string) {
	value, err := getConfigValue(cfg, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(value)
}

// setConfigKey sets a configuration value and saves the config.
func setConfigKey(cfg *config.Config, key, value string) {
	if err := setConfigValue(cfg, key, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Set %s = %s\n", key, value)
}

// getConfigValue retrieves a configuration value by dot-notation key.
func getConfigValue(cfg *config.Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "output.format":
		return cfg.Output.Format, nil
	case "output.color":
		return strconv.FormatBool(cfg.Output.Color), nil
	case "engine.workers":
		return strconv.Itoa(cfg.Engine.Workers), nil
	case "engine.strict_pieces":
		return strconv.FormatBool(cfg.Engine.StrictPieces), nil
	case "history.enabled":
		return strconv.FormatBool(cfg.History.Enabled), nil
	case "layout.file":
		if cfg.Layout.File == "" {
			return "(standard)", nil
		}
		return cfg.Layout.File, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// setConfigValue sets a configuration value by dot-notation key.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "output.format":
		if value != "text" && value != "json" && value != "yaml" {
			return fmt.Errorf("invalid format: %s (expected text, json, or yaml)", value)
		}
		cfg.Output.Format = value
	case "output.color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %s", value)
		}
		cfg.Output.Color = b
	case "engine.workers":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid worker count: %s", value)
		}
		cfg.Engine.Workers = n
	case "engine.strict_pieces":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %s", value)
		}
		cfg.Engine.StrictPieces = b
	case "history.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %s", value)
		}
		cfg.History.Enabled = b
	case "layout.file":
		cfg.Layout.File = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}
