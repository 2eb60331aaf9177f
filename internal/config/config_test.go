package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Format != "text" {
		t.Errorf("expected default format 'text', got %q", cfg.Output.Format)
	}

	if !cfg.Output.Color {
		t.Error("expected output.color to default to true")
	}

	if cfg.Engine.Workers != 1 {
		t.Errorf("expected default workers 1, got %d", cfg.Engine.Workers)
	}

	if cfg.Engine.StrictPieces {
		t.Error("expected engine.strict_pieces to default to false")
	}

	if !cfg.History.Enabled {
		t.Error("expected history.enabled to default to true")
	}

	if cfg.Layout.File != "" {
		t.Errorf("expected empty default layout file, got %q", cfg.Layout.File)
	}
}

func TestLoadFromPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
output:
  format: json
  color: false
engine:
  workers: 4
  strict_pieces: true
history:
  enabled: false
layout:
  file: /tmp/chess960.yaml
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Output.Format != "json" {
		t.Errorf("expected format 'json', got %q", cfg.Output.Format)
	}

	if cfg.Output.Color {
		t.Error("expected output.color to be false")
	}

	if cfg.Engine.Workers != 4 {
		t.Errorf("expected workers 4, got %d", cfg.Engine.Workers)
	}

	if !cfg.Engine.StrictPieces {
		t.Error("expected engine.strict_pieces to be true")
	}

	if cfg.History.Enabled {
		t.Error("expected history.enabled to be false")
	}

	if cfg.Layout.File != "/tmp/chess960.yaml" {
		t.Errorf("expected layout file '/tmp/chess960.yaml', got %q", cfg.Layout.File)
	}
}

func TestLoadFromPathExpandsEnv(t *testing.T) {
	os.Setenv("LINEUP_TEST_DIR", "/layouts")
	defer os.Unsetenv("LINEUP_TEST_DIR")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
layout:
  file: ${LINEUP_TEST_DIR}/custom.yaml
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Layout.File != "/layouts/custom.yaml" {
		t.Errorf("expected expanded layout file path, got %q", cfg.Layout.File)
	}
}

func TestGetUserConfigDir(t *testing.T) {
	os.Setenv("XDG_CONFIG_HOME", "/custom/config")
	defer os.Unsetenv("XDG_CONFIG_HOME")

	dir := getUserConfigDir()
	expected := "/custom/config/lineup"
	if dir != expected {
		t.Errorf("expected %q, got %q", expected, dir)
	}
}
