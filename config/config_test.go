package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
language: en
num_versions: 2
render:
  max_attempts: 10
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Language != "en" || cfg.NumVersions != 2 || cfg.Render.MaxAttempts != 10 {
		t.Errorf("explicit values not honored: %+v", cfg)
	}
	if cfg.Quality != "high" {
		t.Errorf("quality default = %q", cfg.Quality)
	}
	if cfg.Render.BaseURL != "https://api.d-id.com" {
		t.Errorf("base url default = %q", cfg.Render.BaseURL)
	}
	if cfg.PollInterval() != 5*time.Second {
		t.Errorf("poll interval = %v", cfg.PollInterval())
	}
	if cfg.Paths.Images != "input/images" {
		t.Errorf("images path default = %q", cfg.Paths.Images)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load() on absent file should error")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("language: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() on invalid YAML should error")
	}
}
