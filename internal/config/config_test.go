package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromMissingFile(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvDebug, "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:3003" {
		t.Errorf("unexpected default base URL: %s", cfg.API.BaseURL)
	}
	if cfg.NotificationDuration() != 5*time.Second {
		t.Errorf("expected 5s notifications, got %v", cfg.NotificationDuration())
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvDebug, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `api:
  base_url: http://blogs.example.test
  timeout_seconds: 3
  requests_per_second: 2.5
ui:
  notification_seconds: 8
  desktop_notifications: true
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "http://blogs.example.test" {
		t.Errorf("unexpected base URL: %s", cfg.API.BaseURL)
	}
	if cfg.Timeout() != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", cfg.Timeout())
	}
	if cfg.API.RequestsPerSecond != 2.5 {
		t.Errorf("expected 2.5 rps, got %v", cfg.API.RequestsPerSecond)
	}
	if cfg.NotificationDuration() != 8*time.Second {
		t.Errorf("expected 8s notifications, got %v", cfg.NotificationDuration())
	}
	if !cfg.UI.DesktopNotifications {
		t.Error("expected desktop notifications enabled")
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api: [unclosed"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvAPIURL, "http://override.test")
	t.Setenv(EnvDebug, "true")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.BaseURL != "http://override.test" {
		t.Errorf("expected env base URL, got %s", cfg.API.BaseURL)
	}
	if !cfg.UI.Debug {
		t.Error("expected debug enabled from env")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvDebug, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://saved.test"

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.API.BaseURL != "http://saved.test" {
		t.Errorf("expected saved base URL, got %s", loaded.API.BaseURL)
	}
}
