package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if cfg.WarningPercent != 90 || cfg.CriticalPercent != 95 {
		t.Fatalf("thresholds = %d/%d, want 90/95", cfg.WarningPercent, cfg.CriticalPercent)
	}
	if cfg.Jstat.Path != "jstat" || cfg.Jstat.TimeoutSeconds != 10 {
		t.Fatalf("jstat = %+v", cfg.Jstat)
	}
	if cfg.Concurrency != 1 {
		t.Fatalf("concurrency = %d, want 1", cfg.Concurrency)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
warning_percent: 80
critical_percent: 85
jstat:
  path: /opt/jdk/bin/jstat
  timeout_seconds: 3
concurrency: 4
telegram:
  enabled: true
  token: test-token
  chat_id: 12345
http:
  listen: ":9090"
verbose: true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if cfg.WarningPercent != 80 || cfg.CriticalPercent != 85 {
		t.Fatalf("thresholds = %d/%d", cfg.WarningPercent, cfg.CriticalPercent)
	}
	if cfg.Jstat.Path != "/opt/jdk/bin/jstat" || cfg.Jstat.TimeoutSeconds != 3 {
		t.Fatalf("jstat = %+v", cfg.Jstat)
	}
	if cfg.Concurrency != 4 {
		t.Fatalf("concurrency = %d", cfg.Concurrency)
	}
	if !cfg.Telegram.Enabled || cfg.Telegram.Token != "test-token" || cfg.Telegram.ChatID != 12345 {
		t.Fatalf("telegram = %+v", cfg.Telegram)
	}
	if cfg.HTTP.Listen != ":9090" {
		t.Fatalf("listen = %q", cfg.HTTP.Listen)
	}
	if !cfg.Verbose {
		t.Fatal("verbose should be set")
	}
}

func TestLoadConfigZeroThresholdsFallBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("warning_percent: 0\ncritical_percent: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if cfg.WarningPercent != 90 || cfg.CriticalPercent != 95 {
		t.Fatalf("thresholds = %d/%d, want defaults", cfg.WarningPercent, cfg.CriticalPercent)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing config file should be an error")
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("warning_percent: [not an int\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatal("malformed yaml should be an error")
	}
}
