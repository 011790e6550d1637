package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultWarningPercent  = 90
	defaultCriticalPercent = 95
	defaultJstatPath       = "jstat"
	defaultTimeoutSeconds  = 10
)

// Config holds plugin settings. Flags override anything read from the
// optional YAML file.
type Config struct {
	WarningPercent  int `yaml:"warning_percent"`
	CriticalPercent int `yaml:"critical_percent"`

	Jstat struct {
		Path           string `yaml:"path"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"jstat"`

	// Concurrency caps how many targets are checked in parallel. 1 keeps
	// the strictly sequential pass; report ordering is identical either way.
	Concurrency int `yaml:"concurrency"`

	Telegram struct {
		Enabled bool   `yaml:"enabled"`
		Token   string `yaml:"token"`
		ChatID  int64  `yaml:"chat_id"`
	} `yaml:"telegram"`

	HTTP struct {
		Listen string `yaml:"listen"`
	} `yaml:"http"`

	LogFile string `yaml:"log_file"`
	Verbose bool   `yaml:"verbose"`
}

// loadConfig reads the optional YAML config file and applies defaults. A
// zero threshold in the file means "use the default": disabling a tier is
// done with an explicit -w 0 / -c 0 flag.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}
	applyConfigDefaults(cfg)
	return cfg, nil
}

// applyConfigDefaults sets sensible defaults for missing configuration.
func applyConfigDefaults(cfg *Config) {
	if cfg.WarningPercent == 0 {
		cfg.WarningPercent = defaultWarningPercent
	}
	if cfg.CriticalPercent == 0 {
		cfg.CriticalPercent = defaultCriticalPercent
	}
	if cfg.Jstat.Path == "" {
		cfg.Jstat.Path = defaultJstatPath
	}
	if cfg.Jstat.TimeoutSeconds <= 0 {
		cfg.Jstat.TimeoutSeconds = defaultTimeoutSeconds
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
}
