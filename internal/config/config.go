// Package config holds the validated run configuration built from the
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config selects the run mode and how diagnostics are logged.
type Config struct {
	Lesson string // run one lesson by ID and exit; empty means interactive
	List   bool   // print the menu once and exit

	LogLevel  string
	LogFormat string
}

// New validates cfg and returns a normalized copy.
func New(cfg Config) (*Config, error) {
	cfg.Lesson = strings.TrimSpace(cfg.Lesson)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("%w: log-level must be 'debug', 'info', 'warn' or 'error', got %q", ErrInvalidConfig, cfg.LogLevel)
	}

	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("%w: log-format must be 'console' or 'json', got %q", ErrInvalidConfig, cfg.LogFormat)
	}

	if cfg.List && cfg.Lesson != "" {
		return nil, fmt.Errorf("%w: --lesson and --list cannot be combined", ErrInvalidConfig)
	}

	return &cfg, nil
}

// Interactive reports whether the menu loop should run.
func (c *Config) Interactive() bool {
	return c.Lesson == "" && !c.List
}
