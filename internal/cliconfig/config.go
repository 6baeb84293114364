package cliconfig

import (
	"fmt"
	"os"

	"github.com/ytget/library-manager/internal/logging"
)

// Config holds launch configuration for the library manager.
// Books are never part of it; they live only in memory.
type Config struct {
	LogLevel    string
	LogFormat   string
	Language    string
	SeedSamples bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFormat:   logging.FormatConsole,
		SeedSamples: true,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("log-format must be %q or %q", logging.FormatConsole, logging.FormatJSON)
	}
	return nil
}

// ApplyEnvConfig applies LIBRARY_* environment variables, skipping values whose
// flag was set explicitly.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv("LIBRARY_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv("LIBRARY_LOG_FORMAT"), &cfg.LogFormat)
	s.setString("language", os.Getenv("LIBRARY_LANGUAGE"), &cfg.Language)

	// --no-seed is the flag; the env var states the positive form.
	if v := os.Getenv("LIBRARY_SEED_SAMPLES"); v != "" && !changed["no-seed"] {
		cfg.SeedSamples = v == "true" || v == "1"
	}
}

// configSetter applies configuration values while respecting flag precedence.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}
