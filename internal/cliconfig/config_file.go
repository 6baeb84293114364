package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML layout of the config file.
type FileConfig struct {
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
	Language    string `toml:"language"`
	SeedSamples *bool  `toml:"seed_samples"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.library-manager/config.toml, or "" when the
// home directory cannot be resolved.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".library-manager", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies file values to cfg, skipping explicitly set flags.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("log-format", fc.LogFormat, &cfg.LogFormat)
	s.setString("language", fc.Language, &cfg.Language)

	s.setBool("no-seed", fc.SeedSamples, &cfg.SeedSamples)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
