// Package config provides types and functions for loading, saving, and
// applying defaults to the .schedtrack.yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const FileName = ".schedtrack.yaml"

// DateConfig is a calendar date as written in the config file.
type DateConfig struct {
	Day   int `yaml:"day"`
	Month int `yaml:"month"`
	Year  int `yaml:"year"`
}

// IsZero reports whether no field of the date was set.
func (d DateConfig) IsZero() bool {
	return d.Day == 0 && d.Month == 0 && d.Year == 0
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error, fatal.
	Level string `yaml:"level"`
}

// MenuConfig holds settings for the interactive menu.
type MenuConfig struct {
	// Quiet suppresses the menu banner and input prompts, leaving only the
	// results of each action. Useful when piping a script into the menu.
	Quiet bool `yaml:"quiet"`
}

// Config represents the contents of .schedtrack.yaml.
type Config struct {
	Version string `yaml:"version"`

	// ReferenceDate is treated as "today" when listing future tasks.
	ReferenceDate DateConfig `yaml:"reference_date"`
	Log           LogConfig  `yaml:"log"`
	Menu          MenuConfig `yaml:"menu"`
}

var defaultReferenceDate = DateConfig{Day: 23, Month: 11, Year: 2024}

// Default returns a Config populated with default values.
func Default() Config {
	return Config{
		Version:       "1",
		ReferenceDate: defaultReferenceDate,
		Log:           LogConfig{Level: "warn"},
	}
}

// ConfigPath returns the path to .schedtrack.yaml given a directory.
func ConfigPath(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads and parses the config file at path.
// If the file does not exist, it returns a default Config and no error.
// Missing fields are filled with defaults after parsing.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	applyDefaults(&cfg)
	return cfg, nil
}

// Save serialises cfg and writes it to path, creating parent directories
// as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// applyDefaults fills in zero-value fields with default values.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.ReferenceDate.IsZero() {
		cfg.ReferenceDate = defaultReferenceDate
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
}
