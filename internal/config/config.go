// Package config loads the optional treetrim configuration file and
// environment overrides.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the name of the config file looked up in the working
// directory.
const ConfigFileName = "treetrim.yaml"

// LoggingConfig controls CLI log output.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Config is the treetrim project configuration.
type Config struct {
	// Root scopes all filesystem operations to a directory.
	// Defaults to the filesystem root when empty.
	Root    string        `yaml:"root,omitempty"`
	Logging LoggingConfig `yaml:"logging"`
}

// Load reads ConfigFileName from dir.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWithEnv loads the config file (tolerating its absence) and applies
// environment overrides. A .env file in dir is honored when present;
// variables already set in the environment win over .env entries.
//
// Recognized variables: TREETRIM_ROOT, TREETRIM_LOG_LEVEL,
// TREETRIM_LOG_FORMAT.
func LoadWithEnv(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if err != nil {
		if !errors.Is(err, ErrConfigNotFound) {
			return nil, err
		}
		cfg = &Config{}
	}

	// godotenv.Load never overrides variables already present.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	if root := os.Getenv("TREETRIM_ROOT"); root != "" {
		cfg.Root = root
	}
	if level := os.Getenv("TREETRIM_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv("TREETRIM_LOG_FORMAT"); format != "" {
		cfg.Logging.Format = format
	}
	return cfg, nil
}
