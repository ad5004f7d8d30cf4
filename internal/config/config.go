// Package config provides configuration management for the gpukit CLI.
//
// Configuration is optional: gpukit works with built-in defaults, and an
// optional YAML file in the user's config directory can override them.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDirName is the configuration directory name, created
	// in the user's home directory.
	DefaultConfigDirName = ".gpukit"

	// DefaultConfigFileName is the configuration file name inside the
	// config directory.
	DefaultConfigFileName = "config.yaml"
)

// Config holds the CLI defaults a user may persist.
type Config struct {
	// Debug enables debug-level logging for every invocation, as if
	// --verbose were always passed.
	Debug bool `yaml:"debug"`

	// DefaultDevice is the device ordinal commands operate on when no
	// --device flag is given.
	DefaultDevice int `yaml:"default_device"`

	// Output selects the default output format: "table" or "json".
	Output string `yaml:"output"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Debug:         false,
		DefaultDevice: 0,
		Output:        "table",
	}
}

// DefaultPath returns the path of the user's config file.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultConfigDirName, DefaultConfigFileName), nil
}

// Load reads the configuration file at path, applying built-in defaults
// for anything the file does not set. A missing file is not an error: the
// defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Output != "table" && cfg.Output != "json" {
		return Default(), fmt.Errorf("invalid output format %q in %s (want table or json)", cfg.Output, path)
	}

	return cfg, nil
}
