// Package config handles configuration for droidview.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults applied when a field is absent from the config file.
const (
	DefaultDumpTimeoutSeconds = 10
	DefaultCompactDepth       = 15
	DefaultFlattenDepth       = 20
)

// Config represents the workspace configuration (droidview.yaml).
type Config struct {
	// Device settings
	ADBPath string `yaml:"adbPath"` // Path to adb binary (default: found in PATH)
	Device  string `yaml:"device"`  // Target device serial (default: auto-detect)

	// Capture settings
	DumpTimeoutSeconds int `yaml:"dumpTimeoutSeconds"` // uiautomator dump timeout

	// Rendering settings
	CompactDepth int `yaml:"compactDepth"` // Max depth for compact text output
	FlattenDepth int `yaml:"flattenDepth"` // Max depth for flattened output

	// Logging
	LogFile string `yaml:"logFile"` // Log file path (default: no file logging)
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromDir looks for droidview.yaml or droidview.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, "droidview.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	configPath = filepath.Join(dir, "droidview.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// No config file found, return defaults
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills zero-valued fields with defaults.
func (c *Config) applyDefaults() {
	if c.DumpTimeoutSeconds <= 0 {
		c.DumpTimeoutSeconds = DefaultDumpTimeoutSeconds
	}
	if c.CompactDepth <= 0 {
		c.CompactDepth = DefaultCompactDepth
	}
	if c.FlattenDepth <= 0 {
		c.FlattenDepth = DefaultFlattenDepth
	}
}
