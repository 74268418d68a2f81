package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns a validated configuration with all defaults applied.
func Default() *Config {
	cfg := base()
	// Validate on the base config only applies defaults.
	_ = cfg.Validate()
	return cfg
}

// Load reads a YAML configuration file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := base()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// base holds the defaults that cannot be expressed by zero values.
func base() *Config {
	return &Config{
		Exiftool: ExiftoolConfig{LargeFileSupport: true},
	}
}
