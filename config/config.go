// Package config provides configuration loading and management for semverse.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the complete semverse configuration
type Config struct {
	Entropy   EntropyConfig    `yaml:"entropy" envPrefix:"ENTROPY_"`
	Strata    StrataConfig     `yaml:"strata" envPrefix:"STRATA_"`
	Universes []UniverseConfig `yaml:"universes" validate:"dive"`
	Export    ExportConfig     `yaml:"export" envPrefix:"EXPORT_"`
	Log       LogConfig        `yaml:"log" envPrefix:"LOG_"`
}

// EntropyConfig configures the entropy estimator
type EntropyConfig struct {
	// Depth is how many cover levels the metric follows (default: 1)
	Depth int `yaml:"depth" env:"DEPTH" validate:"gte=1,lte=8"`
	// ProbeLimit bounds the probe set: objects 0..ProbeLimit-1 of the reference domain
	ProbeLimit int `yaml:"probe_limit" env:"PROBE_LIMIT" validate:"gte=1,lte=4096"`
}

// StrataConfig configures registry stratification
type StrataConfig struct {
	// Bounds are the inclusive upper entropy bounds of each stratum
	Bounds []uint64 `yaml:"bounds" env:"BOUNDS" envSeparator:","`
}

// UniverseConfig describes a reference universe to register
type UniverseConfig struct {
	// Name is the reporting name
	Name string `yaml:"name" validate:"required"`
	// Width is the interval cover width (0 = every object irreducible)
	Width uint64 `yaml:"width" validate:"lte=64"`
}

// ExportConfig configures report export
type ExportConfig struct {
	// Format is turtle, ntriples, jsonld or payload
	Format string `yaml:"format" env:"FORMAT" validate:"oneof=turtle ntriples jsonld payload"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Entropy: EntropyConfig{
			Depth:      1,
			ProbeLimit: 16,
		},
		Strata: StrataConfig{
			Bounds: []uint64{16, 32, 64},
		},
		Universes: []UniverseConfig{
			{Name: "discrete", Width: 0},
			{Name: "interval-1", Width: 1},
			{Name: "interval-2", Width: 2},
			{Name: "interval-4", Width: 4},
		},
		Export: ExportConfig{
			Format: "turtle",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	seen := make(map[string]bool, len(c.Universes))
	for _, u := range c.Universes {
		if seen[u.Name] {
			return fmt.Errorf("invalid config: duplicate universe name %q", u.Name)
		}
		seen[u.Name] = true
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Entropy
	if other.Entropy.Depth != 0 {
		c.Entropy.Depth = other.Entropy.Depth
	}
	if other.Entropy.ProbeLimit != 0 {
		c.Entropy.ProbeLimit = other.Entropy.ProbeLimit
	}

	// Strata
	if len(other.Strata.Bounds) > 0 {
		c.Strata.Bounds = other.Strata.Bounds
	}

	// Universes replace the whole list
	if len(other.Universes) > 0 {
		c.Universes = other.Universes
	}

	// Export
	if other.Export.Format != "" {
		c.Export.Format = other.Export.Format
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
