// Package config loads the application settings. Each section starts from
// DefaultConfig and a YAML file overrides only what it names.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Logging    LoggingConfig    `yaml:"logging"`
	Spaces     SpacesConfig     `yaml:"spaces"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// WindowConfig describes the game window.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// LoggingConfig selects log level and format ("console", "text", "json").
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SpacesConfig says where extra space definitions live and which space
// opens when none is given on the command line.
type SpacesConfig struct {
	Dir     string `yaml:"dir"`
	Watch   bool   `yaml:"watch"`
	Default string `yaml:"default"`
}

// SimulationConfig bounds the frame delta fed to the movement step.
type SimulationConfig struct {
	MaxDelta float64 `yaml:"max_delta"` // seconds
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    800,
			Title:     "Virtual Spaces",
			Resizable: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Spaces: SpacesConfig{
			Dir:     "data/spaces",
			Watch:   true,
			Default: "virtual-space",
		},
		Simulation: SimulationConfig{
			MaxDelta: 0.1,
		},
	}
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if !(c.Simulation.MaxDelta > 0) || math.IsInf(c.Simulation.MaxDelta, 0) {
		errs = append(errs, fmt.Errorf("simulation.max_delta must be positive, got %v", c.Simulation.MaxDelta))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
