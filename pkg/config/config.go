// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/framestrip/pkg/orchestrator"
	"github.com/user/framestrip/pkg/pipeline"
)

// Config represents the full configuration for framestrip. All fields can be
// set from a YAML file; CLI flags override file values.
type Config struct {
	// Sampling
	NFrames  int     `yaml:"nframes"`  // 0 = derive from interval
	Interval float64 `yaml:"interval"` // seconds between samples

	// Per-frame output dimensions, 0 = auto
	Height int `yaml:"height"`
	Width  int `yaml:"width"`

	// Concatenation direction: horizontal or vertical
	Direction string `yaml:"direction"`

	// Matte trimming
	Trim        bool `yaml:"trim"`
	ProbeFrames int  `yaml:"probe_frames"`

	// Output
	Quality int `yaml:"quality"` // JPEG quality (1-100)

	// Processing
	Workers int `yaml:"workers"` // 0 = one per CPU

	// Console
	Quiet    bool   `yaml:"quiet"`
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Direction:   "horizontal",
		ProbeFrames: 20,
		Quality:     95,
		LogLevel:    "info",
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// ToOrchestratorConfig converts the configuration into an orchestrator
// config for the given source and destination paths.
func (c Config) ToOrchestratorConfig(source, destination string) (orchestrator.Config, error) {
	axis, err := pipeline.ParseAxis(c.Direction)
	if err != nil {
		return orchestrator.Config{}, err
	}

	out := orchestrator.DefaultConfig()
	out.Source = source
	out.Destination = destination
	out.SampleCount = c.NFrames
	out.IntervalSec = c.Interval
	out.Axis = axis
	out.Trim = c.Trim
	out.Workers = c.Workers
	if c.ProbeFrames > 0 {
		out.ProbeCount = c.ProbeFrames
	}
	if c.Height != 0 {
		h := c.Height
		out.FrameHeight = &h
	}
	if c.Width != 0 {
		w := c.Width
		out.FrameWidth = &w
	}
	return out, nil
}
