// Package config holds the tunable parameters of the torus viewer and
// their YAML file representation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMajorRadius  = 0.6
	DefaultMinorRadius  = 0.2
	DefaultRotationStep = 0.1
	DefaultSampleCount  = 300
	DefaultPalette      = "░▒▓█"
	DefaultFPS          = 60
	MaxFPS              = 240
)

type Config struct {
	MajorRadius  float64 `yaml:"major_radius"`
	MinorRadius  float64 `yaml:"minor_radius"`
	RotationStep float64 `yaml:"rotation_step"`
	SampleCount  int     `yaml:"sample_count"`
	Palette      string  `yaml:"palette"`
	FPS          int     `yaml:"fps"`
	Frames       int     `yaml:"frames"`
}

func DefaultConfig() *Config {
	return &Config{
		MajorRadius:  DefaultMajorRadius,
		MinorRadius:  DefaultMinorRadius,
		RotationStep: DefaultRotationStep,
		SampleCount:  DefaultSampleCount,
		Palette:      DefaultPalette,
		FPS:          DefaultFPS,
	}
}

// Load reads path on top of the defaults, so a file only needs the keys it
// wants to change.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects geometry and pacing values the renderer cannot work with.
func (c *Config) Validate() error {
	if c.MajorRadius <= 0 {
		return fmt.Errorf("major_radius must be positive, got %v", c.MajorRadius)
	}
	if c.MinorRadius <= 0 {
		return fmt.Errorf("minor_radius must be positive, got %v", c.MinorRadius)
	}
	if c.SampleCount < 1 {
		return fmt.Errorf("sample_count must be at least 1, got %d", c.SampleCount)
	}
	if c.FPS < 1 || c.FPS > MaxFPS {
		return fmt.Errorf("fps must be in 1..%d, got %d", MaxFPS, c.FPS)
	}
	if c.Frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", c.Frames)
	}
	if c.Palette == "" {
		return fmt.Errorf("palette must not be empty")
	}
	return nil
}

// Bound returns the half-extent of the torus footprint, major plus minor
// radius.
func (c *Config) Bound() float64 {
	return c.MajorRadius + c.MinorRadius
}
