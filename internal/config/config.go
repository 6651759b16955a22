// Package config provides the raycaster settings. Values are loaded from a
// YAML file layered over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/gridcaster/internal/core/raycast"
)

// Config holds all raycaster settings
type Config struct {
	// First-person view
	FirstPerson FirstPersonConfig `yaml:"first_person"`

	// Top-down debug view
	TopDown TopDownConfig `yaml:"top_down"`

	// Marching rules shared by both views
	Marching MarchingConfig `yaml:"marching"`

	// Level file to load when none is given on the command line
	LevelPath string `yaml:"level"`
}

// FirstPersonConfig defines the first-person camera and projection
type FirstPersonConfig struct {
	Width         int     `yaml:"width"`          // Screen columns, one ray each
	Height        int     `yaml:"height"`         // Cleared height and projection base
	FOV           float64 `yaml:"fov"`            // Field of view in degrees
	HorizonOffset float64 `yaml:"horizon_offset"` // Added to distance for strip start
	StepDivisor   float64 `yaml:"step_divisor"`   // Position advances step/K
	OriginRescue  float64 `yaml:"origin_rescue"`  // Replaces negative ray origins
}

// TopDownConfig defines the minimap layout
type TopDownConfig struct {
	Region      float64 `yaml:"region"`       // Cleared square, in pixels
	CellSize    float64 `yaml:"cell_size"`    // Pixels per grid cell
	PlayerSize  float64 `yaml:"player_size"`  // Player marker square
	StepDivisor float64 `yaml:"step_divisor"` // Position advances step/K
}

// MarchingConfig defines how rays advance
type MarchingConfig struct {
	Direction     string `yaml:"direction"`      // "faithful" or "per-column"
	Distance      string `yaml:"distance"`       // "unscaled" or "scaled"
	MaxIterations int    `yaml:"max_iterations"` // 0 derives a cap from the grid size
}

// DefaultConfig returns the stock raycaster settings
func DefaultConfig() *Config {
	return &Config{
		FirstPerson: FirstPersonConfig{
			Width:         800,
			Height:        600,
			FOV:           32,
			HorizonOffset: 30,
			StepDivisor:   50,
			OriginRescue:  1.5,
		},
		TopDown: TopDownConfig{
			Region:      200,
			CellSize:    25,
			PlayerSize:  5,
			StepDivisor: 25,
		},
		Marching: MarchingConfig{
			Direction:     raycast.DirectionFaithful.String(),
			Distance:      raycast.DistanceUnscaled.String(),
			MaxIterations: 0,
		},
		LevelPath: "data/levels/box.yaml",
	}
}

// LoadConfig loads config from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that sizes and divisors are usable
func (c *Config) Validate() error {
	fp := c.FirstPerson
	if fp.Width <= 0 || fp.Height <= 0 {
		return fmt.Errorf("invalid first-person size: %dx%d", fp.Width, fp.Height)
	}
	if fp.StepDivisor <= 0 {
		return fmt.Errorf("invalid first-person step divisor: %v", fp.StepDivisor)
	}
	if c.TopDown.StepDivisor <= 0 {
		return fmt.Errorf("invalid top-down step divisor: %v", c.TopDown.StepDivisor)
	}
	if c.TopDown.CellSize <= 0 || c.TopDown.Region <= 0 {
		return fmt.Errorf("invalid top-down layout: cell %v, region %v", c.TopDown.CellSize, c.TopDown.Region)
	}
	if c.Marching.MaxIterations < 0 {
		return fmt.Errorf("invalid max iterations: %d", c.Marching.MaxIterations)
	}
	if _, err := raycast.ParseDirection(c.Marching.Direction); err != nil {
		return err
	}
	if _, err := raycast.ParseAccumulation(c.Marching.Distance); err != nil {
		return err
	}
	return nil
}

// Projection returns the first-person ray generator settings
func (c *Config) Projection() raycast.Projection {
	dir, _ := raycast.ParseDirection(c.Marching.Direction)
	return raycast.Projection{
		FOV:          c.FirstPerson.FOV,
		Width:        c.FirstPerson.Width,
		OriginRescue: c.FirstPerson.OriginRescue,
		Direction:    dir,
	}
}

// FirstPersonMarch returns march options for first-person columns
func (c *Config) FirstPersonMarch() raycast.MarchOptions {
	acc, _ := raycast.ParseAccumulation(c.Marching.Distance)
	return raycast.MarchOptions{
		Divisor:       c.FirstPerson.StepDivisor,
		Index:         raycast.IndexRound,
		Accumulation:  acc,
		MaxIterations: c.Marching.MaxIterations,
	}
}

// TopDownMarch returns march options for the debug ray
func (c *Config) TopDownMarch() raycast.MarchOptions {
	acc, _ := raycast.ParseAccumulation(c.Marching.Distance)
	return raycast.MarchOptions{
		Divisor:       c.TopDown.StepDivisor,
		Index:         raycast.IndexTrunc,
		Accumulation:  acc,
		MaxIterations: c.Marching.MaxIterations,
	}
}
