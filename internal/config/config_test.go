package config

import (
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/gridcaster/internal/core/raycast"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate: %v", err)
	}

	if c.FirstPerson.Width != 800 || c.FirstPerson.Height != 600 {
		t.Errorf("Expected 800x600, got %dx%d", c.FirstPerson.Width, c.FirstPerson.Height)
	}
	if c.FirstPerson.FOV != 32 {
		t.Errorf("Expected FOV 32, got %v", c.FirstPerson.FOV)
	}

	p := c.Projection()
	if p.Direction != raycast.DirectionFaithful || p.OriginRescue != 1.5 {
		t.Errorf("Unexpected projection %+v", p)
	}

	fp := c.FirstPersonMarch()
	if fp.Divisor != 50 || fp.Index != raycast.IndexRound || fp.Accumulation != raycast.DistanceUnscaled {
		t.Errorf("Unexpected first-person march options %+v", fp)
	}

	td := c.TopDownMarch()
	if td.Divisor != 25 || td.Index != raycast.IndexTrunc {
		t.Errorf("Unexpected top-down march options %+v", td)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Expected defaults for missing file, got %v", err)
	}
	if c.TopDown.CellSize != 25 {
		t.Errorf("Expected default cell size, got %v", c.TopDown.CellSize)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridcaster.yaml")
	data := `
first_person:
  fov: 60
  horizon_offset: 10
marching:
  direction: per-column
  distance: scaled
  max_iterations: 500
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if c.FirstPerson.FOV != 60 {
		t.Errorf("Expected FOV 60, got %v", c.FirstPerson.FOV)
	}
	if c.FirstPerson.HorizonOffset != 10 {
		t.Errorf("Expected horizon offset 10, got %v", c.FirstPerson.HorizonOffset)
	}
	// Untouched values keep their defaults
	if c.FirstPerson.Width != 800 {
		t.Errorf("Expected default width, got %d", c.FirstPerson.Width)
	}
	if c.Projection().Direction != raycast.DirectionPerColumn {
		t.Error("Expected per-column direction")
	}
	if m := c.FirstPersonMarch(); m.Accumulation != raycast.DistanceScaled || m.MaxIterations != 500 {
		t.Errorf("Unexpected march options %+v", m)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "first_person: ["},
		{"zero width", "first_person:\n  width: 0\n"},
		{"zero divisor", "top_down:\n  step_divisor: 0\n"},
		{"unknown direction", "marching:\n  direction: backwards\n"},
		{"unknown distance", "marching:\n  distance: miles\n"},
		{"negative cap", "marching:\n  max_iterations: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestShippedConfig(t *testing.T) {
	c, err := LoadConfig(filepath.Join("..", "..", "gridcaster.yaml"))
	if err != nil {
		t.Fatalf("Failed to load shipped config: %v", err)
	}
	if *c != *DefaultConfig() {
		t.Errorf("Expected the shipped config to match the defaults, got %+v", c)
	}
}
