package grid

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Spawn is the player start position in grid-cell units.
type Spawn struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LevelData is the on-disk level description.
type LevelData struct {
	Name    string   `yaml:"name"`
	Rows    []string `yaml:"rows"` // one string per grid row, top to bottom
	Player  Spawn    `yaml:"player"`
	Heading float64  `yaml:"heading"` // degrees
}

// Level is a loaded level with its parsed grid.
type Level struct {
	Data *LevelData
	Grid *Grid
}

// MapString returns the flat row-major map string for the level.
func (l *Level) MapString() string {
	return strings.Join(l.Data.Rows, "")
}

// LoadFile loads a level from a YAML file.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	level, err := LoadLevel(data)
	if err != nil {
		return nil, fmt.Errorf("invalid level %s: %w", path, err)
	}
	return level, nil
}

// LoadLevel parses and validates level YAML.
func LoadLevel(data []byte) (*Level, error) {
	var levelData LevelData
	if err := yaml.Unmarshal(data, &levelData); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}

	if len(levelData.Rows) == 0 {
		return nil, fmt.Errorf("level has no rows")
	}
	cols := len([]rune(levelData.Rows[0]))
	for y, row := range levelData.Rows {
		if n := len([]rune(row)); n != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidMapSize, y, n, cols)
		}
	}

	g, err := ParseSized(strings.Join(levelData.Rows, ""), len(levelData.Rows), cols)
	if err != nil {
		return nil, err
	}

	px, py := int(levelData.Player.X), int(levelData.Player.Y)
	if levelData.Player.X < 0 || levelData.Player.Y < 0 || !g.InBounds(py, px) {
		return nil, fmt.Errorf("player spawn (%.2f, %.2f) outside %dx%d grid",
			levelData.Player.X, levelData.Player.Y, g.Rows(), g.Cols())
	}
	if g.Blocks(py, px) {
		return nil, fmt.Errorf("player spawn (%.2f, %.2f) is inside a wall", levelData.Player.X, levelData.Player.Y)
	}

	return &Level{Data: &levelData, Grid: g}, nil
}
