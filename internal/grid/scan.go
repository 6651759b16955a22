package grid

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LevelEntry is a level file found in a data directory.
type LevelEntry struct {
	Name string // level name, or the file stem if the file has none
	Path string
	Rows int
	Cols int
	Err  error // set when the file does not load
}

// ScanLevels lists the YAML level files in dir, sorted by path. Files that
// fail to load are still listed with Err set.
func ScanLevels(dir string) ([]LevelEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read level directory: %w", err)
	}

	var levels []LevelEntry
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		le := LevelEntry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		}
		level, err := LoadFile(le.Path)
		if err != nil {
			le.Err = err
		} else {
			if level.Data.Name != "" {
				le.Name = level.Data.Name
			}
			le.Rows, le.Cols = level.Grid.Rows(), level.Grid.Cols()
		}
		levels = append(levels, le)
	}

	sort.Slice(levels, func(i, j int) bool { return levels[i].Path < levels[j].Path })
	return levels, nil
}
