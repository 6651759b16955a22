// Package grid parses flat map strings into the fixed-size cell grid that rays
// are marched through.
package grid

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Default grid dimensions. Map strings supply Rows*Cols characters.
const (
	Rows = 8
	Cols = 8
)

// ErrInvalidMapSize is returned when a map string does not supply exactly one
// character per cell.
var ErrInvalidMapSize = errors.New("invalid map size")

// CellState is the content of a single grid cell. Only values > 0 stop a ray.
type CellState int

const (
	Invalid CellState = -1 // unknown character, non-blocking
	Empty   CellState = 0
	Wall    CellState = 1
)

// String returns the map character for the cell state.
func (c CellState) String() string {
	switch c {
	case Wall:
		return "1"
	case Empty:
		return "0"
	default:
		return "?"
	}
}

// Grid is a rectangular array of cell states stored row-major.
type Grid struct {
	rows, cols int
	cells      []CellState
}

// Parse builds a default-sized grid from a row-major map string.
func Parse(s string) (*Grid, error) {
	return ParseSized(s, Rows, Cols)
}

// ParseSized builds a rows x cols grid from a row-major map string.
// '1' is a wall, '0' is empty and anything else is Invalid.
func ParseSized(s string, rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions: %dx%d", rows, cols)
	}

	want := rows * cols
	if got := utf8.RuneCountInString(s); got != want {
		return nil, fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidMapSize, want, got)
	}

	g := &Grid{rows: rows, cols: cols, cells: make([]CellState, 0, want)}
	for _, c := range s {
		switch c {
		case '1':
			g.cells = append(g.cells, Wall)
		case '0':
			g.cells = append(g.cells, Empty)
		default:
			g.cells = append(g.cells, Invalid)
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at (row, col). ok is false outside the grid.
func (g *Grid) At(row, col int) (CellState, bool) {
	if !g.InBounds(row, col) {
		return Empty, false
	}
	return g.cells[row*g.cols+col], true
}

// Blocks reports whether the cell at (row, col) stops a ray.
// Cells outside the grid never block.
func (g *Grid) Blocks(row, col int) bool {
	c, ok := g.At(row, col)
	return ok && c > 0
}

// String renders the grid back into its flat map form.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.cells))
	for _, c := range g.cells {
		b.WriteString(c.String())
	}
	return b.String()
}
