package raycast

import (
	"errors"
	"fmt"
	"math"

	"chosenoffset.com/gridcaster/internal/grid"
)

// ErrRayEscapedBounds is returned when a ray leaves the grid, or runs out of
// iterations, without entering a wall cell.
var ErrRayEscapedBounds = errors.New("ray escaped grid bounds")

// MarchOptions controls a single march.
type MarchOptions struct {
	// Divisor is K: the position advances step/K per iteration.
	Divisor float64
	// Index maps positions to cells.
	Index Indexing
	// Accumulation selects how Distance grows.
	Accumulation Accumulation
	// MaxIterations caps the number of advances. Zero derives a cap from
	// the grid size and divisor.
	MaxIterations int
	// Observe, when set, is called once per loop pass with the distance
	// accumulated so far, including the pass that finds the wall.
	Observe func(distance Point)
}

// MaxIterationsFor returns the default advance cap for a grid and divisor.
// A unit step moves 1/K cells per advance, and no straight path through the
// indexable region is longer than the diagonal of a (rows+1) x (cols+1) box.
func MaxIterationsFor(g *grid.Grid, divisor float64) int {
	diag := math.Hypot(float64(g.Rows()+1), float64(g.Cols()+1))
	return int(math.Ceil(diag*divisor)) + 1
}

// March advances ray along step until it lands on a cell with state > 0.
func March(g *grid.Grid, ray Ray, step Step, opts MarchOptions) (Hit, error) {
	if opts.Divisor <= 0 {
		return Hit{}, fmt.Errorf("invalid step divisor %v", opts.Divisor)
	}
	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = MaxIterationsFor(g, opts.Divisor)
	}

	advance := Point{step.X / opts.Divisor, step.Y / opts.Divisor}
	grow := step.Point()
	if opts.Accumulation == DistanceScaled {
		grow = advance
	}

	pos := ray.Pos
	var dist Point
	for n := 0; ; n++ {
		row, col, ok := cellOf(pos, opts.Index)
		if !ok || !g.InBounds(row, col) {
			return Hit{}, fmt.Errorf("%w: position (%.3f, %.3f) after %d steps", ErrRayEscapedBounds, pos.X, pos.Y, n)
		}

		if g.Blocks(row, col) {
			if opts.Observe != nil {
				opts.Observe(dist)
			}
			return Hit{Distance: dist, Pos: pos, Row: row, Col: col, Iterations: n}, nil
		}

		if n >= maxIter {
			return Hit{}, fmt.Errorf("%w: no wall within %d steps", ErrRayEscapedBounds, maxIter)
		}

		pos = pos.Add(advance)
		dist = dist.Add(grow)
		if opts.Observe != nil {
			opts.Observe(dist)
		}
	}
}

// cellOf maps a position to (row, col). ok is false for NaN or infinite input.
func cellOf(p Point, idx Indexing) (row, col int, ok bool) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return 0, 0, false
	}
	x, y := p.X, p.Y
	if idx == IndexRound {
		x, y = math.Round(x), math.Round(y)
	} else {
		x, y = math.Trunc(x), math.Trunc(y)
	}
	// keep the int conversion defined
	limit := float64(math.MaxInt32)
	if math.Abs(x) > limit || math.Abs(y) > limit {
		return 0, 0, false
	}
	return int(y), int(x), true
}
