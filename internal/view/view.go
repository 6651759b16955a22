// Package view turns marched rays into drawing calls: shaded first-person
// strips, and a top-down debug minimap with a single ray.
//
// Rendering is best effort. If a column's ray escapes the grid the frame stops
// at that column and the error is returned; columns already drawn stay on the
// surface.
package view

import (
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/gridcaster/internal/config"
	"chosenoffset.com/gridcaster/internal/core/raycast"
	"chosenoffset.com/gridcaster/internal/grid"
	"chosenoffset.com/gridcaster/internal/render"
)

// Minimap colours
var (
	Grey = color.RGBA{128, 128, 128, 255}
	Blue = color.RGBA{0, 0, 255, 255}
)

// Renderer draws frames with a fixed configuration.
type Renderer struct {
	cfg *config.Config
}

// NewRenderer creates a renderer. A nil config uses the defaults.
func NewRenderer(cfg *config.Config) *Renderer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Renderer{cfg: cfg}
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() *config.Config {
	return r.cfg
}

var defaultRenderer = NewRenderer(nil)

// RenderFirstPerson draws an 800x600 first-person frame with the default
// configuration.
func RenderFirstPerson(s render.Surface, mapStr string, heading float64, playerX, playerY int) error {
	return defaultRenderer.RenderFirstPerson(s, mapStr, heading, playerX, playerY)
}

// RenderTopDownDebug draws the 200x200 debug minimap with the default
// configuration.
func RenderTopDownDebug(s render.Surface, mapStr string, heading, playerX, playerY float64) error {
	return defaultRenderer.RenderTopDownDebug(s, mapStr, heading, playerX, playerY)
}

// DrawBitmap clears the whole surface and blits img at (x, y).
func DrawBitmap(s render.BitmapSurface, img image.Image, x, y float64) error {
	if s == nil {
		return render.ErrSurfaceUnavailable
	}
	if img == nil {
		return fmt.Errorf("no bitmap to draw")
	}
	w, h := s.Size()
	s.ClearRect(0, 0, float64(w), float64(h))
	s.DrawImage(img, x, y)
	return nil
}

// RenderFirstPerson parses mapStr and draws one strip per screen column.
// A malformed map fails before anything is drawn.
func (r *Renderer) RenderFirstPerson(s render.Surface, mapStr string, heading float64, playerX, playerY int) error {
	if s == nil {
		return render.ErrSurfaceUnavailable
	}
	g, err := grid.Parse(mapStr)
	if err != nil {
		return err
	}
	return r.DrawFirstPerson(s, g, heading, playerX, playerY)
}

// DrawFirstPerson draws one strip per screen column for an already parsed grid.
func (r *Renderer) DrawFirstPerson(s render.Surface, g *grid.Grid, heading float64, playerX, playerY int) error {
	if s == nil {
		return render.ErrSurfaceUnavailable
	}
	fp := r.cfg.FirstPerson
	s.ClearRect(0, 0, float64(fp.Width), float64(fp.Height))

	proj := r.cfg.Projection()
	opts := r.cfg.FirstPersonMarch()
	for i := 0; i < fp.Width; i++ {
		ray, step := proj.ColumnRay(heading, playerX, playerY, i)
		hit, err := raycast.March(g, ray, step, opts)
		if err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}

		wall := Project(hit.Hyp(), float64(fp.Height), fp.HorizonOffset)
		s.SetFillStyle(wall.Shade())
		s.FillRect(float64(i), wall.Start, 1, wall.Length)
	}
	return nil
}

// RenderTopDownDebug parses mapStr and draws the minimap and debug ray.
func (r *Renderer) RenderTopDownDebug(s render.Surface, mapStr string, heading, playerX, playerY float64) error {
	if s == nil {
		return render.ErrSurfaceUnavailable
	}
	g, err := grid.Parse(mapStr)
	if err != nil {
		return err
	}
	return r.DrawTopDown(s, g, heading, playerX, playerY)
}

// DrawTopDown draws wall cells, the player marker and the debug ray as a
// polyline with one stroked segment per marching step.
func (r *Renderer) DrawTopDown(s render.Surface, g *grid.Grid, heading, playerX, playerY float64) error {
	if s == nil {
		return render.ErrSurfaceUnavailable
	}
	td := r.cfg.TopDown
	s.ClearRect(0, 0, td.Region, td.Region)

	s.SetFillStyle(Grey)
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if g.Blocks(row, col) {
				s.FillRect(td.CellSize*float64(col), td.CellSize*float64(row), td.CellSize, td.CellSize)
			}
		}
	}

	s.BeginPath()
	s.SetStrokeStyle(Blue)

	ray, step := raycast.TopDownRay(heading, playerX, playerY)
	start := ray.Pos.Scale(td.CellSize)
	s.FillRect(start.X, start.Y, td.PlayerSize, td.PlayerSize)

	// Unscaled distance already advances one pixel per step at the stock
	// cell size and divisor; scaled distance is in cells.
	pixels := 1.0
	opts := r.cfg.TopDownMarch()
	if opts.Accumulation == raycast.DistanceScaled {
		pixels = td.CellSize
	}
	half := td.PlayerSize / 2
	opts.Observe = func(d raycast.Point) {
		s.MoveTo(start.X+half, start.Y+half)
		s.LineTo(start.X+d.X*pixels, start.Y+d.Y*pixels)
		s.Stroke()
	}

	_, err := raycast.March(g, ray, step, opts)
	s.ClosePath()
	if err != nil {
		return fmt.Errorf("debug ray: %w", err)
	}
	return nil
}
