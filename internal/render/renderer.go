package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrSurfaceUnavailable is returned when no drawing surface can be obtained.
var ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

// Surface is a 2D drawing context with canvas semantics. It abstracts the
// underlying graphics backend so the raycaster can draw to a window, an
// offscreen image or a terminal without change.
type Surface interface {
	// ClearRect resets a rectangle to transparent.
	ClearRect(x, y, w, h float64)

	// Fill operations
	SetFillStyle(clr color.Color)
	FillRect(x, y, w, h float64)

	// Path operations. Stroke draws the current path with the stroke style.
	SetStrokeStyle(clr color.Color)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	ClosePath()
}

// BitmapSurface is a Surface that can blit images.
type BitmapSurface interface {
	Surface

	// Size returns the surface size in pixels.
	Size() (width, height int)

	// DrawImage draws img with its top-left corner at (x, y).
	DrawImage(img image.Image, x, y float64)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Normalize returns r with non-negative width and height. Negative sizes
// extend left or up from (X, Y), as on an HTML canvas.
func (r Rect) Normalize() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Bounds returns the integer pixel rectangle covered by r.
func (r Rect) Bounds() image.Rectangle {
	n := r.Normalize()
	return image.Rect(int(n.X), int(n.Y), int(n.X+n.W+0.5), int(n.Y+n.H+0.5))
}

// Segment is one straight piece of a path.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Path accumulates line segments between BeginPath calls. Backends embed it
// to share MoveTo/LineTo bookkeeping.
type Path struct {
	segments []Segment
	stroked  int
	curX     float64
	curY     float64
	started  bool
	startX   float64
	startY   float64
}

// Begin discards the current path.
func (p *Path) Begin() {
	p.segments = p.segments[:0]
	p.stroked = 0
	p.started = false
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.curX, p.curY = x, y
	p.startX, p.startY = x, y
	p.started = true
}

// LineTo adds a segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	if !p.started {
		p.MoveTo(x, y)
		return
	}
	p.segments = append(p.segments, Segment{p.curX, p.curY, x, y})
	p.curX, p.curY = x, y
}

// Close adds a segment back to the start of the current subpath.
func (p *Path) Close() {
	if !p.started {
		return
	}
	if p.curX != p.startX || p.curY != p.startY {
		p.LineTo(p.startX, p.startY)
	}
}

// Unstroked returns the segments added since the last call and marks them
// stroked. Re-stroking a segment with an opaque style does not change the
// output, so backends only rasterise new segments.
func (p *Path) Unstroked() []Segment {
	s := p.segments[p.stroked:]
	p.stroked = len(p.segments)
	return s
}

// Segments returns every segment of the current path.
func (p *Path) Segments() []Segment {
	return p.segments
}

// InputManager handles input from the user.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the front-ends use
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyM // minimap toggle
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick.
	Update() error

	// Draw draws the frame onto screen.
	Draw(screen BitmapSurface)

	// Layout accepts the outside size and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine manages the window and the game loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame blocks until the game ends.
	RunGame(game Game) error
}

// ResourceLoader loads images from disk.
type ResourceLoader interface {
	LoadImage(path string) (image.Image, error)
}
