// Package terminal draws a render.Surface onto a tcell screen. The surface
// keeps a virtual pixel canvas and maps it onto character cells, so the
// same drawing code that targets an 800x600 window fits an 80x24 terminal.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/gridcaster/internal/render"
)

// Screen is the part of tcell.Screen the surface writes to.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Cell is one character cell as last drawn.
type Cell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

// Surface maps a virtual width x height canvas onto screen cells.
type Surface struct {
	screen Screen
	width  float64
	height float64
	cols   int
	rows   int
	cells  []Cell
	fill   tcell.Color
	stroke tcell.Color
	path   render.Path

	// Glyph is drawn for stroked lines.
	Glyph rune
}

// New creates a surface for a virtual canvas of width x height pixels.
func New(screen Screen, width, height int) *Surface {
	s := &Surface{
		screen: screen,
		width:  float64(width),
		height: float64(height),
		fill:   tcell.ColorBlack,
		stroke: tcell.ColorBlack,
		Glyph:  '·',
	}
	s.Resize()
	return s
}

// Resize picks up a new terminal size. The cell buffer is reset.
func (s *Surface) Resize() {
	s.cols, s.rows = s.screen.Size()
	if s.cols < 0 {
		s.cols = 0
	}
	if s.rows < 0 {
		s.rows = 0
	}
	s.cells = make([]Cell, s.cols*s.rows)
	for i := range s.cells {
		s.cells[i] = Cell{Rune: ' ', Fg: tcell.ColorDefault, Bg: tcell.ColorDefault}
	}
}

// Grid returns the terminal size in cells.
func (s *Surface) Grid() (cols, rows int) {
	return s.cols, s.rows
}

// At returns the cell at (col, row).
func (s *Surface) At(col, row int) (Cell, bool) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return Cell{}, false
	}
	return s.cells[row*s.cols+col], true
}

// Color converts a colour to a terminal colour. Fully transparent colours
// map to the terminal default.
func Color(clr color.Color) tcell.Color {
	if clr == nil {
		return tcell.ColorDefault
	}
	r, g, b, a := clr.RGBA()
	if a == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func (s *Surface) set(col, row int, c Cell) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	s.cells[row*s.cols+col] = c
	style := tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg)
	s.screen.SetContent(col, row, c.Rune, nil, style)
}

// span converts a pixel range to the cell range it touches.
func span(from, size, pixels float64, cells int) (int, int) {
	if pixels <= 0 || cells == 0 {
		return 0, 0
	}
	scale := float64(cells) / pixels
	lo := int(math.Floor(from * scale))
	hi := int(math.Ceil((from + size) * scale))
	if lo < 0 {
		lo = 0
	}
	if hi > cells {
		hi = cells
	}
	return lo, hi
}

func (s *Surface) eachCell(x, y, w, h float64, fn func(col, row int)) {
	r := render.Rect{X: x, Y: y, W: w, H: h}.Normalize()
	c0, c1 := span(r.X, r.W, s.width, s.cols)
	r0, r1 := span(r.Y, r.H, s.height, s.rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			fn(col, row)
		}
	}
}

// ClearRect blanks every cell the rectangle touches.
func (s *Surface) ClearRect(x, y, w, h float64) {
	s.eachCell(x, y, w, h, func(col, row int) {
		s.set(col, row, Cell{Rune: ' ', Fg: tcell.ColorDefault, Bg: tcell.ColorDefault})
	})
}

func (s *Surface) SetFillStyle(clr color.Color) {
	s.fill = Color(clr)
}

// FillRect paints the background of every cell the rectangle touches.
func (s *Surface) FillRect(x, y, w, h float64) {
	s.eachCell(x, y, w, h, func(col, row int) {
		s.set(col, row, Cell{Rune: ' ', Fg: tcell.ColorDefault, Bg: s.fill})
	})
}

func (s *Surface) SetStrokeStyle(clr color.Color) {
	s.stroke = Color(clr)
}

func (s *Surface) BeginPath()          { s.path.Begin() }
func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.path.LineTo(x, y) }
func (s *Surface) ClosePath()          { s.path.Close() }

// Stroke draws new path segments with Glyph, keeping each cell's background.
func (s *Surface) Stroke() {
	for _, seg := range s.path.Unstroked() {
		x0, y0 := s.toCell(seg.X0, seg.Y0)
		x1, y1 := s.toCell(seg.X1, seg.Y1)
		s.line(x0, y0, x1, y1)
	}
}

// toCell maps a pixel to a cell. Off-screen points are pulled to just
// outside the grid, which bends lines that leave the canvas.
func (s *Surface) toCell(x, y float64) (int, int) {
	if s.width <= 0 || s.height <= 0 {
		return 0, 0
	}
	col := math.Floor(x * float64(s.cols) / s.width)
	row := math.Floor(y * float64(s.rows) / s.height)
	return clampCell(col, s.cols), clampCell(row, s.rows)
}

func clampCell(v float64, n int) int {
	switch {
	case math.IsNaN(v), v < -1:
		return -1
	case v > float64(n):
		return n
	}
	return int(v)
}

// line walks the cells between two points (Bresenham).
func (s *Surface) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		if c, ok := s.At(x0, y0); ok {
			s.set(x0, y0, Cell{Rune: s.Glyph, Fg: s.stroke, Bg: c.Bg})
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// KeyOf maps a terminal key event to a front-end key.
func KeyOf(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyEscape:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return render.KeyW, true
		case 'a', 'A':
			return render.KeyA, true
		case 's', 'S':
			return render.KeyS, true
		case 'd', 'D':
			return render.KeyD, true
		case 'm', 'M':
			return render.KeyM, true
		case 'q', 'Q':
			return render.KeyEscape, true
		}
	}
	return 0, false
}
