package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/gridcaster/internal/render"
)

// Surface implements render.BitmapSurface on an ebiten.Image.
type Surface struct {
	img       *ebiten.Image
	fill      color.Color
	stroke    color.Color
	path      render.Path
	LineWidth float32
}

// WrapImage wraps an existing ebiten.Image as a drawing surface.
func WrapImage(img *ebiten.Image) *Surface {
	return &Surface{img: img, fill: color.Black, stroke: color.Black, LineWidth: 1}
}

// NewSurface creates an offscreen surface.
func NewSurface(width, height int) *Surface {
	return WrapImage(ebiten.NewImage(width, height))
}

// Image returns the underlying ebiten.Image.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// Size returns the image size.
func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// ClearRect resets a rectangle to transparent.
func (s *Surface) ClearRect(x, y, w, h float64) {
	r := render.Rect{X: x, Y: y, W: w, H: h}.Bounds().Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	s.img.SubImage(r).(*ebiten.Image).Clear()
}

func (s *Surface) SetFillStyle(clr color.Color) {
	s.fill = clr
}

// FillRect fills a rectangle with the fill colour.
func (s *Surface) FillRect(x, y, w, h float64) {
	r := render.Rect{X: x, Y: y, W: w, H: h}.Normalize()
	vector.FillRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), s.fill, false)
}

func (s *Surface) SetStrokeStyle(clr color.Color) {
	s.stroke = clr
}

func (s *Surface) BeginPath()          { s.path.Begin() }
func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.path.LineTo(x, y) }
func (s *Surface) ClosePath()          { s.path.Close() }

// Stroke draws the path segments added since the last Stroke.
func (s *Surface) Stroke() {
	for _, seg := range s.path.Unstroked() {
		vector.StrokeLine(s.img, float32(seg.X0), float32(seg.Y0), float32(seg.X1), float32(seg.Y1), s.LineWidth, s.stroke, true)
	}
}

// DrawImage draws img with its top-left corner at (x, y).
func (s *Surface) DrawImage(img image.Image, x, y float64) {
	src, ok := img.(*ebiten.Image)
	if !ok {
		src = ebiten.NewImageFromImage(img)
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(x, y)
	s.img.DrawImage(src, opts)
}

// InputManager implements render.InputManager using Ebiten.
type InputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &InputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && ebiten.IsKeyPressed(k)
}

// IsKeyJustPressed returns whether the key went down this tick.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && inpututil.IsKeyJustPressed(k)
}

func keyToEbitenKey(key render.Key) (ebiten.Key, bool) {
	switch key {
	case render.KeyW:
		return ebiten.KeyW, true
	case render.KeyA:
		return ebiten.KeyA, true
	case render.KeyS:
		return ebiten.KeyS, true
	case render.KeyD:
		return ebiten.KeyD, true
	case render.KeyM:
		return ebiten.KeyM, true
	case render.KeyUp:
		return ebiten.KeyArrowUp, true
	case render.KeyDown:
		return ebiten.KeyArrowDown, true
	case render.KeyLeft:
		return ebiten.KeyArrowLeft, true
	case render.KeyRight:
		return ebiten.KeyArrowRight, true
	case render.KeyEscape:
		return ebiten.KeyEscape, true
	default:
		return 0, false
	}
}

// ResourceLoader implements render.ResourceLoader using ebitenutil.
type ResourceLoader struct{}

// NewResourceLoader creates a new Ebiten-based resource loader.
func NewResourceLoader() render.ResourceLoader {
	return &ResourceLoader{}
}

// LoadImage loads an image from the specified file path. The result is an
// *ebiten.Image so Surface.DrawImage can draw it without a copy.
func (l *ResourceLoader) LoadImage(path string) (image.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Engine implements render.Engine using Ebiten.
type Engine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &Engine{}
}

func (e *Engine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (e *Engine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (e *Engine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		return
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

// RunGame runs the game loop with the provided game.
func (e *Engine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to the ebiten.Game interface.
type gameAdapter struct {
	game   render.Game
	screen *Surface
}

func (a *gameAdapter) Update() error {
	return a.game.Update()
}

func (a *gameAdapter) Draw(screen *ebiten.Image) {
	if a.screen == nil || a.screen.img != screen {
		a.screen = WrapImage(screen)
	}
	a.game.Draw(a.screen)
}

func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
