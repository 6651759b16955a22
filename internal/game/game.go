package game

import (
	"errors"
	"image"

	"chosenoffset.com/gridcaster/internal/entity"
	"chosenoffset.com/gridcaster/internal/grid"
	"chosenoffset.com/gridcaster/internal/observability"
	"chosenoffset.com/gridcaster/internal/render"
	"chosenoffset.com/gridcaster/internal/view"
)

// ErrQuit is returned from Update when the player asks to leave.
var ErrQuit = errors.New("quit")

// Game holds the interactive session state shared by the window and
// terminal front-ends.
type Game struct {
	Level    *grid.Level
	Player   *entity.Player
	Renderer *view.Renderer
	InputMgr render.InputManager
	Log      observability.Logger

	// ShowMap overlays the top-down debug view.
	ShowMap bool

	// Backdrop replaces the raycast view with a still image.
	Backdrop image.Image

	TurnSpeed float64 // degrees per key press
	MoveSpeed float64 // cells per key press

	lastErr string
}

// New creates a session on level with the player at the level's spawn.
func New(level *grid.Level, r *view.Renderer, input render.InputManager, log observability.Logger) *Game {
	if r == nil {
		r = view.NewRenderer(nil)
	}
	spawn := level.Data.Player
	return &Game{
		Level:     level,
		Player:    entity.NewPlayer(spawn.X, spawn.Y, level.Data.Heading),
		Renderer:  r,
		InputMgr:  input,
		Log:       log,
		TurnSpeed: 3,
		MoveSpeed: 0.05,
	}
}

// Update polls held keys once per tick.
func (g *Game) Update() error {
	if g.InputMgr == nil {
		return nil
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return ErrQuit
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyM) {
		g.ShowMap = !g.ShowMap
	}
	for _, k := range []render.Key{render.KeyLeft, render.KeyRight, render.KeyUp, render.KeyDown, render.KeyW, render.KeyS, render.KeyA, render.KeyD} {
		if g.InputMgr.IsKeyPressed(k) {
			g.apply(k)
		}
	}
	return nil
}

// HandleKey applies a single key press. Front-ends without held-key state
// feed events through here.
func (g *Game) HandleKey(k render.Key) error {
	switch k {
	case render.KeyEscape:
		return ErrQuit
	case render.KeyM:
		g.ShowMap = !g.ShowMap
	default:
		g.apply(k)
	}
	return nil
}

func (g *Game) apply(k render.Key) {
	switch k {
	case render.KeyLeft, render.KeyA:
		g.Player.Turn(-g.TurnSpeed)
	case render.KeyRight, render.KeyD:
		g.Player.Turn(g.TurnSpeed)
	case render.KeyUp, render.KeyW:
		g.Player.Move(g.Level.Grid, g.MoveSpeed)
	case render.KeyDown, render.KeyS:
		g.Player.Move(g.Level.Grid, -g.MoveSpeed)
	}
}

// Layout returns the configured view size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	fp := g.Renderer.Config().FirstPerson
	return fp.Width, fp.Height
}
