package game

import (
	"errors"

	"chosenoffset.com/gridcaster/internal/render"
	"chosenoffset.com/gridcaster/internal/view"
)

// Draw renders the frame to the window.
func (g *Game) Draw(screen render.BitmapSurface) {
	g.DrawTo(screen)
}

// DrawTo renders the frame to any surface and logs a failed frame once.
func (g *Game) DrawTo(s render.Surface) {
	g.report(g.Frame(s))
}

// Frame draws the first-person view and, when enabled, the top-down
// overlay. Both are attempted even if the first fails. With a backdrop set
// the frame is the backdrop alone.
func (g *Game) Frame(s render.Surface) error {
	if g.Backdrop != nil {
		bs, ok := s.(render.BitmapSurface)
		if !ok {
			return render.ErrSurfaceUnavailable
		}
		return view.DrawBitmap(bs, g.Backdrop, 0, 0)
	}

	px, py := g.Player.Cell()
	fpErr := g.Renderer.DrawFirstPerson(s, g.Level.Grid, g.Player.Heading, px, py)

	var mapErr error
	if g.ShowMap {
		mapErr = g.Renderer.DrawTopDown(s, g.Level.Grid, g.Player.Heading, g.Player.Pos.X, g.Player.Pos.Y)
	}
	return errors.Join(fpErr, mapErr)
}

// report logs a frame error once until it changes.
func (g *Game) report(err error) {
	if err == nil {
		g.lastErr = ""
		return
	}
	if msg := err.Error(); msg != g.lastErr {
		g.lastErr = msg
		g.Log.Warnf("frame incomplete: %v", err)
	}
}
