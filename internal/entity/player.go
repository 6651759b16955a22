// Package entity holds the player record driven by the interactive
// front-ends. The raycasting core only ever sees the position and heading.
package entity

import (
	"fmt"
	"math"

	"chosenoffset.com/gridcaster/internal/core/raycast"
	"chosenoffset.com/gridcaster/internal/grid"
)

// Player is the player's state.
type Player struct {
	HP      uint8         `json:"hp"`
	TP      uint8         `json:"tp"`
	Pos     raycast.Point `json:"-"`
	Heading float64       `json:"-"` // degrees, [0, 360)
}

// NewPlayer creates a player at (x, y) facing heading.
func NewPlayer(x, y, heading float64) *Player {
	p := &Player{HP: 10, TP: 10, Pos: raycast.Point{X: x, Y: y}}
	p.Turn(heading)
	return p
}

// StatsJSON returns the stats as a JSON object body, without braces.
func (p *Player) StatsJSON() string {
	return fmt.Sprintf("\"hp\": %d, \"tp\": %d", p.HP, p.TP)
}

// Turn rotates the heading by deg.
func (p *Player) Turn(deg float64) {
	h := math.Mod(p.Heading+deg, 360)
	if h < 0 {
		h += 360
	}
	p.Heading = h
}

// Move steps dist cells along the heading. The move is refused if the
// destination is outside the grid or inside a non-empty cell; it reports
// whether the player moved.
func (p *Player) Move(g *grid.Grid, dist float64) bool {
	step := raycast.StepFromAngle(raycast.DegToRad(p.Heading))
	next := p.Pos.Add(step.Point().Scale(dist))
	if next.X < 0 || next.Y < 0 {
		return false
	}

	row, col := int(next.Y), int(next.X)
	cell, ok := g.At(row, col)
	if !ok || cell > 0 {
		return false
	}
	p.Pos = next
	return true
}

// Cell returns the integer grid cell the player stands in, as (x, y).
func (p *Player) Cell() (int, int) {
	return int(p.Pos.X), int(p.Pos.Y)
}
