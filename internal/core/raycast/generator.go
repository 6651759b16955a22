// Package raycast generates per-column rays and marches them through a grid in
// fixed fractional steps until they enter a wall cell.
package raycast

import "math"

// Projection describes the first-person camera used to generate column rays.
type Projection struct {
	FOV          float64 // degrees
	Width        int     // screen columns
	OriginRescue float64 // replaces a negative origin coordinate
	Direction    Direction
}

// ColumnAngle returns the column's angle in radians. Columns sweep from
// heading-FOV/2 up to (but not including) the heading.
func (p Projection) ColumnAngle(heading float64, column int) float64 {
	half := p.FOV / 2.0
	deg := heading + (-half + float64(column)*(half/float64(p.Width)))
	return DegToRad(deg)
}

// ColumnRay builds the ray and marching step for one screen column.
//
// The origin is the player cell offset by the unit vector of the column
// angle. With DirectionFaithful the step follows the player's heading, so all
// columns march in parallel from slightly different origins.
func (p Projection) ColumnRay(heading float64, playerX, playerY int, column int) (Ray, Step) {
	columnRad := p.ColumnAngle(heading, column)

	ray := Ray{
		Angle: DegToRad(heading),
		Pos: Point{
			X: float64(playerX) + math.Cos(columnRad),
			Y: float64(playerY) + math.Sin(columnRad),
		},
	}
	if p.Direction == DirectionPerColumn {
		ray.Angle = columnRad
	}

	if ray.Pos.X < 0 {
		ray.Pos.X = p.OriginRescue
	}
	if ray.Pos.Y < 0 {
		ray.Pos.Y = p.OriginRescue
	}

	return ray, StepFromAngle(ray.Angle)
}

// TopDownRay builds the single debug ray cast from the raw player position.
func TopDownRay(heading, playerX, playerY float64) (Ray, Step) {
	ray := Ray{
		Angle: DegToRad(heading),
		Pos:   Point{X: playerX, Y: playerY},
	}
	return ray, StepFromAngle(ray.Angle)
}
