package raycast

import "math"

// Pi is the approximation used for degree/radian conversion. Rendered frames
// depend on it, so it is kept at 3.14 rather than math.Pi.
const Pi = 3.14

// DegToRad converts degrees to radians using Pi.
func DegToRad(deg float64) float64 {
	return deg * (Pi / 180.0)
}

// Point is a 2D position or displacement in grid-cell units.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Scale returns p * k.
func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// Hypot returns the Euclidean length of p.
func (p Point) Hypot() float64 {
	return math.Hypot(p.X, p.Y)
}

// Step is the unit direction a ray marches along.
type Step struct {
	X, Y float64
}

// StepFromAngle returns the unit direction for an angle in radians.
func StepFromAngle(rad float64) Step {
	return Step{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Point returns the step as a displacement.
func (s Step) Point() Point {
	return Point{s.X, s.Y}
}

// Ray is a marching angle (radians) and a current position.
type Ray struct {
	Angle float64
	Pos   Point
}

// Hit describes where a march stopped.
type Hit struct {
	// Distance is the accumulated step vector, the distance proxy used for
	// projection and shading.
	Distance Point
	// Pos is the ray position when the wall cell was found.
	Pos Point
	// Row and Col address the wall cell that stopped the ray.
	Row, Col int
	// Iterations is the number of advances taken before the hit.
	Iterations int
}

// Hyp returns the Euclidean norm of the accumulated distance.
func (h Hit) Hyp() float64 {
	return h.Distance.Hypot()
}
