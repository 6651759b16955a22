package view

import (
	"image/color"
	"math"
)

// Wall is the render descriptor for one first-person column.
type Wall struct {
	Start     float64 // top of the strip
	Length    float64 // strip height, negative once Start passes the midline
	Intensity float64 // raw shade; may be infinite or outside [0,255]
}

// Project converts a wall distance into a strip. viewHeight is the projection
// base (600 for the stock view) and horizon the fixed start offset (30).
func Project(hyp, viewHeight, horizon float64) Wall {
	start := horizon + hyp
	end := viewHeight - start
	return Wall{
		Start:     start,
		Length:    end - start,
		Intensity: 255.0 / (2.0 * hyp / 100.0),
	}
}

// Shade returns the strip colour. Intensity is clamped to [0,255]; an
// infinite intensity (zero distance) is full white and NaN is black.
func (w Wall) Shade() color.Gray {
	v := w.Intensity
	switch {
	case math.IsNaN(v) || v < 0:
		v = 0
	case v > 255:
		v = 255
	}
	return color.Gray{Y: uint8(math.Round(v))}
}
