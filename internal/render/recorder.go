package render

import (
	"fmt"
	"image"
	"image/color"
)

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpClearRect OpKind = iota
	OpSetFillStyle
	OpFillRect
	OpSetStrokeStyle
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpStroke
	OpClosePath
	OpDrawImage
)

var opNames = [...]string{
	OpClearRect:      "clearRect",
	OpSetFillStyle:   "setFillStyle",
	OpFillRect:       "fillRect",
	OpSetStrokeStyle: "setStrokeStyle",
	OpBeginPath:      "beginPath",
	OpMoveTo:         "moveTo",
	OpLineTo:         "lineTo",
	OpStroke:         "stroke",
	OpClosePath:      "closePath",
	OpDrawImage:      "drawImage",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("op(%d)", int(k))
}

// Op is one recorded call. Args holds the numeric arguments in call order.
type Op struct {
	Kind  OpKind
	Args  []float64
	Color color.Color
}

func (o Op) String() string {
	if o.Color != nil {
		r, g, b, a := o.Color.RGBA()
		return fmt.Sprintf("%s(rgba(%d, %d, %d, %d))", o.Kind, r>>8, g>>8, b>>8, a>>8)
	}
	return fmt.Sprintf("%s%v", o.Kind, o.Args)
}

// Recorder is a BitmapSurface that records every call instead of drawing.
type Recorder struct {
	Width, Height int
	Ops           []Op
}

// NewRecorder creates a recorder reporting the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) add(kind OpKind, clr color.Color, args ...float64) {
	r.Ops = append(r.Ops, Op{Kind: kind, Args: args, Color: clr})
}

// ClearRect records a clear.
func (r *Recorder) ClearRect(x, y, w, h float64) { r.add(OpClearRect, nil, x, y, w, h) }

// SetFillStyle records the fill colour.
func (r *Recorder) SetFillStyle(clr color.Color) { r.add(OpSetFillStyle, clr) }

// FillRect records a filled rectangle.
func (r *Recorder) FillRect(x, y, w, h float64) { r.add(OpFillRect, nil, x, y, w, h) }

// SetStrokeStyle records the stroke colour.
func (r *Recorder) SetStrokeStyle(clr color.Color) { r.add(OpSetStrokeStyle, clr) }

func (r *Recorder) BeginPath() { r.add(OpBeginPath, nil) }

func (r *Recorder) MoveTo(x, y float64) { r.add(OpMoveTo, nil, x, y) }

func (r *Recorder) LineTo(x, y float64) { r.add(OpLineTo, nil, x, y) }

func (r *Recorder) Stroke() { r.add(OpStroke, nil) }

func (r *Recorder) ClosePath() { r.add(OpClosePath, nil) }

// Size returns the configured size.
func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

// DrawImage records the image bounds and destination.
func (r *Recorder) DrawImage(img image.Image, x, y float64) {
	b := img.Bounds()
	r.add(OpDrawImage, nil, x, y, float64(b.Dx()), float64(b.Dy()))
}

// Count returns the number of recorded ops of a kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded ops of a kind in call order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
