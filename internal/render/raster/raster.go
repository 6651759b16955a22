// Package raster implements render.Surface on an offscreen RGBA image, for
// snapshots and headless rendering.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"chosenoffset.com/gridcaster/internal/render"
)

// Surface draws into an *image.RGBA.
type Surface struct {
	img       *image.RGBA
	fill      image.Image
	stroke    image.Image
	path      render.Path
	raster    *vector.Rasterizer
	LineWidth float64
}

// New creates a transparent surface. Fill and stroke default to black.
func New(width, height int) *Surface {
	return &Surface{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		fill:      image.NewUniform(color.Black),
		stroke:    image.NewUniform(color.Black),
		raster:    vector.NewRasterizer(width, height),
		LineWidth: 1,
	}
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Size returns the image size.
func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) clip(x, y, w, h float64) image.Rectangle {
	return render.Rect{X: x, Y: y, W: w, H: h}.Bounds().Intersect(s.img.Bounds())
}

// ClearRect resets a rectangle to transparent.
func (s *Surface) ClearRect(x, y, w, h float64) {
	draw.Draw(s.img, s.clip(x, y, w, h), image.Transparent, image.Point{}, draw.Src)
}

// SetFillStyle sets the fill colour.
func (s *Surface) SetFillStyle(clr color.Color) {
	s.fill = image.NewUniform(clr)
}

// FillRect fills a rectangle with the fill colour.
func (s *Surface) FillRect(x, y, w, h float64) {
	draw.Draw(s.img, s.clip(x, y, w, h), s.fill, image.Point{}, draw.Over)
}

// SetStrokeStyle sets the stroke colour.
func (s *Surface) SetStrokeStyle(clr color.Color) {
	s.stroke = image.NewUniform(clr)
}

func (s *Surface) BeginPath()          { s.path.Begin() }
func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.path.LineTo(x, y) }
func (s *Surface) ClosePath()          { s.path.Close() }

// Stroke rasterises path segments not yet stroked as LineWidth-wide quads.
func (s *Surface) Stroke() {
	segs := s.path.Unstroked()
	if len(segs) == 0 {
		return
	}

	w, h := s.Size()
	s.raster.Reset(w, h)
	s.raster.DrawOp = draw.Over
	drawn := false
	for _, seg := range segs {
		dx, dy := seg.X1-seg.X0, seg.Y1-seg.Y0
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*s.LineWidth/2, dx/length*s.LineWidth/2

		s.raster.MoveTo(float32(seg.X0+nx), float32(seg.Y0+ny))
		s.raster.LineTo(float32(seg.X1+nx), float32(seg.Y1+ny))
		s.raster.LineTo(float32(seg.X1-nx), float32(seg.Y1-ny))
		s.raster.LineTo(float32(seg.X0-nx), float32(seg.Y0-ny))
		s.raster.ClosePath()
		drawn = true
	}
	if drawn {
		s.raster.Draw(s.img, s.img.Bounds(), s.stroke, image.Point{})
	}
}

// DrawImage blits img with its top-left corner at (x, y).
func (s *Surface) DrawImage(img image.Image, x, y float64) {
	b := img.Bounds()
	dst := b.Sub(b.Min).Add(image.Pt(int(math.Round(x)), int(math.Round(y))))
	draw.Draw(s.img, dst, img, b.Min, draw.Over)
}

// WritePNG encodes the surface as PNG.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := s.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadImage decodes a PNG file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}
