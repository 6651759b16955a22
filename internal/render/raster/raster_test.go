package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"chosenoffset.com/gridcaster/internal/render"
)

var _ render.BitmapSurface = (*Surface)(nil)

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestFillAndClear(t *testing.T) {
	s := New(20, 20)
	s.SetFillStyle(color.RGBA{255, 0, 0, 255})
	s.FillRect(2, 2, 5, 5)

	if got := rgba(s.Image().At(4, 4)); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Expected red at (4,4), got %v", got)
	}
	if got := rgba(s.Image().At(10, 10)); got.A != 0 {
		t.Errorf("Expected transparent at (10,10), got %v", got)
	}

	s.ClearRect(0, 0, 20, 20)
	if got := rgba(s.Image().At(4, 4)); got.A != 0 {
		t.Errorf("Expected cleared pixel, got %v", got)
	}
}

func TestFillNegativeHeight(t *testing.T) {
	s := New(10, 10)
	s.SetFillStyle(color.White)
	s.FillRect(1, 8, 1, -4)

	if got := rgba(s.Image().At(1, 5)); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Expected white at (1,5), got %v", got)
	}
	if got := rgba(s.Image().At(1, 2)); got.A != 0 {
		t.Errorf("Expected untouched pixel at (1,2), got %v", got)
	}
}

func TestFillClipsToImage(t *testing.T) {
	s := New(10, 10)
	s.SetFillStyle(color.White)
	s.FillRect(-5, -5, 100, 100)

	if got := rgba(s.Image().At(9, 9)); got.A != 255 {
		t.Errorf("Expected filled corner, got %v", got)
	}
}

func TestStrokeHorizontalLine(t *testing.T) {
	s := New(40, 20)
	s.SetStrokeStyle(color.RGBA{0, 0, 255, 255})
	s.BeginPath()
	s.MoveTo(10, 10.5)
	s.LineTo(30, 10.5)
	s.Stroke()

	got := rgba(s.Image().At(20, 10))
	if got.B < 200 || got.R > 50 {
		t.Errorf("Expected blue on the line, got %v", got)
	}
	if off := rgba(s.Image().At(20, 15)); off.A != 0 {
		t.Errorf("Expected nothing off the line, got %v", off)
	}
}

func TestStrokeOnlyNewSegments(t *testing.T) {
	s := New(40, 40)
	s.SetStrokeStyle(color.RGBA{0, 0, 255, 255})
	s.BeginPath()
	s.MoveTo(0, 5.5)
	s.LineTo(30, 5.5)
	s.Stroke()

	s.ClearRect(0, 0, 40, 40)
	s.MoveTo(0, 20.5)
	s.LineTo(30, 20.5)
	s.Stroke()

	if got := rgba(s.Image().At(15, 5)); got.A != 0 {
		t.Errorf("Expected the first segment to stay cleared, got %v", got)
	}
	if got := rgba(s.Image().At(15, 20)); got.B < 200 {
		t.Errorf("Expected the second segment drawn, got %v", got)
	}
}

func TestDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			src.Set(x, y, color.RGBA{0, 255, 0, 255})
		}
	}

	s := New(10, 10)
	s.DrawImage(src, 4, 5)

	if got := rgba(s.Image().At(5, 6)); got.G != 255 {
		t.Errorf("Expected green at (5,6), got %v", got)
	}
	if got := rgba(s.Image().At(3, 5)); got.A != 0 {
		t.Errorf("Expected transparent at (3,5), got %v", got)
	}
}

func TestWritePNG(t *testing.T) {
	s := New(8, 4)
	s.SetFillStyle(color.White)
	s.FillRect(0, 0, 8, 4)

	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		t.Fatalf("Failed to write png: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("Expected 8x4 image, got %v", b)
	}
}

func TestSaveAndLoadImage(t *testing.T) {
	s := New(5, 5)
	s.SetFillStyle(color.RGBA{0, 0, 255, 255})
	s.FillRect(0, 0, 5, 5)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if got := rgba(img.At(2, 2)); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("Expected blue, got %v", got)
	}

	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}
