package display

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestNewCanvas(t *testing.T) {
	canvas, err := NewCanvas(30, 20)
	if err != nil {
		t.Fatalf("NewCanvas failed: %v", err)
	}
	if canvas.Width() != 30 || canvas.Height() != 20 {
		t.Errorf("Expected 30x20, got %dx%d", canvas.Width(), canvas.Height())
	}
	bounds := canvas.Image().Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 20 {
		t.Errorf("Expected image bounds 30x20, got %v", bounds)
	}
}

func TestNewCanvas_InvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := NewCanvas(size[0], size[1]); err == nil {
			t.Errorf("Expected error for size %v", size)
		}
	}
}

func TestCanvasPlot(t *testing.T) {
	canvas, err := NewCanvas(4, 3)
	if err != nil {
		t.Fatalf("NewCanvas failed: %v", err)
	}

	tests := []struct {
		x, y  int
		color core.Color
	}{
		{0, 0, core.NewColor(255, 0, 0)},
		{3, 0, core.NewColor(0, 128, 255)},
		{1, 2, core.NewColor(17, 34, 51)},
		{3, 2, core.White},
	}

	for _, tt := range tests {
		canvas.Plot(tt.x, tt.y, tt.color)
	}

	img := canvas.Image()
	for _, tt := range tests {
		got := color.RGBAModel.Convert(img.At(tt.x, tt.y)).(color.RGBA)
		expected := tt.color.RGBA()
		if got != expected {
			t.Errorf("Pixel (%d, %d): expected %v, got %v", tt.x, tt.y, expected, got)
		}
	}
}

func TestCanvasEncodePNG(t *testing.T) {
	canvas, err := NewCanvas(2, 2)
	if err != nil {
		t.Fatalf("NewCanvas failed: %v", err)
	}
	canvas.Plot(1, 1, core.NewColor(10, 20, 30))

	var buf bytes.Buffer
	if err := canvas.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	got := color.RGBAModel.Convert(decoded.At(1, 1)).(color.RGBA)
	if got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("Expected (10,20,30) after round trip, got %v", got)
	}
}

func TestCanvasSavePNG(t *testing.T) {
	canvas, err := NewCanvas(3, 3)
	if err != nil {
		t.Fatalf("NewCanvas failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := canvas.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("Expected non-empty PNG at %s, err=%v", path, err)
	}

	if err := canvas.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("Expected error saving into a missing directory")
	}
}
