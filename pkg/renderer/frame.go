package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Frame holds a computed image as rows of colors, indexed by row number
type Frame struct {
	Width  int
	Height int
	Rows   [][]core.Color
}

// NewFrame allocates a frame with one empty slot per row
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Rows:   make([][]core.Color, height),
	}
}

// At returns the color of pixel (x, y)
func (f *Frame) At(x, y int) core.Color {
	return f.Rows[y][x]
}

// Equal reports whether two frames have the same size and identical pixels
func (f *Frame) Equal(other *Frame) bool {
	if f.Width != other.Width || f.Height != other.Height {
		return false
	}
	for y := 0; y < f.Height; y++ {
		if len(f.Rows[y]) != len(other.Rows[y]) {
			return false
		}
		for x := range f.Rows[y] {
			if f.Rows[y][x] != other.Rows[y][x] {
				return false
			}
		}
	}
	return true
}

// AverageLuminance returns the mean pixel luminance, or 0 for an empty frame
func (f *Frame) AverageLuminance() float64 {
	var total float64
	var count int
	for _, row := range f.Rows {
		for _, c := range row {
			total += c.Luminance()
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
