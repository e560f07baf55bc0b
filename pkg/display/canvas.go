package display

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/fogleman/gg"
)

// Canvas is an in-memory raster surface backed by a gg drawing context.
// It is not safe for concurrent use; the renderer draws from one goroutine.
type Canvas struct {
	ctx    *gg.Context
	width  int
	height int
}

// NewCanvas creates a width x height canvas
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas size %dx%d must be positive", width, height)
	}
	return &Canvas{
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
	}, nil
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

// Plot sets pixel (x, y) to color. (0, 0) is the top-left corner.
func (c *Canvas) Plot(x, y int, color core.Color) {
	c.ctx.SetHexColor(color.Hex())
	c.ctx.SetPixel(x, y)
}

// Image returns the underlying image
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// SavePNG writes the canvas to a PNG file
func (c *Canvas) SavePNG(path string) error {
	if err := c.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the canvas as PNG to w
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.ctx.Image())
}
