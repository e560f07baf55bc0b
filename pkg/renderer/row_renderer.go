package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RowRenderer resolves whole image rows. Each call allocates its own row
// buffer, so concurrent calls for different rows never share memory.
type RowRenderer struct {
	raytracer *Raytracer
	camera    *Camera
	width     int
}

// NewRowRenderer creates a row renderer for images of the given width
func NewRowRenderer(raytracer *Raytracer, camera *Camera, width int) *RowRenderer {
	return &RowRenderer{
		raytracer: raytracer,
		camera:    camera,
		width:     width,
	}
}

// RenderRow traces one primary ray per pixel of row y, left to right
func (rr *RowRenderer) RenderRow(y int) []core.Color {
	row := make([]core.Color, rr.width)
	for x := range row {
		row[x] = rr.raytracer.TracePrimary(rr.camera.GetRay(x, y))
	}
	return row
}
