package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera generates primary rays from a fixed origin looking down +z
type Camera struct {
	origin   core.Vec3
	viewport Viewport
	width    int
	height   int
}

// NewCamera creates a camera at the origin for a width x height canvas
func NewCamera(viewport Viewport, width, height int) *Camera {
	return &Camera{
		origin:   core.NewVec3(0, 0, 0),
		viewport: viewport,
		width:    width,
		height:   height,
	}
}

// CanvasToViewport maps centered canvas coordinates (y up) onto the viewport
func (c *Camera) CanvasToViewport(x, y float64) core.Vec3 {
	return core.NewVec3(
		x*c.viewport.Width/float64(c.width),
		y*c.viewport.Height/float64(c.height),
		c.viewport.Distance,
	)
}

// GetRay returns the normalized primary ray through image pixel (xImg, yImg),
// where (0, 0) is the top-left corner
func (c *Camera) GetRay(xImg, yImg int) core.Ray {
	x := float64(xImg) - float64(c.width)/2
	y := float64(c.height)/2 - float64(yImg)
	return core.NewRay(c.origin, c.CanvasToViewport(x, y).Normalize())
}
