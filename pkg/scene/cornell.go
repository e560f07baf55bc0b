package scene

import (
	"golang.org/x/image/colornames"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCornellScene creates a Cornell-style box: five inward-facing walls, a
// mirror sphere and a glossy sphere, lit by a point light under the ceiling.
// The front of the box is open and the camera sits in the opening.
func NewCornellScene() (*Scene, error) {
	b := &builder{}

	// Box spans x and y in [-1, 1], back wall at z = 3.5
	white := finish(colornames.Whitesmoke, material.NoSpecular, 0)
	b.plane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), white)   // Floor
	b.plane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), white)   // Ceiling
	b.plane(core.NewVec3(0, 0, 3.5), core.NewVec3(0, 0, -1), white) // Back wall
	b.plane(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0), finish(colornames.Firebrick, material.NoSpecular, 0))
	b.plane(core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0), finish(colornames.Forestgreen, material.NoSpecular, 0))

	// Left sphere (mirror)
	b.sphere(core.NewVec3(-0.45, -0.6, 2.8), 0.4, finish(colornames.Lightsteelblue, 1000, 0.8))

	// Right sphere (glossy)
	b.sphere(core.NewVec3(0.45, -0.65, 2.2), 0.35, finish(colornames.Khaki, 200, 0.1))

	b.ambient(0.15)
	b.point(0.7, core.NewVec3(0, 0.9, 2.2))
	b.directional(0.15, core.NewVec3(0, 1, -1))

	return b.build()
}
