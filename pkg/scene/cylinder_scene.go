package scene

import (
	"golang.org/x/image/colornames"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCylinderScene creates a simple test scene with capped cylinders in
// several orientations standing on a ground plane
func NewCylinderScene() (*Scene, error) {
	b := &builder{}

	b.plane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), finish(colornames.Gray, material.NoSpecular, 0.15))

	// Center: gold tube tilted toward the camera so the near cap shows
	b.cylinder(core.NewVec3(-0.2, -0.6, 7), core.NewVec3(0.1, 0.3, -1), 0.45, 2.2, finish(colornames.Goldenrod, 300, 0.3))

	// Right: tall upright cylinder, top cap visible from above
	b.cylinder(core.NewVec3(1.6, -1, 5.5), core.NewVec3(0, 1, 0), 0.5, 1.6, finish(colornames.Indianred, 50, 0))

	// Left: horizontal cylinder lying along x, end caps visible
	b.cylinder(core.NewVec3(-2.4, -0.7, 5), core.NewVec3(1, 0, 0), 0.3, 1.2, finish(colornames.Steelblue, 10, 0))

	// Small mirrored cylinder in front
	b.cylinder(core.NewVec3(0.5, -1, 3.5), core.NewVec3(0, 1, 0), 0.2, 0.6, finish(colornames.Lightgray, 1000, 0.7))

	b.ambient(0.2)
	b.point(0.6, core.NewVec3(3, 4, 2))
	b.directional(0.2, core.NewVec3(-1, 3, -2))

	return b.build()
}
