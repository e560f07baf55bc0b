package scene

import (
	"golang.org/x/image/colornames"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewShapesScene shows one of each primitive: a sphere, a capped cylinder and
// a tilted torus over a reflective ground plane
func NewShapesScene() (*Scene, error) {
	b := &builder{}

	b.plane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), finish(colornames.Silver, material.NoSpecular, 0.3))
	b.sphere(core.NewVec3(-1.8, 0, 6), 1, finish(colornames.Crimson, 300, 0.2))
	b.cylinder(core.NewVec3(1.8, -1, 6), core.NewVec3(0, 1, 0), 0.7, 1.8, finish(colornames.Royalblue, 50, 0))
	b.torus(core.NewVec3(0, 0.2, 4.5), core.NewVec3(0, 1, -0.6), 0.8, 0.25, finish(colornames.Gold, 200, 0.1))

	b.ambient(0.2)
	b.point(0.6, core.NewVec3(2, 4, 0))
	b.directional(0.2, core.NewVec3(1, 4, 4))

	return b.build()
}

// NewMirrorScene places two near-perfect mirrors side by side so reflections
// bounce between them until the depth limit cuts them off
func NewMirrorScene() (*Scene, error) {
	b := &builder{}

	b.sphere(core.NewVec3(-1.1, 0, 5), 1, finish(colornames.Whitesmoke, 1000, 0.9))
	b.sphere(core.NewVec3(1.1, 0, 5), 1, finish(colornames.Whitesmoke, 1000, 0.9))
	b.sphere(core.NewVec3(0, -0.6, 3.5), 0.3, finish(colornames.Orangered, 100, 0))
	b.sphere(core.NewVec3(0, -5001, 0), 5000, finish(colornames.Darkslategray, material.NoSpecular, 0.2))

	b.ambient(0.2)
	b.point(0.6, core.NewVec3(0, 3, 1))
	b.directional(0.2, core.NewVec3(-1, 4, 2))

	return b.build()
}
