package scene

import (
	"golang.org/x/image/colornames"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewDefaultScene creates three spheres resting on a huge yellow sphere used
// as the ground, lit by ambient, point and directional lights
func NewDefaultScene() (*Scene, error) {
	return threeSpheres(0, 0, 0, 0)
}

// NewReflectiveScene is the default layout with every surface partly mirrored
func NewReflectiveScene() (*Scene, error) {
	return threeSpheres(0.2, 0.3, 0.4, 0.5)
}

func threeSpheres(redReflect, blueReflect, greenReflect, groundReflect float64) (*Scene, error) {
	b := &builder{}

	b.sphere(core.NewVec3(0, -1, 3), 1, finish(colornames.Red, 500, redReflect))
	b.sphere(core.NewVec3(2, 0, 4), 1, finish(colornames.Blue, 500, blueReflect))
	b.sphere(core.NewVec3(-2, 0, 4), 1, finish(colornames.Lime, 10, greenReflect))
	b.sphere(core.NewVec3(0, -5001, 0), 5000, finish(colornames.Yellow, 1000, groundReflect))

	b.ambient(0.2)
	b.point(0.6, core.NewVec3(2, 1, 0))
	b.directional(0.2, core.NewVec3(1, 4, 4))

	return b.build()
}
