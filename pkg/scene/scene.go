package scene

import (
	"fmt"
	"slices"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene is the immutable set of objects and lights handed to every trace.
// It is safe to share between goroutines.
type Scene struct {
	objects []geometry.Object
	lights  []lights.Light
}

// New validates and copies the given objects and lights into a Scene
func New(objects []geometry.Object, sceneLights []lights.Light) (*Scene, error) {
	for i, obj := range objects {
		if obj == nil {
			return nil, fmt.Errorf("scene object %d is nil", i)
		}
	}
	for i, light := range sceneLights {
		if light == nil {
			return nil, fmt.Errorf("scene light %d is nil", i)
		}
	}

	return &Scene{
		objects: slices.Clone(objects),
		lights:  slices.Clone(sceneLights),
	}, nil
}

// Objects returns the scene objects in scan order. Callers must not modify the slice.
func (s *Scene) Objects() []geometry.Object {
	return s.objects
}

// Lights returns the scene lights. Callers must not modify the slice.
func (s *Scene) Lights() []lights.Light {
	return s.lights
}

// GetPrimitiveCount returns the total number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.objects)
}
