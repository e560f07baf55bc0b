package geometry

import (
	"errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ErrInvalidShape is returned when a shape is constructed with degenerate parameters
var ErrInvalidShape = errors.New("invalid shape")

// Object is a surface that can be intersected by rays and shaded
type Object interface {
	// Intersect returns every parametric distance t at which origin + t*direction
	// lies on the surface. It returns nil when there is no real intersection and
	// never returns an empty non-nil slice. Callers filter t against their range.
	Intersect(origin, direction core.Vec3) []float64

	// NormalAt returns the outward unit normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3

	// Material returns the surface finish
	Material() material.Material
}

// Oriented is implemented by objects with an orientation axis
type Oriented interface {
	Axis() core.Vec3
}
