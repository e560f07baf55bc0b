package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	surface
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) (*Sphere, error) {
	if err := positive("sphere radius", radius); err != nil {
		return nil, err
	}
	s, err := newSurface(mat)
	if err != nil {
		return nil, err
	}
	return &Sphere{surface: s, Center: center, Radius: radius}, nil
}

// Intersect solves |O + tD - C|² = r² for t
func (s *Sphere) Intersect(origin, direction core.Vec3) []float64 {
	// Vector from sphere center to ray origin
	co := origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := direction.Dot(direction)
	b := 2 * co.Dot(direction)
	c := co.Dot(co) - s.Radius*s.Radius

	if a == 0 {
		return nil
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []float64{
		(-b + sqrtD) / (2 * a),
		(-b - sqrtD) / (2 * a),
	}
}

// NormalAt returns the outward normal (from center to point)
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
