package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	surface
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
}

// NewPlane creates a new plane; the normal is normalized on construction
func NewPlane(point, normal core.Vec3, mat material.Material) (*Plane, error) {
	n, err := unitAxis("plane normal", normal)
	if err != nil {
		return nil, err
	}
	s, err := newSurface(mat)
	if err != nil {
		return nil, err
	}
	return &Plane{surface: s, Point: point, Normal: n}, nil
}

// Intersect returns the single crossing in front of the ray origin, if any.
// Crossings behind the origin (t < 0) are not reported.
func (p *Plane) Intersect(origin, direction core.Vec3) []float64 {
	denominator := direction.Dot(p.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < parallelEpsilon {
		return nil
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(origin).Dot(p.Normal) / denominator
	if t < 0 {
		return nil
	}
	return []float64{t}
}

// NormalAt returns the plane normal, which is constant across the surface
func (p *Plane) NormalAt(core.Vec3) core.Vec3 {
	return p.Normal
}

// Axis returns the plane normal
func (p *Plane) Axis() core.Vec3 {
	return p.Normal
}
