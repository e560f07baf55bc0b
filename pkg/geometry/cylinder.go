package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// capEpsilon is the axial tolerance used to decide that a point lies on a cap
const capEpsilon = 1e-6

// Cylinder represents a finite cylinder closed by two disk caps
type Cylinder struct {
	surface
	Base   core.Vec3 // Center of the bottom cap
	Radius float64
	Height float64

	axis core.Vec3 // Unit vector from base to top
}

// NewCylinder creates a capped cylinder standing on base along axis
func NewCylinder(base, axis core.Vec3, radius, height float64, mat material.Material) (*Cylinder, error) {
	unit, err := unitAxis("cylinder axis", axis)
	if err != nil {
		return nil, err
	}
	if err := positive("cylinder radius", radius); err != nil {
		return nil, err
	}
	if err := positive("cylinder height", height); err != nil {
		return nil, err
	}
	s, err := newSurface(mat)
	if err != nil {
		return nil, err
	}
	return &Cylinder{surface: s, Base: base, Radius: radius, Height: height, axis: unit}, nil
}

// Axis returns the unit axis from base to top
func (c *Cylinder) Axis() core.Vec3 {
	return c.axis
}

// Intersect returns the lateral and cap crossings in ascending order
func (c *Cylinder) Intersect(origin, direction core.Vec3) []float64 {
	var roots []float64

	// Vector from base center to ray origin
	delta := origin.Subtract(c.Base)
	dv := direction.Dot(c.axis)
	deltaV := delta.Dot(c.axis)

	// Lateral surface: quadratic in the plane perpendicular to the axis
	// a = |D|² - (D·V)², b = 2[Δ·D - (Δ·V)(D·V)], cc = |Δ|² - (Δ·V)² - r²
	a := direction.LengthSquared() - dv*dv
	b := 2.0 * (delta.Dot(direction) - deltaV*dv)
	cc := delta.LengthSquared() - deltaV*deltaV - c.Radius*c.Radius

	// A ray parallel to the axis can only meet the caps
	if math.Abs(a) >= parallelEpsilon {
		if discriminant := b*b - 4*a*cc; discriminant >= 0 {
			sqrtD := math.Sqrt(discriminant)
			for _, t := range []float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
				h := deltaV + t*dv
				if h >= 0 && h <= c.Height {
					roots = append(roots, t)
				}
			}
		}
	}

	// Caps: planes at h = 0 and h = Height, gated by distance from the axis
	if math.Abs(dv) >= parallelEpsilon {
		for _, h := range []float64{0, c.Height} {
			center := c.Base.Add(c.axis.Multiply(h))
			t := center.Subtract(origin).Dot(c.axis) / dv
			p := origin.Add(direction.Multiply(t))
			if p.Subtract(center).LengthSquared() <= c.Radius*c.Radius {
				roots = append(roots, t)
			}
		}
	}

	return sortedRoots(roots)
}

// NormalAt returns -axis on the bottom cap, +axis on the top cap and the
// outward radial direction on the lateral surface
func (c *Cylinder) NormalAt(point core.Vec3) core.Vec3 {
	h := point.Subtract(c.Base).Dot(c.axis)
	if math.Abs(h) < capEpsilon {
		return c.axis.Negate()
	}
	if math.Abs(h-c.Height) < capEpsilon {
		return c.axis
	}
	axisPoint := c.Base.Add(c.axis.Multiply(h))
	return point.Subtract(axisPoint).Normalize()
}
