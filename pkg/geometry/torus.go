package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Torus represents a ring torus around an arbitrary axis
type Torus struct {
	surface
	Center      core.Vec3
	MajorRadius float64 // Distance from center to the middle of the tube
	MinorRadius float64 // Tube radius

	// Local orthonormal frame; axis is the local z
	u, v, axis core.Vec3
}

// NewTorus creates a torus centered at center, with its ring in the plane perpendicular to axis
func NewTorus(center, axis core.Vec3, majorRadius, minorRadius float64, mat material.Material) (*Torus, error) {
	unit, err := unitAxis("torus axis", axis)
	if err != nil {
		return nil, err
	}
	if err := positive("torus major radius", majorRadius); err != nil {
		return nil, err
	}
	if err := positive("torus minor radius", minorRadius); err != nil {
		return nil, err
	}
	if minorRadius >= majorRadius {
		return nil, fmt.Errorf("%w: torus minor radius %v must be smaller than major radius %v",
			ErrInvalidShape, minorRadius, majorRadius)
	}
	s, err := newSurface(mat)
	if err != nil {
		return nil, err
	}

	u, v := orthonormalFrame(unit)
	return &Torus{
		surface:     s,
		Center:      center,
		MajorRadius: majorRadius,
		MinorRadius: minorRadius,
		u:           u,
		v:           v,
		axis:        unit,
	}, nil
}

// orthonormalFrame builds (u, v) completing a right-handed frame with axis.
// u comes from the basis vector least aligned with axis, which keeps the cross product well conditioned.
func orthonormalFrame(axis core.Vec3) (core.Vec3, core.Vec3) {
	ax, ay, az := math.Abs(axis.X), math.Abs(axis.Y), math.Abs(axis.Z)

	var basis core.Vec3
	switch {
	case ax <= ay && ax <= az:
		basis = core.NewVec3(1, 0, 0)
	case ay <= az:
		basis = core.NewVec3(0, 1, 0)
	default:
		basis = core.NewVec3(0, 0, 1)
	}

	u := basis.Cross(axis).Normalize()
	v := axis.Cross(u)
	return u, v
}

// Axis returns the unit axis of symmetry
func (tr *Torus) Axis() core.Vec3 {
	return tr.axis
}

func (tr *Torus) toLocal(w core.Vec3) core.Vec3 {
	return core.NewVec3(w.Dot(tr.u), w.Dot(tr.v), w.Dot(tr.axis))
}

func (tr *Torus) toWorld(l core.Vec3) core.Vec3 {
	return tr.u.Multiply(l.X).Add(tr.v.Multiply(l.Y)).Add(tr.axis.Multiply(l.Z))
}

// Intersect solves the torus quartic in the local frame
func (tr *Torus) Intersect(origin, direction core.Vec3) []float64 {
	o := tr.toLocal(origin.Subtract(tr.Center))
	d := tr.toLocal(direction)

	dd := d.Dot(d)
	if dd == 0 {
		return nil
	}

	r2 := tr.MajorRadius * tr.MajorRadius
	s2 := tr.MinorRadius * tr.MinorRadius
	od := o.Dot(d)
	e := o.Dot(o) - r2 - s2

	// (|P|² - R² - r²)² - 4R²(r² - z²) = 0 with P = o + t·d
	coeffs := []float64{
		dd * dd,
		4 * dd * od,
		2*dd*e + 4*od*od + 4*r2*d.Z*d.Z,
		4*od*e + 8*r2*o.Z*d.Z,
		e*e - 4*r2*(s2-o.Z*o.Z),
	}

	return positiveRealRoots(polynomialRoots(coeffs))
}

// NormalAt projects the point onto the center ring and returns the direction away from it
func (tr *Torus) NormalAt(point core.Vec3) core.Vec3 {
	q := tr.toLocal(point.Subtract(tr.Center))

	ringX, ringY := tr.MajorRadius, 0.0
	if q.X != 0 || q.Y != 0 {
		scale := tr.MajorRadius / math.Hypot(q.X, q.Y)
		ringX, ringY = q.X*scale, q.Y*scale
	}

	local := core.NewVec3(q.X-ringX, q.Y-ringY, q.Z).Normalize()
	return tr.toWorld(local).Normalize()
}
