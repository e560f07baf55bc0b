package geometry

import (
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// parallelEpsilon is the |D·N| below which a ray is treated as parallel to a plane
const parallelEpsilon = 1e-8

// surface holds the shading attributes shared by every shape
type surface struct {
	material material.Material
}

// Material returns the surface finish
func (s surface) Material() material.Material {
	return s.material
}

func newSurface(mat material.Material) (surface, error) {
	if err := mat.Validate(); err != nil {
		return surface{}, err
	}
	return surface{material: mat}, nil
}

// unitAxis normalizes an orientation vector, rejecting the zero vector
func unitAxis(name string, v core.Vec3) (core.Vec3, error) {
	if v.IsZero() || math.IsNaN(v.Length()) || math.IsInf(v.Length(), 0) {
		return core.Vec3{}, fmt.Errorf("%w: %s %v must be a finite non-zero vector", ErrInvalidShape, name, v)
	}
	return v.Normalize(), nil
}

func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidShape, name, v)
	}
	return nil
}

// sortedRoots returns roots in ascending order, or nil if there are none
func sortedRoots(roots []float64) []float64 {
	if len(roots) == 0 {
		return nil
	}
	sort.Float64s(roots)
	return roots
}
