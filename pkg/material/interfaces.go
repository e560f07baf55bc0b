package material

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NoSpecular disables the specular term for a surface
const NoSpecular = -1

// ErrInvalidMaterial is returned when a material is constructed with out-of-range values
var ErrInvalidMaterial = errors.New("invalid material")

// Material describes how a surface responds to light: its base color, the
// Phong specular exponent and the fraction of mirrored light mixed into the result.
type Material struct {
	Color      core.Color // Base surface color
	Specular   int        // Shininess exponent, NoSpecular disables highlights
	Reflective float64    // Fraction of reflected light in [0, 1]
}

// New creates a validated material
func New(color core.Color, specular int, reflective float64) (Material, error) {
	m := Material{Color: color, Specular: specular, Reflective: reflective}
	if err := m.Validate(); err != nil {
		return Material{}, err
	}
	return m, nil
}

// NewMatte creates a material with no specular highlight and no reflection
func NewMatte(color core.Color) Material {
	return Material{Color: color, Specular: NoSpecular}
}

// Validate checks the specular exponent and reflective fraction
func (m Material) Validate() error {
	if m.Specular < NoSpecular {
		return fmt.Errorf("%w: specular exponent %d must be -1 or non-negative", ErrInvalidMaterial, m.Specular)
	}
	if math.IsNaN(m.Reflective) || m.Reflective < 0 || m.Reflective > 1 {
		return fmt.Errorf("%w: reflective fraction %v outside [0, 1]", ErrInvalidMaterial, m.Reflective)
	}
	return nil
}

// HasSpecular reports whether the surface takes part in specular highlighting
func (m Material) HasSpecular() bool {
	return m.Specular != NoSpecular
}

// IsReflective reports whether any mirrored light is mixed into the surface color
func (m Material) IsReflective() bool {
	return m.Reflective > 0
}
