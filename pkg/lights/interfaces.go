package lights

import (
	"errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

type LightType string

const (
	LightTypeAmbient     LightType = "ambient"
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// ErrInvalidIntensity is returned when a light is constructed with an intensity outside [0, 1]
var ErrInvalidIntensity = errors.New("light intensity must be in [0, 1]")

// ErrInvalidDirection is returned when a directional light has no direction
var ErrInvalidDirection = errors.New("light direction must be non-zero")

// Light contributes intensity to shaded points
type Light interface {
	Type() LightType

	// Intensity is the light's contribution in [0, 1]
	Intensity() float64

	// DirectionFrom returns the unit vector from point toward the light.
	// Ambient light has no direction and returns false.
	DirectionFrom(point core.Vec3) (core.Vec3, bool)
}
