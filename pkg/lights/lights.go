package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func validateIntensity(intensity float64) error {
	if math.IsNaN(intensity) || intensity < 0 || intensity > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidIntensity, intensity)
	}
	return nil
}

// AmbientLight lights every point equally, regardless of orientation
type AmbientLight struct {
	intensity float64
}

// NewAmbientLight creates an ambient light
func NewAmbientLight(intensity float64) (*AmbientLight, error) {
	if err := validateIntensity(intensity); err != nil {
		return nil, fmt.Errorf("ambient light: %w", err)
	}
	return &AmbientLight{intensity: intensity}, nil
}

func (l *AmbientLight) Type() LightType    { return LightTypeAmbient }
func (l *AmbientLight) Intensity() float64 { return l.intensity }

// DirectionFrom always reports no direction
func (l *AmbientLight) DirectionFrom(core.Vec3) (core.Vec3, bool) {
	return core.Vec3{}, false
}

// PointLight emits from a single position
type PointLight struct {
	intensity float64
	Position  core.Vec3
}

// NewPointLight creates a point light at position
func NewPointLight(intensity float64, position core.Vec3) (*PointLight, error) {
	if err := validateIntensity(intensity); err != nil {
		return nil, fmt.Errorf("point light: %w", err)
	}
	return &PointLight{intensity: intensity, Position: position}, nil
}

func (l *PointLight) Type() LightType    { return LightTypePoint }
func (l *PointLight) Intensity() float64 { return l.intensity }

// DirectionFrom returns the unit vector from point to the light position
func (l *PointLight) DirectionFrom(point core.Vec3) (core.Vec3, bool) {
	return l.Position.Subtract(point).Normalize(), true
}

// DirectionalLight arrives from the same direction everywhere, like sunlight
type DirectionalLight struct {
	intensity float64
	Direction core.Vec3 // Unit vector pointing toward the light
}

// NewDirectionalLight creates a directional light. direction points toward
// the light and is normalized on construction.
func NewDirectionalLight(intensity float64, direction core.Vec3) (*DirectionalLight, error) {
	if err := validateIntensity(intensity); err != nil {
		return nil, fmt.Errorf("directional light: %w", err)
	}
	if direction.IsZero() {
		return nil, fmt.Errorf("directional light: %w", ErrInvalidDirection)
	}
	return &DirectionalLight{intensity: intensity, Direction: direction.Normalize()}, nil
}

func (l *DirectionalLight) Type() LightType    { return LightTypeDirectional }
func (l *DirectionalLight) Intensity() float64 { return l.intensity }

// DirectionFrom returns the fixed light direction
func (l *DirectionalLight) DirectionFrom(core.Vec3) (core.Vec3, bool) {
	return l.Direction, true
}
