package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultNumWorkers is the worker pool size used when none is configured
const DefaultNumWorkers = 8

// ErrInvalidConfig is returned when a render configuration cannot be used
var ErrInvalidConfig = errors.New("invalid render config")

// TraceConfig contains the ray tracing constants
type TraceConfig struct {
	MaxDepth         int        // Reflection recursion limit; deeper rays return Background
	TMin             float64    // Nearest accepted hit along a primary ray
	TMax             float64    // Farthest accepted hit along a primary ray
	ReflectionOffset float64    // Distance a reflected ray's origin is pushed off the surface
	ReflectionTMin   float64    // Nearest accepted hit along a reflected ray
	Background       core.Color // Color of rays that hit nothing
}

// DefaultTraceConfig returns the standard tracing constants
func DefaultTraceConfig() TraceConfig {
	return TraceConfig{
		MaxDepth:         3,
		TMin:             1.0,
		TMax:             math.Inf(1),
		ReflectionOffset: 1e-4,
		ReflectionTMin:   0,
		Background:       core.White,
	}
}

// Validate checks that the tracing constants are usable
func (c TraceConfig) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d must not be negative", ErrInvalidConfig, c.MaxDepth)
	}
	if math.IsNaN(c.TMin) || math.IsNaN(c.TMax) || c.TMin > c.TMax {
		return fmt.Errorf("%w: t range [%v, %v] is empty", ErrInvalidConfig, c.TMin, c.TMax)
	}
	if !(c.ReflectionOffset >= 0) || !(c.ReflectionTMin >= 0) {
		return fmt.Errorf("%w: reflection offset %v and t min %v must be non-negative",
			ErrInvalidConfig, c.ReflectionOffset, c.ReflectionTMin)
	}
	return nil
}

// Viewport is the window in camera space that the image is projected onto
type Viewport struct {
	Width    float64
	Height   float64
	Distance float64 // Distance from the camera origin along +z
}

// DefaultViewport returns a 1x1 viewport at distance 1
func DefaultViewport() Viewport {
	return Viewport{Width: 1, Height: 1, Distance: 1}
}

// RenderConfig contains configuration for a whole render
type RenderConfig struct {
	Width      int // Image width in pixels
	Height     int // Image height in pixels
	NumWorkers int // Number of parallel row workers
	Trace      TraceConfig
	Viewport   Viewport
}

// DefaultRenderConfig returns sensible default values for the given image size
func DefaultRenderConfig(width, height int) RenderConfig {
	return RenderConfig{
		Width:      width,
		Height:     height,
		NumWorkers: DefaultNumWorkers,
		Trace:      DefaultTraceConfig(),
		Viewport:   DefaultViewport(),
	}
}

// Validate checks image size, worker count and tracing constants
func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.NumWorkers <= 0 {
		return fmt.Errorf("%w: worker count %d must be positive", ErrInvalidConfig, c.NumWorkers)
	}
	if !(c.Viewport.Width > 0) || !(c.Viewport.Height > 0) || !(c.Viewport.Distance > 0) {
		return fmt.Errorf("%w: viewport %+v must have positive dimensions", ErrInvalidConfig, c.Viewport)
	}
	return c.Trace.Validate()
}
