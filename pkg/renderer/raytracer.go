package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene interface to avoid circular imports
type Scene interface {
	Objects() []geometry.Object
	Lights() []lights.Light
}

// Raytracer resolves rays to colors against a read-only scene.
// It holds no mutable state and may be shared between goroutines.
type Raytracer struct {
	scene  Scene
	config TraceConfig
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config TraceConfig) *Raytracer {
	return &Raytracer{
		scene:  scene,
		config: config,
	}
}

// Config returns the tracing constants
func (rt *Raytracer) Config() TraceConfig {
	return rt.config
}

// closestIntersection scans every object and returns the index of the one
// with the smallest t in [tMin, tMax], or -1. On an exact tie the earlier
// object wins.
func (rt *Raytracer) closestIntersection(origin, direction core.Vec3, tMin, tMax float64) (int, float64) {
	closest := -1
	closestT := math.Inf(1)

	for i, obj := range rt.scene.Objects() {
		for _, t := range obj.Intersect(origin, direction) {
			if t >= tMin && t <= tMax && t < closestT {
				closestT = t
				closest = i
			}
		}
	}

	return closest, closestT
}

// TraceRay returns the color seen along origin + t*direction for t in [tMin, tMax].
// depth counts reflections so far; past MaxDepth the background is returned.
func (rt *Raytracer) TraceRay(origin, direction core.Vec3, tMin, tMax float64, depth int) core.Color {
	if depth > rt.config.MaxDepth {
		return rt.config.Background
	}

	index, t := rt.closestIntersection(origin, direction, tMin, tMax)
	if index < 0 {
		return rt.config.Background
	}

	obj := rt.scene.Objects()[index]
	point := origin.Add(direction.Multiply(t))
	normal := obj.NormalAt(point)
	view := direction.Negate()
	mat := obj.Material()

	intensity := lights.ComputeLighting(point, normal, view, mat.Specular, rt.scene.Lights())
	localColor := mat.Color.Scale(intensity)

	if !mat.IsReflective() {
		return localColor
	}

	reflected := direction.Reflect(normal).Normalize()
	reflectedOrigin := point.Add(reflected.Multiply(rt.config.ReflectionOffset))
	reflectedColor := rt.TraceRay(reflectedOrigin, reflected, rt.config.ReflectionTMin, math.Inf(1), depth+1)

	return localColor.Blend(reflectedColor, mat.Reflective)
}

// TracePrimary traces a camera ray over the configured primary range
func (rt *Raytracer) TracePrimary(ray core.Ray) core.Color {
	return rt.TraceRay(ray.Origin, ray.Direction, rt.config.TMin, rt.config.TMax, 0)
}

// Hit describes the first surface a primary ray meets
type Hit struct {
	Object geometry.Object
	Index  int // Position of Object in the scene
	T      float64
	Point  core.Vec3
	Normal core.Vec3
}

// Inspect finds the nearest object along a primary ray without shading it
func (rt *Raytracer) Inspect(ray core.Ray) (Hit, bool) {
	index, t := rt.closestIntersection(ray.Origin, ray.Direction, rt.config.TMin, rt.config.TMax)
	if index < 0 {
		return Hit{Index: -1}, false
	}

	obj := rt.scene.Objects()[index]
	point := ray.At(t)
	return Hit{
		Object: obj,
		Index:  index,
		T:      t,
		Point:  point,
		Normal: obj.NormalAt(point),
	}, true
}
