package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ComputeLighting accumulates the light intensity reaching point from every
// light: ambient terms, Lambertian diffuse terms and, unless specular is
// material.NoSpecular, Phong highlights toward view. The result is clamped to 1.
// Occlusion is not tested; every light is treated as visible.
func ComputeLighting(point, normal, view core.Vec3, specular int, lights []Light) float64 {
	intensity := 0.0

	for _, light := range lights {
		l, directional := light.DirectionFrom(point)
		if !directional {
			intensity += light.Intensity()
			continue
		}

		// Diffuse
		nDotL := normal.Dot(l)
		if nDotL > 0 {
			intensity += light.Intensity() * nDotL
		}

		// Specular
		if specular != material.NoSpecular {
			r := normal.Multiply(2 * nDotL).Subtract(l)
			rDotV := r.Dot(view)
			if rDotV > 0 {
				cos := rDotV / (r.Length() * view.Length())
				intensity += light.Intensity() * math.Pow(cos, float64(specular))
			}
		}
	}

	return math.Min(1.0, intensity)
}
