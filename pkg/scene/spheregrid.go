package scene

import (
	"math"

	"golang.org/x/image/colornames"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to an 8-bit RGB color
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	// Convert hue from degrees to radians
	hRad := h * math.Pi / 180.0

	// Convert from OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// First convert to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	// Cube the values
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// Convert LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.ColorFromUnit(r, g, blue)
}

// NewSphereGridScene creates a scene with a grid of colored spheres on a
// ground plane, alternating matte and mirror finishes
func NewSphereGridScene() (*Scene, error) {
	b := &builder{}

	b.plane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), finish(colornames.Dimgray, material.NoSpecular, 0.2))

	gridSize := 6
	spacing := 0.6
	sphereRadius := spacing * 0.35

	// OKLCH parameters for color variation
	baseLightness := 0.7
	minChroma := 0.05 // Near gray
	maxChroma := 0.2  // Vivid

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			// Columns across x, rows receding along z
			x := (float64(i) - float64(gridSize-1)/2) * spacing
			z := 3.0 + float64(j)*spacing
			position := core.NewVec3(x, -1+sphereRadius, z)

			// Vary hue across columns and chroma with depth
			hue := (float64(i) / float64(gridSize-1)) * 300.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			reflective := 0.0
			if (i+j)%2 == 1 {
				reflective = 0.35
			}

			mat := material.Material{Color: oklchToRGB(lightness, chroma, hue), Specular: 100, Reflective: reflective}
			b.sphere(position, sphereRadius, mat)
		}
	}

	b.ambient(0.2)
	b.point(0.6, core.NewVec3(2, 3, 1))
	b.directional(0.2, core.NewVec3(-1, 4, 1))

	return b.build()
}
