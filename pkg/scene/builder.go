package scene

import (
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// builder collects objects and lights, keeping the first construction error
type builder struct {
	objects []geometry.Object
	lights  []lights.Light
	err     error
}

func finish(c color.Color, specular int, reflective float64) material.Material {
	return material.Material{Color: core.ColorFrom(c), Specular: specular, Reflective: reflective}
}

func (b *builder) add(obj geometry.Object, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	b.objects = append(b.objects, obj)
}

func (b *builder) light(l lights.Light, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	b.lights = append(b.lights, l)
}

func (b *builder) sphere(center core.Vec3, radius float64, mat material.Material) {
	s, err := geometry.NewSphere(center, radius, mat)
	b.add(s, err)
}

func (b *builder) plane(point, normal core.Vec3, mat material.Material) {
	p, err := geometry.NewPlane(point, normal, mat)
	b.add(p, err)
}

func (b *builder) cylinder(base, axis core.Vec3, radius, height float64, mat material.Material) {
	c, err := geometry.NewCylinder(base, axis, radius, height, mat)
	b.add(c, err)
}

func (b *builder) torus(center, axis core.Vec3, major, minor float64, mat material.Material) {
	t, err := geometry.NewTorus(center, axis, major, minor, mat)
	b.add(t, err)
}

func (b *builder) ambient(intensity float64) {
	l, err := lights.NewAmbientLight(intensity)
	b.light(l, err)
}

func (b *builder) point(intensity float64, position core.Vec3) {
	l, err := lights.NewPointLight(intensity, position)
	b.light(l, err)
}

func (b *builder) directional(intensity float64, direction core.Vec3) {
	l, err := lights.NewDirectionalLight(intensity, direction)
	b.light(l, err)
}

func (b *builder) build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New(b.objects, b.lights)
}
