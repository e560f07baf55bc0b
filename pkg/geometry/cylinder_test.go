package geometry

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func newUnitCylinder(t *testing.T) *Cylinder {
	t.Helper()
	// Cylinder along Y axis, from Y=0 to Y=2, radius 1
	cyl, err := NewCylinder(core.NewVec3(0, 0, 0), core.NewVec3(0, 3, 0), 1.0, 2.0, testMaterial)
	if err != nil {
		t.Fatalf("NewCylinder failed: %v", err)
	}
	return cyl
}

func TestNewCylinder(t *testing.T) {
	cyl := newUnitCylinder(t)

	// Check that axis is normalized and points in the right direction
	expectedAxis := core.NewVec3(0, 1, 0)
	if !cyl.Axis().Equals(expectedAxis) {
		t.Errorf("Expected axis %v, got %v", expectedAxis, cyl.Axis())
	}
}

func TestCylinder_Intersect(t *testing.T) {
	cyl := newUnitCylinder(t)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expected  []float64
	}{
		{
			name:      "perpendicular through lateral surface",
			origin:    core.NewVec3(2, 1, 0),
			direction: core.NewVec3(-1, 0, 0),
			expected:  []float64{1, 3},
		},
		{
			name:      "down the axis through both caps",
			origin:    core.NewVec3(0, 5, 0),
			direction: core.NewVec3(0, -1, 0),
			expected:  []float64{3, 5},
		},
		{
			name:      "up the axis from below",
			origin:    core.NewVec3(0.5, -1, 0),
			direction: core.NewVec3(0, 1, 0),
			expected:  []float64{1, 3},
		},
		{
			name:      "behind origin reported unfiltered",
			origin:    core.NewVec3(0, 1, 0),
			direction: core.NewVec3(1, 0, 0),
			expected:  []float64{-1, 1},
		},
		{
			name:      "enters lateral, exits bottom cap",
			origin:    core.NewVec3(-3, 2.5, 0),
			direction: core.NewVec3(1, -1, 0),
			expected:  []float64{2, 2.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := cyl.Intersect(tt.origin, tt.direction)
			approxRoots(t, roots, tt.expected, 1e-9)
		})
	}
}

func TestCylinder_Intersect_Misses(t *testing.T) {
	cyl := newUnitCylinder(t)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
	}{
		{"passes above", core.NewVec3(2, 3, 0), core.NewVec3(-1, 0, 0)},
		{"passes beside", core.NewVec3(2, 1, 0), core.NewVec3(0, 0, 1)},
		{"parallel outside radius", core.NewVec3(3, 5, 0), core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if roots := cyl.Intersect(tt.origin, tt.direction); roots != nil {
				t.Errorf("Expected nil, got %v", roots)
			}
		})
	}
}

func TestCylinder_NormalAt(t *testing.T) {
	cyl := newUnitCylinder(t)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		{"bottom cap", core.NewVec3(0.3, 0, 0.2), core.NewVec3(0, -1, 0)},
		{"top cap", core.NewVec3(0.3, 2, -0.2), core.NewVec3(0, 1, 0)},
		{"lateral +x", core.NewVec3(1, 1, 0), core.NewVec3(1, 0, 0)},
		{"lateral -z", core.NewVec3(0, 0.5, -1), core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if n := cyl.NormalAt(tt.point); !approxVec(n, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, n)
			}
		})
	}
}

func TestNewCylinder_Validation(t *testing.T) {
	tests := []struct {
		name   string
		axis   core.Vec3
		radius float64
		height float64
	}{
		{"zero axis", core.Vec3{}, 1, 1},
		{"zero radius", core.NewVec3(0, 1, 0), 0, 1},
		{"negative height", core.NewVec3(0, 1, 0), 1, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCylinder(core.NewVec3(0, 0, 0), tt.axis, tt.radius, tt.height, testMaterial)
			if !errors.Is(err, ErrInvalidShape) {
				t.Errorf("Expected ErrInvalidShape, got %v", err)
			}
		})
	}
}
