package geometry

import (
	"sort"
	"testing"
)

func TestPolynomialRoots(t *testing.T) {
	tests := []struct {
		name     string
		coeffs   []float64
		expected []float64
	}{
		// (x-1)(x-2)(x-3)(x-4)
		{"four real roots", []float64{1, -10, 35, -50, 24}, []float64{1, 2, 3, 4}},
		{"scaled leading coefficient", []float64{2, -20, 70, -100, 48}, []float64{1, 2, 3, 4}},
		{"leading zeros ignored", []float64{0, 0, 1, -3, 2}, []float64{1, 2}},
		{"trailing zeros are roots at zero", []float64{1, -3, 2, 0}, []float64{0, 1, 2}},
		{"linear", []float64{2, -1}, []float64{0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := polynomialRoots(tt.coeffs)
			var reals []float64
			for _, r := range roots {
				if !approxEqual(imag(r), 0, 1e-9) {
					t.Fatalf("Unexpected complex root %v in %v", r, roots)
				}
				reals = append(reals, real(r))
			}
			sort.Float64s(reals)
			approxRoots(t, reals, tt.expected, 1e-9)
		})
	}
}

func TestPolynomialRoots_Degenerate(t *testing.T) {
	if roots := polynomialRoots([]float64{0, 0, 0}); roots != nil {
		t.Errorf("Expected nil for zero polynomial, got %v", roots)
	}
	if roots := polynomialRoots([]float64{5}); len(roots) != 0 {
		t.Errorf("Expected no roots for a constant, got %v", roots)
	}
}

func TestPositiveRealRoots(t *testing.T) {
	roots := []complex128{complex(3, 0), complex(-1, 0), complex(0, 0), complex(1, 1e-9), complex(2, 0.5), complex(2, -0.5)}

	got := positiveRealRoots(roots)
	approxRoots(t, got, []float64{1, 3}, 1e-12)

	// x² + 1 has no real roots
	if got := positiveRealRoots(polynomialRoots([]float64{1, 0, 1})); got != nil {
		t.Errorf("Expected nil, got %v", got)
	}
}
