package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// rootImagTolerance is the largest imaginary part a root may carry and still count as real
const rootImagTolerance = 1e-6

// polynomialRoots returns all complex roots of the polynomial whose coefficients
// are given from the highest degree down, computed as the eigenvalues of the
// companion matrix. Leading zero coefficients are ignored and trailing zeros
// contribute roots at zero.
func polynomialRoots(coeffs []float64) []complex128 {
	for len(coeffs) > 0 && coeffs[0] == 0 {
		coeffs = coeffs[1:]
	}
	zeros := 0
	for len(coeffs) > 0 && coeffs[len(coeffs)-1] == 0 {
		coeffs = coeffs[:len(coeffs)-1]
		zeros++
	}
	if len(coeffs) == 0 {
		return nil
	}

	roots := make([]complex128, 0, len(coeffs)-1+zeros)
	if n := len(coeffs) - 1; n > 0 {
		companion := mat.NewDense(n, n, nil)
		for j := 0; j < n; j++ {
			companion.Set(0, j, -coeffs[j+1]/coeffs[0])
		}
		for i := 1; i < n; i++ {
			companion.Set(i, i-1, 1)
		}

		var eig mat.Eigen
		if !eig.Factorize(companion, mat.EigenNone) {
			return nil
		}
		roots = append(roots, eig.Values(nil)...)
	}
	for i := 0; i < zeros; i++ {
		roots = append(roots, 0)
	}
	return roots
}

// positiveRealRoots keeps the roots with a negligible imaginary part and a
// strictly positive real part, sorted ascending. Returns nil if none survive.
func positiveRealRoots(roots []complex128) []float64 {
	var out []float64
	for _, r := range roots {
		if math.Abs(imag(r)) > rootImagTolerance || real(r) <= 0 {
			continue
		}
		out = append(out, real(r))
	}
	return sortedRoots(out)
}
