package poly

import (
	"errors"
	"math"
)

var (
	// ErrEmpty indicates an empty coefficient vector.
	ErrEmpty = errors.New("poly: empty coefficient vector")

	// ErrBadCount indicates a node count below 2.
	ErrBadCount = errors.New("poly: node count must be >= 2")

	// ErrBadInterval indicates a non-finite or empty interval.
	ErrBadInterval = errors.New("poly: interval must be finite with a < b")
)

// Linspace returns n equispaced points on [a, b]. The first and last points
// are exactly a and b.
func Linspace(a, b float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, ErrBadCount
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || !(a < b) {
		return nil, ErrBadInterval
	}
	out := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := 0; i < n-1; i++ {
		out[i] = a + float64(i)*step
	}
	out[n-1] = b

	return out, nil
}

// Monomial returns the k-th derivative of t^j evaluated at t:
//
//	j!/(j-k)! · t^(j-k)   for k ≤ j
//	0                     for k > j
//
// Negative powers are never evaluated, so t = 0 is safe for every j, k.
func Monomial(j int, t float64, k int) float64 {
	if j < 0 || k < 0 || k > j {
		return 0
	}
	c := 1.0
	for i := 0; i < k; i++ {
		c *= float64(j - i)
	}

	return c * math.Pow(t, float64(j-k))
}

// Eval evaluates Σ coef[j]·t^j with Horner's rule.
func Eval(coef []float64, t float64) (float64, error) {
	if len(coef) == 0 {
		return 0, ErrEmpty
	}

	return horner(coef, t), nil
}

// EvalAll evaluates the polynomial at every point of ts.
func EvalAll(coef []float64, ts []float64) ([]float64, error) {
	if len(coef) == 0 {
		return nil, ErrEmpty
	}
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = horner(coef, t)
	}

	return out, nil
}

// horner requires len(coef) > 0.
func horner(coef []float64, t float64) float64 {
	y := coef[len(coef)-1]
	for j := len(coef) - 2; j >= 0; j-- {
		y = y*t + coef[j]
	}

	return y
}

// Deriv returns the coefficients of the derivative polynomial. The derivative
// of a constant is the single coefficient {0}.
func Deriv(coef []float64) ([]float64, error) {
	if len(coef) == 0 {
		return nil, ErrEmpty
	}
	if len(coef) == 1 {
		return []float64{0}, nil
	}
	out := make([]float64, len(coef)-1)
	for j := 1; j < len(coef); j++ {
		out[j-1] = float64(j) * coef[j]
	}

	return out, nil
}
