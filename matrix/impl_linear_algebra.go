// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used to solve collocation
// systems: matrix-vector product, residuals, LU factorization with partial
// pivoting and direct solves. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - All kernels use central validators and return sentinels wrapped via matrixErrorf.
//   - *Dense operands hit a flat-slice fast path; other Matrix implementations
//     go through At/Set.

package matrix

import (
	"fmt"
	"math"
)

// zeroSum seeds the accumulators in MatVec and the substitution loops.
const zeroSum = 0.0

// machineEps is the float64 unit roundoff used to scale the singularity threshold.
const machineEps = 2.220446049250313e-16

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opLU       = "LU"
	opLUSolve  = "LUFactors.Solve"
	opSolve    = "Solve"
	opMatVec   = "MatVec"
	opResidual = "Residual"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows) // allocate exactly rows outputs

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = zeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = zeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Residual computes r = m*x - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(b) != m.Rows()).
func Residual(m Matrix, x, b []float64) ([]float64, error) {
	y, err := MatVec(m, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, len(y)); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	for i := range y {
		y[i] -= b[i]
	}

	return y, nil
}

// LUFactors holds a pivoted factorization P*A = L*U.
//   - L is unit lower triangular, U is upper triangular.
//   - Perm[i] is the row of A that was moved to row i.
//   - Sign is +1 or -1 depending on the parity of row swaps.
type LUFactors struct {
	L, U *Dense
	Perm []int
	Sign int
}

// LU computes the Doolittle factorization P*A = L*U with partial (row) pivoting.
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy A into a flat working buffer.
//   - Stage 2: For k=0..n-1 pick the row with the largest |a[i,k]| (i ≥ k,
//     lowest index on ties), swap it into place, store multipliers below the
//     pivot and update the trailing block.
//   - Stage 3: Split the working buffer into L (unit diagonal) and U.
//
// Inputs:
//   - m: square Matrix (n×n).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular when the best available
//     pivot satisfies |p| ≤ n·eps·max|A| (this includes an all-zero matrix).
//
// Determinism:
//   - Fixed k→i→j loop order and tie-breaking produce identical factors for identical input.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (*LUFactors, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := m.Rows()

	// Working copy (row-major). Input is never mutated.
	w := make([]float64, n*n)
	if d, ok := m.(*Dense); ok {
		copy(w, d.data)
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				w[i*n+j] = v
			}
		}
	}

	// Scale for the singularity threshold.
	maxAbs := 0.0
	for _, v := range w {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	tol := float64(n) * machineEps * maxAbs

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1

	var (
		i, j, k, p   int
		best, pivot  float64
		factor       float64
		baseI, baseK int
	)
	for k = 0; k < n; k++ {
		// Partial pivot search on column k.
		p, best = k, math.Abs(w[k*n+k])
		for i = k + 1; i < n; i++ {
			if a := math.Abs(w[i*n+k]); a > best {
				p, best = i, a
			}
		}
		if best <= tol {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				w[k*n+j], w[p*n+j] = w[p*n+j], w[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}

		// Eliminate below the pivot; multipliers are stored in place.
		baseK = k * n
		pivot = w[baseK+k]
		for i = k + 1; i < n; i++ {
			baseI = i * n
			factor = w[baseI+k] / pivot
			w[baseI+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				w[baseI+j] -= factor * w[baseK+j]
			}
		}
	}

	L, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	for i = 0; i < n; i++ {
		baseI = i * n
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				L.data[baseI+j] = w[baseI+j]
			case j == i:
				L.data[baseI+j] = 1.0
				U.data[baseI+j] = w[baseI+j]
			default:
				U.data[baseI+j] = w[baseI+j]
			}
		}
	}

	return &LUFactors{L: L, U: U, Perm: perm, Sign: sign}, nil
}

// Solve returns x with A*x = b using the stored factors.
// Implementation:
//   - Stage 1: y := P*b.
//   - Stage 2: forward substitution L*z = y (top-down, unit diagonal).
//   - Stage 3: backward substitution U*x = z (bottom-up).
//
// Errors: ErrNilMatrix / ErrDimensionMismatch on a bad b.
// Complexity: Time O(n^2), Space O(n).
func (f *LUFactors) Solve(b []float64) ([]float64, error) {
	if f == nil || f.L == nil || f.U == nil {
		return nil, matrixErrorf(opLUSolve, ErrNilMatrix)
	}
	n := f.L.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}

	x := make([]float64, n)
	for i, p := range f.Perm {
		x[i] = b[p]
	}

	var i, k, base int
	var sum float64
	// Forward: L has a unit diagonal.
	for i = 0; i < n; i++ {
		sum = zeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += f.L.data[base+k] * x[k]
		}
		x[i] -= sum
	}
	// Backward.
	for i = n - 1; i >= 0; i-- {
		sum = zeroSum
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += f.U.data[base+k] * x[k]
		}
		x[i] = (x[i] - sum) / f.U.data[base+i]
	}

	return x, nil
}

// Solve solves the square system A*x = b by LU factorization with partial pivoting.
// The input matrix and vector are not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square A or len(b) != n).
//   - ErrNaNInf when b holds a non-finite value.
//   - ErrSingular when A is singular to working precision.
//
// Complexity: Time O(n^3), Space O(n^2).
func Solve(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := f.Solve(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}
