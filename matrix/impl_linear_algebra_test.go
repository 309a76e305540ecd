// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for MatVec, Residual, LU and Solve.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/colloc/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-10

// TestMatVec checks the fast path and the At fallback agree.
func TestMatVec(t *testing.T) {
	a := mustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	x := []float64{1, 0, -1}

	y, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	yh, err := matrix.MatVec(hide{a}, x)
	require.NoError(t, err)
	require.Equal(t, y, yh)

	_, err = matrix.MatVec(a, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(nil, x)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestResidual checks r = A*x - b and the length guard on b.
func TestResidual(t *testing.T) {
	a := mustFrom(t, [][]float64{{2, 0}, {0, 3}})

	r, err := matrix.Residual(a, []float64{1, 1}, []float64{2, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1}, r)

	_, err = matrix.Residual(a, []float64{1, 1}, []float64{2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestLU_ReconstructsPA verifies P*A = L*U, the unit diagonal of L and the
// triangular structure of both factors.
func TestLU_ReconstructsPA(t *testing.T) {
	// Leading zero forces a row swap on the first column.
	a := mustFrom(t, [][]float64{
		{0, 2, 1},
		{1, 1, 1},
		{4, -2, 3},
	})

	f, err := matrix.LU(a)
	require.NoError(t, err)
	require.Equal(t, 4.0, mustAt(t, f.U, 0, 0), "largest |a[i,0]| becomes the first pivot")

	n := a.Rows()
	for i := 0; i < n; i++ {
		require.Equal(t, 1.0, mustAt(t, f.L, i, i))
		for j := i + 1; j < n; j++ {
			require.Zero(t, mustAt(t, f.L, i, j))
			require.Zero(t, mustAt(t, f.U, j, i))
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var lu float64
			for k := 0; k < n; k++ {
				lu += mustAt(t, f.L, i, k) * mustAt(t, f.U, k, j)
			}
			assert.InDelta(t, mustAt(t, a, f.Perm[i], j), lu, tol, "PA[%d,%d]", i, j)
		}
	}
}

// TestLU_FallbackMatchesFastPath ensures the generic path produces the same factors.
func TestLU_FallbackMatchesFastPath(t *testing.T) {
	a := mustDense(t, 6, 6)
	fillDiagDominant(t, a, 7)

	fast, err := matrix.LU(a)
	require.NoError(t, err)
	slow, err := matrix.LU(hide{a})
	require.NoError(t, err)

	require.Equal(t, fast.Perm, slow.Perm)
	require.Equal(t, fast.L.String(), slow.L.String())
	require.Equal(t, fast.U.String(), slow.U.String())
}

// TestLU_Errors covers nil, non-square and singular inputs.
func TestLU_Errors(t *testing.T) {
	_, err := matrix.LU(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.LU(mustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.LU(mustFrom(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.LU(mustDense(t, 3, 3)) // all zeros
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestSolve checks a hand-computed 3x3 system and input immutability.
func TestSolve(t *testing.T) {
	a := mustFrom(t, [][]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	})
	b := []float64{8, -11, -3}
	before := a.String()

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	require.Len(t, x, 3)
	assert.InDelta(t, 2.0, x[0], tol)
	assert.InDelta(t, 3.0, x[1], tol)
	assert.InDelta(t, -1.0, x[2], tol)

	require.Equal(t, before, a.String(), "Solve must not mutate A")
	require.Equal(t, []float64{8, -11, -3}, b, "Solve must not mutate b")
}

// TestSolve_RandomResidual solves diagonally dominant systems and checks the residual.
func TestSolve_RandomResidual(t *testing.T) {
	for _, n := range []int{1, 2, 5, 16, 40} {
		a := mustDense(t, n, n)
		fillDiagDominant(t, a, int64(n))
		b := make([]float64, n)
		for i := range b {
			b[i] = math.Sin(float64(i + 1))
		}

		x, err := matrix.Solve(a, b)
		require.NoError(t, err)

		r, err := matrix.Residual(a, x, b)
		require.NoError(t, err)
		for i, v := range r {
			assert.InDelta(t, 0, v, 1e-9, "n=%d r[%d]", n, i)
		}
	}
}

// TestSolve_Errors covers the validation order of Solve.
func TestSolve_Errors(t *testing.T) {
	a := mustFrom(t, [][]float64{{1, 0}, {0, 1}})

	_, err := matrix.Solve(nil, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Solve(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve(a, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.Solve(mustFrom(t, [][]float64{{1, 1}, {1, 1}}), []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestLUFactorsSolve_BadInput guards the factor-level solve.
func TestLUFactorsSolve_BadInput(t *testing.T) {
	var f *matrix.LUFactors
	_, err := f.Solve([]float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	g, err := matrix.LU(mustFrom(t, [][]float64{{3}}))
	require.NoError(t, err)
	_, err = g.Solve([]float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	x, err := g.Solve([]float64{6})
	require.NoError(t, err)
	require.Equal(t, []float64{2}, x)
}

func mustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}
