// Package gonumlu adapts gonum's dense LU factorization to bvp.Solver so
// collocation systems can be cross-checked against a LAPACK-style backend.
package gonumlu

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/colloc/bvp"
	"github.com/katalvlaran/colloc/matrix"
	"gonum.org/v1/gonum/mat"
)

const opSolve = "gonumlu.Solve"

// Solver solves square systems with mat.LU. The zero value is ready to use.
type Solver struct{}

var _ bvp.Solver = Solver{}

// Solve factorizes a and solves a*x = b.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch on bad shapes.
//   - matrix.ErrSingular when gonum reports an infinite or excessive
//     condition number (mat.Condition).
func (Solver) Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	dense, err := toGonum(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	var lu mat.LU
	lu.Factorize(dense)
	if c := lu.Cond(); math.IsInf(c, 1) || math.IsNaN(c) {
		return nil, fmt.Errorf("%s: cond=%g: %w", opSolve, c, matrix.ErrSingular)
	}

	x := mat.NewVecDense(n, nil)
	rhs := mat.NewVecDense(n, append([]float64(nil), b...))
	if err = lu.SolveVecTo(x, false, rhs); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("%s: cond=%g: %w", opSolve, float64(cond), matrix.ErrSingular)
		}
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	return mat.Col(nil, 0, x), nil
}

// toGonum copies any matrix.Matrix into a row-major *mat.Dense.
func toGonum(a matrix.Matrix) (*mat.Dense, error) {
	r, c := a.Rows(), a.Cols()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := a.At(i, j)
			if err != nil {
				return nil, err
			}
			data[i*c+j] = v
		}
	}

	return mat.NewDense(r, c, data), nil
}
