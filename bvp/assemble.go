package bvp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/colloc/matrix"
	"github.com/katalvlaran/colloc/poly"
)

// Assemble builds the collocation system A*c = rhs for problem p on nodes.
//
// Layout (N = len(nodes)):
//
//	row 0:       A[0][j]   = a^j                                   rhs[0]   = Ya
//	row i:       A[i][j]   = P·j(j−1)t_i^(j−2) + Q·j·t_i^(j−1) + R·t_i^j
//	                                                               rhs[i]   = F(t_i)
//	row N−1:     A[N−1][j] = b^j                                   rhs[N−1] = Yb
//
// The first and last node must equal A and B of the problem and the nodes
// must strictly increase, so every interior node lies inside (A, B).
//
// Errors:
//   - ErrTooFewNodes, plus Problem.Validate errors.
//   - ErrNodeMismatch for wrong endpoints or unordered/repeated/NaN nodes.
//   - matrix.ErrNaNInf when an entry overflows (very large N or domain).
func Assemble(p Problem, nodes []float64) (*matrix.Dense, []float64, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, fmt.Errorf("Assemble: %w", err)
	}
	n := len(nodes)
	if n < 2 {
		return nil, nil, fmt.Errorf("Assemble: %d nodes: %w", n, ErrTooFewNodes)
	}
	if nodes[0] != p.A || nodes[n-1] != p.B {
		return nil, nil, fmt.Errorf("Assemble: endpoints [%g, %g] vs domain [%g, %g]: %w",
			nodes[0], nodes[n-1], p.A, p.B, ErrNodeMismatch)
	}
	for i := 1; i < n; i++ {
		if !(nodes[i] > nodes[i-1]) {
			return nil, nil, fmt.Errorf("Assemble: node %d (%g) not above node %d (%g): %w",
				i, nodes[i], i-1, nodes[i-1], ErrNodeMismatch)
		}
	}

	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("Assemble: %w", err)
	}
	rhs := make([]float64, n)

	var i, j int
	var t, v float64
	for j = 0; j < n; j++ {
		if err = a.Set(0, j, math.Pow(p.A, float64(j))); err != nil {
			return nil, nil, fmt.Errorf("Assemble: boundary row: %w", err)
		}
		if err = a.Set(n-1, j, math.Pow(p.B, float64(j))); err != nil {
			return nil, nil, fmt.Errorf("Assemble: boundary row: %w", err)
		}
	}
	rhs[0], rhs[n-1] = p.Ya, p.Yb

	for i = 1; i < n-1; i++ {
		t = nodes[i]
		for j = 0; j < n; j++ {
			v = p.P*poly.Monomial(j, t, 2) + p.Q*poly.Monomial(j, t, 1) + p.R*poly.Monomial(j, t, 0)
			if err = a.Set(i, j, v); err != nil {
				return nil, nil, fmt.Errorf("Assemble: interior row %d: %w", i, err)
			}
		}
		if p.Source != nil {
			rhs[i] = p.Source(t)
		}
	}

	return a, rhs, nil
}
