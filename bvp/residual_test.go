package bvp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/colloc/bvp"
	"github.com/katalvlaran/colloc/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEquationResidual_InteriorNodes checks that the equation holds at every
// interior node, which is exactly what the collocation rows impose.
func TestEquationResidual_InteriorNodes(t *testing.T) {
	for _, p := range bvp.Catalog() {
		sol, err := bvp.Solve(p, 10)
		require.NoError(t, err)

		res, err := bvp.EquationResidual(sol, sol.Nodes[1:sol.N()-1])
		require.NoError(t, err)
		require.Len(t, res, sol.N()-2)
		for i, r := range res {
			assert.InDelta(t, 0, r, 1e-9, "problem %s node %d", p.Name, i+1)
		}
	}
}

// TestEquationResidual_Source subtracts the forcing term: y = t² solves
// y'' = 2 exactly, so the residual is zero everywhere.
func TestEquationResidual_Source(t *testing.T) {
	p := bvp.Problem{
		Name: "quad", A: -1, B: 2, Ya: 1, Yb: 4,
		P:      1,
		Source: func(float64) float64 { return 2 },
	}
	sol, err := bvp.Solve(p, 5)
	require.NoError(t, err)

	res, err := bvp.EquationResidual(sol, []float64{-0.9, 0.05, 1.7})
	require.NoError(t, err)
	for _, r := range res {
		assert.InDelta(t, 0, r, 1e-9)
	}
	mid, err := bvp.MidpointResidual(sol)
	require.NoError(t, err)
	assert.Less(t, mid, 1e-9)
}

// TestMidpointResidual_Decreases checks that the equation is satisfied better
// between nodes as N grows for the exponential problem.
func TestMidpointResidual_Decreases(t *testing.T) {
	prev := math.Inf(1)
	for _, n := range []int{6, 8, 10, 12} {
		sol, err := bvp.Solve(bvp.ProblemB(), n)
		require.NoError(t, err)
		mid, err := bvp.MidpointResidual(sol)
		require.NoError(t, err)
		assert.Less(t, mid, prev, "N=%d", n)
		if n == 8 {
			assert.Greater(t, mid, 1e-3, "between nodes the equation is only approximate")
			assert.Less(t, mid, 1.0)
		}
		prev = mid
	}
}

func TestResidual_Errors(t *testing.T) {
	one := &bvp.Solution{Problem: bvp.ProblemB(), Nodes: []float64{0}, Coefficients: []float64{1}, Values: []float64{1}}
	_, err := bvp.MidpointResidual(one)
	assert.ErrorIs(t, err, bvp.ErrTooFewNodes)

	empty := &bvp.Solution{Problem: bvp.ProblemB()}
	_, err = bvp.EquationResidual(empty, []float64{0.5})
	assert.ErrorIs(t, err, poly.ErrEmpty)
}
