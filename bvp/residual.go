package bvp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/colloc/poly"
	"github.com/montanaflynn/stats"
)

// EquationResidual evaluates P·y'' + Q·y' + R·y − F(t) for the collocation
// polynomial at every point of ts. It vanishes (up to rounding) at the
// interior nodes, so points between nodes show how well the equation holds
// elsewhere.
func EquationResidual(sol *Solution, ts []float64) ([]float64, error) {
	d1, err := poly.Deriv(sol.Coefficients)
	if err != nil {
		return nil, fmt.Errorf("EquationResidual: %w", err)
	}
	d2, err := poly.Deriv(d1)
	if err != nil {
		return nil, fmt.Errorf("EquationResidual: %w", err)
	}

	y, err := poly.EvalAll(sol.Coefficients, ts)
	if err != nil {
		return nil, fmt.Errorf("EquationResidual: %w", err)
	}
	dy, err := poly.EvalAll(d1, ts)
	if err != nil {
		return nil, fmt.Errorf("EquationResidual: %w", err)
	}
	ddy, err := poly.EvalAll(d2, ts)
	if err != nil {
		return nil, fmt.Errorf("EquationResidual: %w", err)
	}

	p := sol.Problem
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = p.P*ddy[i] + p.Q*dy[i] + p.R*y[i]
		if p.Source != nil {
			out[i] -= p.Source(t)
		}
	}

	return out, nil
}

// MidpointResidual returns max |EquationResidual| over the midpoints of
// consecutive nodes.
func MidpointResidual(sol *Solution) (float64, error) {
	if sol.N() < 2 {
		return 0, fmt.Errorf("MidpointResidual: %d nodes: %w", sol.N(), ErrTooFewNodes)
	}
	mids := make([]float64, sol.N()-1)
	for i := range mids {
		mids[i] = (sol.Nodes[i] + sol.Nodes[i+1]) / 2
	}
	res, err := EquationResidual(sol, mids)
	if err != nil {
		return 0, fmt.Errorf("MidpointResidual: %w", err)
	}
	abs := make(stats.Float64Data, len(res))
	for i, r := range res {
		abs[i] = math.Abs(r)
	}
	m, err := stats.Max(abs)
	if err != nil {
		return 0, fmt.Errorf("MidpointResidual: %w", err)
	}

	return m, nil
}
