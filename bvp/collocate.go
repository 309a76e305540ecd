package bvp

import (
	"fmt"

	"github.com/katalvlaran/colloc/matrix"
	"github.com/katalvlaran/colloc/poly"
	"go.uber.org/zap"
)

// Collocate solves the prepared system a*c = b and evaluates the resulting
// polynomial Σ c_j t^j at every node of t.
//
// Inputs:
//   - a: N×N system matrix.
//   - b: right-hand side of length N.
//   - t: nodes of length N.
//
// Returns:
//   - []float64: approximate solution at the nodes (length N).
//
// Errors:
//   - matrix.ErrSingular when the system has no unique solution.
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch / ErrNodeMismatch on shape errors.
func Collocate(a matrix.Matrix, b, t []float64, opts ...Option) ([]float64, error) {
	_, y, err := collocate(a, b, t, gatherOptions(opts...))

	return y, err
}

// collocate returns both the coefficients and the nodal values.
func collocate(a matrix.Matrix, b, t []float64, o Options) ([]float64, []float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, nil, fmt.Errorf("Collocate: %w", err)
	}
	if len(t) != a.Rows() {
		return nil, nil, fmt.Errorf("Collocate: %d nodes for %d unknowns: %w", len(t), a.Rows(), ErrNodeMismatch)
	}

	coef, err := o.solver.Solve(a, b)
	if err != nil {
		o.logger.Debug("collocation solve failed", zap.Int("n", a.Rows()), zap.Error(err))
		return nil, nil, fmt.Errorf("Collocate: %w", err)
	}
	y, err := poly.EvalAll(coef, t)
	if err != nil {
		return nil, nil, fmt.Errorf("Collocate: %w", err)
	}

	return coef, y, nil
}

// Solve runs the full pipeline for p on n equispaced nodes:
// Linspace → Assemble → solve → evaluate.
func Solve(p Problem, n int, opts ...Option) (*Solution, error) {
	o := gatherOptions(opts...)
	return solve(p, n, o)
}

func solve(p Problem, n int, o Options) (*Solution, error) {
	if n < 2 {
		return nil, fmt.Errorf("Solve %q: %d nodes: %w", p.Name, n, ErrTooFewNodes)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	nodes, err := poly.Linspace(p.A, p.B, n)
	if err != nil {
		return nil, fmt.Errorf("Solve %q: %w", p.Name, err)
	}

	return SolveAt(p, nodes, withResolved(o))
}

// SolveAt runs the pipeline on caller-supplied nodes: first = A, last = B,
// strictly increasing in between. Other node sets yield ErrNodeMismatch.
func SolveAt(p Problem, nodes []float64, opts ...Option) (*Solution, error) {
	o := gatherOptions(opts...)

	a, rhs, err := Assemble(p, nodes)
	if err != nil {
		return nil, fmt.Errorf("Solve %q: %w", p.Name, err)
	}
	coef, y, err := collocate(a, rhs, nodes, o)
	if err != nil {
		return nil, fmt.Errorf("Solve %q: %w", p.Name, err)
	}
	o.logger.Debug("collocation solved",
		zap.String("problem", p.Name),
		zap.Int("nodes", len(nodes)),
	)

	ts := make([]float64, len(nodes))
	copy(ts, nodes)

	return &Solution{Problem: p, Nodes: ts, Coefficients: coef, Values: y}, nil
}

// withResolved replays an already-resolved Options value as a single Option.
func withResolved(r Options) Option {
	return func(o *Options) { *o = r }
}
