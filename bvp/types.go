package bvp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/colloc/matrix"
	"github.com/katalvlaran/colloc/poly"
)

// Problem describes P·y'' + Q·y' + R·y = F(t) on [A, B] with y(A)=Ya, y(B)=Yb.
//
// Fields:
//   - Name    : catalog key ("a", "b", ...).
//   - Title   : human-readable title.
//   - Equation: display form of the equation.
//   - Source  : optional forcing F(t); nil means F ≡ 0.
//   - Exact   : optional closed-form solution used only for comparison.
type Problem struct {
	Name     string
	Title    string
	Equation string

	A, B   float64
	Ya, Yb float64

	P, Q, R float64

	Source func(t float64) float64
	Exact  func(t float64) float64
}

// Validate checks the domain, the boundary values and the coefficients.
func (p Problem) Validate() error {
	if !finite(p.A) || !finite(p.B) || !(p.A < p.B) {
		return fmt.Errorf("problem %q: [%g, %g]: %w", p.Name, p.A, p.B, ErrBadDomain)
	}
	if !finite(p.Ya) || !finite(p.Yb) {
		return fmt.Errorf("problem %q: %w", p.Name, ErrBadBoundary)
	}
	if !finite(p.P) || !finite(p.Q) || !finite(p.R) || (p.P == 0 && p.Q == 0 && p.R == 0) {
		return fmt.Errorf("problem %q: %w", p.Name, ErrBadEquation)
	}

	return nil
}

// HasExact reports whether a closed-form solution is attached.
func (p Problem) HasExact() bool { return p.Exact != nil }

// Solution is the result of a collocation solve.
type Solution struct {
	Problem      Problem
	Nodes        []float64 // collocation nodes t_0..t_{N-1}
	Coefficients []float64 // c_0..c_{N-1} of Σ c_j t^j
	Values       []float64 // approximate y(t_i) at every node
}

// N returns the node count.
func (s *Solution) N() int { return len(s.Nodes) }

// Eval evaluates the collocation polynomial at t.
func (s *Solution) Eval(t float64) (float64, error) {
	return poly.Eval(s.Coefficients, t)
}

// ExactValues evaluates the problem's exact solution at every node.
func (s *Solution) ExactValues() ([]float64, error) {
	if !s.Problem.HasExact() {
		return nil, fmt.Errorf("problem %q: %w", s.Problem.Name, ErrNoExact)
	}
	out := make([]float64, len(s.Nodes))
	for i, t := range s.Nodes {
		out[i] = s.Problem.Exact(t)
	}

	return out, nil
}

// Solver solves a dense square system A*x = b.
type Solver interface {
	Solve(a matrix.Matrix, b []float64) ([]float64, error)
}

// SolverFunc adapts a plain function to the Solver interface.
type SolverFunc func(a matrix.Matrix, b []float64) ([]float64, error)

// Solve calls f(a, b).
func (f SolverFunc) Solve(a matrix.Matrix, b []float64) ([]float64, error) { return f(a, b) }

// NativeSolver is the default backend: LU with partial pivoting from package matrix.
var NativeSolver Solver = SolverFunc(matrix.Solve)

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
