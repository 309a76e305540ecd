package bvp

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Metrics summarizes |y_approx − y_exact| over the nodes.
type Metrics struct {
	MaxAbs  float64 `json:"max_abs" yaml:"max_abs"`
	MeanAbs float64 `json:"mean_abs" yaml:"mean_abs"`
	RMS     float64 `json:"rms" yaml:"rms"`
}

// Compare measures the nodal error of sol against its problem's exact solution.
// Errors: ErrNoExact when the problem carries no closed form.
func Compare(sol *Solution) (Metrics, error) {
	exact, err := sol.ExactValues()
	if err != nil {
		return Metrics{}, fmt.Errorf("Compare: %w", err)
	}

	return errorMetrics(sol.Values, exact)
}

// errorMetrics computes Metrics for equal-length approximate/exact vectors.
func errorMetrics(approx, exact []float64) (Metrics, error) {
	if len(approx) != len(exact) || len(approx) == 0 {
		return Metrics{}, fmt.Errorf("Compare: %d vs %d values: %w", len(approx), len(exact), ErrNodeMismatch)
	}
	diff := make(stats.Float64Data, len(approx))
	sq := make(stats.Float64Data, len(approx))
	for i := range approx {
		diff[i] = math.Abs(approx[i] - exact[i])
		sq[i] = diff[i] * diff[i]
	}

	var m Metrics
	var err error
	if m.MaxAbs, err = stats.Max(diff); err != nil {
		return Metrics{}, fmt.Errorf("Compare: %w", err)
	}
	if m.MeanAbs, err = stats.Mean(diff); err != nil {
		return Metrics{}, fmt.Errorf("Compare: %w", err)
	}
	meanSq, err := stats.Mean(sq)
	if err != nil {
		return Metrics{}, fmt.Errorf("Compare: %w", err)
	}
	m.RMS = math.Sqrt(meanSq)

	return m, nil
}

// BoundaryResidual returns |y(A) − Ya| and |y(B) − Yb| for the collocation polynomial.
func BoundaryResidual(sol *Solution) (left, right float64, err error) {
	ya, err := sol.Eval(sol.Problem.A)
	if err != nil {
		return 0, 0, fmt.Errorf("BoundaryResidual: %w", err)
	}
	yb, err := sol.Eval(sol.Problem.B)
	if err != nil {
		return 0, 0, fmt.Errorf("BoundaryResidual: %w", err)
	}

	return math.Abs(ya - sol.Problem.Ya), math.Abs(yb - sol.Problem.Yb), nil
}
