package bvp

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// StudyPoint is the nodal error of one solve in a convergence study.
type StudyPoint struct {
	N       int `json:"n" yaml:"n"`
	Metrics `yaml:",inline"`
}

// Study solves p once per node count in ns and reports the nodal error of
// each solve, sorted by N ascending. Solves run concurrently, bounded by
// WithWorkers; the first failure cancels the remaining solves.
//
// Errors:
//   - ErrNoSizes for an empty ns; ErrNoExact when p has no exact solution.
//   - Any Solve error (e.g. matrix.ErrSingular), tagged with its N.
//   - ctx.Err() when the context is cancelled.
func Study(ctx context.Context, p Problem, ns []int, opts ...Option) ([]StudyPoint, error) {
	if len(ns) == 0 {
		return nil, fmt.Errorf("Study %q: %w", p.Name, ErrNoSizes)
	}
	if !p.HasExact() {
		return nil, fmt.Errorf("Study %q: %w", p.Name, ErrNoExact)
	}
	o := gatherOptions(opts...)

	points := make([]StudyPoint, len(ns))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, n := range ns {
		i, n := i, n
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sol, err := solve(p, n, o)
			if err != nil {
				return fmt.Errorf("N=%d: %w", n, err)
			}
			m, err := Compare(sol)
			if err != nil {
				return fmt.Errorf("N=%d: %w", n, err)
			}
			points[i] = StudyPoint{N: n, Metrics: m}
			o.logger.Debug("study point",
				zap.String("problem", p.Name),
				zap.Int("n", n),
				zap.Float64("max_abs", m.MaxAbs),
			)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Study %q: %w", p.Name, err)
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].N < points[j].N })

	return points, nil
}

// Monotone reports whether MaxAbs strictly decreases as N grows.
// Fewer than two points are trivially monotone.
func Monotone(points []StudyPoint) bool {
	for i := 1; i < len(points); i++ {
		if !(points[i].MaxAbs < points[i-1].MaxAbs) {
			return false
		}
	}

	return true
}

// Range expands from..to (inclusive) with the given step. A non-positive step
// or from > to yields nil.
func Range(from, to, step int) []int {
	if step <= 0 || from > to {
		return nil
	}
	out := make([]int, 0, (to-from)/step+1)
	for n := from; n <= to; n += step {
		out = append(out, n)
	}

	return out
}
