package bvp

import (
	"fmt"
	"math"
	"sort"
)

// ProblemA is 9y'' + π²y = 0 on [0, 3/2] with y(0) = −1, y(3/2) = 3.
// Exact solution: y(t) = 3·sin(πt/3) − cos(πt/3).
func ProblemA() Problem {
	return Problem{
		Name:     "a",
		Title:    "Harmonic oscillator",
		Equation: "9y'' + π²y = 0",
		A:        0,
		B:        1.5,
		Ya:       -1,
		Yb:       3,
		P:        9,
		Q:        0,
		R:        math.Pi * math.Pi,
		Exact: func(t float64) float64 {
			return 3*math.Sin(math.Pi*t/3) - math.Cos(math.Pi*t/3)
		},
	}
}

// ProblemB is y'' = 3y − 2y' on [0, 1] with y(0) = e³, y(1) = 1.
// Exact solution: y(t) = e^(3−3t).
func ProblemB() Problem {
	return Problem{
		Name:     "b",
		Title:    "Exponential decay",
		Equation: "y'' = 3y - 2y'",
		A:        0,
		B:        1,
		Ya:       math.Exp(3),
		Yb:       1,
		P:        1,
		Q:        2,
		R:        -3,
		Exact: func(t float64) float64 {
			return math.Exp(3 - 3*t)
		},
	}
}

// catalog maps problem names to constructors; constructors keep every
// returned Problem independent of the others.
var catalog = map[string]func() Problem{
	"a": ProblemA,
	"b": ProblemB,
}

// Catalog returns every shipped problem ordered by name.
func Catalog() []Problem {
	names := Names()
	out := make([]Problem, 0, len(names))
	for _, name := range names {
		out = append(out, catalog[name]())
	}

	return out
}

// Names returns the catalog keys in ascending order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Lookup returns the named problem or ErrUnknownProblem.
func Lookup(name string) (Problem, error) {
	fn, ok := catalog[name]
	if !ok {
		return Problem{}, fmt.Errorf("%q: %w", name, ErrUnknownProblem)
	}

	return fn(), nil
}
