// Package bvp: functional configuration for Solve, Collocate and Study.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that enforces invariants.
package bvp

import "go.uber.org/zap"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultNodes is the node count used by both catalog problems.
	DefaultNodes = 8

	// DefaultWorkers bounds the number of concurrent solves in Study.
	DefaultWorkers = 4
)

// Panic messages for invalid option parameters (programmer error).
const (
	panicNilSolver  = "bvp: WithSolver(nil)"
	panicBadWorkers = "bvp: WithWorkers(n) requires n >= 1"
)

// Options is the resolved configuration. Fields are unexported; public APIs
// consume ...Option.
type Options struct {
	solver  Solver
	logger  *zap.Logger
	workers int
}

// Option mutates Options.
type Option func(*Options)

// WithSolver selects the dense linear solver backend.
// Panics on a nil solver.
func WithSolver(s Solver) Option {
	if s == nil {
		panic(panicNilSolver)
	}

	return func(o *Options) { o.solver = s }
}

// WithLogger attaches a structured logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithWorkers bounds the concurrency of Study. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicBadWorkers)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies user-provided Option setters on top of defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		solver:  NativeSolver,
		logger:  zap.NewNop(),
		workers: DefaultWorkers,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
