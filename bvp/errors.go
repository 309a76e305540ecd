package bvp

import "errors"

var (
	// ErrTooFewNodes indicates fewer than two nodes (both boundaries need a row).
	ErrTooFewNodes = errors.New("bvp: at least 2 nodes are required")

	// ErrBadDomain indicates a non-finite interval or A >= B.
	ErrBadDomain = errors.New("bvp: domain must be finite with A < B")

	// ErrBadEquation indicates non-finite coefficients or P = Q = R = 0.
	ErrBadEquation = errors.New("bvp: equation coefficients must be finite and not all zero")

	// ErrBadBoundary indicates a non-finite boundary value.
	ErrBadBoundary = errors.New("bvp: boundary values must be finite")

	// ErrNodeMismatch indicates node endpoints that do not match the domain,
	// or a node/system size disagreement.
	ErrNodeMismatch = errors.New("bvp: nodes do not match the problem")

	// ErrUnknownProblem indicates a catalog lookup miss.
	ErrUnknownProblem = errors.New("bvp: unknown problem")

	// ErrNoExact indicates a comparison against a problem without a closed-form solution.
	ErrNoExact = errors.New("bvp: problem has no exact solution")

	// ErrNoSizes indicates an empty node-count list passed to Study.
	ErrNoSizes = errors.New("bvp: no node counts to study")
)
