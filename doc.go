// Package colloc is a small toolkit for solving linear second-order
// boundary-value problems by polynomial collocation and checking the
// result against a closed-form solution.
//
// 🚀 What is colloc?
//
//	A compact, dependency-light numerical module that brings together:
//		• Monomial basis: node generation, derivatives, Horner evaluation
//		• Dense linear algebra: row-major matrices, LU with partial pivoting
//		• Collocation: assemble P·y'' + Q·y' + R·y = F(t) with y(a)=ya, y(b)=yb
//		• Reference problems with exact solutions and error metrics
//		• Convergence studies over a range of node counts
//
// ✨ Why choose colloc?
//
//   - Small surface - one routine builds, solves and evaluates a problem
//   - Sentinel errors - singular systems and bad inputs surface via errors.Is
//   - Pluggable - swap the native LU for gonum with bvp.WithSolver
//
// Under the hood, everything is organized under a few subpackages:
//
//	bvp/        problem model, assembly, collocation solve, catalog, studies
//	poly/       monomial basis, Linspace, Eval, Deriv
//	matrix/     Dense storage, validators, MatVec, LU, Solve
//	internal/   configuration, reporting and the gonum backend
//	cmd/colloc  the command-line front end
//
// Quick example:
//
//	sol, err := bvp.Solve(bvp.ProblemB(), bvp.DefaultNodes)
//	if err != nil {
//		log.Fatal(err)
//	}
//	m, _ := bvp.Compare(sol)
//	fmt.Printf("max |error| = %.3e\n", m.MaxAbs)
//
// See examples/ for a complete program and cmd/colloc for the CLI.
package colloc
