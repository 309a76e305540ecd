// Package bvp solves linear second-order boundary-value problems
//
//	P·y''(t) + Q·y'(t) + R·y(t) = F(t),   t ∈ [A, B],   y(A) = Ya,  y(B) = Yb
//
// by polynomial collocation in the monomial basis y(t) = Σ c_j t^j.
//
// 🚀 What is collocation?
//
//	The unknown solution is replaced by a degree N−1 polynomial. The two
//	boundary conditions fill the first and last rows of an N×N system and
//	the differential equation is enforced exactly at the N−2 interior nodes.
//	One dense solve yields the coefficients.
//
// ✨ Key features:
//   - Assemble builds the system for any Problem and node set.
//   - Collocate solves a prepared system and evaluates the polynomial at the nodes.
//   - Solve runs the whole pipeline on equispaced nodes.
//   - Catalog ships two reference problems with closed-form solutions.
//   - Study measures the error for a range of node counts concurrently.
//
// ⚙️ Usage:
//
//	p, _ := bvp.Lookup("b")
//	sol, err := bvp.Solve(p, 8)
//	if errors.Is(err, matrix.ErrSingular) {
//	  // the collocation system has no unique solution
//	}
//	m, _ := bvp.Compare(sol)
//	fmt.Println(m.MaxAbs)
//
// Performance:
//
//   - Time:   O(N³) for the dense solve, O(N²) for assembly and evaluation.
//   - Memory: O(N²).
package bvp
