// Package poly implements the monomial polynomial basis used by collocation:
// equispaced node generation, basis derivatives, and evaluation of
// y(t) = Σ c_j t^j.
//
// ⚙️ Usage:
//
//	nodes, _ := poly.Linspace(0, 1, 8)
//	d2 := poly.Monomial(5, nodes[3], 2) // second derivative of t^5 at t_3
//	y, _ := poly.Eval(coef, 0.5)
//
// Performance:
//
//   - Eval:     O(N) per point (Horner).
//   - Monomial: O(1) per call (one math.Pow).
package poly
