// Package matrix provides the dense linear-algebra primitives used by the
// collocation solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return sentinel errors instead of panicking.
//   - Central validators (ValidateNotNil, ValidateSquare, ValidateVecLen).
//   - MatVec for y = A*x and Residual for r = A*x - b.
//   - LU, a Doolittle factorization with partial (row) pivoting, and Solve
//     for direct solution of square systems A*x = b.
//
// Singular systems are reported as ErrSingular; callers match with errors.Is.
//
// Dense storage is O(r*c); factorization is O(n³) time and O(n²) memory.
//
// See example_test.go for usage patterns.
package matrix
