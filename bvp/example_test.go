package bvp_test

import (
	"fmt"

	"github.com/katalvlaran/colloc/bvp"
)

// ExampleSolve solves the exponential-decay problem on eight nodes and
// compares against the exact solution e^(3−3t).
func ExampleSolve() {
	p, _ := bvp.Lookup("b")
	sol, err := bvp.Solve(p, 8)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m, _ := bvp.Compare(sol)

	fmt.Printf("y(0) = %.6f\n", sol.Values[0])
	fmt.Printf("y(1) = %.6f\n", sol.Values[len(sol.Values)-1])
	fmt.Println("max error below 1e-3:", m.MaxAbs < 1e-3)

	// Output:
	// y(0) = 20.085537
	// y(1) = 1.000000
	// max error below 1e-3: true
}
