// Package matrix_test provides benchmarks for the factorization kernels,
// using deterministic fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/colloc/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{8, 32, 128}

// sinks to defeat dead-code elimination
var (
	sinkF *matrix.LUFactors
	sinkV []float64
)

func BenchmarkLU(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDiagDominant(b, A, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := matrix.LU(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = f
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDiagDominant(b, A, 4242)
			rhs := make([]float64, n)
			for i := range rhs {
				rhs[i] = float64(i)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := matrix.Solve(A, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}
