package cmat_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/beamform/cmat"
)

// testMatrix builds a deterministic, well-conditioned n×n matrix: a smooth
// complex fill plus a dominant diagonal so Solve never trips ErrSingular.
func testMatrix(n int) *cmat.Dense {
	m, _ := cmat.NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			phase := float64(i*n+j) * 0.7
			m.Set(i, j, complex(math.Cos(phase), math.Sin(phase)))
		}
		m.Set(i, i, m.At(i, i)+complex(float64(n), 0))
	}

	return m
}

// benchmarkSolve runs SolveVec on an n×n deterministic system.
func benchmarkSolve(b *testing.B, n int) {
	a := testMatrix(n)
	rhs := make([]complex128, n)
	for i := range rhs {
		rhs[i] = complex(1, float64(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cmat.SolveVec(a, rhs); err != nil {
			b.Fatalf("SolveVec failed: %v", err)
		}
	}
}

// BenchmarkSolveVec_8 benchmarks an 8×8 solve (typical user count).
func BenchmarkSolveVec_8(b *testing.B) { benchmarkSolve(b, 8) }

// BenchmarkSolveVec_64 benchmarks a 64×64 solve (large antenna array).
func BenchmarkSolveVec_64(b *testing.B) { benchmarkSolve(b, 64) }

// BenchmarkMul_64 benchmarks a 64×64 complex matrix product.
func BenchmarkMul_64(b *testing.B) {
	x := testMatrix(64)
	y := testMatrix(64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cmat.Mul(x, y); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// BenchmarkGram_64x8 benchmarks the Gram product used by zero-forcing.
func BenchmarkGram_64x8(b *testing.B) {
	tall, _ := cmat.NewDense(64, 8)
	for i := 0; i < 64; i++ {
		for j := 0; j < 8; j++ {
			tall.Set(i, j, complex(math.Cos(float64(i+j)), math.Sin(float64(i-j))))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cmat.Gram(tall)
	}
}
