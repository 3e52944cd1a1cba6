package cmat

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
)

// Mul returns the product a·b.
// Returns ErrDimensionMismatch unless a.Cols == b.Rows.
// Complexity: O(a.Rows · a.Cols · b.Cols).
func Mul(a, b *Dense) (*Dense, error) {
	if a.cols != b.rows {
		return nil, ErrDimensionMismatch
	}

	c := &Dense{rows: a.rows, cols: b.cols, data: make([]complex128, a.rows*b.cols)}
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a.general(), b.general(), 0, c.general())

	return c, nil
}

// MulVec returns the matrix-vector product a·x.
// Returns ErrDimensionMismatch unless len(x) == a.Cols.
// Complexity: O(a.Rows · a.Cols).
func MulVec(a *Dense, x []complex128) ([]complex128, error) {
	if len(x) != a.cols {
		return nil, ErrDimensionMismatch
	}

	y := make([]complex128, a.rows)
	cblas128.Gemv(blas.NoTrans, 1, a.general(),
		cblas128.Vector{N: len(x), Inc: 1, Data: x}, 0,
		cblas128.Vector{N: len(y), Inc: 1, Data: y})

	return y, nil
}

// Gram returns aᴴ·a, the cols×cols Gram matrix of a's columns.
// The result is Hermitian positive semi-definite.
// Complexity: O(a.Cols² · a.Rows).
func Gram(a *Dense) *Dense {
	g := &Dense{rows: a.cols, cols: a.cols, data: make([]complex128, a.cols*a.cols)}
	cblas128.Gemm(blas.ConjTrans, blas.NoTrans, 1, a.general(), a.general(), 0, g.general())

	return g
}

// GramOuter returns a·aᴴ, the rows×rows outer Gram matrix of a's rows.
// The result is Hermitian positive semi-definite.
// Complexity: O(a.Rows² · a.Cols).
func GramOuter(a *Dense) *Dense {
	g := &Dense{rows: a.rows, cols: a.rows, data: make([]complex128, a.rows*a.rows)}
	cblas128.Gemm(blas.NoTrans, blas.ConjTrans, 1, a.general(), a.general(), 0, g.general())

	return g
}

// Norm returns the Euclidean norm of v.
// Complexity: O(len(v)).
func Norm(v []complex128) float64 {
	return cblas128.Nrm2(cblas128.Vector{N: len(v), Inc: 1, Data: v})
}

// Dot returns the conjugated dot product xᴴ·y.
// Returns ErrDimensionMismatch when the lengths differ.
// Complexity: O(len(x)).
func Dot(x, y []complex128) (complex128, error) {
	if len(x) != len(y) {
		return 0, ErrDimensionMismatch
	}

	return cblas128.Dotc(
		cblas128.Vector{N: len(x), Inc: 1, Data: x},
		cblas128.Vector{N: len(y), Inc: 1, Data: y},
	), nil
}
