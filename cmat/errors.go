package cmat

import "errors"

var (
	// ErrBadShape indicates non-positive dimensions or ragged input rows.
	ErrBadShape = errors.New("cmat: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a right-hand side of the wrong height.
	ErrDimensionMismatch = errors.New("cmat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("cmat: matrix is not square")

	// ErrSingular signals that elimination met a pivot below tolerance:
	// the system is singular or too ill-conditioned to solve reliably.
	ErrSingular = errors.New("cmat: matrix is singular or ill-conditioned")
)
