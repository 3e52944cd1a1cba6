package cmat

import "math/cmplx"

// DefaultPivotTol is the relative pivot threshold for Solve and SolveVec:
// a pivot whose magnitude falls below DefaultPivotTol times the largest
// magnitude in the coefficient matrix marks the system singular.
const DefaultPivotTol = 1e-12

// Solve solves the square system a·X = b for X by Gauss–Jordan elimination
// with partial (row) pivoting on an augmented copy; a and b are not modified.
//
// Inputs:
//   - a: n×n coefficient matrix.
//   - b: n×rhs right-hand sides, one per column.
//
// Returns:
//   - X: n×rhs solution matrix.
//
// Errors:
//   - ErrNonSquare when a is not square.
//   - ErrDimensionMismatch when b has a different row count than a.
//   - ErrSingular when a pivot falls below DefaultPivotTol relative to the
//     largest entry of a (singular or ill-conditioned system).
//
// Complexity: O(n²·(n+rhs)) time, O(n·(n+rhs)) memory.
func Solve(a, b *Dense) (*Dense, error) {
	if a.rows != a.cols {
		return nil, ErrNonSquare
	}
	if b.rows != a.rows {
		return nil, ErrDimensionMismatch
	}

	n, rhs := a.rows, b.cols

	// Relative pivot tolerance, scaled by the largest coefficient magnitude.
	scale := 0.0
	for _, v := range a.data {
		if av := cmplx.Abs(v); av > scale {
			scale = av
		}
	}
	if scale == 0 {
		return nil, ErrSingular
	}
	tol := DefaultPivotTol * scale

	// Augmented working copy: [a | b], row-major, width n+rhs.
	width := n + rhs
	aug := make([]complex128, n*width)
	for i := 0; i < n; i++ {
		copy(aug[i*width:i*width+n], a.data[i*n:(i+1)*n])
		copy(aug[i*width+n:(i+1)*width], b.data[i*rhs:(i+1)*rhs])
	}

	for col := 0; col < n; col++ {
		// Partial pivoting: bring the largest remaining entry into place.
		pivot, maxAbs := col, 0.0
		for r := col; r < n; r++ {
			if av := cmplx.Abs(aug[r*width+col]); av > maxAbs {
				maxAbs, pivot = av, r
			}
		}
		if maxAbs < tol {
			return nil, ErrSingular
		}
		if pivot != col {
			pr, cr := aug[pivot*width:(pivot+1)*width], aug[col*width:(col+1)*width]
			for j := range cr {
				pr[j], cr[j] = cr[j], pr[j]
			}
		}

		// Normalize the pivot row.
		p := aug[col*width+col]
		for j := col; j < width; j++ {
			aug[col*width+j] /= p
		}

		// Eliminate the column from every other row.
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := aug[r*width+col]
			if f == 0 {
				continue
			}
			for j := col; j < width; j++ {
				aug[r*width+j] -= f * aug[col*width+j]
			}
		}
	}

	x := &Dense{rows: n, cols: rhs, data: make([]complex128, n*rhs)}
	for i := 0; i < n; i++ {
		copy(x.data[i*rhs:(i+1)*rhs], aug[i*width+n:(i+1)*width])
	}

	return x, nil
}

// SolveVec solves the square system a·x = b for a single right-hand side.
// It shares Solve's pivoting, tolerance and error conditions.
// Complexity: O(n³) time, O(n²) memory.
func SolveVec(a *Dense, b []complex128) ([]complex128, error) {
	if len(b) != a.rows {
		return nil, ErrDimensionMismatch
	}

	rhs := &Dense{rows: len(b), cols: 1, data: make([]complex128, len(b))}
	copy(rhs.data, b)

	x, err := Solve(a, rhs)
	if err != nil {
		return nil, err
	}

	return x.data, nil
}
