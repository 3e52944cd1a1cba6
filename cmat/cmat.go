package cmat

import (
	"math/cmplx"

	"gonum.org/v1/gonum/blas/cblas128"
)

// Dense is a row-major complex128 matrix.
// rows and cols are its dimensions; data holds rows*cols elements with
// element (i,j) at data[i*cols+j].
type Dense struct {
	rows, cols int
	data       []complex128
}

// NewDense creates a rows×cols Dense initialized to zeros.
// Returns ErrBadShape when either dimension is non-positive.
// Complexity: O(rows·cols).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{rows: rows, cols: cols, data: make([]complex128, rows*cols)}, nil
}

// FromRows builds a Dense from a rectangular [][]complex128.
// Returns ErrBadShape when the input is empty or rows differ in length.
// The input slices are copied; the result does not alias them.
// Complexity: O(rows·cols).
func FromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}

	cols := len(rows[0])
	m := &Dense{rows: len(rows), cols: cols, data: make([]complex128, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, ErrBadShape
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Returns ErrBadShape when n is non-positive.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Dims returns the number of rows and columns.
func (m *Dense) Dims() (rows, cols int) { return m.rows, m.cols }

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns element (i, j).
func (m *Dense) At(i, j int) complex128 { return m.data[i*m.cols+j] }

// Set assigns element (i, j).
func (m *Dense) Set(i, j int, v complex128) { m.data[i*m.cols+j] = v }

// Row returns a copy of row i.
func (m *Dense) Row(i int) []complex128 {
	out := make([]complex128, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])

	return out
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) []complex128 {
	out := make([]complex128, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.data[i*m.cols+j]
	}

	return out
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	out := &Dense{rows: m.rows, cols: m.cols, data: make([]complex128, len(m.data))}
	copy(out.data, m.data)

	return out
}

// H returns the conjugate (Hermitian) transpose as a new cols×rows matrix.
// Complexity: O(rows·cols).
func (m *Dense) H() *Dense {
	out := &Dense{rows: m.cols, cols: m.rows, data: make([]complex128, len(m.data))}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = cmplx.Conj(m.data[i*m.cols+j])
		}
	}

	return out
}

// ColNorm returns the Euclidean norm of column j without copying it.
// Complexity: O(rows).
func (m *Dense) ColNorm(j int) float64 {
	return cblas128.Nrm2(cblas128.Vector{N: m.rows, Inc: m.cols, Data: m.data[j:]})
}

// EqualApprox reports whether a and b share dimensions and agree entrywise
// within absolute tolerance tol.
func EqualApprox(a, b *Dense, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if cmplx.Abs(a.data[i]-b.data[i]) > tol {
			return false
		}
	}

	return true
}

// general wraps the matrix as a cblas128.General without copying.
func (m *Dense) general() cblas128.General {
	return cblas128.General{Rows: m.rows, Cols: m.cols, Stride: m.cols, Data: m.data}
}
