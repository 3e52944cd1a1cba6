package beamform

import "github.com/katalvlaran/beamform/cmat"

// Leakage returns the user-by-beam coupling matrix H·W: entry (j, k) is the
// complex amplitude user j receives from the beam aimed at user k. The
// diagonal carries the useful signals; off-diagonal magnitudes are the
// inter-user leakage every downstream SINR or rate computation starts from
// (exactly zero off-diagonal for an unmasked zero-forcing W).
//
// Errors:
//   - ErrNilChannel when either argument is nil.
//   - cmat.ErrDimensionMismatch when W's row count differs from H's column
//     count.
//
// Complexity: O(numUsers²·totalAntennas).
func Leakage(h, w *cmat.Dense) (*cmat.Dense, error) {
	if h == nil || w == nil {
		return nil, ErrNilChannel
	}

	return cmat.Mul(h, w)
}
