package beamform

import "github.com/katalvlaran/beamform/cmat"

// MRT computes maximum ratio transmission beamforming vectors: each user's
// beam is the conjugate matched filter of its own (masked) channel row,
// maximizing received signal power and ignoring inter-user interference.
//
// Inputs:
//   - h: numUsers × totalAntennas channel matrix; row k holds user k's
//     channel coefficients from every transmit antenna.
//   - opts: optional Mask (Eta is ignored). nil ⇒ defaults.
//
// Returns:
//   - totalAntennas × numUsers matrix; column k is user k's unit-norm
//     beamforming vector.
//
// Errors:
//   - ErrNilChannel, ErrMaskShape on invalid input.
//   - ErrZeroChannel (wrapped with the user index) when a masked channel
//     row has no energy — normalization would divide by zero.
//
// Complexity: O(numUsers·totalAntennas).
func MRT(h *cmat.Dense, opts *Options) (*cmat.Dense, error) {
	users, antennas, err := validateChannel(h)
	if err != nil {
		return nil, err
	}

	var mask Mask
	if opts != nil {
		mask = opts.Mask
	}
	if err = validateMask(mask, users, antennas); err != nil {
		return nil, err
	}

	w, _ := cmat.NewDense(antennas, users)
	for k := 0; k < users; k++ {
		// Useful channel: conjugated row k restricted to user k's antennas.
		v := usefulChannel(h, mask, k)

		norm := cmat.Norm(v)
		if norm == 0 {
			return nil, userErr(k, ErrZeroChannel)
		}
		for a := 0; a < antennas; a++ {
			w.Set(a, k, v[a]/complex(norm, 0))
		}
	}

	return w, nil
}
