package beamform

import (
	"errors"

	"github.com/katalvlaran/beamform/cmat"
)

// ZFBF computes zero-forcing beamforming vectors: each user's beam lies in
// the null space of every other user's effective channel, so in the
// noiseless ideal no transmission leaks between users.
//
// Per user k the effective channel Heff = (H ∘ mask_k)ᴴ is formed, the
// Gram system G·x = e_k with G = Heffᴴ·Heff is solved, and the channel
// inversion direction Heff·x is normalized. This is the classic
// pseudo-inverse column Heff·(Heffᴴ·Heff)⁻¹·e_k expressed as one K×K solve
// per user instead of an explicit inverse.
//
// Inputs:
//   - h: numUsers × totalAntennas channel matrix.
//   - opts: optional Mask (Eta is ignored). nil ⇒ defaults.
//
// Returns:
//   - totalAntennas × numUsers matrix with unit-norm columns.
//
// Errors:
//   - ErrNilChannel, ErrMaskShape on invalid input.
//   - ErrSingularChannel (wrapped with the user index) when the Gram matrix
//     is singular or ill-conditioned: totalAntennas < numUsers, or linearly
//     dependent effective channels. No regularization is applied here —
//     that trade-off is SLNRMax's.
//
// Complexity: O(numUsers·(totalAntennas·numUsers² + numUsers³)).
func ZFBF(h *cmat.Dense, opts *Options) (*cmat.Dense, error) {
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
	unit := make([]complex128, users)
	for k := 0; k < users; k++ {
		heff := effectiveChannel(h, mask, k)
		gram := cmat.Gram(heff)

		// Channel inversion column k: solve G·x = e_k, then map back
		// through the effective channel.
		unit[k] = 1
		x, solveErr := cmat.SolveVec(gram, unit)
		unit[k] = 0
		if solveErr != nil {
			if errors.Is(solveErr, cmat.ErrSingular) {
				return nil, userErr(k, ErrSingularChannel)
			}

			return nil, solveErr
		}

		dir, mulErr := cmat.MulVec(heff, x)
		if mulErr != nil {
			return nil, mulErr
		}

		norm := cmat.Norm(dir)
		if norm == 0 {
			return nil, userErr(k, ErrZeroChannel)
		}
		for a := 0; a < antennas; a++ {
			w.Set(a, k, dir[a]/complex(norm, 0))
		}
	}

	return w, nil
}
