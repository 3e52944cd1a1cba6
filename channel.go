package beamform

import (
	"math/cmplx"

	"github.com/katalvlaran/beamform/cmat"
)

// effectiveChannel returns the effective channel matrix seen through user
// k's antenna subset: the conjugate transpose of the masked channel,
// totalAntennas × numUsers, with the rows of antennas not permitted for
// user k zeroed. With a nil mask this is simply Hᴴ.
//
// Column j is user j's conjugated channel restricted to user k's antennas —
// the matrix the zero-forcing and SLNR solves operate on.
// Complexity: O(users·antennas).
func effectiveChannel(h *cmat.Dense, mask Mask, k int) *cmat.Dense {
	users, antennas := h.Dims()

	heff, _ := cmat.NewDense(antennas, users) // dims already validated
	for a := 0; a < antennas; a++ {
		if mask != nil && !mask[k][a] {
			continue
		}
		for j := 0; j < users; j++ {
			heff.Set(a, j, cmplx.Conj(h.At(j, a)))
		}
	}

	return heff
}

// usefulChannel returns user k's conjugated channel vector restricted to its
// antenna subset: (H[k,:] ∘ mask_k)ᴴ as a length-totalAntennas slice.
// Complexity: O(antennas).
func usefulChannel(h *cmat.Dense, mask Mask, k int) []complex128 {
	_, antennas := h.Dims()

	v := make([]complex128, antennas)
	for a := 0; a < antennas; a++ {
		if mask != nil && !mask[k][a] {
			continue
		}
		v[a] = cmplx.Conj(h.At(k, a))
	}

	return v
}
