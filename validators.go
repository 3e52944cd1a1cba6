// Package beamform: canonical input validation shared by the calculators.
// Validators return plain sentinels (wrapped with the user index where one
// applies) so call sites stay minimal and tests can match via errors.Is.
package beamform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/beamform/cmat"
)

// validateChannel checks the channel matrix and derives the problem size.
// Returns ErrNilChannel for a nil matrix; a non-nil cmat.Dense always has
// at least one row and column by construction.
func validateChannel(h *cmat.Dense) (users, antennas int, err error) {
	if h == nil {
		return 0, 0, ErrNilChannel
	}
	users, antennas = h.Dims()

	return users, antennas, nil
}

// validateMask checks that a non-nil mask has one row per user, each of
// length antennas. A nil mask is valid and means "no restriction".
func validateMask(mask Mask, users, antennas int) error {
	if mask == nil {
		return nil
	}
	if len(mask) != users {
		return ErrMaskShape
	}
	for k := range mask {
		if len(mask[k]) != antennas {
			return fmt.Errorf("beamform: user %d: %w", k, ErrMaskShape)
		}
	}

	return nil
}

// validateEta checks that a non-nil eta has one strictly positive, finite
// entry per user. A nil eta is valid and means "all ones".
func validateEta(eta []float64, users int) error {
	if eta == nil {
		return nil
	}
	if len(eta) != users {
		return ErrEtaLength
	}
	for k, v := range eta {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("beamform: user %d: %w", k, ErrNonPositiveEta)
		}
	}

	return nil
}

// userErr tags a sentinel with the user index that triggered it.
func userErr(k int, err error) error {
	return fmt.Errorf("beamform: user %d: %w", k, err)
}
