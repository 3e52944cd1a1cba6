package beamform

import "github.com/katalvlaran/beamform/cmat"

// SLNRMax computes signal-to-leakage-and-noise-ratio maximizing beamforming
// vectors, also known as regularized zero-forcing or transmit MMSE. Each
// user's beam is the dominant generalized-eigenvector direction balancing
// its own signal power against leakage toward the other users plus noise.
//
// Per user k the effective channel Heff = (H ∘ mask_k)ᴴ is formed, the
// Tikhonov-regularized system
//
//	(I/eta_k + Heff·Heffᴴ)·x = Heff[:,k]
//
// is solved, and x is normalized. eta_k tunes the trade-off: large eta
// (weak regularization) approaches the zero-forcing solution, small eta
// (strong regularization) approaches MRT.
//
// Inputs:
//   - h: numUsers × totalAntennas channel matrix.
//   - opts: optional Mask and Eta. nil ⇒ no mask, unit eta.
//
// Returns:
//   - totalAntennas × numUsers matrix with unit-norm columns.
//
// Errors:
//   - ErrNilChannel, ErrMaskShape, ErrEtaLength on invalid input.
//   - ErrNonPositiveEta (wrapped with the user index) for eta_k ≤ 0 or
//     non-finite eta_k; the regularized system is Hermitian positive
//     definite — hence always solvable — only for eta_k > 0.
//   - ErrZeroChannel (wrapped with the user index) when user k's masked
//     channel row has no energy.
//
// Complexity: O(numUsers·totalAntennas³).
func SLNRMax(h *cmat.Dense, opts *Options) (*cmat.Dense, error) {
	users, antennas, err := validateChannel(h)
	if err != nil {
		return nil, err
	}

	var mask Mask
	var eta []float64
	if opts != nil {
		mask, eta = opts.Mask, opts.Eta
	}
	if err = validateMask(mask, users, antennas); err != nil {
		return nil, err
	}
	if err = validateEta(eta, users); err != nil {
		return nil, err
	}

	w, _ := cmat.NewDense(antennas, users)
	for k := 0; k < users; k++ {
		heff := effectiveChannel(h, mask, k)

		// Regularized Gram over antennas: I/eta_k + Heff·Heffᴴ.
		reg := cmat.GramOuter(heff)
		invEta := complex(1, 0)
		if eta != nil {
			invEta = complex(1/eta[k], 0)
		}
		for a := 0; a < antennas; a++ {
			reg.Set(a, a, reg.At(a, a)+invEta)
		}

		x, solveErr := cmat.SolveVec(reg, heff.Col(k))
		if solveErr != nil {
			// Unreachable for valid eta; surfaced rather than swallowed.
			return nil, solveErr
		}

		norm := cmat.Norm(x)
		if norm == 0 {
			return nil, userErr(k, ErrZeroChannel)
		}
		for a := 0; a < antennas; a++ {
			w.Set(a, k, x[a]/complex(norm, 0))
		}
	}

	return w, nil
}
