// Package beamform computes closed-form transmit beamforming vectors for a
// multi-user MIMO downlink, where one multi-antenna transmitter (or a set of
// cooperating transmitters) serves several single-antenna users at once.
//
// 🚀 What is beamform?
//
//	A small, deterministic library implementing the three classic linear
//	precoding strategies in their closed forms:
//	  • MRT     — maximum ratio transmission: steer all power at each user,
//	    ignore interference.
//	  • ZFBF    — zero-forcing: invert the channel so each beam is invisible
//	    to every other user.
//	  • SLNRMax — signal-to-leakage-and-noise-ratio maximization (also known
//	    as regularized zero-forcing or transmit MMSE): the tunable middle
//	    ground between the two.
//
// ✨ Key features:
//   - per-user antenna masks for partitioned/sectorized arrays
//   - per-user regularization (eta) for SLNRMax, spanning the full
//     MRT ↔ ZFBF continuum
//   - every returned beamforming vector has unit Euclidean norm
//   - pure functions: no state, no I/O, bit-identical outputs for
//     identical inputs
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/beamform"
//	  "github.com/katalvlaran/beamform/cmat"
//	)
//
//	h, _ := cmat.FromRows(channelRows) // numUsers × totalAntennas
//	opts := beamform.DefaultOptions()
//	w, err := beamform.ZFBF(h, &opts)  // totalAntennas × numUsers
//
// Subpackages:
//
//	cmat/ — dense complex128 matrices: products, conjugate transposes,
//	        Gram matrices and a pivoted linear solve, layered on gonum's
//	        complex BLAS.
//
// Performance:
//
//   - Each calculator is O(numUsers) independent per-user computations,
//     dominated by one linear solve: O(numUsers³) per user for ZFBF,
//     O(totalAntennas³) per user for SLNRMax.
//   - Iterations are fully independent; callers may shard users across
//     goroutines, though at realistic array sizes the solves are too cheap
//     for that to pay off.
//
// See examples in example_test.go and runnable scenarios under examples/.
package beamform
