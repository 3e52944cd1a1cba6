// Package beamform: input types and configuration for the three calculators.
package beamform

// Mask is a per-user antenna-subset indicator: Mask[k][a] is true when
// antenna a may serve user k. It replaces the textbook stack of diagonal
// 0/1 matrices with one boolean row per user, which stores O(users·antennas)
// instead of O(antennas²·users) and turns every "H·D" product into an
// elementwise select.
//
// A nil Mask means every antenna serves every user.
type Mask [][]bool

// FullMask returns the explicit all-antennas-serve-all-users mask:
// users rows, each with antennas true entries.
// Complexity: O(users·antennas).
func FullMask(users, antennas int) Mask {
	m := make(Mask, users)
	for k := range m {
		m[k] = make([]bool, antennas)
		for a := range m[k] {
			m[k][a] = true
		}
	}

	return m
}

// Options configures the calculators.
//
// Fields:
//   - Mask — per-user antenna subsets. nil ⇒ all antennas serve all users.
//   - Eta  — per-user inverse-SNR regularization for SLNRMax, one strictly
//     positive entry per user. nil ⇒ all ones. Large eta drives SLNRMax
//     toward the zero-forcing solution; small eta toward MRT.
//     MRT and ZFBF ignore Eta.
//
// Example:
//
//	opts := beamform.DefaultOptions()
//	opts.Eta = []float64{10, 10, 0.1} // protect users 0-1, favor power at 2
//	w, err := beamform.SLNRMax(h, &opts)
type Options struct {
	Mask Mask
	Eta  []float64
}

// DefaultOptions returns the zero configuration: no antenna mask, unit eta.
// Passing a nil *Options to any calculator behaves identically.
func DefaultOptions() Options {
	return Options{}
}
