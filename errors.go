package beamform

import "errors"

// Sentinel error set for the three calculators. Algorithms return these
// sentinels, wrapped with the offending user index where one exists; tests
// and callers match them via errors.Is.
var (
	// ErrNilChannel indicates the channel matrix argument is nil.
	ErrNilChannel = errors.New("beamform: channel matrix must not be nil")

	// ErrMaskShape indicates the antenna mask does not have one row per user
	// of length totalAntennas.
	ErrMaskShape = errors.New("beamform: antenna mask shape does not match channel matrix")

	// ErrEtaLength indicates the eta vector length differs from the user count.
	ErrEtaLength = errors.New("beamform: eta length does not match user count")

	// ErrNonPositiveEta indicates an eta entry that is zero, negative or not
	// finite; the SLNR regularization term is only positive definite for
	// strictly positive eta.
	ErrNonPositiveEta = errors.New("beamform: eta entries must be positive and finite")

	// ErrZeroChannel indicates a user's effective channel vector is zero —
	// the masked channel row has no energy, so no beam direction exists.
	ErrZeroChannel = errors.New("beamform: effective channel vector is zero")

	// ErrSingularChannel indicates the zero-forcing Gram matrix is singular
	// or ill-conditioned: fewer antennas than users, or linearly dependent
	// effective channels.
	ErrSingularChannel = errors.New("beamform: effective channel Gram matrix is singular or ill-conditioned")
)
