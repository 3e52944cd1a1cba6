package beamform_test

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/beamform"
	"github.com/katalvlaran/beamform/cmat"
)

// ExampleMRT steers one beam per user on a diagonal (already orthogonal)
// channel; the matched filter simply picks each user's own antenna.
// Weight magnitudes are printed — conjugation flips the sign of a zero
// imaginary part, so raw complex values would render as "(1-0i)".
func ExampleMRT() {
	h, _ := cmat.FromRows([][]complex128{
		{1, 0},
		{0, 1},
	})

	w, _ := beamform.MRT(h, nil)
	for a := 0; a < 2; a++ {
		fmt.Printf("%.0f %.0f\n", cmplx.Abs(w.At(a, 0)), cmplx.Abs(w.At(a, 1)))
	}
	// Output:
	// 1 0
	// 0 1
}

// ExampleZFBF zero-forces two users with orthogonal channels and shows the
// defining property through the coupling matrix: full signal on the
// diagonal, nothing off it.
func ExampleZFBF() {
	h, _ := cmat.FromRows([][]complex128{
		{1, 1i},
		{1, -1i},
	})

	w, _ := beamform.ZFBF(h, nil)
	coupling, _ := beamform.Leakage(h, w)
	fmt.Printf("signal=%.1f leakage=%.1f\n",
		cmplx.Abs(coupling.At(0, 0)), cmplx.Abs(coupling.At(0, 1)))
	// Output:
	// signal=1.4 leakage=0.0
}

// ExampleSLNRMax computes a regularized beam; on a diagonal channel the
// regularization only rescales, so each beam keeps full weight on the
// user's own antenna.
func ExampleSLNRMax() {
	h, _ := cmat.FromRows([][]complex128{
		{2, 0},
		{0, 2},
	})

	opts := beamform.DefaultOptions()
	opts.Eta = []float64{1, 1}
	w, _ := beamform.SLNRMax(h, &opts)
	fmt.Printf("%.0f %.0f\n", cmplx.Abs(w.At(0, 0)), cmplx.Abs(w.At(1, 1)))
	// Output:
	// 1 1
}
