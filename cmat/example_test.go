package cmat_test

import (
	"fmt"

	"github.com/katalvlaran/beamform/cmat"
)

// ExampleMul multiplies a matrix by the identity.
func ExampleMul() {
	a, _ := cmat.FromRows([][]complex128{
		{1, 2},
		{3, 4},
	})
	id, _ := cmat.Identity(2)

	c, _ := cmat.Mul(a, id)
	fmt.Println(c.At(0, 0), c.At(1, 1))
	// Output:
	// (1+0i) (4+0i)
}

// ExampleSolveVec solves a diagonal system with an exact solution.
func ExampleSolveVec() {
	a, _ := cmat.FromRows([][]complex128{
		{2, 0},
		{0, 4},
	})

	x, _ := cmat.SolveVec(a, []complex128{2, 2})
	fmt.Println(x[0], x[1])
	// Output:
	// (1+0i) (0.5+0i)
}
