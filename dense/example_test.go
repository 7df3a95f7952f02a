// Package dense_test provides runnable documentation examples.
package dense_test

import (
	"fmt"

	"github.com/TomMD/hmatrix/dense"
)

// ExampleFromSlice demonstrates construction from a flat row-major buffer.
func ExampleFromSlice() {
	m, _ := dense.FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	fmt.Print(m)
	// Output:
	// [1, 2, 3]
	// [4, 5, 6]
}

// ExampleMatrix_Transpose shows the O(1) transpose: no data moves, yet the
// flattening reorders correctly.
func ExampleMatrix_Transpose() {
	m, _ := dense.FromSlice(2, 3, []int{1, 2, 3, 4, 5, 6})
	fmt.Print(m.Transpose())
	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}

// ExampleDiagRect builds a rectangular matrix with a filled diagonal.
func ExampleDiagRect() {
	m, _ := dense.DiagRect(0, dense.Vector[int]{10, 20, 30}, 3, 4)
	fmt.Print(m)
	// Output:
	// [10, 0, 0, 0]
	// [0, 20, 0, 0]
	// [0, 0, 30, 0]
}

// ExampleZip2Auto broadcasts a scalar across a matrix.
func ExampleZip2Auto() {
	m, _ := dense.FromSlice(2, 2, []int{1, 2, 3, 4})
	out, _ := dense.Zip2Auto(func(x, y int) int { return x * y }, m, dense.FromScalar(10))
	fmt.Print(out)
	// Output:
	// [10, 20]
	// [30, 40]
}
