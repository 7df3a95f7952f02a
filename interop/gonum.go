// SPDX-License-Identifier: MIT

// Package interop - gonum boundary (blas64.General and mat.Dense).
//
// Contracts:
//   - Exports copy the row-major flattening with Stride == Cols; the
//     backend owns its buffer, the layout layer keeps its own.
//   - Imports honor Stride > Cols by copying row windows, so views into
//     larger gonum matrices round-trip correctly.

package interop

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"

	"github.com/TomMD/hmatrix/dense"
)

// interopErrorf wraps a sentinel with an interop-operation context tag.
// Complexity: O(1).
func interopErrorf(op string, err error) error {
	return fmt.Errorf("interop.%s: %w", op, err)
}

// ToBlas64 exports m as a blas64.General header over an independent
// row-major copy, with Stride == Cols.
// Complexity: O(r*c).
func ToBlas64(m dense.Matrix[float64]) blas64.General {
	return blas64.General{
		Rows:   m.Rows(),
		Cols:   m.Cols(),
		Stride: m.Cols(),
		Data:   m.Flatten().Clone(),
	}
}

// FromBlas64 imports a blas64.General header as a dense matrix, copying
// the addressed window row by row (the stride may exceed the column
// count for views into larger matrices).
// Stage 1 (Validate): non-negative shape, stride covering the columns,
// buffer long enough for the addressed window.
// Stage 2 (Execute): copy row windows into a contiguous buffer.
//
// Errors: dense.ErrInvalidArgument (malformed header).
// Complexity: O(r*c).
func FromBlas64(g blas64.General) (dense.Matrix[float64], error) {
	if g.Rows < 0 || g.Cols < 0 || g.Stride < g.Cols {
		return dense.Matrix[float64]{}, interopErrorf("FromBlas64", dense.ErrInvalidArgument)
	}
	if g.Rows == 0 || g.Cols == 0 {
		return dense.Zeros[float64](g.Rows, g.Cols)
	}
	if len(g.Data) < (g.Rows-1)*g.Stride+g.Cols {
		return dense.Matrix[float64]{}, interopErrorf("FromBlas64", dense.ErrInvalidArgument)
	}
	buf := make([]float64, 0, g.Rows*g.Cols)
	for i := 0; i < g.Rows; i++ {
		buf = append(buf, g.Data[i*g.Stride:i*g.Stride+g.Cols]...)
	}

	return dense.FromSlice(g.Rows, g.Cols, buf)
}

// ToGonum exports m as a *mat.Dense. gonum rejects empty matrices, so an
// empty m is an error here rather than a panic there.
//
// Errors: dense.ErrInvalidArgument (empty matrix).
// Complexity: O(r*c).
func ToGonum(m dense.Matrix[float64]) (*mat.Dense, error) {
	if m.IsEmpty() {
		return nil, interopErrorf("ToGonum", dense.ErrInvalidArgument)
	}

	return mat.NewDense(m.Rows(), m.Cols(), m.Flatten().Clone()), nil
}

// FromGonum imports any mat.Matrix as a dense matrix. *mat.Dense takes a
// raw-buffer fast path through its blas64 header; other implementations
// go element by element through At.
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (dense.Matrix[float64], error) {
	if d, ok := src.(*mat.Dense); ok {
		return FromBlas64(d.RawMatrix())
	}
	rows, cols := src.Dims()

	return dense.Generate(rows, cols, func(i, j int) float64 { return src.At(i, j) })
}
