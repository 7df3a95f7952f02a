// SPDX-License-Identifier: MIT

// Package interop - gorgonia boundary (*tensor.Dense).
//
// Contracts:
//   - Exports build a 2-D tensor backed by an independent row-major copy.
//   - Imports accept exactly 2-D tensors whose element type matches the
//     requested Go type; anything else is an argument error, never a panic.

package interop

import (
	"gorgonia.org/tensor"

	"github.com/TomMD/hmatrix/dense"
)

// Real constrains the element types the gorgonia boundary supports.
// gorgonia derives runtime dtypes from the concrete slice type, so only
// the plain float kinds are admitted (no named types).
type Real interface {
	float32 | float64
}

// ToTensor exports m as a 2-D *tensor.Dense backed by an independent
// row-major copy. gorgonia rejects empty shapes, so an empty m is an
// error here rather than a panic there.
//
// Errors: dense.ErrInvalidArgument (empty matrix).
// Complexity: O(r*c).
func ToTensor[T Real](m dense.Matrix[T]) (*tensor.Dense, error) {
	if m.IsEmpty() {
		return nil, interopErrorf("ToTensor", dense.ErrInvalidArgument)
	}

	return tensor.New(
		tensor.WithShape(m.Rows(), m.Cols()),
		tensor.WithBacking([]T(m.Flatten().Clone())),
	), nil
}

// FromTensor imports a 2-D *tensor.Dense whose backing element type is T.
// Stage 1 (Validate): non-nil, exactly two dimensions, backing type T.
// Stage 2 (Execute): copy the row-major backing into a dense matrix.
//
// Errors: dense.ErrInvalidArgument (nil, wrong rank, or dtype mismatch).
// Complexity: O(r*c).
func FromTensor[T Real](t *tensor.Dense) (dense.Matrix[T], error) {
	if t == nil || t.Dims() != 2 {
		return dense.Matrix[T]{}, interopErrorf("FromTensor", dense.ErrInvalidArgument)
	}
	backing, ok := t.Data().([]T)
	if !ok {
		return dense.Matrix[T]{}, interopErrorf("FromTensor", dense.ErrInvalidArgument)
	}
	shape := t.Shape()

	return dense.FromSlice(shape[0], shape[1], backing)
}
