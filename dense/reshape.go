// SPDX-License-Identifier: MIT

// Package dense - shape conversion: reshape, transpose, vector views.
//
// Purpose:
//   - Reinterpret existing buffers under new shapes without touching the
//     elements themselves; every operation here is O(1) whenever the stored
//     order permits, with copies only on order remapping.

package dense

// Reshape reinterprets the row-major flattening of m with a new column
// count. The total element count is preserved; the implied row count is
// Size()/newCols.
// Stage 1 (Validate): newCols >= 1; Size() evenly divisible by newCols.
// Stage 2 (Execute): take the row-major flattening (O(1) when already
// row-major) and retag it with the new shape.
//
// Errors: ErrInvalidArgument (newCols < 1), ErrShapeMismatch (not divisible).
// Complexity: O(1) for row-major input, O(r*c) for column-major.
func Reshape[T Scalar](newCols int, m Matrix[T]) (Matrix[T], error) {
	if newCols < 1 {
		return Matrix[T]{}, opErrorf("Reshape", ErrInvalidArgument)
	}
	total := m.Size()
	if total%newCols != 0 {
		return Matrix[T]{}, opErrorf("Reshape", ErrShapeMismatch)
	}

	// Flatten shares the buffer on the row-major fast path; safe because
	// matrices are immutable.
	return Matrix[T]{
		rows:  total / newCols,
		cols:  newCols,
		order: RowMajor,
		data:  m.Flatten(),
	}, nil
}

// Transpose logically swaps row and column roles in O(1) by flipping the
// storage-order tag and the shape. No data moves; consumers that flatten
// the result see correctly reordered elements via the remapping in
// FlattenTo.
// Complexity: O(1).
func (m Matrix[T]) Transpose() Matrix[T] {
	return Matrix[T]{rows: m.cols, cols: m.rows, order: m.order.flip(), data: m.data}
}

// AsRow views a length-n vector as a 1×n matrix sharing the buffer.
// The caller hands the buffer over and must not write to v afterwards.
// Complexity: O(1).
func AsRow[T Scalar](v Vector[T]) Matrix[T] {
	return Matrix[T]{rows: 1, cols: len(v), order: RowMajor, data: v}
}

// AsColumn views a length-n vector as an n×1 matrix sharing the buffer.
// The caller hands the buffer over and must not write to v afterwards.
// Complexity: O(1).
func AsColumn[T Scalar](v Vector[T]) Matrix[T] {
	// A single column reads identically in either order.
	return Matrix[T]{rows: len(v), cols: 1, order: RowMajor, data: v}
}
