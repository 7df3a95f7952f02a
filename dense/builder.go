// SPDX-License-Identifier: MIT

// Package dense - scoped mutable construction (build, then freeze).
//
// Purpose:
//   - Offer the single sanctioned mutation construct of the layer: an
//     exclusively-owned write buffer with bounds-checked indexed writes and
//     a consuming Freeze into an immutable Matrix.
//
// Contracts:
//   - The buffer is owned by the Builder until Freeze; no aliasing is
//     possible because the Builder never hands the slice out.
//   - Freeze transfers the buffer without copying and marks the Builder
//     spent; every later Set or Freeze fails with ErrBuilderSpent.
//   - A frozen matrix is indistinguishable from constructor output.

package dense

import "fmt"

// Builder accumulates a rows×cols row-major buffer through indexed writes.
// Create with NewBuilder; the zero value is unusable (spent).
type Builder[T Scalar] struct {
	rows, cols int
	data       []T // nil once frozen
}

// builderErrorf wraps a sentinel with Builder method context.
// Complexity: O(1).
func builderErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Builder.%s(%d,%d): %w", method, row, col, err)
}

// NewBuilder allocates a zero-filled rows×cols build buffer.
//
// Errors: ErrInvalidArgument (negative extent).
// Complexity: O(r*c).
func NewBuilder[T Scalar](rows, cols int) (*Builder[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, opErrorf("NewBuilder", err)
	}

	return &Builder[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the build buffer's row count. Complexity: O(1).
func (b *Builder[T]) Rows() int { return b.rows }

// Cols returns the build buffer's column count. Complexity: O(1).
func (b *Builder[T]) Cols() int { return b.cols }

// Set writes v at logical position (i, j).
//
// Errors: ErrBuilderSpent (after Freeze), ErrOutOfRange.
// Complexity: O(1).
func (b *Builder[T]) Set(i, j int, v T) error {
	if b.data == nil {
		return builderErrorf("Set", i, j, ErrBuilderSpent)
	}
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		return builderErrorf("Set", i, j, ErrOutOfRange)
	}
	b.data[i*b.cols+j] = v

	return nil
}

// Fill writes v to every cell of the build buffer.
//
// Errors: ErrBuilderSpent.
// Complexity: O(r*c).
func (b *Builder[T]) Fill(v T) error {
	if b.data == nil {
		return builderErrorf("Fill", 0, 0, ErrBuilderSpent)
	}
	for k := range b.data {
		b.data[k] = v
	}

	return nil
}

// Freeze consumes the Builder and returns the accumulated buffer as an
// immutable row-major Matrix. The buffer is transferred, not copied; the
// Builder is spent afterwards and rejects all further use.
//
// Errors: ErrBuilderSpent (second freeze).
// Complexity: O(1).
func (b *Builder[T]) Freeze() (Matrix[T], error) {
	if b.data == nil {
		return Matrix[T]{}, opErrorf("Builder.Freeze", ErrBuilderSpent)
	}
	// Transfer ownership: drop the builder's reference before returning.
	buf := b.data
	b.data = nil

	return Matrix[T]{rows: b.rows, cols: b.cols, order: RowMajor, data: buf}, nil
}
