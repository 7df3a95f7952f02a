// Package dense implements the core dense-matrix layout primitives:
// a generic, immutable Matrix[T] over a flat contiguous buffer with a
// row-major/column-major storage tag, plus the Vector[T] flattened form.
//
// The dense package provides:
//
//   - Constructors from flat data, row lists, column lists, and generating
//     functions, with strict shape validation.
//   - O(1) shape conversion: Transpose (storage-order flip), AsRow/AsColumn
//     vector views, and Reshape over the row-major flattening.
//   - Sub-region and permutation operations: SubMatrix windows, Take/Drop
//     of leading/trailing rows and columns, ExtractRows/ExtractColumns with
//     arbitrary index lists, FlipUD/FlipRL.
//   - Diagonal extraction (TakeDiag) and rectangular diagonal construction
//     (DiagRect, Diag) via the scoped Builder.
//   - Index-aware mapping in a fixed row-major traversal order, and a
//     broadcasting binary lift (Lift2Auto) with hmatrix-compatible
//     dimension reconciliation.
//
// Matrices are plain immutable values: every operation returns a new
// Matrix, and the only mutation construct is the build-then-freeze
// Builder. All precondition violations surface as sentinel errors from
// errors.go, matched with errors.Is; nothing in this package panics on
// user input.
package dense
