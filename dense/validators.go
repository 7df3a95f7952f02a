// SPDX-License-Identifier: MIT
// Package dense: canonical validation helpers.
//
// Purpose:
//   - Provide a single source of truth for recurring precondition checks.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their own context tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package dense

// validateIndices ensures every index lies within [0, bound).
// Returns ErrOutOfRange on the first violation.
// Complexity: O(n) with early exit.
func validateIndices(indices []int, bound int) error {
	for k := 0; k < len(indices); k++ {
		if indices[k] < 0 || indices[k] >= bound {
			return ErrOutOfRange
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Returns ErrShapeMismatch otherwise.
// Complexity: O(1).
func ValidateSameShape[T Scalar](a, b Matrix[T]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrShapeMismatch
	}

	return nil
}

// ValidateShape ensures rows and cols are non-negative extents.
// Returns ErrInvalidArgument otherwise.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidArgument
	}

	return nil
}
