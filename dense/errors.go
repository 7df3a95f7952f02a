// SPDX-License-Identifier: MIT
// Package dense: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dense
// package (and re-used by block and interop). All operations MUST return
// these sentinels and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package dense

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the detection site — callers still match with errors.Is.

var (
	// ErrInvalidArgument is returned for arguments that are invalid regardless
	// of the operand's shape: negative dimensions, non-positive block sizes,
	// nil callbacks.
	ErrInvalidArgument = errors.New("dense: invalid argument")

	// ErrOutOfRange indicates that a row or column index (or a sub-region
	// bound derived from one) lies outside the operand's valid range.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrShapeMismatch indicates incompatible shapes between an operand and
	// a requested operation: short flat data, ragged row/column lists,
	// non-divisible reshape targets, unequal join dimensions, unresolvable
	// block grids.
	ErrShapeMismatch = errors.New("dense: shape mismatch")

	// ErrNonConformable is returned by the broadcasting lift when the two
	// operand shapes fail the combined row/column compatibility rule and no
	// replication can reconcile them.
	ErrNonConformable = errors.New("dense: nonconformable shapes")

	// ErrBuilderSpent indicates a write to, or a second freeze of, a Builder
	// whose buffer has already been handed over to a frozen Matrix.
	ErrBuilderSpent = errors.New("dense: builder already frozen")
)
