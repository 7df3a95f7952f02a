// SPDX-License-Identifier: MIT

// Package dense - index-aware mapping and the broadcasting binary lift.
//
// Purpose:
//   - Traverse elements in one fixed logical order (row 0 left-to-right,
//     then row 1, ...) regardless of physical storage order, so that
//     order-sensitive side effects behave deterministically.
//   - Reconcile operand shapes for binary elementwise application with the
//     historical combined compatibility rule (see broadcastCompatible).
//
// Determinism & Performance:
//   - Fixed i→j loops everywhere; a flat fast path runs when the operand is
//     stored row-major.

package dense

// MapWithIndex applies f(i, j, value) to every element of m in row-major
// logical order and collects the results into a new matrix of the same
// shape. The element type may change.
//
// Errors: ErrInvalidArgument (nil f).
// Complexity: O(r*c) calls to f.
func MapWithIndex[T, U Scalar](f func(i, j int, v T) U, m Matrix[T]) (Matrix[U], error) {
	if f == nil {
		return Matrix[U]{}, opErrorf("MapWithIndex", ErrInvalidArgument)
	}
	buf := make([]U, m.Size())
	if m.order == RowMajor {
		// Flat fast path: logical order equals physical order.
		for k, v := range m.data {
			buf[k] = f(k/m.cols, k%m.cols, v)
		}
	} else {
		for i := 0; i < m.rows; i++ {
			base := i * m.cols
			for j := 0; j < m.cols; j++ {
				buf[base+j] = f(i, j, m.data[j*m.rows+i])
			}
		}
	}

	return Matrix[U]{rows: m.rows, cols: m.cols, order: RowMajor, data: buf}, nil
}

// ForEachWithIndex applies f(i, j, value) to every element of m strictly in
// row-major logical order, discarding results. Use for order-sensitive side
// effects (printing, accumulation into external state).
//
// Errors: ErrInvalidArgument (nil f).
// Complexity: O(r*c) calls to f.
func ForEachWithIndex[T Scalar](f func(i, j int, v T), m Matrix[T]) error {
	if f == nil {
		return opErrorf("ForEachWithIndex", ErrInvalidArgument)
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			f(i, j, m.data[m.index(i, j)])
		}
	}

	return nil
}

// MapCollectWithIndex applies the effectful f in row-major logical order,
// collecting results into a new matrix of the same shape. Traversal stops
// at the first error, which is returned unwrapped alongside the zero
// matrix.
//
// Errors: ErrInvalidArgument (nil f); otherwise whatever f returns.
// Complexity: O(r*c) calls to f.
func MapCollectWithIndex[T, U Scalar](f func(i, j int, v T) (U, error), m Matrix[T]) (Matrix[U], error) {
	if f == nil {
		return Matrix[U]{}, opErrorf("MapCollectWithIndex", ErrInvalidArgument)
	}
	buf := make([]U, m.Size())
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			u, err := f(i, j, m.data[m.index(i, j)])
			if err != nil {
				return Matrix[U]{}, err
			}
			buf[base+j] = u
		}
	}

	return Matrix[U]{rows: m.rows, cols: m.cols, order: RowMajor, data: buf}, nil
}

// broadcastCompatible implements the historical combined compatibility
// rule for two shapes (r1,c1) and (r2,c2):
//
//	(min(r1,r2)==1 || r1==r2) && (min(c1,c2)==1 || c1==c2)
//
// This exact condition is a compatibility contract; keep it verbatim and do
// not substitute an independently-derived per-axis broadcast rule.
// Complexity: O(1).
func broadcastCompatible(r1, c1, r2, c2 int) bool {
	rowOK := min(r1, r2) == 1 || r1 == r2
	colOK := min(c1, c2) == 1 || c1 == c2

	return rowOK && colOK
}

// expandTo replicates m to the target shape (rows, cols): a unit row count
// replicates the single row down, a unit column count replicates the single
// column across. m must already satisfy broadcastCompatible against the
// target.
// Complexity: O(rows*cols).
func expandTo[T Scalar](m Matrix[T], rows, cols int) (Matrix[T], error) {
	out := m
	if m.rows != rows {
		if m.rows != 1 {
			return Matrix[T]{}, ErrNonConformable
		}
		var err error
		if out, err = ExtractRows(make([]int, rows), out); err != nil { // all-zero index list: row 0, rows times
			return Matrix[T]{}, err
		}
	}
	if out.cols != cols {
		if out.cols != 1 {
			return Matrix[T]{}, ErrNonConformable
		}
		var err error
		if out, err = ExtractColumns(make([]int, cols), out); err != nil {
			return Matrix[T]{}, err
		}
	}

	return out, nil
}

// Lift2Auto applies a binary vector operation f to two matrices after
// dimension reconciliation:
//
//   - equal shapes, or either operand 1×1: apply directly (the scalar is
//     replicated to the other operand's shape first);
//   - otherwise, when broadcastCompatible accepts the pair, each operand is
//     expanded by row/column replication to the elementwise-max shape;
//   - otherwise the shapes are nonconformable.
//
// f receives the row-major flattenings of the reconciled operands and must
// return a vector of the same length, which becomes the row-major data of
// the result.
// Stage 1 (Validate): f non-nil, shapes reconcilable.
// Stage 2 (Prepare): expand operands to the common shape.
// Stage 3 (Execute): run f on the flat buffers, validate the result length.
//
// Errors: ErrInvalidArgument (nil f), ErrNonConformable (incompatible
// shapes), ErrShapeMismatch (f returned a wrong-length vector), plus
// whatever f returns.
// Complexity: O(R*C) for the reconciled shape R×C, plus the cost of f.
func Lift2Auto[T Scalar](f func(a, b Vector[T]) (Vector[T], error), m1, m2 Matrix[T]) (Matrix[T], error) {
	if f == nil {
		return Matrix[T]{}, opErrorf("Lift2Auto", ErrInvalidArgument)
	}
	rows, cols := max(m1.rows, m2.rows), max(m1.cols, m2.cols)
	switch {
	case ValidateSameShape(m1, m2) == nil:
		// Already conformable; nothing to expand.
	case m1.Size() == 1 || m2.Size() == 1:
		// A 1×1 operand broadcasts against anything.
	case !broadcastCompatible(m1.rows, m1.cols, m2.rows, m2.cols):
		return Matrix[T]{}, opErrorf("Lift2Auto", ErrNonConformable)
	}
	a, err := expandTo(m1, rows, cols)
	if err != nil {
		return Matrix[T]{}, opErrorf("Lift2Auto", err)
	}
	b, err := expandTo(m2, rows, cols)
	if err != nil {
		return Matrix[T]{}, opErrorf("Lift2Auto", err)
	}
	out, err := f(a.Flatten(), b.Flatten())
	if err != nil {
		return Matrix[T]{}, err
	}
	if len(out) != rows*cols {
		return Matrix[T]{}, opErrorf("Lift2Auto", ErrShapeMismatch)
	}

	return Matrix[T]{rows: rows, cols: cols, order: RowMajor, data: out}, nil
}

// Zip2Auto is the scalar convenience over Lift2Auto: f is applied pairwise
// to reconciled elements. Same reconciliation and errors as Lift2Auto.
// Complexity: O(R*C).
func Zip2Auto[T Scalar](f func(x, y T) T, m1, m2 Matrix[T]) (Matrix[T], error) {
	if f == nil {
		return Matrix[T]{}, opErrorf("Zip2Auto", ErrInvalidArgument)
	}

	return Lift2Auto(func(a, b Vector[T]) (Vector[T], error) {
		out := make(Vector[T], len(a))
		for k := range a {
			out[k] = f(a[k], b[k])
		}

		return out, nil
	}, m1, m2)
}
