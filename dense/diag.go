// SPDX-License-Identifier: MIT

// Package dense - diagonal extraction and construction.

package dense

// TakeDiag returns the vector of elements at (k,k) for k in
// [0, min(Rows(), Cols())), independent of the storage order.
// Complexity: O(min(r,c)).
func TakeDiag[T Scalar](m Matrix[T]) Vector[T] {
	n := min(m.rows, m.cols)
	out := make(Vector[T], n)
	for k := 0; k < n; k++ {
		out[k] = m.data[m.index(k, k)]
	}

	return out
}

// DiagRect builds a rows×cols matrix whose (k,k) entries carry diag[k] for
// k < min(rows, cols, len(diag)) and whose remaining entries carry fill.
// Built through the scoped Builder: fill, write the diagonal, freeze.
//
// Errors: ErrInvalidArgument (negative extent).
// Complexity: O(r*c).
func DiagRect[T Scalar](fill T, diag Vector[T], rows, cols int) (Matrix[T], error) {
	b, err := NewBuilder[T](rows, cols)
	if err != nil {
		return Matrix[T]{}, opErrorf("DiagRect", ErrInvalidArgument)
	}
	// Background first, diagonal second; later writes win.
	if err = b.Fill(fill); err != nil {
		return Matrix[T]{}, opErrorf("DiagRect", err)
	}
	n := min(rows, cols, len(diag))
	for k := 0; k < n; k++ {
		if err = b.Set(k, k, diag[k]); err != nil {
			return Matrix[T]{}, opErrorf("DiagRect", err)
		}
	}

	return b.Freeze()
}

// Diag builds the n×n matrix with diag on the main diagonal and zeros
// elsewhere, where n = len(diag).
// Complexity: O(n²).
func Diag[T Scalar](diag Vector[T]) Matrix[T] {
	var zero T
	m, _ := DiagRect(zero, diag, len(diag), len(diag)) // extents are non-negative
	return m
}
