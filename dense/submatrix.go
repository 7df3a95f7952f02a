// SPDX-License-Identifier: MIT

// Package dense - sub-region windows and row/column permutations.
//
// Purpose:
//   - Materialize rectangular windows (SubMatrix and the Take/Drop
//     wrappers) and index-list extractions (ExtractRows/ExtractColumns,
//     the flips) as independent copies.
//
// Determinism & Performance:
//   - Fixed i→j loop order; output is always row-major; contiguous row
//     copies on the row-major fast path.

package dense

// SubMatrix returns a copy of the height×width region of m whose top-left
// corner is (originRow, originCol).
// Stage 1 (Validate): non-negative origin and extent; region within bounds.
// Stage 2 (Execute): copy row windows into fresh row-major storage.
//
// Errors: ErrInvalidArgument (negative origin/extent), ErrOutOfRange
// (region exceeds bounds).
// Complexity: O(h*w).
func SubMatrix[T Scalar](originRow, originCol, height, width int, m Matrix[T]) (Matrix[T], error) {
	if originRow < 0 || originCol < 0 || height < 0 || width < 0 {
		return Matrix[T]{}, opErrorf("SubMatrix", ErrInvalidArgument)
	}
	if originRow+height > m.rows || originCol+width > m.cols {
		return Matrix[T]{}, opErrorf("SubMatrix", ErrOutOfRange)
	}
	buf := make([]T, height*width)
	if m.order == RowMajor {
		// Fast path: each output row is a contiguous window of an input row.
		for i := 0; i < height; i++ {
			src := (originRow+i)*m.cols + originCol
			copy(buf[i*width:(i+1)*width], m.data[src:src+width])
		}
	} else {
		for i := 0; i < height; i++ {
			base := i * width
			for j := 0; j < width; j++ {
				buf[base+j] = m.data[(originCol+j)*m.rows+originRow+i]
			}
		}
	}

	return Matrix[T]{rows: height, cols: width, order: RowMajor, data: buf}, nil
}

// TakeRows returns the first n rows of m.
// Errors: ErrOutOfRange (n outside [0, Rows()]). Complexity: O(n*c).
func TakeRows[T Scalar](n int, m Matrix[T]) (Matrix[T], error) {
	if n < 0 || n > m.rows {
		return Matrix[T]{}, opErrorf("TakeRows", ErrOutOfRange)
	}

	return SubMatrix(0, 0, n, m.cols, m)
}

// DropRows returns m without its first n rows.
// Errors: ErrOutOfRange (n outside [0, Rows()]). Complexity: O((r-n)*c).
func DropRows[T Scalar](n int, m Matrix[T]) (Matrix[T], error) {
	if n < 0 || n > m.rows {
		return Matrix[T]{}, opErrorf("DropRows", ErrOutOfRange)
	}

	return SubMatrix(n, 0, m.rows-n, m.cols, m)
}

// TakeColumns returns the first n columns of m.
// Errors: ErrOutOfRange (n outside [0, Cols()]). Complexity: O(r*n).
func TakeColumns[T Scalar](n int, m Matrix[T]) (Matrix[T], error) {
	if n < 0 || n > m.cols {
		return Matrix[T]{}, opErrorf("TakeColumns", ErrOutOfRange)
	}

	return SubMatrix(0, 0, m.rows, n, m)
}

// DropColumns returns m without its first n columns.
// Errors: ErrOutOfRange (n outside [0, Cols()]). Complexity: O(r*(c-n)).
func DropColumns[T Scalar](n int, m Matrix[T]) (Matrix[T], error) {
	if n < 0 || n > m.cols {
		return Matrix[T]{}, opErrorf("DropColumns", ErrOutOfRange)
	}

	return SubMatrix(0, n, m.rows, m.cols-n, m)
}

// ExtractRows returns a new matrix whose i-th row is row indices[i] of m.
// Indices may repeat and appear in any order.
//
// Errors: ErrOutOfRange (any index outside [0, Rows())).
// Complexity: O(len(indices)*c).
func ExtractRows[T Scalar](indices []int, m Matrix[T]) (Matrix[T], error) {
	// Validate the whole index list before copying anything.
	if err := validateIndices(indices, m.rows); err != nil {
		return Matrix[T]{}, opErrorf("ExtractRows", err)
	}
	buf := make([]T, len(indices)*m.cols)
	for i, src := range indices {
		if m.order == RowMajor {
			copy(buf[i*m.cols:(i+1)*m.cols], m.data[src*m.cols:(src+1)*m.cols])
			continue
		}
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			buf[base+j] = m.data[j*m.rows+src]
		}
	}

	return Matrix[T]{rows: len(indices), cols: m.cols, order: RowMajor, data: buf}, nil
}

// ExtractColumns returns a new matrix whose j-th column is column
// indices[j] of m. Indices may repeat and appear in any order.
//
// Errors: ErrOutOfRange (any index outside [0, Cols())).
// Complexity: O(r*len(indices)).
func ExtractColumns[T Scalar](indices []int, m Matrix[T]) (Matrix[T], error) {
	if err := validateIndices(indices, m.cols); err != nil {
		return Matrix[T]{}, opErrorf("ExtractColumns", err)
	}
	// Columns of m are rows of its transpose; transposing back costs O(1).
	picked, err := ExtractRows(indices, m.Transpose())
	if err != nil {
		return Matrix[T]{}, opErrorf("ExtractColumns", err)
	}

	return picked.Transpose(), nil
}

// FlipUD reverses the row order of m (extraction with the reversed full
// row-index list).
// Complexity: O(r*c).
func FlipUD[T Scalar](m Matrix[T]) Matrix[T] {
	out, _ := ExtractRows(reversedIndices(m.rows), m) // full in-range list cannot fail
	return out
}

// FlipRL reverses the column order of m (extraction with the reversed full
// column-index list).
// Complexity: O(r*c).
func FlipRL[T Scalar](m Matrix[T]) Matrix[T] {
	out, _ := ExtractColumns(reversedIndices(m.cols), m)
	return out
}

// reversedIndices returns [n-1, n-2, ..., 0]. Complexity: O(n).
func reversedIndices(n int) []int {
	idx := make([]int, n)
	for k := 0; k < n; k++ {
		idx[k] = n - 1 - k
	}

	return idx
}
