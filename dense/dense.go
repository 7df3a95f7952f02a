// SPDX-License-Identifier: MIT

// Package dense - generic flat-buffer storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly flat buffer behind an immutable Matrix[T]
//     value with an explicit storage-order tag.
//   - Guarantee safety at the public surface: indexed access returns errors
//     instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Invariants:
//   - len(data) == rows*cols at all times, for every constructed Matrix.
//   - rows >= 0 && cols >= 0; zero extents are legal (0×0, 0×N, N×0).
//   - No exported mutation: operations return fresh values, so buffers may
//     be shared between results (Transpose, AsRow, Flatten fast path).
//
// Complexity quicksheet:
//   - Constructors: O(r*c). At/Rows/Cols: O(1). Flatten: O(1) row-major,
//     O(r*c) column-major. Transpose: O(1).

package dense

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
	ctxCol    = "Col"    // method tag used in error wrappers
	ctxVector = "Vector" // type tag used in vector error wrappers
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf wraps a sentinel with a uniform Matrix context and callsite
// coordinates: "Matrix.<method>(row,col): <sentinel>".
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// vectorErrorf wraps a sentinel with Vector context and the offending index.
// Complexity: O(1).
func vectorErrorf(method string, k int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", ctxVector, method, k, err)
}

// opErrorf wraps a sentinel with a free-function context tag.
// Complexity: O(1).
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Matrix is an immutable dense matrix of fixed-width numeric scalars.
//   - rows, cols hold the logical shape.
//   - order tags the physical layout of data (see Order).
//   - data is a flat buffer of length rows*cols.
//
// The zero value is a valid 0×0 row-major matrix. Matrices are plain
// values: copy them freely, compare them with Equal.
type Matrix[T Scalar] struct {
	rows, cols int   // logical shape (>= 0)
	order      Order // physical layout of data
	data       []T   // contiguous storage, len == rows*cols
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Matrix[float64]{}

// FromSlice creates a rows×cols matrix from the leading rows*cols elements
// of data, read in row-major order.
// Stage 1 (Validate): rows, cols >= 0; len(data) >= rows*cols.
// Stage 2 (Execute): copy the leading window into fresh storage.
// Stage 3 (Finalize): return the immutable value.
//
// Excess elements beyond rows*cols are silently truncated. This mirrors the
// historical constructor contract and is relied upon by callers that carve
// matrices out of larger staging buffers; do not "fix" it.
//
// Errors: ErrInvalidArgument (negative extent), ErrShapeMismatch (short data).
// Complexity: O(r*c) time and memory.
func FromSlice[T Scalar](rows, cols int, data []T) (Matrix[T], error) {
	// Validate shape.
	if err := ValidateShape(rows, cols); err != nil {
		return Matrix[T]{}, opErrorf("FromSlice", err)
	}
	// Validate data length against the requested shape.
	n := rows * cols
	if len(data) < n {
		return Matrix[T]{}, opErrorf("FromSlice", ErrShapeMismatch)
	}
	// Copy exactly the leading window; extra elements are dropped.
	buf := make([]T, n)
	copy(buf, data[:n])

	return Matrix[T]{rows: rows, cols: cols, order: RowMajor, data: buf}, nil
}

// FromRows creates a matrix whose i-th row is rows[i]. All rows must share
// one length; an empty list yields the 0×0 matrix.
//
// Errors: ErrShapeMismatch (ragged rows).
// Complexity: O(r*c).
func FromRows[T Scalar](rows [][]T) (Matrix[T], error) {
	if len(rows) == 0 {
		return Matrix[T]{}, nil
	}
	width := len(rows[0])
	buf := make([]T, 0, len(rows)*width)
	for i := 0; i < len(rows); i++ {
		// Every row must match the width established by row 0.
		if len(rows[i]) != width {
			return Matrix[T]{}, opErrorf("FromRows", ErrShapeMismatch)
		}
		buf = append(buf, rows[i]...)
	}

	return Matrix[T]{rows: len(rows), cols: width, order: RowMajor, data: buf}, nil
}

// FromColumns creates a matrix whose j-th column is cols[j]. All columns
// must share one length; an empty list yields the 0×0 matrix.
//
// Errors: ErrShapeMismatch (ragged columns).
// Complexity: O(r*c).
func FromColumns[T Scalar](cols [][]T) (Matrix[T], error) {
	if len(cols) == 0 {
		return Matrix[T]{}, nil
	}
	height := len(cols[0])
	buf := make([]T, 0, len(cols)*height)
	for j := 0; j < len(cols); j++ {
		if len(cols[j]) != height {
			return Matrix[T]{}, opErrorf("FromColumns", ErrShapeMismatch)
		}
		buf = append(buf, cols[j]...)
	}

	// The concatenated columns are exactly the column-major flattening.
	return Matrix[T]{rows: height, cols: len(cols), order: ColMajor, data: buf}, nil
}

// Generate creates a rows×cols matrix with element (i,j) = f(i,j), filled
// in deterministic row-major order.
//
// Errors: ErrInvalidArgument (negative extent or nil f).
// Complexity: O(r*c) calls to f.
func Generate[T Scalar](rows, cols int, f func(i, j int) T) (Matrix[T], error) {
	if f == nil {
		return Matrix[T]{}, opErrorf("Generate", ErrInvalidArgument)
	}
	if err := ValidateShape(rows, cols); err != nil {
		return Matrix[T]{}, opErrorf("Generate", err)
	}
	buf := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		base := i * cols // row base offset, row-major
		for j := 0; j < cols; j++ {
			buf[base+j] = f(i, j)
		}
	}

	return Matrix[T]{rows: rows, cols: cols, order: RowMajor, data: buf}, nil
}

// Zeros creates a rows×cols matrix of zero values.
// Errors: ErrInvalidArgument. Complexity: O(r*c).
func Zeros[T Scalar](rows, cols int) (Matrix[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return Matrix[T]{}, opErrorf("Zeros", err)
	}
	// make() zero-fills deterministically.
	return Matrix[T]{rows: rows, cols: cols, order: RowMajor, data: make([]T, rows*cols)}, nil
}

// Konst creates a rows×cols matrix with every element equal to v.
// Errors: ErrInvalidArgument. Complexity: O(r*c).
func Konst[T Scalar](v T, rows, cols int) (Matrix[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return Matrix[T]{}, opErrorf("Konst", err)
	}
	buf := make([]T, rows*cols)
	for k := range buf {
		buf[k] = v
	}

	return Matrix[T]{rows: rows, cols: cols, order: RowMajor, data: buf}, nil
}

// Identity creates the n×n identity matrix.
// Errors: ErrInvalidArgument. Complexity: O(n²).
func Identity[T Scalar](n int) (Matrix[T], error) {
	if n < 0 {
		return Matrix[T]{}, opErrorf("Identity", ErrInvalidArgument)
	}
	buf := make([]T, n*n)
	var one T = 1
	for k := 0; k < n; k++ {
		buf[k*n+k] = one
	}

	return Matrix[T]{rows: n, cols: n, order: RowMajor, data: buf}, nil
}

// FromScalar wraps a single value as a 1×1 matrix. 1×1 matrices broadcast
// against any shape in block assembly and in Lift2Auto.
// Complexity: O(1).
func FromScalar[T Scalar](v T) Matrix[T] {
	return Matrix[T]{rows: 1, cols: 1, order: RowMajor, data: []T{v}}
}

// Rows returns the number of rows. Complexity: O(1).
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m Matrix[T]) Cols() int { return m.cols }

// Size returns the total element count rows*cols. Complexity: O(1).
func (m Matrix[T]) Size() int { return m.rows * m.cols }

// IsEmpty reports whether the matrix holds no elements. Complexity: O(1).
func (m Matrix[T]) IsEmpty() bool { return m.rows == 0 || m.cols == 0 }

// StorageOrder returns the physical layout tag of the backing buffer.
// Complexity: O(1).
func (m Matrix[T]) StorageOrder() Order { return m.order }

// index computes the flat offset of logical position (i, j) for the
// matrix's storage order. Callers must have bounds-checked i and j.
// Complexity: O(1).
func (m Matrix[T]) index(i, j int) int {
	if m.order == RowMajor {
		return i*m.cols + j
	}

	return j*m.rows + i
}

// inBounds reports whether (i, j) addresses a stored element.
// Complexity: O(1).
func (m Matrix[T]) inBounds(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// At retrieves the element at logical position (i, j), independent of the
// physical storage order.
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m Matrix[T]) At(i, j int) (T, error) {
	if !m.inBounds(i, j) {
		var zero T
		return zero, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[m.index(i, j)], nil
}

// Row returns a copy of row i as a Vector of length Cols().
//
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m Matrix[T]) Row(i int) (Vector[T], error) {
	if i < 0 || i >= m.rows {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make(Vector[T], m.cols)
	if m.order == RowMajor {
		// Fast path: the row is contiguous.
		copy(out, m.data[i*m.cols:(i+1)*m.cols])
		return out, nil
	}
	// Column-major: stride across columns.
	for j := 0; j < m.cols; j++ {
		out[j] = m.data[j*m.rows+i]
	}

	return out, nil
}

// Col returns a copy of column j as a Vector of length Rows().
//
// Errors: ErrOutOfRange.
// Complexity: O(r).
func (m Matrix[T]) Col(j int) (Vector[T], error) {
	if j < 0 || j >= m.cols {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make(Vector[T], m.rows)
	if m.order == ColMajor {
		// Fast path: the column is contiguous.
		copy(out, m.data[j*m.rows:(j+1)*m.rows])
		return out, nil
	}
	for i := 0; i < m.rows; i++ {
		out[i] = m.data[i*m.cols+j]
	}

	return out, nil
}

// Flatten returns the row-major flattening of the matrix as a Vector.
// When the matrix is already stored row-major the backing buffer is shared
// without copying (O(1)); callers MUST treat the result as read-only.
// A column-major matrix yields a freshly remapped copy.
//
// Complexity: O(1) row-major, O(r*c) column-major.
func (m Matrix[T]) Flatten() Vector[T] {
	return m.FlattenTo(RowMajor)
}

// FlattenTo returns the flattening of the matrix in the requested order,
// sharing the buffer when the stored order already matches (read-only
// contract as for Flatten) and remapping otherwise.
//
// Complexity: O(1) on order match, O(r*c) otherwise.
func (m Matrix[T]) FlattenTo(o Order) Vector[T] {
	if m.order == o || m.rows <= 1 || m.cols <= 1 {
		// Single-row and single-column buffers read identically either way.
		return Vector[T](m.data)
	}
	out := make(Vector[T], len(m.data))
	if o == RowMajor {
		// Stored column-major: walk logical row-major, read strided.
		for i := 0; i < m.rows; i++ {
			base := i * m.cols
			for j := 0; j < m.cols; j++ {
				out[base+j] = m.data[j*m.rows+i]
			}
		}
		return out
	}
	// Stored row-major, want column-major.
	for j := 0; j < m.cols; j++ {
		base := j * m.rows
		for i := 0; i < m.rows; i++ {
			out[base+i] = m.data[i*m.cols+j]
		}
	}

	return out
}

// Clone returns a deep copy of the matrix with independent storage,
// normalized to row-major order.
// Complexity: O(r*c).
func (m Matrix[T]) Clone() Matrix[T] {
	return Matrix[T]{rows: m.rows, cols: m.cols, order: RowMajor, data: m.Flatten().Clone()}
}

// Equal reports logical equality: same shape and same elements at every
// logical position, regardless of the physical storage order of either side.
// Complexity: O(r*c).
func Equal[T Scalar](a, b Matrix[T]) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			if a.data[a.index(i, j)] != b.data[b.index(i, j)] {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer for debugging. One bracketed line per row.
// Complexity: O(r*c).
func (m Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteString(fmtRowOpen)
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(&sb, "%v", m.data[m.index(i, j)])
			if j < m.cols-1 {
				sb.WriteString(fmtSep)
			}
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}
