// SPDX-License-Identifier: MIT

// Package dense: domain types shared by the whole module.
// This file intentionally contains ONLY domain-facing types (element
// constraints, the storage-order tag, the flat Vector form). The Matrix
// type and its constructors live in dense.go; errors live in errors.go
// per the package conventions.
package dense

// Floats is a constraint for the floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// Complexes is a constraint for the complex element types.
type Complexes interface {
	~complex64 | ~complex128
}

// SignedInts is a constraint for the signed integer element types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for the unsigned integer element types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Scalar is the element constraint for Matrix and Vector: any fixed-width
// numeric type that supports raw flat-buffer storage. Element-specific
// numeric policy (NaN handling, tolerance) belongs to the numerical
// backends, not to this layout layer.
type Scalar interface {
	Floats | SignedInts | UnsignedInts | Complexes
}

// Order tags the physical layout of a matrix's flat buffer.
// Row-major stores each row contiguously (offset = i*cols + j);
// column-major stores each column contiguously (offset = j*rows + i).
type Order uint8

const (
	// RowMajor is the default storage order for all constructors.
	RowMajor Order = iota
	// ColMajor arises from O(1) transposition; consumers that flatten a
	// column-major matrix receive a row-major remapped copy.
	ColMajor
)

// String returns the conventional name of the storage order.
func (o Order) String() string {
	if o == ColMajor {
		return "col-major"
	}

	return "row-major"
}

// flip returns the opposite storage order. Complexity: O(1).
func (o Order) flip() Order {
	if o == RowMajor {
		return ColMajor
	}

	return RowMajor
}

// Vector is the flat form of a matrix: a contiguous buffer of homogeneous
// scalars. A Matrix's row-major flattening is a Vector of length rows*cols.
type Vector[T Scalar] []T

// Len returns the number of elements in the vector. Complexity: O(1).
func (v Vector[T]) Len() int { return len(v) }

// At retrieves element k, or ErrOutOfRange when k is outside [0, Len()).
// Complexity: O(1).
func (v Vector[T]) At(k int) (T, error) {
	if k < 0 || k >= len(v) {
		var zero T
		return zero, vectorErrorf("At", k, ErrOutOfRange)
	}

	return v[k], nil
}

// Clone returns an independent deep copy of the vector.
// Complexity: O(n).
func (v Vector[T]) Clone() Vector[T] {
	out := make(Vector[T], len(v))
	copy(out, v)

	return out
}
