// Package interop_test contains unit tests for the gonum boundary.
package interop_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"

	"github.com/TomMD/hmatrix/dense"
	"github.com/TomMD/hmatrix/interop"
)

// TestBlas64RoundTrip verifies the export/import pair preserves shape and
// content, including for column-major operands.
func TestBlas64RoundTrip(t *testing.T) {
	m, err := dense.FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	for _, operand := range []dense.Matrix[float64]{m, m.Transpose()} {
		g := interop.ToBlas64(operand)
		require.Equal(t, operand.Rows(), g.Rows)
		require.Equal(t, operand.Cols(), g.Cols)
		require.Equal(t, operand.Cols(), g.Stride)

		back, err := interop.FromBlas64(g)
		require.NoError(t, err)
		require.True(t, dense.Equal(operand, back))
	}
}

// TestToBlas64Independent ensures the exported buffer does not alias the
// matrix.
func TestToBlas64Independent(t *testing.T) {
	m, err := dense.FromSlice(1, 2, []float64{1, 2})
	require.NoError(t, err)

	g := interop.ToBlas64(m)
	g.Data[0] = 42 // backend-side write

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestFromBlas64Strided verifies import of a view whose stride exceeds its
// column count.
func TestFromBlas64Strided(t *testing.T) {
	// A 2×2 window of a 2×3 row-major buffer: stride 3.
	g := blas64.General{
		Rows:   2,
		Cols:   2,
		Stride: 3,
		Data:   []float64{1, 2, 3, 4, 5, 6},
	}

	back, err := interop.FromBlas64(g)
	require.NoError(t, err)
	require.Equal(t, dense.Vector[float64]{1, 2, 4, 5}, back.Flatten())
}

// TestFromBlas64Malformed ensures bad headers are rejected.
func TestFromBlas64Malformed(t *testing.T) {
	_, err := interop.FromBlas64(blas64.General{Rows: 2, Cols: 3, Stride: 2, Data: make([]float64, 6)})
	require.ErrorIs(t, err, dense.ErrInvalidArgument) // stride < cols

	_, err = interop.FromBlas64(blas64.General{Rows: 2, Cols: 3, Stride: 3, Data: make([]float64, 5)})
	require.ErrorIs(t, err, dense.ErrInvalidArgument) // short buffer
}

// TestGonumRoundTrip verifies the mat.Dense export/import pair.
func TestGonumRoundTrip(t *testing.T) {
	m, err := dense.FromSlice(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	d, err := interop.ToGonum(m)
	require.NoError(t, err)
	require.Equal(t, 3.0, d.At(1, 0))

	back, err := interop.FromGonum(d)
	require.NoError(t, err)
	require.True(t, dense.Equal(m, back))
}

// TestFromGonumGeneric exercises the element-wise path for non-Dense
// gonum matrices.
func TestFromGonumGeneric(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	back, err := interop.FromGonum(d.T()) // transposed view, not a *mat.Dense
	require.NoError(t, err)
	require.Equal(t, 3, back.Rows())
	require.Equal(t, dense.Vector[float64]{1, 4, 2, 5, 3, 6}, back.Flatten())
}

// TestToGonumEmpty ensures the empty-matrix precondition surfaces as an
// error instead of a gonum panic.
func TestToGonumEmpty(t *testing.T) {
	_, err := interop.ToGonum(dense.Matrix[float64]{})
	require.ErrorIs(t, err, dense.ErrInvalidArgument)
}
