// Package dense_test contains unit tests for sub-region windows and
// row/column permutation operations.
package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TomMD/hmatrix/dense"
)

// sample4x4 builds the 4×4 matrix with element (i,j) = 10*i + j.
func sample4x4(t *testing.T) dense.Matrix[int] {
	t.Helper()
	m, err := dense.Generate(4, 4, func(i, j int) int { return 10*i + j })
	require.NoError(t, err)

	return m
}

// TestSubMatrix verifies rectangular region extraction.
func TestSubMatrix(t *testing.T) {
	m := sample4x4(t)

	sub, err := dense.SubMatrix(1, 2, 2, 2, m)
	require.NoError(t, err)
	require.Equal(t, dense.Vector[int]{12, 13, 22, 23}, sub.Flatten())
}

// TestSubMatrixOfTranspose ensures extraction respects logical positions on
// column-major storage.
func TestSubMatrixOfTranspose(t *testing.T) {
	m := sample4x4(t)

	sub, err := dense.SubMatrix(1, 2, 2, 2, m.Transpose()) // tr(i,j) = m(j,i)
	require.NoError(t, err)
	require.Equal(t, dense.Vector[int]{21, 31, 22, 32}, sub.Flatten())
}

// TestSubMatrixBounds ensures regions exceeding the matrix fail.
func TestSubMatrixBounds(t *testing.T) {
	m := sample4x4(t)

	_, err := dense.SubMatrix(3, 0, 2, 1, m) // rows 3..4 exceed 4
	require.ErrorIs(t, err, dense.ErrOutOfRange)

	_, err = dense.SubMatrix(0, 3, 1, 2, m) // cols 3..4 exceed 4
	require.ErrorIs(t, err, dense.ErrOutOfRange)

	_, err = dense.SubMatrix(-1, 0, 1, 1, m)
	require.ErrorIs(t, err, dense.ErrInvalidArgument)
}

// TestTakeDropRowsColumns verifies the thin SubMatrix wrappers.
func TestTakeDropRowsColumns(t *testing.T) {
	m := sample4x4(t)

	taken, err := dense.TakeRows(2, m)
	require.NoError(t, err)
	require.Equal(t, 2, taken.Rows())
	require.Equal(t, dense.Vector[int]{0, 1, 2, 3}, mustRow(t, taken, 0))

	dropped, err := dense.DropRows(3, m)
	require.NoError(t, err)
	require.Equal(t, 1, dropped.Rows())
	require.Equal(t, dense.Vector[int]{30, 31, 32, 33}, mustRow(t, dropped, 0))

	left, err := dense.TakeColumns(1, m)
	require.NoError(t, err)
	require.Equal(t, 1, left.Cols())

	right, err := dense.DropColumns(2, m)
	require.NoError(t, err)
	require.Equal(t, dense.Vector[int]{2, 3}, mustRow(t, right, 0))

	_, err = dense.TakeRows(5, m)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
	_, err = dense.DropColumns(-1, m)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
}

// TestExtractRows verifies selection in arbitrary order with duplicates:
// row i of the result equals the source row at indices[i].
func TestExtractRows(t *testing.T) {
	m := sample4x4(t)
	indices := []int{3, 0, 0, 2}

	picked, err := dense.ExtractRows(indices, m)
	require.NoError(t, err)
	require.Equal(t, len(indices), picked.Rows())
	for i, src := range indices {
		require.Equal(t, mustRow(t, m, src), mustRow(t, picked, i))
	}

	_, err = dense.ExtractRows([]int{0, 4}, m) // 4 is out of range
	require.ErrorIs(t, err, dense.ErrOutOfRange)
}

// TestExtractColumns verifies column selection mirrors row selection on the
// transpose.
func TestExtractColumns(t *testing.T) {
	m := sample4x4(t)

	picked, err := dense.ExtractColumns([]int{2, 2, 1}, m)
	require.NoError(t, err)
	require.Equal(t, 3, picked.Cols())
	require.Equal(t, dense.Vector[int]{2, 2, 1}, mustRow(t, picked, 0))
	require.Equal(t, dense.Vector[int]{32, 32, 31}, mustRow(t, picked, 3))

	_, err = dense.ExtractColumns([]int{-1}, m)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
}

// TestFlipInvolution pins the involution law for both flips.
func TestFlipInvolution(t *testing.T) {
	m := sample4x4(t)

	require.True(t, dense.Equal(m, dense.FlipUD(dense.FlipUD(m))))
	require.True(t, dense.Equal(m, dense.FlipRL(dense.FlipRL(m))))
}

// TestFlipContent verifies the reversed row and column orders.
func TestFlipContent(t *testing.T) {
	m, err := dense.FromSlice(2, 3, []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	require.Equal(t, dense.Vector[int]{4, 5, 6, 1, 2, 3}, dense.FlipUD(m).Flatten())
	require.Equal(t, dense.Vector[int]{3, 2, 1, 6, 5, 4}, dense.FlipRL(m).Flatten())
}
