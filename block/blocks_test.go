// Package block_test contains unit tests for joins, grid assembly with
// broadcast, block-diagonal composition and tiling.
package block_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TomMD/hmatrix/block"
	"github.com/TomMD/hmatrix/dense"
)

// mustFromSlice builds a matrix, failing the test on error.
func mustFromSlice[T dense.Scalar](t *testing.T, rows, cols int, data []T) dense.Matrix[T] {
	t.Helper()
	m, err := dense.FromSlice(rows, cols, data)
	require.NoError(t, err)

	return m
}

// TestJoinVerticalIdentities pins the list identities: empty list is 0×0,
// singleton list is its element.
func TestJoinVerticalIdentities(t *testing.T) {
	empty, err := block.JoinVertical[int](nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())

	m := mustFromSlice(t, 2, 2, []int{1, 2, 3, 4})
	single, err := block.JoinVertical([]dense.Matrix[int]{m})
	require.NoError(t, err)
	require.True(t, dense.Equal(m, single))
}

// TestJoinVertical verifies top-to-bottom stacking and the column-count
// precondition.
func TestJoinVertical(t *testing.T) {
	top := mustFromSlice(t, 1, 2, []int{1, 2})
	bottom := mustFromSlice(t, 2, 2, []int{3, 4, 5, 6})

	out, err := block.JoinVertical([]dense.Matrix[int]{top, bottom})
	require.NoError(t, err)
	require.Equal(t, 3, out.Rows())
	require.Equal(t, dense.Vector[int]{1, 2, 3, 4, 5, 6}, out.Flatten())

	wide := mustFromSlice(t, 1, 3, []int{7, 8, 9})
	_, err = block.JoinVertical([]dense.Matrix[int]{top, wide})
	require.ErrorIs(t, err, dense.ErrShapeMismatch)
}

// TestJoinHorizontal verifies left-to-right stacking via the transpose
// construction.
func TestJoinHorizontal(t *testing.T) {
	left := mustFromSlice(t, 2, 1, []int{1, 4})
	right := mustFromSlice(t, 2, 2, []int{2, 3, 5, 6})

	out, err := block.JoinHorizontal([]dense.Matrix[int]{left, right})
	require.NoError(t, err)
	require.Equal(t, 2, out.Rows())
	require.Equal(t, 3, out.Cols())
	require.Equal(t, dense.Vector[int]{1, 2, 3, 4, 5, 6}, out.Flatten())

	tall := mustFromSlice(t, 3, 1, []int{7, 8, 9})
	_, err = block.JoinHorizontal([]dense.Matrix[int]{left, tall})
	require.ErrorIs(t, err, dense.ErrShapeMismatch)
}

// TestFromBlocksScalarBroadcast pins the reference assembly:
// [[I(2), 7], [3, diag(1,2,3)]] is 5×5 with a 2×3 block of 7s top-right
// and a 3×2 block of 3s bottom-left.
func TestFromBlocksScalarBroadcast(t *testing.T) {
	eye, err := dense.Identity[int](2)
	require.NoError(t, err)
	diag := dense.Diag(dense.Vector[int]{1, 2, 3})

	out, err := block.FromBlocks([][]dense.Matrix[int]{
		{eye, dense.FromScalar(7)},
		{dense.FromScalar(3), diag},
	})
	require.NoError(t, err)

	require.Equal(t, 5, out.Rows())
	require.Equal(t, 5, out.Cols())

	// Top-right 2×3 region is all 7s.
	topRight, err := dense.SubMatrix(0, 2, 2, 3, out)
	require.NoError(t, err)
	want7, err := dense.Konst(7, 2, 3)
	require.NoError(t, err)
	require.True(t, dense.Equal(want7, topRight))

	// Bottom-left 3×2 region is all 3s.
	bottomLeft, err := dense.SubMatrix(2, 0, 3, 2, out)
	require.NoError(t, err)
	want3, err := dense.Konst(3, 3, 2)
	require.NoError(t, err)
	require.True(t, dense.Equal(want3, bottomLeft))

	// The corners keep the identity and the diagonal.
	require.Equal(t, dense.Vector[int]{1, 1, 1, 2, 3}, dense.TakeDiag(out))
}

// TestFromBlocksRowReplication verifies that a single-row block replicates
// down to the height its grid row pins.
func TestFromBlocksRowReplication(t *testing.T) {
	body := mustFromSlice(t, 2, 2, []int{1, 2, 3, 4})
	colBlk := mustFromSlice(t, 2, 1, []int{5, 6})
	rowBlk := mustFromSlice(t, 1, 2, []int{8, 9}) // replicates down
	tall := mustFromSlice(t, 2, 1, []int{7, 8})   // pins the second row's height

	out, err := block.FromBlocks([][]dense.Matrix[int]{
		{body, colBlk},
		{rowBlk, tall},
	})
	require.NoError(t, err)

	require.Equal(t, 4, out.Rows())
	require.Equal(t, 3, out.Cols())
	require.Equal(t, dense.Vector[int]{
		1, 2, 5,
		3, 4, 6,
		8, 9, 7,
		8, 9, 8,
	}, out.Flatten())
}

// TestFromBlocksColReplication verifies that a single-column block
// replicates across to the width its grid column pins.
func TestFromBlocksColReplication(t *testing.T) {
	body := mustFromSlice(t, 2, 2, []int{1, 2, 3, 4})
	tall := mustFromSlice(t, 2, 1, []int{7, 8}) // replicates across under body

	out, err := block.FromBlocks([][]dense.Matrix[int]{
		{body},
		{tall},
	})
	require.NoError(t, err)

	require.Equal(t, 4, out.Rows())
	require.Equal(t, 2, out.Cols())
	require.Equal(t, dense.Vector[int]{
		1, 2,
		3, 4,
		7, 7,
		8, 8,
	}, out.Flatten())
}

// TestFromBlocksAllUnitRow pins the resolution of a grid row containing
// only single-row blocks: its height is 1, nothing replicates.
func TestFromBlocksAllUnitRow(t *testing.T) {
	body := mustFromSlice(t, 2, 2, []int{1, 2, 3, 4})
	rowBlk := mustFromSlice(t, 1, 2, []int{8, 9})

	out, err := block.FromBlocks([][]dense.Matrix[int]{
		{body},
		{rowBlk},
	})
	require.NoError(t, err)

	require.Equal(t, 3, out.Rows())
	require.Equal(t, dense.Vector[int]{1, 2, 3, 4, 8, 9}, out.Flatten())
}

// TestFromBlocksConflicts ensures ragged grids and conflicting pinned
// extents fail.
func TestFromBlocksConflicts(t *testing.T) {
	a := mustFromSlice(t, 2, 2, []int{1, 2, 3, 4})
	b := mustFromSlice(t, 3, 2, []int{1, 2, 3, 4, 5, 6})

	// Ragged grid.
	_, err := block.FromBlocks([][]dense.Matrix[int]{{a, a}, {a}})
	require.ErrorIs(t, err, dense.ErrShapeMismatch)

	// Conflicting heights within one grid row.
	_, err = block.FromBlocks([][]dense.Matrix[int]{{a, b}})
	require.ErrorIs(t, err, dense.ErrShapeMismatch)

	// Conflicting widths within one grid column.
	c := mustFromSlice(t, 2, 3, []int{1, 2, 3, 4, 5, 6})
	_, err = block.FromBlocks([][]dense.Matrix[int]{{a}, {c}})
	require.ErrorIs(t, err, dense.ErrShapeMismatch)
}

// TestFromBlocksEmpty ensures an empty grid yields the 0×0 matrix.
func TestFromBlocksEmpty(t *testing.T) {
	out, err := block.FromBlocks[int](nil)
	require.NoError(t, err)
	require.True(t, out.IsEmpty())
}

// TestDiagBlock verifies diagonal placement with broadcast zero padding.
func TestDiagBlock(t *testing.T) {
	a := mustFromSlice(t, 2, 2, []int{1, 2, 3, 4})
	b := dense.FromScalar(9)

	out, err := block.DiagBlock([]dense.Matrix[int]{a, b})
	require.NoError(t, err)

	require.Equal(t, 3, out.Rows())
	require.Equal(t, 3, out.Cols())
	require.Equal(t, dense.Vector[int]{
		1, 2, 0,
		3, 4, 0,
		0, 0, 9,
	}, out.Flatten())
}

// TestRepmat verifies tiling and the zero-repetition edge.
func TestRepmat(t *testing.T) {
	m := mustFromSlice(t, 1, 2, []int{1, 2})

	out, err := block.Repmat(m, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, out.Rows())
	require.Equal(t, 6, out.Cols())
	require.Equal(t, dense.Vector[int]{1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2}, out.Flatten())

	// Zero repetitions scale the dimension to zero.
	edge, err := block.Repmat(m, 0, 3)
	require.NoError(t, err)
	require.Equal(t, 0, edge.Rows())
	require.Equal(t, 6, edge.Cols())

	_, err = block.Repmat(m, -1, 1)
	require.ErrorIs(t, err, dense.ErrInvalidArgument)
}
