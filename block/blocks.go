// SPDX-License-Identifier: MIT

// Package block - grid assembly: joins, FromBlocks, DiagBlock, Repmat.
//
// Purpose:
//   - Deterministic assembly of larger matrices from rectangular grids of
//     blocks, with the historical broadcast rules for degenerate blocks.
//
// Policy & Contracts:
//   - Per grid row, the common height is the single height observed among
//     blocks with more than one row; a row of only single-row blocks has
//     height 1. Conflicting heights are a shape error. Columns symmetric.
//   - A 1×1 block expands to a constant fill, a 1×w block replicates down,
//     an h×1 block replicates across; any other mismatch is fatal.
//
// Determinism:
//   - Fixed top-to-bottom, left-to-right assembly order throughout.

package block

import (
	"fmt"

	"github.com/TomMD/hmatrix/dense"
)

// blockErrorf wraps a sentinel with a block-operation context tag.
// Complexity: O(1).
func blockErrorf(op string, err error) error {
	return fmt.Errorf("block.%s: %w", op, err)
}

// JoinVertical stacks matrices top-to-bottom. Every matrix must share one
// column count; an empty list yields the 0×0 matrix and a single-element
// list yields that element.
//
// Errors: dense.ErrShapeMismatch (unequal column counts).
// Complexity: O(total elements).
func JoinVertical[T dense.Scalar](ms []dense.Matrix[T]) (dense.Matrix[T], error) {
	if len(ms) == 0 {
		return dense.Matrix[T]{}, nil
	}
	cols := ms[0].Cols()
	rows := 0
	for k := 0; k < len(ms); k++ {
		if ms[k].Cols() != cols {
			return dense.Matrix[T]{}, blockErrorf("JoinVertical", dense.ErrShapeMismatch)
		}
		rows += ms[k].Rows()
	}
	// Concatenated row-major flattenings are the stacked flattening.
	buf := make([]T, 0, rows*cols)
	for k := 0; k < len(ms); k++ {
		buf = append(buf, ms[k].Flatten()...)
	}

	return dense.FromSlice(rows, cols, buf)
}

// JoinHorizontal stacks matrices left-to-right: the transpose of the
// vertical join of the transposed operands. Every matrix must share one
// row count.
//
// Errors: dense.ErrShapeMismatch (unequal row counts).
// Complexity: O(total elements).
func JoinHorizontal[T dense.Scalar](ms []dense.Matrix[T]) (dense.Matrix[T], error) {
	flipped := make([]dense.Matrix[T], len(ms))
	for k := 0; k < len(ms); k++ {
		flipped[k] = ms[k].Transpose() // O(1) each
	}
	stacked, err := JoinVertical(flipped)
	if err != nil {
		return dense.Matrix[T]{}, blockErrorf("JoinHorizontal", dense.ErrShapeMismatch)
	}

	return stacked.Transpose(), nil
}

// commonExtent resolves the shared extent of one grid row (or column) from
// the extents of its blocks: unit extents do not pin the result, all other
// extents must agree. A line of only unit extents resolves to 1.
// Returns dense.ErrShapeMismatch on conflicting pins.
// Complexity: O(n).
func commonExtent(extents []int) (int, error) {
	common := 1
	pinned := false
	for _, e := range extents {
		if e == 1 {
			continue // unit blocks follow, they never pin
		}
		if pinned && e != common {
			return 0, dense.ErrShapeMismatch
		}
		common, pinned = e, true
	}

	return common, nil
}

// expandBlock grows a block to the target height×width demanded by its grid
// position: exact matches pass through, a 1×1 block becomes a constant
// fill of its sole value, a single-row block replicates down, a
// single-column block replicates across. Anything else is fatal.
// Complexity: O(h*w).
func expandBlock[T dense.Scalar](m dense.Matrix[T], height, width int) (dense.Matrix[T], error) {
	r, c := m.Rows(), m.Cols()
	switch {
	case r == height && c == width:
		return m, nil
	case r == 1 && c == 1:
		v, err := m.At(0, 0)
		if err != nil {
			return dense.Matrix[T]{}, err
		}
		return dense.Konst(v, height, width)
	case r == 1 && c == width:
		return dense.ExtractRows(make([]int, height), m) // row 0, height times
	case c == 1 && r == height:
		return dense.ExtractColumns(make([]int, width), m) // col 0, width times
	default:
		return dense.Matrix[T]{}, dense.ErrShapeMismatch
	}
}

// FromBlocks assembles a rectangular grid of blocks into one matrix.
// Stage 1 (Validate): every grid row has the same number of block-columns.
// Stage 2 (Prepare): resolve the common height of each grid row and the
// common width of each grid column (see commonExtent), then expand each
// block to its resolved extent (see expandBlock).
// Stage 3 (Execute): JoinVertical of the per-row JoinHorizontal results.
//
// An empty grid yields the 0×0 matrix.
//
// Errors: dense.ErrShapeMismatch (ragged grid, conflicting extents,
// non-broadcastable block).
// Complexity: O(output elements).
func FromBlocks[T dense.Scalar](grid [][]dense.Matrix[T]) (dense.Matrix[T], error) {
	if len(grid) == 0 {
		return dense.Matrix[T]{}, nil
	}
	nCols := len(grid[0])
	for i := 1; i < len(grid); i++ {
		if len(grid[i]) != nCols {
			return dense.Matrix[T]{}, blockErrorf("FromBlocks", dense.ErrShapeMismatch)
		}
	}

	// Resolve per-row heights.
	heights := make([]int, len(grid))
	extents := make([]int, nCols)
	for i := range grid {
		for j := range grid[i] {
			extents[j] = grid[i][j].Rows()
		}
		h, err := commonExtent(extents)
		if err != nil {
			return dense.Matrix[T]{}, blockErrorf("FromBlocks", err)
		}
		heights[i] = h
	}
	// Resolve per-column widths.
	widths := make([]int, nCols)
	colExtents := make([]int, len(grid))
	for j := 0; j < nCols; j++ {
		for i := range grid {
			colExtents[i] = grid[i][j].Cols()
		}
		w, err := commonExtent(colExtents)
		if err != nil {
			return dense.Matrix[T]{}, blockErrorf("FromBlocks", err)
		}
		widths[j] = w
	}

	// Expand blocks and assemble row bands left-to-right, then stack.
	bands := make([]dense.Matrix[T], len(grid))
	rowBlocks := make([]dense.Matrix[T], nCols)
	for i := range grid {
		for j := range grid[i] {
			expanded, err := expandBlock(grid[i][j], heights[i], widths[j])
			if err != nil {
				return dense.Matrix[T]{}, blockErrorf("FromBlocks", err)
			}
			rowBlocks[j] = expanded
		}
		band, err := JoinHorizontal(rowBlocks)
		if err != nil {
			return dense.Matrix[T]{}, blockErrorf("FromBlocks", dense.ErrShapeMismatch)
		}
		bands[i] = band
	}

	return JoinVertical(bands)
}

// DiagBlock places the given matrices along the diagonal of a block
// matrix, with 1×1 zero blocks in every off-diagonal position, and
// delegates assembly (and the zero-block broadcast) to FromBlocks.
//
// Errors: those of FromBlocks.
// Complexity: O(output elements).
func DiagBlock[T dense.Scalar](ms []dense.Matrix[T]) (dense.Matrix[T], error) {
	var zero T
	n := len(ms)
	grid := make([][]dense.Matrix[T], n)
	for i := 0; i < n; i++ {
		grid[i] = make([]dense.Matrix[T], n)
		for j := 0; j < n; j++ {
			if i == j {
				grid[i][j] = ms[i]
				continue
			}
			grid[i][j] = dense.FromScalar(zero)
		}
	}

	return FromBlocks(grid)
}

// Repmat tiles m in a rowReps×colReps grid via FromBlocks. Zero repetitions
// yield an empty matrix with the corresponding scaled-to-zero dimension.
//
// Errors: dense.ErrInvalidArgument (negative repetitions).
// Complexity: O(rowReps*colReps*r*c).
func Repmat[T dense.Scalar](m dense.Matrix[T], rowReps, colReps int) (dense.Matrix[T], error) {
	if rowReps < 0 || colReps < 0 {
		return dense.Matrix[T]{}, blockErrorf("Repmat", dense.ErrInvalidArgument)
	}
	if rowReps == 0 || colReps == 0 {
		// Shape scales, content vanishes.
		return dense.Zeros[T](rowReps*m.Rows(), colReps*m.Cols())
	}
	grid := make([][]dense.Matrix[T], rowReps)
	for i := 0; i < rowReps; i++ {
		grid[i] = make([]dense.Matrix[T], colReps)
		for j := 0; j < colReps; j++ {
			grid[i][j] = m
		}
	}

	return FromBlocks(grid)
}
