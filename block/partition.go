// SPDX-License-Identifier: MIT

// Package block - partitioning a matrix into a grid of sub-matrices.

package block

import "github.com/TomMD/hmatrix/dense"

// ToBlocks partitions m into a grid of sub-matrices whose band heights are
// rowSizes and band widths are colSizes, in order. The sizes must be
// positive and their sums must not exceed the matrix dimensions.
//
// Rows and columns beyond the size sums are silently discarded. This
// trailing-discard contract is historical and load-bearing for callers
// that peel a leading region off a larger matrix; do not "fix" it.
//
// Errors: dense.ErrInvalidArgument (non-positive size),
// dense.ErrShapeMismatch (sums exceed dimensions).
// Complexity: O(sum(rowSizes)*sum(colSizes)).
func ToBlocks[T dense.Scalar](rowSizes, colSizes []int, m dense.Matrix[T]) ([][]dense.Matrix[T], error) {
	// Stage 1: validate sizes and their sums against the shape.
	if err := validateSizes(rowSizes, m.Rows()); err != nil {
		return nil, blockErrorf("ToBlocks", err)
	}
	if err := validateSizes(colSizes, m.Cols()); err != nil {
		return nil, blockErrorf("ToBlocks", err)
	}

	// Stage 2: carve the grid top-to-bottom, left-to-right.
	grid := make([][]dense.Matrix[T], len(rowSizes))
	rowOrigin := 0
	for i, h := range rowSizes {
		grid[i] = make([]dense.Matrix[T], len(colSizes))
		colOrigin := 0
		for j, w := range colSizes {
			sub, err := dense.SubMatrix(rowOrigin, colOrigin, h, w, m)
			if err != nil {
				return nil, blockErrorf("ToBlocks", err)
			}
			grid[i][j] = sub
			colOrigin += w
		}
		rowOrigin += h
	}

	return grid, nil
}

// ToBlocksEvery partitions m into uniform blockRows×blockCols tiles, the
// final row and column of tiles shrunk to fit the remaining extent.
// A 5×5 matrix under 2×2 tiles yields block shapes
// [[2×2, 2×2, 2×1], [2×2, 2×2, 2×1], [1×2, 1×2, 1×1]].
//
// Errors: dense.ErrInvalidArgument (blockRows < 1 or blockCols < 1).
// Complexity: O(r*c).
func ToBlocksEvery[T dense.Scalar](blockRows, blockCols int, m dense.Matrix[T]) ([][]dense.Matrix[T], error) {
	if blockRows < 1 || blockCols < 1 {
		return nil, blockErrorf("ToBlocksEvery", dense.ErrInvalidArgument)
	}

	return ToBlocks(tileSizes(m.Rows(), blockRows), tileSizes(m.Cols(), blockCols), m)
}

// validateSizes checks that every band size is positive and that the total
// stays within bound.
// Complexity: O(n).
func validateSizes(sizes []int, bound int) error {
	total := 0
	for _, s := range sizes {
		if s < 1 {
			return dense.ErrInvalidArgument
		}
		total += s
	}
	if total > bound {
		return dense.ErrShapeMismatch
	}

	return nil
}

// tileSizes splits extent into full tiles of the given size plus an
// optional shrunken remainder tile. tileSizes(5, 2) = [2, 2, 1].
// Complexity: O(extent/size).
func tileSizes(extent, size int) []int {
	var sizes []int
	for extent >= size {
		sizes = append(sizes, size)
		extent -= size
	}
	if extent > 0 {
		sizes = append(sizes, extent)
	}

	return sizes
}
