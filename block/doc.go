// Package block assembles and partitions dense matrices as grids of
// rectangular sub-matrices.
//
// The block package provides:
//
//   - JoinVertical / JoinHorizontal for stacking conformable matrices.
//   - FromBlocks for assembling a rectangular grid of blocks, with 1×1
//     blocks (and single-row/single-column blocks) auto-broadcast to the
//     extent their grid row and column demand.
//   - DiagBlock for block-diagonal composition and Repmat for tiling.
//   - ToBlocks / ToBlocksEvery for partitioning a matrix back into a grid
//     of sub-matrices, by explicit size lists or uniform tile sizes.
//
// All failures surface the dense package sentinels (dense.ErrShapeMismatch,
// dense.ErrInvalidArgument, dense.ErrOutOfRange) wrapped with operation
// context; match with errors.Is.
package block
