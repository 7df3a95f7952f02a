// Package hmatrix is a dense-matrix layout layer: storage representation,
// reshaping, block composition, sub-region extraction, diagonal construction
// and index-aware element mapping, designed to sit beneath calls into
// external linear-algebra backends.
//
// 🚀 What is hmatrix?
//
//	A small, generic, immutable-by-default library that brings together:
//		• Core storage: flat contiguous buffers with a row/column-major tag
//		• Shape conversion: O(1) transpose, reshape, row/column vector views
//		• Sub-regions: submatrix windows, take/drop, arbitrary row/column
//		  extraction, vertical/horizontal flips
//		• Diagonals: extraction and rectangular diagonal construction
//		• Block algebra: vertical/horizontal joins, grid assembly with
//		  scalar broadcast, block-diagonal composition, tiling, partitioning
//		• Index-aware mapping: pure and effectful traversal in a fixed
//		  row-major order, plus broadcasting binary lifts
//
// ✨ Why choose hmatrix?
//
//   - Value semantics – operations return new matrices; the only mutation
//     is a scoped build-then-freeze Builder
//   - Generic – one Matrix[T] over every fixed-width numeric scalar
//   - Safe – shape and index preconditions return sentinel errors, never panic
//   - Backend-friendly – lossless bridges to gonum and gorgonia dense types
//
// Everything is organized under three subpackages:
//
//	dense/   — Matrix[T], Vector[T], constructors, shape ops, extraction,
//	           diagonals, builder, index-aware mapping
//	block/   — block assembly (joins, FromBlocks, DiagBlock, Repmat) and
//	           partitioning (ToBlocks, ToBlocksEvery)
//	interop/ — conversions to/from gonum (blas64.General, mat.Dense) and
//	           gorgonia (*tensor.Dense) representations
//
// Quick example:
//
//	┌ I₂ │ 7 ┐
//	├────┼───┤      FromBlocks replicates the 1×1 scalars to fill
//	└ 3  │ D ┘      whatever extent their row and column demand.
//
// Numerical algorithms (factorizations, solvers, eigen-decompositions)
// intentionally stay outside this module: flatten a matrix, hand it to a
// backend via interop, and wrap the result back.
//
//	go get github.com/TomMD/hmatrix
package hmatrix
