// Package interop is the boundary between the layout layer and external
// numerical backends: it converts dense.Matrix values to and from the
// dense representations of gonum (blas64.General, mat.Dense) and gorgonia
// (*tensor.Dense), copying buffers so neither side can alias the other.
//
// The intended workflow is: lay out a matrix with dense/block, export it
// here, run the factorization/solver in the backend, and wrap the result
// back into a dense.Matrix.
package interop
