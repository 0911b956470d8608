// Package scalar defines the value domain shared by every echelon algorithm.
//
// The scalar package provides:
//
//   - Scalar: a matrix entry that is either a finite float64 or a symbolic
//     expression in named free parameters, with one arithmetic over both.
//   - Matrix: a dense, row-major grid of Scalars with bounds-checked access
//     and the three elementary row operations (swap, scale, add-multiple).
//   - Vector: a 1-D Scalar sequence with dot product and Euclidean norm.
//
// A Scalar is monomorphic: once created numeric it stays numeric, once
// symbolic it stays symbolic, even when simplification could demote it.
// Algorithms rely on this to keep entry classification stable across a run.
//
// Matrices are best for dense, classroom-scale data where O(r*c) memory is
// acceptable. All mutation happens through whole-row operations; algorithms
// that need replay semantics clone first.
package scalar
