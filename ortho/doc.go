// Package ortho provides Gram–Schmidt orthogonalization and orthogonality
// checks over numeric vectors.
//
// The ortho package provides:
//
//   - GramSchmidt: the classical process — subtract from each vector its
//     projections onto the previously accepted ones, drop vectors that
//     collapse to (near) zero, optionally normalize survivors to unit length.
//     With WithTrace every projection, drop and scaling is recorded as a
//     Step carrying a description and a vector snapshot, mirroring the
//     reducer's step trace.
//   - IsOrthogonal / IsOrthonormal: pairwise dot-product checks within a
//     configurable epsilon.
//
// Vectors are numeric-only here: a norm or a projection coefficient of a
// parametric vector has no single value, so symbolic components are rejected
// with scalar.ErrSymbolicEntry rather than silently evaluated.
package ortho
