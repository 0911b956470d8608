// Package linsys solves numeric linear systems on top of the reducer.
//
// The linsys package provides:
//
//   - Solve: Ax = b via augmented row reduction and back substitution.
//   - Inverse: Gauss–Jordan on the block matrix [A | I].
//   - LeastSquares: the normal equations AᵀAx = Aᵀb for overdetermined
//     systems, solved through Solve.
//
// All three operate on purely numeric matrices; back substitution and
// inversion divide by pivots, which is only safe when a pivot cannot hide a
// parameter that makes it zero. Symbolic input is rejected with
// scalar.ErrSymbolicEntry — parametric systems belong to package analyze.
package linsys
