// Package analyze classifies the solution behavior of a parametric
// row-echelon matrix.
//
// Given a matrix already in row-echelon form whose diagonal entries may
// depend on free parameters, Analyze determines:
//
//   - per diagonal entry, the parameter values that drive it to zero
//     (rank drops ⇒ dependent system for those values),
//   - whether a diagonal entry is zero outright, regardless of parameters
//     (rank is always deficient),
//   - whether the last row encodes the inconsistency signature 0 = nonzero
//     when the matrix is read as an augmented system [A|b].
//
// The echelon precondition is the caller's responsibility; Analyze performs
// a best-effort structural check and fails fast with ErrNotEchelon rather
// than silently misclassifying.
//
// Per-entry solve failures are recovered, not fatal: the entry is skipped,
// a Diagnostic is attached to the Report, and analysis continues — a
// partial, still-useful result beats an aborted one.
package analyze
