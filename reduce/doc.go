// Package reduce brings a matrix to row-echelon form, step by step.
//
// The reduce package provides:
//
//   - Reduce: Gaussian elimination over the mixed numeric/symbolic Scalar
//     domain, column by column, with independent lead-column and row
//     pointers (all-zero columns are skipped without consuming a row).
//   - A pivot-selection policy tuned for "nice" pivots: an exact 1 beats an
//     exact −1, beats the numerically smallest parameter-free value, beats
//     the textually shortest symbolic expression. This is a pedagogical
//     heuristic that keeps downstream expressions small — it is NOT partial
//     pivoting for numeric stability, and its tie-breaks are part of the
//     output contract.
//   - Optional step tracing: every swap, normalization and elimination can
//     carry a human-readable description and a matrix snapshot.
//
// Elimination below a parameter-carrying pivot uses the multiply-and-subtract
// form (pivot·Rᵢ − entry·Rₚ) so no symbolic denominators are ever introduced;
// the per-row scale change this causes is harmless because row-echelon form
// is scale-invariant per row.
//
// The caller's matrix is never mutated: Reduce works on a private clone and
// returns it, so callers can keep snapshots for replay or undo.
package reduce
