// Package echelon is your in-memory workbench for classical, classroom-style
// linear algebra — row reduction with visible steps, exact fractional and
// surd answers, and parametric case analysis.
//
// 🚀 What is echelon?
//
//	A small, deterministic library that brings together:
//		• Scalar domain: matrix entries that are plain floats or symbolic
//		  expressions in named free parameters, under one arithmetic.
//		• RowReducer: Gaussian elimination to row-echelon form with a
//		  "nice pivot" selection policy and an optional step-by-step trace.
//		• ExactFormatter: floats rendered back as integers, fractions and
//		  simple surds (1/2, 1/√2, 5√2/3) instead of decimals.
//		• CriticalValueAnalyzer: for matrices with free parameters, the
//		  parameter values where rank drops or the system turns inconsistent.
//		• Companions: Gram–Schmidt, linear-system solving, inversion,
//		  least squares, and a caller-owned undo history.
//
// ✨ Why choose echelon?
//
//   - Teaching-first – every operation can narrate what it did and why
//   - Exact answers – closed forms recovered from floating-point results
//   - Deterministic – documented pivot tie-breaks, no hidden randomness
//   - No globals – history and configuration are explicit caller-owned values
//
// Everything is organized under topic subpackages:
//
//	scalar/   — Scalar values, Scalar matrices & vectors, elementary row ops
//	symbolic/ — the symbolic-engine contract and its go-sympy adapter
//	exact/    — exact-value formatting of floating-point scalars
//	reduce/   — row-echelon reduction with options and step tracing
//	analyze/  — critical-value analysis of parametric echelon matrices
//	ortho/    — Gram–Schmidt orthogonalization and orthogonality checks
//	linsys/   — solve, invert, least squares on top of the reducer
//	history/  — explicit snapshot stack for undo at the caller's layer
//
// Quick ASCII example:
//
//	⎡ 2  1 │ 3 ⎤        reduce        ⎡ 1  3 │ 4 ⎤
//	⎣ 1  3 │ 4 ⎦   ─────────────▶     ⎣ 0 −5 │−5 ⎦
//
//	with the trace: swap R1 and R2; R2 ← R2 − 2·R1.
//
// Dive into the subpackage docs for contracts, invariants and examples.
//
//	go get github.com/katalvlaran/echelon
package echelon
