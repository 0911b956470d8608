// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the scalar
// package and its consumers. All operations MUST return these sentinels and
// tests MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for programmer errors in private
// helpers (if any).

package scalar

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "scalar: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimensions) or when row-wise construction receives ragged input.
	// Zero-dimension matrices are legal; see NewMatrix.
	ErrBadShape = errors.New("scalar: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers and row operations MUST return this, not panic.
	ErrOutOfRange = errors.New("scalar: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a dot product of unequal lengths.
	ErrDimensionMismatch = errors.New("scalar: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("scalar: nil matrix")

	// ErrZeroDivide is returned by Div when the divisor is zero within the
	// numeric tolerance, or symbolically identically zero.
	ErrZeroDivide = errors.New("scalar: division by zero")

	// ErrSymbolicEntry marks an operation restricted to purely numeric data
	// (norms, back substitution, inversion) that met a symbolic Scalar.
	ErrSymbolicEntry = errors.New("scalar: symbolic entry in numeric-only operation")

	// ErrNaNInf is returned by FromFloats when the input contains a NaN or
	// ±Inf value; matrix entries must be finite.
	ErrNaNInf = errors.New("scalar: NaN or Inf encountered")
)
