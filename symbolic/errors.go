// SPDX-License-Identifier: MIT
// Package symbolic: sentinel error set. Tests match via errors.Is; context is
// added by wrapping with fmt.Errorf("ctx: %w", ErrX) at call boundaries.

package symbolic

import "errors"

var (
	// ErrUnsolvable is returned by Engine.Solve when the engine cannot
	// produce the real roots of the given equation (non-polynomial shape,
	// degree beyond its solvers, or symbolic coefficients it cannot handle).
	// Callers recover locally: skip the entry and surface a diagnostic.
	ErrUnsolvable = errors.New("symbolic: equation is unsolvable")

	// ErrSimplify is returned when normalization of an expression fails.
	// Callers recover by falling back to the unsimplified expression.
	ErrSimplify = errors.New("symbolic: simplification failed")

	// ErrNotSymbolic marks a request that only makes sense for a symbolic
	// Scalar (e.g. solving a plain number for a variable it cannot contain).
	ErrNotSymbolic = errors.New("symbolic: scalar has no symbolic content")
)
