// SPDX-License-Identifier: MIT

// Package symbolic: the Engine contract and its go-sympy implementation.
// The analyzers treat the engine as a synchronous, side-effect-free
// collaborator; every call is total and returns either a value or an error
// from this package's sentinel set.
package symbolic

import (
	"fmt"
	"sort"
	"strings"

	gosymbol "github.com/njchilds90/gosymbol"

	"github.com/katalvlaran/echelon/scalar"
)

// Engine is the symbolic-mathematics capability surface consumed by the
// analyzers. Implementations must be safe for concurrent use by independent
// calls (no shared mutable state).
type Engine interface {
	// Solve returns all real roots of entry == 0, solved for variable.
	// An empty, nil-error result means the equation has no real roots
	// (e.g. a² + 1 = 0); ErrUnsolvable means the engine could not decide.
	Solve(entry scalar.Scalar, variable string) ([]scalar.Scalar, error)

	// FreeVariables lists the free parameter names of entry in sorted order.
	FreeVariables(entry scalar.Scalar) []string

	// Simplify normalizes entry. On ErrSimplify callers keep the original.
	Simplify(entry scalar.Scalar) (scalar.Scalar, error)

	// Substitute replaces each named variable with its bound value.
	Substitute(entry scalar.Scalar, bindings map[string]scalar.Scalar) (scalar.Scalar, error)

	// IsAlwaysZero reports whether entry is identically zero for every
	// parameter assignment.
	IsAlwaysZero(entry scalar.Scalar) bool
}

// GoSym is the default Engine, backed by the go-sympy kernel.
// The zero value is ready to use.
type GoSym struct{}

// compile-time conformance check
var _ Engine = GoSym{}

// Default returns the package-default Engine (a GoSym value).
func Default() Engine { return GoSym{} }

// Solve extracts polynomial coefficients of entry in variable and dispatches
// to the kernel's closed-form solvers.
//
// Implementation:
//   - Stage 1 (Validate): entry must actually depend on variable.
//   - Stage 2 (Collect): polynomial degree + coefficient map via the kernel.
//   - Stage 3 (Dispatch): degree 1 → linear, 2 → quadratic (exact where
//     possible), 3 → cubic; anything else is ErrUnsolvable.
//   - Stage 4 (Finalize): wrap each root as a symbolic Scalar.
//
// Behavior highlights:
//   - A quadratic with a negative discriminant has no real roots: Solve
//     returns an empty slice and a nil error, not ErrUnsolvable.
//   - Roots may still contain OTHER free parameters (symbolic roots).
//
// Complexity: O(size of expression) plus solver cost.
func (GoSym) Solve(entry scalar.Scalar, variable string) ([]scalar.Scalar, error) {
	expr := entry.Expr().Simplify()

	// Validate dependence on the requested variable.
	if _, ok := gosymbol.FreeSymbols(expr)[variable]; !ok {
		return nil, fmt.Errorf("Solve(%s): %w", variable, ErrNotSymbolic)
	}

	// Collect polynomial structure.
	deg := gosymbol.Degree(expr, variable)
	coeffs := gosymbol.PolyCoeffs(expr, variable)

	var res gosymbol.SolveResult
	switch deg {
	case 1:
		res = gosymbol.SolveLinear(coeffAt(coeffs, 1), coeffAt(coeffs, 0))
	case 2:
		res = gosymbol.SolveQuadraticExact(coeffAt(coeffs, 2), coeffAt(coeffs, 1), coeffAt(coeffs, 0))
	case 3:
		res = gosymbol.SolveCubic(coeffAt(coeffs, 3), coeffAt(coeffs, 2), coeffAt(coeffs, 1), coeffAt(coeffs, 0))
	default:
		// Degree 0 with the variable still free means a non-polynomial
		// occurrence (inside a function call); higher degrees exceed the
		// kernel's closed-form solvers.
		return nil, fmt.Errorf("Solve(%s): degree %d: %w", variable, deg, ErrUnsolvable)
	}

	if len(res.Solutions) == 0 {
		// Complex-only root sets are a decided outcome: no real roots.
		if strings.Contains(res.Error, "complex") {
			return nil, nil
		}

		return nil, fmt.Errorf("Solve(%s): %s: %w", variable, res.Error, ErrUnsolvable)
	}

	roots := make([]scalar.Scalar, len(res.Solutions))
	for i, sol := range res.Solutions {
		roots[i] = scalar.Sym(sol.Simplify())
	}

	return roots, nil
}

// FreeVariables delegates to the Scalar's own sorted parameter listing.
func (GoSym) FreeVariables(entry scalar.Scalar) []string { return entry.Parameters() }

// Simplify normalizes the entry through the kernel. The kernel's
// simplification is total, so the error is always nil here; the signature
// keeps the recovery contract uniform across Engine implementations.
func (GoSym) Simplify(entry scalar.Scalar) (scalar.Scalar, error) {
	return entry.Simplify(), nil
}

// Substitute applies the bindings in sorted-name order (deterministic when
// bindings reference each other's names) and re-simplifies.
func (GoSym) Substitute(entry scalar.Scalar, bindings map[string]scalar.Scalar) (scalar.Scalar, error) {
	if entry.IsNumeric() || len(bindings) == 0 {
		return entry, nil
	}
	expr := entry.Expr()
	for _, name := range sortedNames(bindings) {
		expr = expr.Sub(name, bindings[name].Expr())
	}

	return scalar.Sym(expr.Simplify()), nil
}

// IsAlwaysZero reports identical zero: exact evaluation of the simplified
// expression. Entries that still carry free parameters are never identically
// zero (they vanish only at specific parameter values).
func (GoSym) IsAlwaysZero(entry scalar.Scalar) bool { return entry.IsZero() }

// coeffAt reads a polynomial coefficient with a zero default.
func coeffAt(coeffs gosymbol.PolyCoeffsResult, deg int) gosymbol.Expr {
	if c, ok := coeffs[deg]; ok {
		return c
	}

	return gosymbol.N(0)
}

// sortedNames returns binding keys in lexicographic order.
func sortedNames(bindings map[string]scalar.Scalar) []string {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
