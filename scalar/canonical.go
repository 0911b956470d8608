// SPDX-License-Identifier: MIT

// Package scalar: polynomial canonicalization of symbolic entries.
// The go-sympy kernel's Simplify combines numeric and bare-symbol like
// terms but leaves product terms apart (a·a − a·a survives as a two-term
// sum). Row elimination relies on such cancellations collapsing to a
// literal zero, so symbolic entries are normalized here into a recursive
// polynomial form: expand, then collect by each free variable in sorted
// order, folding coefficient arithmetic exactly. Non-polynomial content
// (function calls, negative or fractional exponents) is left to the
// kernel's own Simplify untouched.
package scalar

import (
	"sort"

	gosymbol "github.com/njchilds90/gosymbol"
)

// canonical returns the normalized form of e: a polynomial collapses to its
// collected representation (identically-zero ⇒ the literal 0), anything
// else passes through kernel simplification only.
func canonical(e gosymbol.Expr) gosymbol.Expr {
	e = e.Simplify()
	if !isPolynomial(e) {
		return e
	}

	return collectAll(gosymbol.Expand(e))
}

// collectAll rewrites a flat (expanded) polynomial as
// Σ coeff_d · v^d over the first free variable v, with each coefficient
// canonicalized recursively over the remaining variables.
func collectAll(e gosymbol.Expr) gosymbol.Expr {
	vars := sortedFreeVars(e)
	if len(vars) == 0 {
		// Parameter-free: fold to an exact rational when possible.
		if n, ok := e.Eval(); ok {
			return n
		}

		return e
	}

	v := vars[0]
	coeffs := gosymbol.PolyCoeffs(e, v)
	degrees := make([]int, 0, len(coeffs))
	for d := range coeffs {
		degrees = append(degrees, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(degrees)))

	terms := make([]gosymbol.Expr, 0, len(degrees))
	for _, d := range degrees {
		c := collectAll(coeffs[d])
		if n, ok := c.(*gosymbol.Num); ok && n.IsZero() {
			continue // cancelled like terms vanish here
		}
		switch d {
		case 0:
			terms = append(terms, c)
		case 1:
			terms = append(terms, gosymbol.MulOf(c, gosymbol.S(v)))
		default:
			terms = append(terms, gosymbol.MulOf(c, gosymbol.PowOf(gosymbol.S(v), gosymbol.N(int64(d)))))
		}
	}
	if len(terms) == 0 {
		return gosymbol.N(0)
	}

	return gosymbol.AddOf(terms...)
}

// isPolynomial walks the expression through the kernel's public accessors
// and reports whether every node is polynomial-shaped: sums, products, and
// non-negative integer powers over numbers and symbols.
func isPolynomial(e gosymbol.Expr) bool {
	switch v := e.(type) {
	case *gosymbol.Num, *gosymbol.Sym:
		return true
	case *gosymbol.Add:
		for _, t := range v.Terms() {
			if !isPolynomial(t) {
				return false
			}
		}

		return true
	case *gosymbol.Mul:
		for _, f := range v.Factors() {
			if !isPolynomial(f) {
				return false
			}
		}

		return true
	case *gosymbol.Pow:
		n, ok := v.ExpExpr().(*gosymbol.Num)
		if !ok || !n.IsInteger() || n.IsNegative() {
			return false
		}

		return isPolynomial(v.Base())
	default:
		// Func, BigO and anything future-shaped: not polynomial.
		return false
	}
}

// sortedFreeVars lists the free variables of e in lexicographic order.
func sortedFreeVars(e gosymbol.Expr) []string {
	set := gosymbol.FreeSymbols(e)
	if len(set) == 0 {
		return nil
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
