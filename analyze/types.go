// SPDX-License-Identifier: MIT

// Package analyze: result domain types. Cases are immutable once produced
// and collected in diagonal order; the Summary is derived, never stored
// per case.
package analyze

import "github.com/katalvlaran/echelon/scalar"

// CaseKind labels one critical finding.
type CaseKind int

const (
	// Dependent: the diagonal entry vanishes for specific parameter values;
	// the system has infinitely many solutions exactly there.
	Dependent CaseKind = iota

	// AlwaysDependent: the diagonal entry is zero regardless of parameters;
	// rank is deficient for every assignment.
	AlwaysDependent

	// Inconsistent: the last row encodes 0 = nonzero; the augmented system
	// has no solution.
	Inconsistent
)

// String implements fmt.Stringer for diagnostics and test output.
func (k CaseKind) String() string {
	switch k {
	case Dependent:
		return "dependent"
	case AlwaysDependent:
		return "always-dependent"
	case Inconsistent:
		return "inconsistent"
	default:
		return "unknown"
	}
}

// Summary is the derived headline classification of the whole matrix.
// Precedence: NoSolution > AlwaysInfinite > DependentForValues >
// UniqueSolution.
type Summary int

const (
	// UniqueSolution: full rank for every parameter assignment.
	UniqueSolution Summary = iota

	// DependentForValues: infinitely many solutions at specific parameter
	// values (listed per case), unique elsewhere.
	DependentForValues

	// AlwaysInfinite: rank-deficient regardless of parameters.
	AlwaysInfinite

	// NoSolution: the augmented system is inconsistent.
	NoSolution
)

// String implements fmt.Stringer.
func (s Summary) String() string {
	switch s {
	case UniqueSolution:
		return "unique solution for all parameter values"
	case DependentForValues:
		return "infinite solutions for specific parameter values"
	case AlwaysInfinite:
		return "always infinite solutions"
	case NoSolution:
		return "no solution"
	default:
		return "unknown"
	}
}

// Case is one critical finding at a diagonal position (or, for Inconsistent,
// at the last row). Immutable after creation.
type Case struct {
	Kind CaseKind
	Row  int // 0-based row of the finding
	Col  int // 0-based column of the finding

	// Parameter names the solved variable for Dependent cases; empty for
	// AlwaysDependent and Inconsistent findings.
	Parameter string

	// Values holds the parameter values at which the source expression
	// vanishes (all real roots, engine order). Empty unless Kind==Dependent.
	Values []scalar.Scalar

	// Source is the entry that produced the finding.
	Source scalar.Scalar
}

// Diagnostic records a recovered per-entry failure: the analyzer skipped
// this entry and continued.
type Diagnostic struct {
	Row, Col  int
	Parameter string
	Err       error
}

// Report is the full analysis outcome: the ordered cases, the derived
// summary, and any recovered diagnostics.
type Report struct {
	Cases       []Case
	Summary     Summary
	Diagnostics []Diagnostic
}

// HasNoSolution reports whether any Inconsistent case exists. Independent of
// the Summary precedence — inconsistency is reported alongside, not instead
// of, rank findings.
func (r Report) HasNoSolution() bool { return r.hasKind(Inconsistent) }

// AlwaysInfiniteSolutions reports whether any AlwaysDependent case exists.
func (r Report) AlwaysInfiniteSolutions() bool { return r.hasKind(AlwaysDependent) }

// DependentCases returns the Dependent findings, in diagonal order.
func (r Report) DependentCases() []Case {
	var out []Case
	for _, c := range r.Cases {
		if c.Kind == Dependent {
			out = append(out, c)
		}
	}

	return out
}

func (r Report) hasKind(k CaseKind) bool {
	for _, c := range r.Cases {
		if c.Kind == k {
			return true
		}
	}

	return false
}
