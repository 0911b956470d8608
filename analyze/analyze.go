// SPDX-License-Identifier: MIT

// Package analyze: the critical-value analysis kernel.
package analyze

import (
	"fmt"

	"github.com/katalvlaran/echelon/scalar"
	"github.com/katalvlaran/echelon/symbolic"
)

// Analyze inspects a row-echelon matrix and produces the critical cases
// plus the derived summary. A nil engine selects symbolic.Default().
//
// Implementation:
//   - Stage 1 (Validate): nil matrix → scalar.ErrNilMatrix; structural
//     echelon check → ErrNotEchelon (fatal, no partial result).
//   - Stage 2 (Diagonal scan): for each A[i][i], i < min(r,c):
//     parameter-free zero → AlwaysDependent; parameter-carrying entry →
//     solve entry==0 per free parameter, one Dependent case per parameter,
//     solve failures recovered into Diagnostics.
//   - Stage 3 (Last row): first nonzero entry exactly in the last column
//     reads as 0 = nonzero → Inconsistent.
//   - Stage 4 (Finalize): derive the Summary under the documented precedence.
//
// Complexity: O(r*c) structural scan plus one engine solve per
// (diagonal entry, free parameter) pair.
func Analyze(m *scalar.Matrix, eng symbolic.Engine) (Report, error) {
	// Validate input.
	if m == nil {
		return Report{}, scalar.ErrNilMatrix
	}
	if eng == nil {
		eng = symbolic.Default()
	}
	if m.IsEmpty() {
		return Report{Summary: UniqueSolution}, nil
	}
	if err := checkEchelon(m); err != nil {
		return Report{}, err
	}

	var report Report

	// Diagonal scan.
	limit := m.Rows()
	if m.Cols() < limit {
		limit = m.Cols()
	}
	for i := 0; i < limit; i++ {
		entry, err := m.At(i, i)
		if err != nil {
			return Report{}, err
		}
		switch {
		case !entry.HasParameters():
			// Parameter-free entry: critical only when it is zero outright.
			if entry.IsZero() {
				report.Cases = append(report.Cases, Case{
					Kind:   AlwaysDependent,
					Row:    i,
					Col:    i,
					Source: entry,
				})
			}
		default:
			analyzeEntry(&report, eng, entry, i)
		}
	}

	// Last-row inconsistency signature: the row reads 0 = nonzero when its
	// first nonzero entry sits in the final (constant) column.
	last := m.Rows() - 1
	leadCol, err := m.LeadingCol(last)
	if err != nil {
		return Report{}, err
	}
	if leadCol == m.Cols()-1 {
		constant, err := m.At(last, leadCol)
		if err != nil {
			return Report{}, err
		}
		report.Cases = append(report.Cases, Case{
			Kind:   Inconsistent,
			Row:    last,
			Col:    leadCol,
			Source: constant,
		})
	}

	report.Summary = summarize(report.Cases)

	return report, nil
}

// analyzeEntry solves entry == 0 for each of its free parameters and appends
// one Dependent case per parameter. An unsolvable equation is recovered:
// recorded as a Diagnostic, the analysis moves on.
func analyzeEntry(report *Report, eng symbolic.Engine, entry scalar.Scalar, i int) {
	for _, name := range eng.FreeVariables(entry) {
		roots, err := eng.Solve(entry, name)
		if err != nil {
			report.Diagnostics = append(report.Diagnostics, Diagnostic{
				Row:       i,
				Col:       i,
				Parameter: name,
				Err:       fmt.Errorf("diagonal entry (%d,%d): %w", i, i, err),
			})

			continue
		}
		if len(roots) == 0 {
			continue // no real parameter value drives this entry to zero
		}
		report.Cases = append(report.Cases, Case{
			Kind:      Dependent,
			Row:       i,
			Col:       i,
			Parameter: name,
			Values:    roots,
			Source:    entry,
		})
	}
}

// checkEchelon is the best-effort structural precondition check: leading
// columns of nonzero rows must strictly increase, and no nonzero row may
// follow an all-zero row.
func checkEchelon(m *scalar.Matrix) error {
	prevLead := -1
	sawZeroRow := false
	for i := 0; i < m.Rows(); i++ {
		lead, err := m.LeadingCol(i)
		if err != nil {
			return err
		}
		if lead < 0 {
			sawZeroRow = true

			continue
		}
		if sawZeroRow || lead <= prevLead {
			return ErrNotEchelon
		}
		prevLead = lead
	}

	return nil
}

// summarize derives the headline classification under the documented
// precedence: inconsistency first, always-deficient rank next, value-specific
// dependence last.
func summarize(cases []Case) Summary {
	var dependent, always, inconsistent bool
	for _, c := range cases {
		switch c.Kind {
		case Dependent:
			dependent = true
		case AlwaysDependent:
			always = true
		case Inconsistent:
			inconsistent = true
		}
	}
	switch {
	case inconsistent:
		return NoSolution
	case always:
		return AlwaysInfinite
	case dependent:
		return DependentForValues
	default:
		return UniqueSolution
	}
}
