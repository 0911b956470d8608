// SPDX-License-Identifier: MIT

// Package analyze_test covers the critical-value analyzer: the structural
// precondition, the diagonal scan on both arms, the last-row inconsistency
// signature and the summary precedence.
package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/echelon/analyze"
	"github.com/katalvlaran/echelon/scalar"
	"github.com/katalvlaran/echelon/symbolic"
)

// kindCount tallies the cases of one kind in a report.
func kindCount(r analyze.Report, k analyze.CaseKind) int {
	n := 0
	for _, c := range r.Cases {
		if c.Kind == k {
			n++
		}
	}

	return n
}

// TestAnalyze_Validation covers nil input, the empty matrix and the
// echelon-form precondition.
func TestAnalyze_Validation(t *testing.T) {
	t.Parallel()

	_, err := analyze.Analyze(nil, nil)
	assert.ErrorIs(t, err, scalar.ErrNilMatrix)

	empty, err := scalar.NewMatrix(0, 2)
	require.NoError(t, err)
	report, err := analyze.Analyze(empty, nil)
	require.NoError(t, err)
	assert.Equal(t, analyze.UniqueSolution, report.Summary)

	t.Run("leading columns must advance", func(t *testing.T) {
		m, err := scalar.FromFloats([][]float64{{0, 1}, {1, 0}})
		require.NoError(t, err)
		_, err = analyze.Analyze(m, nil)
		assert.ErrorIs(t, err, analyze.ErrNotEchelon)
	})

	t.Run("no nonzero row below a zero row", func(t *testing.T) {
		m, err := scalar.FromFloats([][]float64{{0, 0}, {0, 1}})
		require.NoError(t, err)
		_, err = analyze.Analyze(m, nil)
		assert.ErrorIs(t, err, analyze.ErrNotEchelon)
	})
}

// TestAnalyze_UniqueSolution verifies the quiet path: full rank, no cases.
func TestAnalyze_UniqueSolution(t *testing.T) {
	t.Parallel()

	m, err := scalar.FromFloats([][]float64{{1, 2, 4}, {0, 3, 5}})
	require.NoError(t, err)

	report, err := analyze.Analyze(m, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Cases)
	assert.Empty(t, report.Diagnostics)
	assert.Equal(t, analyze.UniqueSolution, report.Summary)
	assert.False(t, report.HasNoSolution())
	assert.False(t, report.AlwaysInfiniteSolutions())
}

// TestAnalyze_AlwaysDependent verifies a parameter-free zero on the diagonal.
func TestAnalyze_AlwaysDependent(t *testing.T) {
	t.Parallel()

	m, err := scalar.FromFloats([][]float64{{2, 1}, {0, 0}})
	require.NoError(t, err)

	report, err := analyze.Analyze(m, nil)
	require.NoError(t, err)
	require.Len(t, report.Cases, 1)

	c := report.Cases[0]
	assert.Equal(t, analyze.AlwaysDependent, c.Kind)
	assert.Equal(t, 1, c.Row)
	assert.Equal(t, 1, c.Col)
	assert.Empty(t, c.Parameter)
	assert.Empty(t, c.Values)

	assert.Equal(t, analyze.AlwaysInfinite, report.Summary)
	assert.True(t, report.AlwaysInfiniteSolutions())
}

// TestAnalyze_Inconsistent verifies the last-row 0 = nonzero signature and
// the NoSolution precedence over the rank findings.
func TestAnalyze_Inconsistent(t *testing.T) {
	t.Parallel()

	m, err := scalar.FromFloats([][]float64{{1, 2, 3}, {0, 0, 5}})
	require.NoError(t, err)

	report, err := analyze.Analyze(m, nil)
	require.NoError(t, err)

	// Exactly one inconsistency finding; the rank finding at (1,1) coexists.
	assert.Equal(t, 1, kindCount(report, analyze.Inconsistent))
	assert.True(t, report.HasNoSolution())
	assert.True(t, report.AlwaysInfiniteSolutions())
	assert.Equal(t, analyze.NoSolution, report.Summary)

	for _, c := range report.Cases {
		if c.Kind == analyze.Inconsistent {
			assert.Equal(t, 1, c.Row)
			assert.Equal(t, 2, c.Col)
			assert.InDelta(t, 5, c.Source.Float(), 1e-9)
		}
	}
}

// TestAnalyze_DependentLinear verifies the parametric diagonal: a − 3 on the
// diagonal yields one Dependent case with the critical value 3.
func TestAnalyze_DependentLinear(t *testing.T) {
	t.Parallel()

	a := scalar.Param("a")
	m, err := scalar.FromRows([][]scalar.Scalar{
		{scalar.Num(1), scalar.Num(2), scalar.Num(5)},
		{scalar.Num(0), a.Sub(scalar.Num(3)), scalar.Num(1)},
	})
	require.NoError(t, err)

	report, err := analyze.Analyze(m, symbolic.Default())
	require.NoError(t, err)
	require.Len(t, report.Cases, 1)

	c := report.Cases[0]
	assert.Equal(t, analyze.Dependent, c.Kind)
	assert.Equal(t, 1, c.Row)
	assert.Equal(t, 1, c.Col)
	assert.Equal(t, "a", c.Parameter)
	require.Len(t, c.Values, 1)
	assert.InDelta(t, 3, c.Values[0].Float(), 1e-9)
	assert.True(t, c.Source.HasParameters())

	assert.Equal(t, analyze.DependentForValues, report.Summary)
	assert.Len(t, report.DependentCases(), 1)
}

// TestAnalyze_DependentQuadratic verifies that all real roots land in the
// Values list of a single case.
func TestAnalyze_DependentQuadratic(t *testing.T) {
	t.Parallel()

	a := scalar.Param("a")
	m, err := scalar.FromRows([][]scalar.Scalar{
		{scalar.Num(1), scalar.Num(0), scalar.Num(0)},
		{scalar.Num(0), a.Mul(a).Sub(scalar.Num(4)), scalar.Num(7)},
	})
	require.NoError(t, err)

	report, err := analyze.Analyze(m, nil)
	require.NoError(t, err)
	require.Len(t, report.Cases, 1)

	c := report.Cases[0]
	assert.Equal(t, analyze.Dependent, c.Kind)
	require.Len(t, c.Values, 2)
	assert.InDelta(t, 2, c.Values[0].Float(), 1e-9)
	assert.InDelta(t, -2, c.Values[1].Float(), 1e-9)
}

// TestAnalyze_NoRealRoots verifies that a diagonal entry with no real zero
// produces no case at all: a² + 1 never vanishes.
func TestAnalyze_NoRealRoots(t *testing.T) {
	t.Parallel()

	a := scalar.Param("a")
	m, err := scalar.FromRows([][]scalar.Scalar{
		{scalar.Num(1), scalar.Num(0), scalar.Num(0)},
		{scalar.Num(0), a.Mul(a).Add(scalar.Num(1)), scalar.Num(2)},
	})
	require.NoError(t, err)

	report, err := analyze.Analyze(m, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Cases)
	assert.Empty(t, report.Diagnostics)
	assert.Equal(t, analyze.UniqueSolution, report.Summary)
}

// TestAnalyze_RecoveredDiagnostic verifies per-entry recovery: an equation
// beyond the closed-form solvers is reported as a diagnostic, not a failure.
func TestAnalyze_RecoveredDiagnostic(t *testing.T) {
	t.Parallel()

	a := scalar.Param("a")
	quartic := a.Mul(a).Mul(a).Mul(a).Sub(scalar.Num(1))
	m, err := scalar.FromRows([][]scalar.Scalar{
		{scalar.Num(1), scalar.Num(0), scalar.Num(0)},
		{scalar.Num(0), quartic, scalar.Num(3)},
	})
	require.NoError(t, err)

	report, err := analyze.Analyze(m, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Cases)
	require.Len(t, report.Diagnostics, 1)

	d := report.Diagnostics[0]
	assert.Equal(t, 1, d.Row)
	assert.Equal(t, 1, d.Col)
	assert.Equal(t, "a", d.Parameter)
	assert.ErrorIs(t, d.Err, symbolic.ErrUnsolvable)
	assert.Equal(t, analyze.UniqueSolution, report.Summary)
}

// TestCaseKind_String pins the labels used in classroom output.
func TestCaseKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dependent", analyze.Dependent.String())
	assert.Equal(t, "always-dependent", analyze.AlwaysDependent.String())
	assert.Equal(t, "inconsistent", analyze.Inconsistent.String())
	assert.Equal(t, "no solution", analyze.NoSolution.String())
}
