// SPDX-License-Identifier: MIT

// Package symbolic_test covers the GoSym engine: closed-form root finding,
// the no-real-roots convention and the recovery sentinels.
package symbolic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gosymbol "github.com/njchilds90/gosymbol"

	"github.com/katalvlaran/echelon/scalar"
	"github.com/katalvlaran/echelon/symbolic"
)

// TestGoSym_SolveLinear verifies the degree-1 path: a − 3 = 0 ⇒ a = 3.
func TestGoSym_SolveLinear(t *testing.T) {
	t.Parallel()
	eng := symbolic.Default()

	entry := scalar.Param("a").Sub(scalar.Num(3))
	roots, err := eng.Solve(entry, "a")
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.InDelta(t, 3, roots[0].Float(), 1e-9)
}

// TestGoSym_SolveQuadratic verifies the degree-2 path: a² − 4 = 0 ⇒ a ∈ {2, −2},
// positive branch first.
func TestGoSym_SolveQuadratic(t *testing.T) {
	t.Parallel()
	eng := symbolic.Default()

	a := scalar.Param("a")
	entry := a.Mul(a).Sub(scalar.Num(4))
	roots, err := eng.Solve(entry, "a")
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.InDelta(t, 2, roots[0].Float(), 1e-9)
	assert.InDelta(t, -2, roots[1].Float(), 1e-9)
}

// TestGoSym_SolveCubic verifies the degree-3 path: a³ − a = 0 ⇒ a ∈ {1, 0, −1}.
func TestGoSym_SolveCubic(t *testing.T) {
	t.Parallel()
	eng := symbolic.Default()

	a := scalar.Param("a")
	entry := a.Mul(a).Mul(a).Sub(a)
	roots, err := eng.Solve(entry, "a")
	require.NoError(t, err)
	require.Len(t, roots, 3)
	assert.InDelta(t, 1, roots[0].Float(), 1e-9)
	assert.InDelta(t, 0, roots[1].Float(), 1e-9)
	assert.InDelta(t, -1, roots[2].Float(), 1e-9)
}

// TestGoSym_SolveNoRealRoots pins the decided-but-empty outcome: a² + 1 = 0
// has no real roots, which is an answer, not an error.
func TestGoSym_SolveNoRealRoots(t *testing.T) {
	t.Parallel()
	eng := symbolic.Default()

	a := scalar.Param("a")
	entry := a.Mul(a).Add(scalar.Num(1))
	roots, err := eng.Solve(entry, "a")
	assert.NoError(t, err)
	assert.Empty(t, roots)
}

// TestGoSym_SolveErrors covers the sentinel taxonomy: wrong variable,
// non-symbolic entries, degrees beyond the closed-form solvers and
// non-polynomial occurrences.
func TestGoSym_SolveErrors(t *testing.T) {
	t.Parallel()
	eng := symbolic.Default()
	a := scalar.Param("a")

	t.Run("entry independent of the variable", func(t *testing.T) {
		_, err := eng.Solve(scalar.Param("b"), "a")
		assert.ErrorIs(t, err, symbolic.ErrNotSymbolic)

		_, err = eng.Solve(scalar.Num(3), "a")
		assert.ErrorIs(t, err, symbolic.ErrNotSymbolic)
	})

	t.Run("degree above cubic", func(t *testing.T) {
		entry := a.Mul(a).Mul(a).Mul(a).Sub(scalar.Num(1))
		_, err := eng.Solve(entry, "a")
		assert.ErrorIs(t, err, symbolic.ErrUnsolvable)
	})

	t.Run("transcendental occurrence", func(t *testing.T) {
		entry := scalar.Sym(gosymbol.SinOf(gosymbol.S("a")))
		_, err := eng.Solve(entry, "a")
		assert.ErrorIs(t, err, symbolic.ErrUnsolvable)
	})
}

// TestGoSym_FreeVariables verifies the sorted listing.
func TestGoSym_FreeVariables(t *testing.T) {
	t.Parallel()
	eng := symbolic.Default()

	entry := scalar.Param("c").Mul(scalar.Param("a")).Add(scalar.Param("b"))
	assert.Equal(t, []string{"a", "b", "c"}, eng.FreeVariables(entry))
	assert.Empty(t, eng.FreeVariables(scalar.Num(5)))
}

// TestGoSym_Substitute verifies binding application and re-simplification.
func TestGoSym_Substitute(t *testing.T) {
	t.Parallel()
	eng := symbolic.Default()

	entry := scalar.Param("a").Add(scalar.Param("b"))
	out, err := eng.Substitute(entry, map[string]scalar.Scalar{
		"a": scalar.Num(1),
		"b": scalar.Num(2),
	})
	require.NoError(t, err)
	assert.InDelta(t, 3, out.Float(), 1e-12)
	assert.False(t, out.HasParameters())

	// Numeric entries pass through untouched.
	out, err = eng.Substitute(scalar.Num(7), map[string]scalar.Scalar{"a": scalar.Num(1)})
	require.NoError(t, err)
	assert.InDelta(t, 7, out.Float(), 1e-12)
}

// TestGoSym_SimplifyAndZero verifies the normalization helpers shared with
// the analyzers.
func TestGoSym_SimplifyAndZero(t *testing.T) {
	t.Parallel()
	eng := symbolic.Default()
	a := scalar.Param("a")

	out, err := eng.Simplify(a.Mul(a).Sub(a.Mul(a)))
	require.NoError(t, err)
	assert.True(t, out.IsZero())

	assert.True(t, eng.IsAlwaysZero(a.Sub(a)))
	assert.False(t, eng.IsAlwaysZero(a))
	assert.False(t, eng.IsAlwaysZero(a.Sub(scalar.Num(3))))
}
