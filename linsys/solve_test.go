// SPDX-License-Identifier: MIT

// Package linsys_test covers the numeric solvers: Solve, LeastSquares and
// their classification sentinels.
package linsys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/echelon/linsys"
	"github.com/katalvlaran/echelon/scalar"
)

// TestSolve_Unique verifies back substitution on a well-posed 2×2 system:
// 2x + y = 3, x + 3y = 5 ⇒ x = 4/5, y = 7/5.
func TestSolve_Unique(t *testing.T) {
	t.Parallel()

	a, err := scalar.FromFloats([][]float64{{2, 1}, {1, 3}})
	require.NoError(t, err)

	x, err := linsys.Solve(a, scalar.NumVector(3, 5))
	require.NoError(t, err)
	require.Len(t, x, 2)
	assert.InDelta(t, 0.8, x[0].Float(), 1e-9)
	assert.InDelta(t, 1.4, x[1].Float(), 1e-9)
}

// TestSolve_Residual verifies the solution by substituting it back.
func TestSolve_Residual(t *testing.T) {
	t.Parallel()

	a, err := scalar.FromFloats([][]float64{{3, -1, 2}, {1, 4, 0}, {2, 2, 5}})
	require.NoError(t, err)
	b := scalar.NumVector(7, 9, 16)

	x, err := linsys.Solve(a, b)
	require.NoError(t, err)

	ax, err := a.MulVec(x)
	require.NoError(t, err)
	for i := range b {
		assert.InDelta(t, b[i].Float(), ax[i].Float(), 1e-9)
	}
}

// TestSolve_Classification covers the inconsistent and underdetermined
// sentinels on the same singular coefficient matrix.
func TestSolve_Classification(t *testing.T) {
	t.Parallel()

	a, err := scalar.FromFloats([][]float64{{1, 2}, {2, 4}})
	require.NoError(t, err)

	_, err = linsys.Solve(a, scalar.NumVector(3, 7))
	assert.ErrorIs(t, err, linsys.ErrInconsistent)

	_, err = linsys.Solve(a, scalar.NumVector(3, 6))
	assert.ErrorIs(t, err, linsys.ErrUnderdetermined)
}

// TestSolve_Validation covers the input guards.
func TestSolve_Validation(t *testing.T) {
	t.Parallel()

	_, err := linsys.Solve(nil, scalar.NumVector(1))
	assert.ErrorIs(t, err, scalar.ErrNilMatrix)

	a, err := scalar.FromFloats([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	_, err = linsys.Solve(a, scalar.NumVector(1))
	assert.ErrorIs(t, err, scalar.ErrDimensionMismatch)

	sym, err := scalar.FromRows([][]scalar.Scalar{{scalar.Param("a")}})
	require.NoError(t, err)
	_, err = linsys.Solve(sym, scalar.NumVector(1))
	assert.ErrorIs(t, err, scalar.ErrSymbolicEntry)
}

// TestLeastSquares verifies the normal-equation path: fitting a line
// c₀ + c₁·t through (0,0), (1,1), (2,1) gives c₀ = 1/6, c₁ = 1/2.
func TestLeastSquares(t *testing.T) {
	t.Parallel()

	a, err := scalar.FromFloats([][]float64{{1, 0}, {1, 1}, {1, 2}})
	require.NoError(t, err)

	t.Run("exact data is reproduced", func(t *testing.T) {
		x, err := linsys.LeastSquares(a, scalar.NumVector(0, 1, 2))
		require.NoError(t, err)
		assert.InDelta(t, 0, x[0].Float(), 1e-9)
		assert.InDelta(t, 1, x[1].Float(), 1e-9)
	})

	t.Run("noisy data is fitted", func(t *testing.T) {
		x, err := linsys.LeastSquares(a, scalar.NumVector(0, 1, 1))
		require.NoError(t, err)
		assert.InDelta(t, 1.0/6.0, x[0].Float(), 1e-9)
		assert.InDelta(t, 0.5, x[1].Float(), 1e-9)
	})

	t.Run("rank-deficient columns are rejected", func(t *testing.T) {
		dep, err := scalar.FromFloats([][]float64{{1, 2}, {2, 4}, {3, 6}})
		require.NoError(t, err)
		_, err = linsys.LeastSquares(dep, scalar.NumVector(1, 2, 3))
		assert.ErrorIs(t, err, linsys.ErrUnderdetermined)
	})
}
