// SPDX-License-Identifier: MIT

// Package linsys: matrix inversion by Gauss–Jordan elimination on [A | I].
package linsys

import (
	"github.com/katalvlaran/echelon/reduce"
	"github.com/katalvlaran/echelon/scalar"
)

// Inverse returns A⁻¹ for a square, numeric, nonsingular A.
//
// Implementation:
//   - Stage 1 (Validate): non-nil, square, numeric.
//   - Stage 2 (Forward): row-reduce [A | I] with pivot normalization, so
//     every pivot in the left block becomes exactly 1.
//   - Stage 3 (Rank check): any left-block row without a pivot ⇒ ErrSingular.
//   - Stage 4 (Backward): clear entries above each pivot bottom-up; the
//     right block is then A⁻¹.
//
// Complexity: O(n³).
func Inverse(a *scalar.Matrix) (*scalar.Matrix, error) {
	// Validate.
	if a == nil {
		return nil, scalar.ErrNilMatrix
	}
	if a.Rows() != a.Cols() {
		return nil, ErrNonSquare
	}
	if a.HasSymbolic() {
		return nil, scalar.ErrSymbolicEntry
	}
	n := a.Rows()
	if n == 0 {
		return a.Clone(), nil // empty matrix inverts to itself
	}

	// Forward pass over the doubled block.
	eye, err := scalar.Identity(n)
	if err != nil {
		return nil, err
	}
	aug, err := a.Augment(eye)
	if err != nil {
		return nil, err
	}
	res, err := reduce.Reduce(aug, reduce.WithNormalizePivots())
	if err != nil {
		return nil, err
	}
	ref := res.Matrix

	// Rank check: row i must lead exactly at column i inside the left block.
	for i := 0; i < n; i++ {
		lead, err := ref.LeadingCol(i)
		if err != nil {
			return nil, err
		}
		if lead != i {
			return nil, ErrSingular
		}
	}

	// Backward pass: zero out entries above each (unit) pivot.
	for col := n - 1; col >= 1; col-- {
		for i := col - 1; i >= 0; i-- {
			entry, err := ref.At(i, col)
			if err != nil {
				return nil, err
			}
			if entry.IsZero() {
				continue
			}
			if err = ref.AddScaledRow(i, col, entry.Neg()); err != nil {
				return nil, err
			}
		}
	}

	// The right block now holds the inverse.
	return ref.SubMatrix(n, 2*n)
}
