// SPDX-License-Identifier: MIT

// Package linsys: Solve and LeastSquares kernels.
package linsys

import (
	"github.com/katalvlaran/echelon/reduce"
	"github.com/katalvlaran/echelon/scalar"
)

// Solve returns the unique x with Ax = b.
//
// Implementation:
//   - Stage 1 (Validate): non-nil numeric A, len(b) == A.Rows().
//   - Stage 2 (Reduce): row-reduce the augmented matrix [A|b].
//   - Stage 3 (Classify): a row reading 0 = nonzero → ErrInconsistent;
//     fewer pivots than unknowns → ErrUnderdetermined.
//   - Stage 4 (Back-substitute): walk pivot rows bottom-up.
//
// Complexity: O(r·c·min(r,c)) for the reduction, O(r·c) afterwards.
func Solve(a *scalar.Matrix, b scalar.Vector) (scalar.Vector, error) {
	// Validate.
	if a == nil {
		return nil, scalar.ErrNilMatrix
	}
	if a.HasSymbolic() || b.HasSymbolic() {
		return nil, scalar.ErrSymbolicEntry
	}
	if len(b) != a.Rows() {
		return nil, scalar.ErrDimensionMismatch
	}

	// Reduce the augmented system.
	aug, err := a.AugmentVec(b)
	if err != nil {
		return nil, err
	}
	res, err := reduce.Reduce(aug)
	if err != nil {
		return nil, err
	}
	ref := res.Matrix
	n := a.Cols()

	// Classify rows: collect pivot (row, col) pairs; detect inconsistency.
	type pivot struct{ row, col int }
	var pivots []pivot
	for i := 0; i < ref.Rows(); i++ {
		lead, err := ref.LeadingCol(i)
		if err != nil {
			return nil, err
		}
		if lead < 0 {
			continue // all-zero row carries no information
		}
		if lead == n {
			return nil, ErrInconsistent // 0 = nonzero
		}
		pivots = append(pivots, pivot{row: i, col: lead})
	}
	if len(pivots) < n {
		return nil, ErrUnderdetermined
	}

	// Back substitution, bottom pivot first.
	x := make(scalar.Vector, n)
	for i := range x {
		x[i] = scalar.Num(0)
	}
	for k := len(pivots) - 1; k >= 0; k-- {
		p := pivots[k]
		rhs, err := ref.At(p.row, n)
		if err != nil {
			return nil, err
		}
		acc := rhs
		for j := p.col + 1; j < n; j++ {
			coeff, err := ref.At(p.row, j)
			if err != nil {
				return nil, err
			}
			acc = acc.Sub(coeff.Mul(x[j]))
		}
		pv, err := ref.At(p.row, p.col)
		if err != nil {
			return nil, err
		}
		if x[p.col], err = acc.Div(pv); err != nil {
			return nil, err
		}
	}

	return x, nil
}

// LeastSquares returns the x minimizing ‖Ax − b‖₂ via the normal equations
// AᵀAx = Aᵀb. Requires A to have full column rank; a rank-deficient A
// surfaces as ErrUnderdetermined from the inner Solve.
// Complexity: O(r·c²) to form the normal equations plus one Solve.
func LeastSquares(a *scalar.Matrix, b scalar.Vector) (scalar.Vector, error) {
	if a == nil {
		return nil, scalar.ErrNilMatrix
	}
	if a.HasSymbolic() || b.HasSymbolic() {
		return nil, scalar.ErrSymbolicEntry
	}
	if len(b) != a.Rows() {
		return nil, scalar.ErrDimensionMismatch
	}

	at := a.Transpose()
	ata, err := at.Mul(a)
	if err != nil {
		return nil, err
	}
	atb, err := at.MulVec(b)
	if err != nil {
		return nil, err
	}

	return Solve(ata, atb)
}
