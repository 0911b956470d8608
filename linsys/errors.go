// SPDX-License-Identifier: MIT
// Package linsys: sentinel error set.

package linsys

import "errors"

var (
	// ErrInconsistent is returned when reduction exposes a 0 = nonzero row:
	// the system has no solution.
	ErrInconsistent = errors.New("linsys: system is inconsistent")

	// ErrUnderdetermined is returned when the coefficient rank is below the
	// number of unknowns: infinitely many solutions, no unique answer.
	ErrUnderdetermined = errors.New("linsys: system is underdetermined")

	// ErrNonSquare signals that a square matrix was required (inversion).
	ErrNonSquare = errors.New("linsys: matrix is not square")

	// ErrSingular is returned when a matrix has no inverse (rank deficient).
	ErrSingular = errors.New("linsys: singular matrix")
)
