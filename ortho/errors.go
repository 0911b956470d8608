// SPDX-License-Identifier: MIT
// Package ortho: sentinel error set.

package ortho

import "errors"

var (
	// ErrNoVectors is returned when the input family is empty.
	ErrNoVectors = errors.New("ortho: no input vectors")

	// ErrAllZero is returned when every input vector collapses to zero
	// during orthogonalization (the family spans only the origin).
	ErrAllZero = errors.New("ortho: all vectors are zero")
)
