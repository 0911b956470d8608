// SPDX-License-Identifier: MIT
// Package analyze: sentinel error set.

package analyze

import "errors"

// ErrNotEchelon is returned when the input fails the structural row-echelon
// check (leading entries not strictly right-shifting, or a nonzero row below
// a zero row). Fatal to the call: no partial result.
var ErrNotEchelon = errors.New("analyze: matrix is not in row-echelon form")
