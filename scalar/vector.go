// SPDX-License-Identifier: MIT

// Package scalar: Vector is a 1-D Scalar sequence used by the
// orthogonalization and solving companions.
package scalar

import "math"

// Vector is an ordered sequence of Scalars.
type Vector []Scalar

// NumVector wraps a float64 slice as a numeric Vector.
func NumVector(vs ...float64) Vector {
	out := make(Vector, len(vs))
	for i, v := range vs {
		out[i] = Num(v)
	}

	return out
}

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// IsZero reports whether every component is zero (per Scalar.IsZero).
func (v Vector) IsZero() bool {
	for _, s := range v {
		if !s.IsZero() {
			return false
		}
	}

	return true
}

// HasSymbolic reports whether any component is on the symbolic arm.
func (v Vector) HasSymbolic() bool {
	for _, s := range v {
		if s.IsSymbolic() {
			return true
		}
	}

	return false
}

// Dot returns the dot product v · w, or ErrDimensionMismatch when lengths
// differ. Mixed numeric/symbolic components promote per Scalar arithmetic.
// Complexity: O(n).
func (v Vector) Dot(w Vector) (Scalar, error) {
	if len(v) != len(w) {
		return Scalar{}, ErrDimensionMismatch
	}
	acc := Num(0)
	for i := range v {
		acc = acc.Add(v[i].Mul(w[i]))
	}

	return acc, nil
}

// Norm returns the Euclidean norm of a purely numeric vector.
// Returns ErrSymbolicEntry when any component is symbolic, since a norm of a
// parametric vector has no single numeric value. Complexity: O(n).
func (v Vector) Norm() (float64, error) {
	var sum float64
	for _, s := range v {
		if s.IsSymbolic() {
			return 0, ErrSymbolicEntry
		}
		sum += s.Float() * s.Float()
	}

	return math.Sqrt(sum), nil
}

// Scale returns a new vector s · v. Complexity: O(n).
func (v Vector) Scale(s Scalar) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = s.Mul(v[i])
	}

	return out
}

// Sub returns a new vector v − w, or ErrDimensionMismatch. Complexity: O(n).
func (v Vector) Sub(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, ErrDimensionMismatch
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i].Sub(w[i])
	}

	return out, nil
}
