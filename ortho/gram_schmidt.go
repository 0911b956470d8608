// SPDX-License-Identifier: MIT

// Package ortho: the Gram–Schmidt kernel and the orthogonality predicates.
package ortho

import (
	"fmt"
	"math"

	"github.com/katalvlaran/echelon/exact"
	"github.com/katalvlaran/echelon/scalar"
)

// Step is one recorded orthogonalization operation: a projection
// subtraction, a dependent-vector drop, or a unit-norm scaling.
// Steps are created during a GramSchmidt run and owned by the caller
// afterwards (read-only history for display).
type Step struct {
	Index       int           // 1-based position in the trace
	Description string        // human-readable operation, e.g. "u2 ← u2 − (1/2)·u1"
	Vector      scalar.Vector // deep copy of the working vector after the operation
}

// Result is the outcome of an orthogonalization: the accepted basis and the
// optional step trace.
type Result struct {
	Basis []scalar.Vector
	Steps []Step
}

// GramSchmidt orthogonalizes a family of numeric vectors.
//
// Implementation:
//   - Stage 1 (Validate): non-empty family, equal lengths, numeric entries.
//   - Stage 2 (Execute): uₖ = vₖ − Σᵢ (vₖ·uᵢ / uᵢ·uᵢ) uᵢ over accepted uᵢ;
//     vectors whose residual norm falls below eps are dropped (linearly
//     dependent on the accepted ones), recording a Step per projection and
//     per drop when tracing.
//   - Stage 3 (Finalize): optional unit-norm scaling; ErrAllZero when
//     nothing survives.
//
// The input vectors are never mutated. Complexity: O(k²·n) dot products.
func GramSchmidt(vs []scalar.Vector, opts ...Option) (Result, error) {
	// Validate family shape.
	if len(vs) == 0 {
		return Result{}, ErrNoVectors
	}
	dim := len(vs[0])
	for _, v := range vs {
		if len(v) != dim {
			return Result{}, scalar.ErrDimensionMismatch
		}
		if v.HasSymbolic() {
			return Result{}, scalar.ErrSymbolicEntry
		}
	}
	cfg := gatherOptions(opts...)

	var steps []Step
	record := func(description string, v scalar.Vector) {
		if !cfg.trace {
			return
		}
		steps = append(steps, Step{
			Index:       len(steps) + 1,
			Description: description,
			Vector:      v.Clone(),
		})
	}

	// Orthogonalize.
	var basis []scalar.Vector
	for k, v := range vs {
		u := v.Clone()
		for i, b := range basis {
			// coefficient = (u·b)/(b·b); b is accepted, so b·b > eps².
			num, err := u.Dot(b)
			if err != nil {
				return Result{}, err
			}
			den, err := b.Dot(b)
			if err != nil {
				return Result{}, err
			}
			coeff := scalar.Num(num.Float() / den.Float())
			if coeff.IsZero() {
				continue // already orthogonal to this basis vector
			}
			if u, err = u.Sub(b.Scale(coeff)); err != nil {
				return Result{}, err
			}
			record(fmt.Sprintf("u%d ← u%d − (%s)·u%d",
				k+1, k+1, exact.Format(coeff.Float()), i+1), u)
		}
		norm, err := u.Norm()
		if err != nil {
			return Result{}, err
		}
		if norm <= cfg.eps {
			// Dependent on the accepted vectors: drop.
			record(fmt.Sprintf("drop v%d (linearly dependent)", k+1), u)

			continue
		}
		if cfg.normalize {
			u = u.Scale(scalar.Num(1 / norm))
			record(fmt.Sprintf("u%d ← (%s)·u%d", k+1, exact.Format(1/norm), k+1), u)
		}
		basis = append(basis, u)
	}

	if len(basis) == 0 {
		return Result{}, ErrAllZero
	}

	return Result{Basis: basis, Steps: steps}, nil
}

// IsOrthogonal reports whether every distinct pair of vectors has a dot
// product within eps of zero. Zero vectors are trivially orthogonal to
// everything. Complexity: O(k²·n).
func IsOrthogonal(vs []scalar.Vector, opts ...Option) (bool, error) {
	cfg := gatherOptions(opts...)
	if len(vs) == 0 {
		return false, ErrNoVectors
	}
	for i := 0; i < len(vs); i++ {
		if vs[i].HasSymbolic() {
			return false, scalar.ErrSymbolicEntry
		}
		for j := i + 1; j < len(vs); j++ {
			dot, err := vs[i].Dot(vs[j])
			if err != nil {
				return false, err
			}
			if math.Abs(dot.Float()) > cfg.eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsOrthonormal reports orthogonality plus unit Euclidean norm of every
// vector, both within eps. Complexity: O(k²·n).
func IsOrthonormal(vs []scalar.Vector, opts ...Option) (bool, error) {
	ok, err := IsOrthogonal(vs, opts...)
	if err != nil || !ok {
		return false, err
	}
	cfg := gatherOptions(opts...)
	for _, v := range vs {
		norm, err := v.Norm()
		if err != nil {
			return false, err
		}
		if math.Abs(norm-1) > cfg.eps {
			return false, nil
		}
	}

	return true, nil
}
