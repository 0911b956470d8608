// SPDX-License-Identifier: MIT

// Package reduce: the row-echelon reduction kernel.
// The kernel walks columns left to right with independent lead/row pointers,
// selects a "nice" pivot per column, and eliminates below it — by ordinary
// division for parameter-free pivots, by multiply-and-subtract for pivots
// that carry free parameters.
package reduce

import (
	"fmt"
	"math"

	"github.com/katalvlaran/echelon/exact"
	"github.com/katalvlaran/echelon/scalar"
)

// Step is one recorded elementary row operation.
// Steps are created during a Reduce run and owned by the caller afterwards
// (read-only history for display).
type Step struct {
	Index       int            // 1-based position in the trace
	Description string         // human-readable operation, e.g. "R3 ← R3 − (3/2)·R1"
	Snapshot    *scalar.Matrix // deep copy of the matrix after the operation
}

// Result is the outcome of a reduction: the echelon-form matrix (a fresh
// value, the input is never mutated) and the optional step trace.
type Result struct {
	Matrix *scalar.Matrix
	Steps  []Step
}

// pivotCandidate is the transient per-column search record.
// tier ranks the priority class (lower wins): 0 ⇒ exact 1, 1 ⇒ exact −1,
// 2 ⇒ parameter-free (score = |value|), 3 ⇒ symbolic (score = printed
// length, the documented crude simplicity proxy). score breaks ties within
// a tier, lower wins; equal candidates keep the topmost row (stable).
type pivotCandidate struct {
	row   int
	tier  int
	score float64
}

// Reduce brings m to row-echelon form.
//
// Implementation:
//   - Stage 1 (Validate): nil matrix → ErrNilMatrix; empty matrix → the
//     documented no-op (a clone of the input, no steps, no error).
//   - Stage 2 (Prepare): clone the input; the caller's value is never touched.
//   - Stage 3 (Execute): per column — select pivot, swap it up, optionally
//     normalize a parameter-free pivot to 1, eliminate every nonzero entry
//     below it; skip columns with no candidate without consuming a row.
//   - Stage 4 (Finalize): one unconditional normalization pass over all
//     entries, then return the matrix plus the trace.
//
// Behavior highlights:
//   - Pivot priority: exact 1 > exact −1 > smallest |numeric| > shortest
//     symbolic printed form. Deterministic; ties keep the topmost row.
//   - Parameter-carrying pivots eliminate via Rᵢ ← pivot·Rᵢ − entry·Rₚ
//     (no symbolic denominators; per-row scale change is REF-invariant).
//   - Works for any shape; zero rows or columns are a no-op, not an error.
//
// Complexity: O(r·c·min(r,c)) Scalar operations plus simplification cost.
func Reduce(m *scalar.Matrix, opts ...Option) (Result, error) {
	// Validate input.
	if m == nil {
		return Result{}, scalar.ErrNilMatrix
	}
	cfg := gatherOptions(opts...)
	if m.IsEmpty() {
		// Documented no-op: same (empty) shape back, no steps.
		return Result{Matrix: m.Clone()}, nil
	}

	// Private working copy; steps snapshot this copy as it evolves.
	work := m.Clone()
	rows, cols := work.Rows(), work.Cols()

	var steps []Step
	record := func(description string) {
		if !cfg.trace {
			return
		}
		steps = append(steps, Step{
			Index:       len(steps) + 1,
			Description: description,
			Snapshot:    work.Clone(),
		})
	}

	row := 0
	for lead := 0; lead < cols && row < rows; lead++ {
		// Select the pivot row for this column among rows at or below `row`.
		p, found := selectPivot(work, row, lead)
		if !found {
			continue // all-zero column below `row`: advance lead only
		}

		// Bring the pivot row up.
		if p != row {
			if err := work.SwapRows(row, p); err != nil {
				return Result{}, err
			}
			record(fmt.Sprintf("swap R%d and R%d", row+1, p+1))
		}

		pivot := mustAt(work, row, lead)

		// Normalize a parameter-free pivot to exactly 1 when requested.
		// Symbolic pivots with free parameters are never divided by.
		if cfg.normalize && !pivot.HasParameters() && !pivot.IsOne() {
			inv, err := scalar.Num(1).Div(pivot)
			if err != nil {
				return Result{}, err
			}
			if err = work.ScaleRow(row, inv); err != nil {
				return Result{}, err
			}
			if cfg.simplifyEach {
				_ = work.SimplifyRow(row)
			}
			record(fmt.Sprintf("R%d ← (%s)·R%d", row+1, factorString(inv), row+1))
			pivot = mustAt(work, row, lead)
		}

		// Eliminate every nonzero entry below the pivot.
		for i := row + 1; i < rows; i++ {
			entry := mustAt(work, i, lead)
			if entry.IsZero() {
				continue
			}
			var description string
			if pivot.HasParameters() {
				// Multiply-and-subtract: avoids dividing by an expression
				// that may be zero for some parameter assignment.
				if err := work.CombineRows(i, pivot, row, entry.Neg()); err != nil {
					return Result{}, err
				}
				description = fmt.Sprintf("R%d ← (%s)·R%d − (%s)·R%d",
					i+1, factorString(pivot), i+1, factorString(entry), row+1)
			} else {
				factor, err := entry.Div(pivot)
				if err != nil {
					return Result{}, err
				}
				if err = work.AddScaledRow(i, row, factor.Neg()); err != nil {
					return Result{}, err
				}
				description = fmt.Sprintf("R%d ← R%d − (%s)·R%d",
					i+1, i+1, factorString(factor), row+1)
			}
			if cfg.simplifyEach {
				_ = work.SimplifyRow(i)
			}
			record(description)
		}

		row++
	}

	// The final result is always normalized once, regardless of the
	// per-step simplification flag.
	work.SimplifyAll()

	return Result{Matrix: work, Steps: steps}, nil
}

// selectPivot scans rows [fromRow, rows) in column col and returns the row
// of the best nonzero candidate under the documented priority order.
// Stable: an equally-scored later row never displaces an earlier one.
// Complexity: O(rows − fromRow) zero tests plus scoring.
func selectPivot(m *scalar.Matrix, fromRow, col int) (int, bool) {
	best, bestTier, bestScore := -1, math.MaxInt32, math.Inf(1)
	for i := fromRow; i < m.Rows(); i++ {
		v := mustAt(m, i, col)
		if v.IsZero() {
			continue
		}
		c := scorePivot(i, v)
		if c.tier < bestTier || (c.tier == bestTier && c.score < bestScore) {
			best, bestTier, bestScore = c.row, c.tier, c.score
		}
	}

	return best, best >= 0
}

// scorePivot classifies a nonzero candidate value into the priority tiers.
// The symbolic score is the printed-form length — deliberately crude, kept
// for output reproducibility.
func scorePivot(row int, v scalar.Scalar) pivotCandidate {
	switch {
	case v.IsOne():
		return pivotCandidate{row: row, tier: 0}
	case v.IsNegOne():
		return pivotCandidate{row: row, tier: 1}
	case !v.HasParameters():
		return pivotCandidate{row: row, tier: 2, score: math.Abs(v.Float())}
	default:
		return pivotCandidate{row: row, tier: 3, score: float64(len(v.String()))}
	}
}

// factorString renders a step factor: exact closed form for parameter-free
// values, the engine's printed form otherwise.
func factorString(s scalar.Scalar) string {
	if !s.HasParameters() {
		return exact.Format(s.Float())
	}

	return s.String()
}

// mustAt reads an entry whose indices are loop-guaranteed in range.
// A failure here is a programmer error in the kernel, hence the panic.
func mustAt(m *scalar.Matrix, i, j int) scalar.Scalar {
	v, err := m.At(i, j)
	if err != nil {
		panic(fmt.Sprintf("reduce: internal index (%d,%d): %v", i, j, err))
	}

	return v
}
