// SPDX-License-Identifier: MIT

// Package reduce: functional configuration for the reducer. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package reduce

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultTraceSteps controls step recording. false ⇒ Reduce returns only
	// the final matrix; true ⇒ every swap, normalization and elimination
	// appends a Step with a description and a snapshot.
	DefaultTraceSteps = false

	// DefaultNormalizePivots controls pivot scaling. When enabled, each
	// pivot row is scaled so its pivot becomes exactly 1 — but ONLY when the
	// pivot is parameter-free. A pivot with free parameters is never divided
	// by: it may be zero for some parameter assignment.
	DefaultNormalizePivots = false

	// DefaultSimplifyEachStep re-normalizes symbolic entries after every
	// elimination. Cosmetic only: it bounds expression growth but never
	// changes the mathematical result. The final matrix is normalized once
	// regardless of this flag.
	DefaultSimplifyEachStep = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported-field-only to prevent external mutation;
// public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	trace        bool // DefaultTraceSteps
	normalize    bool // DefaultNormalizePivots
	simplifyEach bool // DefaultSimplifyEachStep
}

// WithTrace enables step tracing: every elementary row operation performed
// by Reduce appends a Step{Description, Snapshot} to the result.
// Snapshots are deep copies; the trace stays valid after further mutation.
// Complexity impact: O(r*c) extra memory per recorded step.
func WithTrace() Option {
	return func(o *Options) { o.trace = true }
}

// WithNormalizePivots scales each parameter-free pivot row so the pivot
// becomes exactly 1 (recording a Step when tracing). Pivots carrying free
// parameters are left unscaled by design — see DefaultNormalizePivots.
func WithNormalizePivots() Option {
	return func(o *Options) { o.normalize = true }
}

// WithoutSimplify disables the per-step symbolic normalization pass.
// Intermediate symbolic entries may grow larger; the final result is still
// normalized once. Useful when tracing the raw elimination arithmetic.
func WithoutSimplify() Option {
	return func(o *Options) { o.simplifyEach = false }
}

// gatherOptions applies setters over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		trace:        DefaultTraceSteps,
		normalize:    DefaultNormalizePivots,
		simplifyEach: DefaultSimplifyEachStep,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
