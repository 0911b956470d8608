// SPDX-License-Identifier: MIT
// Package ortho: functional configuration. Same conventions as the reduce
// package: documented defaults, WithX setters, internal gatherOptions.

package ortho

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultEpsilon is the tolerance for "zero vector" and orthogonality
	// dot-product checks.
	DefaultEpsilon = 1e-9

	// DefaultNormalize controls whether survivors are scaled to unit norm
	// (orthonormal basis) or left at their natural length (orthogonal basis).
	DefaultNormalize = false

	// DefaultTraceSteps controls step recording. false ⇒ GramSchmidt returns
	// only the basis; true ⇒ every projection, drop and normalization appends
	// a Step with a description and a vector snapshot.
	DefaultTraceSteps = false
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying setters.
type Options struct {
	eps       float64
	normalize bool
	trace     bool
}

// WithEpsilon sets the zero/orthogonality tolerance.
// Panics on negative or non-finite eps (programmer error).
func WithEpsilon(eps float64) Option {
	if eps != eps || eps < 0 { // NaN or negative
		panic("ortho: WithEpsilon: eps must be finite, non-negative")
	}

	return func(o *Options) { o.eps = eps }
}

// WithNormalize scales each accepted vector to unit Euclidean norm,
// producing an orthonormal family.
func WithNormalize() Option {
	return func(o *Options) { o.normalize = true }
}

// WithTrace enables step tracing: every projection subtraction, dependent
// drop and unit-norm scaling performed by GramSchmidt appends a
// Step{Description, Vector} to the result. Snapshots are deep copies.
func WithTrace() Option {
	return func(o *Options) { o.trace = true }
}

// gatherOptions applies setters over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, normalize: DefaultNormalize, trace: DefaultTraceSteps}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
