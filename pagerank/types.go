// Package pagerank computes classic fixed-iteration PageRank scores over a
// core.Graph.
//
// Every vertex starts at 1/N. Each iteration recomputes all scores from a
// frozen snapshot of the previous ones:
//
//	new(v) = (1-d)/N + d * Σ_{u→v} rank(u) / outDegree(u)
//
// where outDegree(u) counts distinct out-edges (weights are ignored). Rank
// held by dangling vertices (outDegree 0) is not redistributed, so totals
// may drift below 1 on graphs with sinks. There is no convergence-based
// early exit: exactly Iterations sweeps run.
package pagerank

import "errors"

// Sentinel errors returned by Compute.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Compute.
	ErrNilGraph = errors.New("pagerank: graph is nil")

	// ErrBadDamping indicates a damping factor outside [0, 1].
	ErrBadDamping = errors.New("pagerank: damping factor must be within [0, 1]")

	// ErrBadIterations indicates a negative iteration count.
	ErrBadIterations = errors.New("pagerank: iterations must be non-negative")
)

// Defaults used when no option overrides them.
const (
	// DefaultDamping is the probability of following a link (vs uniform jump).
	DefaultDamping = 0.85

	// DefaultIterations is the fixed number of synchronous sweeps.
	DefaultIterations = 100
)

// Options configures Compute.
type Options struct {
	Damping    float64 // link-following probability d
	Iterations int     // number of synchronous sweeps
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// WithDamping sets the damping factor d. Validated by Compute.
func WithDamping(d float64) Option {
	return func(o *Options) { o.Damping = d }
}

// WithIterations sets the number of sweeps. Validated by Compute.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// DefaultOptions returns Options{DefaultDamping, DefaultIterations}.
func DefaultOptions() Options {
	return Options{Damping: DefaultDamping, Iterations: DefaultIterations}
}

// Validate reports ErrBadDamping or ErrBadIterations for out-of-range values.
func (o Options) Validate() error {
	if o.Damping < 0 || o.Damping > 1 {
		return ErrBadDamping
	}
	if o.Iterations < 0 {
		return ErrBadIterations
	}

	return nil
}
