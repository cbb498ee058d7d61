// File: types.go
// Role: Options, sentinel errors and defaults for Dijkstra.
//
// Options:
//
//	– Source:      ID of the starting vertex (must be non-empty and present in the graph).
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; vertices beyond this are skipped.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrTargetNotFound  if PathTo is asked for a vertex absent from dist.
//	– ErrNoPath          if PathTo is asked for an unreachable vertex.
//	– ErrBadMaxDistance  if MaxDistance < 0.

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrTargetNotFound indicates that the requested target vertex was never
	// part of the computed distance table.
	ErrTargetNotFound = errors.New("dijkstra: target vertex not found in graph")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: target unreachable from source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Infinity marks an unreachable vertex in the distance map.
const Infinity int64 = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is Infinity (no cap).
type Options struct {
	Source      string // The ID of the source vertex
	ReturnPath  bool   // Whether to return the predecessor map
	MaxDistance int64  // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values cause a panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex ID.
//
// Defaults:
//   - Source:      <as passed> (no validation here; validated in Dijkstra).
//   - ReturnPath:  false (predecessor map not returned).
//   - MaxDistance: Infinity (no distance limit; explore all reachable).
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: Infinity,
	}
}
