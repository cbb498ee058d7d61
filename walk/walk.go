// Package walk performs randomized traversals of a core.Graph that stop
// on a dead end or just before an edge would be traversed a second time.
//
// The walk:
//
//  1. starts at a uniformly chosen vertex (or the WithStart vertex),
//  2. picks a uniformly random out-edge of the current vertex,
//  3. stops if the current vertex has no out-edges, or if the chosen
//     "from→to" edge was already used in this walk; the repeated hop is
//     neither recorded nor followed.
//
// Because every edge can be used at most once, a walk visits at most E+1
// vertices and always terminates.
//
// Randomness is injected as *rand.Rand so callers can fix the seed.
package walk

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/wordgraph/core"
)

// Sentinel errors for Walk.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("walk: graph is nil")

	// ErrNilRand is returned if no random source is supplied.
	ErrNilRand = errors.New("walk: random source is nil")

	// ErrStartNotFound is returned when WithStart names an absent vertex.
	ErrStartNotFound = errors.New("walk: start vertex not found")
)

// Options configures a walk.
type Options struct {
	// Start, if non-empty, fixes the first vertex instead of drawing it.
	Start string
}

// Option configures Walk via functional arguments.
type Option func(*Options)

// WithStart fixes the starting vertex.
func WithStart(id string) Option {
	return func(o *Options) { o.Start = id }
}

// hop identifies a traversed directed edge.
type hop struct{ from, to string }

// Walk returns the ordered vertex sequence of one random walk over g.
// An empty graph yields an empty (nil) path and no error.
//
// Complexity: O(E) steps, each O(d) for the neighbor snapshot.
func Walk(g *core.Graph, rng *rand.Rand, opts ...Option) ([]string, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	current := cfg.Start
	if current == "" {
		vertices := g.Vertices()
		if len(vertices) == 0 {
			return nil, nil
		}
		current = vertices[rng.Intn(len(vertices))]
	} else if !g.HasVertex(current) {
		return nil, ErrStartNotFound
	}

	path := []string{current}
	used := make(map[hop]struct{})
	for {
		next, err := g.NeighborIDs(current)
		if err != nil {
			return nil, err
		}
		if len(next) == 0 {
			break // dead end
		}
		to := next[rng.Intn(len(next))]
		h := hop{from: current, to: to}
		if _, seen := used[h]; seen {
			break // would repeat an edge
		}
		used[h] = struct{}{}
		path = append(path, to)
		current = to
	}

	return path, nil
}
