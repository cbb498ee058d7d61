package pagerank

import (
	"sort"

	"github.com/katalvlaran/wordgraph/core"
)

// Compute runs PageRank over g and returns a fresh score map keyed by vertex ID.
//
// Steps:
//  1. Apply and validate options.
//  2. Empty graph → empty map (no 1/N division).
//  3. Snapshot vertices, edges and out-degrees once.
//  4. Run Iterations sweeps; each writes into a new map built only from the
//     previous one.
//
// Complexity: O(Iterations · (V + E)) time, O(V + E) space.
func Compute(g *core.Graph, opts ...Option) (map[string]float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		return map[string]float64{}, nil
	}
	N := float64(n)

	// Snapshot topology so the sweeps never touch the graph lock.
	edges := g.Edges()
	outDegree := make(map[string]int, n)
	for _, e := range edges {
		outDegree[e.From]++
	}

	rank := make(map[string]float64, n)
	for _, v := range vertices {
		rank[v] = 1.0 / N
	}

	base := (1 - cfg.Damping) / N
	for i := 0; i < cfg.Iterations; i++ {
		next := make(map[string]float64, n)
		for _, v := range vertices {
			next[v] = base
		}
		// Only u with an edge u→v contributes, so outDegree[u] ≥ 1 here.
		for _, e := range edges {
			next[e.To] += cfg.Damping * rank[e.From] / float64(outDegree[e.From])
		}
		rank = next
	}

	return rank, nil
}

// Score pairs a vertex with its PageRank.
type Score struct {
	ID   string
	Rank float64
}

// Ranked returns scores sorted by descending rank, ties by ascending ID.
func Ranked(scores map[string]float64) []Score {
	out := make([]Score, 0, len(scores))
	for id, r := range scores {
		out = append(out, Score{ID: id, Rank: r})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank > out[j].Rank
		}
		return out[i].ID < out[j].ID
	})

	return out
}
