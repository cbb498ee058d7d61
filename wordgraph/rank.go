package wordgraph

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/wordgraph/pagerank"
	"github.com/katalvlaran/wordgraph/tokenize"
)

// PageRank recomputes scores for every word, replaces the cached scores
// wholesale, and returns a copy of them. An empty graph yields an empty map.
func (w *WordGraph) PageRank() map[string]float64 {
	scores, err := pagerank.Compute(w.g,
		pagerank.WithDamping(w.rankOp.Damping),
		pagerank.WithIterations(w.rankOp.Iterations),
	)
	if err != nil {
		// Options are validated in New and the graph is never nil.
		w.logger.Error("pagerank failed", zap.Error(err))
		scores = map[string]float64{}
	}

	w.mu.Lock()
	w.ranks = scores
	w.mu.Unlock()

	w.logger.Debug("pagerank computed",
		zap.Int("vertices", len(scores)),
		zap.Float64("damping", w.rankOp.Damping),
		zap.Int("iterations", w.rankOp.Iterations),
	)

	return copyScores(scores)
}

// Rank returns the cached score of word, computing PageRank first if no
// scores are cached yet. ok is false for words not in the graph.
func (w *WordGraph) Rank(word string) (float64, bool) {
	r, ok := w.cached()[tokenize.Word(word)]
	return r, ok
}

// TopRanked returns the k highest-scoring words (all words when k <= 0),
// ties broken alphabetically. Uses the cache like Rank.
func (w *WordGraph) TopRanked(k int) []pagerank.Score {
	ranked := pagerank.Ranked(w.cached())
	if k > 0 && k < len(ranked) {
		ranked = ranked[:k]
	}

	return ranked
}

// cached returns the current score map, computing it once if needed.
// The returned map is never mutated afterwards; PageRank swaps in a new one.
func (w *WordGraph) cached() map[string]float64 {
	w.mu.Lock()
	scores := w.ranks
	w.mu.Unlock()
	if scores != nil {
		return scores
	}
	w.PageRank()

	w.mu.Lock()
	defer w.mu.Unlock()

	return w.ranks
}

func copyScores(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}
