package wordgraph

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/wordgraph/dijkstra"
	"github.com/katalvlaran/wordgraph/tokenize"
)

// ShortestPath returns the minimum-weight route word1 → … → word2.
// Absent words yield StatusNotFound before any search runs; an unreachable
// target yields StatusEmpty. word1 == word2 is a single-word path of length 0.
// MaxLength caps the search.
func (w *WordGraph) ShortestPath(word1, word2 string, opts ...PathOption) PathResult {
	word1, word2 = tokenize.Word(word1), tokenize.Word(word2)
	res := PathResult{Source: word1, Target: word2}

	if miss := w.missing(word1, word2); len(miss) > 0 {
		res.Status = StatusNotFound
		res.Missing = miss
		return res
	}

	dist, prev, ok := w.search(word1, opts)
	if !ok {
		res.Status = StatusNotFound
		res.Missing = []string{word1}
		return res
	}

	return resolve(res, dist, prev)
}

// ShortestPathsFrom returns one PathResult per other word, in first-seen
// order, all computed from a single search. An absent word1 yields a single
// StatusNotFound result.
func (w *WordGraph) ShortestPathsFrom(word1 string, opts ...PathOption) []PathResult {
	word1 = tokenize.Word(word1)
	dist, prev, ok := w.search(word1, opts)
	if !ok {
		return []PathResult{{Source: word1, Status: StatusNotFound, Missing: []string{word1}}}
	}

	var out []PathResult
	for _, v := range w.g.Vertices() {
		if v == word1 {
			continue
		}
		out = append(out, resolve(PathResult{Source: word1, Target: v}, dist, prev))
	}

	return out
}

// PathOption tunes a shortest-path query.
type PathOption func(*pathOptions)

type pathOptions struct {
	maxLength int64 // 0 = no cap
}

// MaxLength reports targets whose shortest route is longer than n as
// unreachable (StatusEmpty). n <= 0 disables the cap.
func MaxLength(n int64) PathOption {
	return func(o *pathOptions) {
		if n > 0 {
			o.maxLength = n
		}
	}
}

// search runs Dijkstra from source; ok is false when source is absent.
func (w *WordGraph) search(source string, opts []PathOption) (map[string]int64, map[string]string, bool) {
	var po pathOptions
	for _, opt := range opts {
		opt(&po)
	}
	dopts := []dijkstra.Option{dijkstra.Source(source), dijkstra.WithReturnPath()}
	if po.maxLength > 0 {
		dopts = append(dopts, dijkstra.WithMaxDistance(po.maxLength))
	}

	dist, prev, err := dijkstra.Dijkstra(w.g, dopts...)
	if err != nil {
		w.logger.Debug("shortest path search rejected", zap.String("source", source), zap.Error(err))
		return nil, nil, false
	}

	return dist, prev, true
}

// resolve fills res from a finished search.
func resolve(res PathResult, dist map[string]int64, prev map[string]string) PathResult {
	path, err := dijkstra.PathTo(dist, prev, res.Source, res.Target)
	if err != nil {
		res.Status = StatusEmpty
		return res
	}
	res.Status = StatusOK
	res.Path = path
	res.Length = dist[res.Target]

	return res
}
