package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in g, following edges in their stored direction and
// summing their co-occurrence weights.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (Infinity if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Ties between equal tentative distances are broken by push order, so equal-length
// alternatives resolve the same way on every run.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 3) Prepare data structures.
	vertices := g.Vertices()
	V := len(vertices)
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 4) Initialize state and run main loop.
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo reconstructs the vertex sequence source → … → target from a
// predecessor map produced by Dijkstra with WithReturnPath.
//
// Returns ErrTargetNotFound when target is absent from dist, and ErrNoPath
// when dist[target] is Infinity.
// Complexity: O(L) where L is the path length.
func PathTo(dist map[string]int64, prev map[string]string, source, target string) ([]string, error) {
	d, ok := dist[target]
	if !ok {
		return nil, ErrTargetNotFound
	}
	if d == Infinity {
		return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, source, target)
	}

	// Walk predecessors backwards, then reverse in place.
	path := []string{target}
	for at := target; at != source; {
		at = prev[at]
		if at == "" {
			return nil, fmt.Errorf("%w: broken predecessor chain at %q", ErrNoPath, path[len(path)-1])
		}
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // The input graph; read-only within Dijkstra.
	options Options           // Configuration options (Source, MaxDistance).
	dist    map[string]int64  // Maps vertex ID → current best distance from Source.
	prev    map[string]string // Maps vertex ID → predecessor on the shortest path.
	visited map[string]bool   // Tracks if a vertex's distance is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
	seq     uint64            // Push counter used as heap tie-breaker.
}

// init sets dist[v] = Infinity for every vertex and pushes Source=0 into the heap.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = Infinity
		r.visited[v] = false
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// process repeatedly extracts the vertex with the minimum distance and
// relaxes its outgoing edges until the heap drains or MaxDistance is exceeded.
func (r *runner) process() error {
	var u string
	var d int64
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u = item.id
		d = item.dist

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from u and improves neighbor distances.
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var newDist int64
	for _, e := range neighbors {
		newDist = r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<" keeps the first-found predecessor among equal-length paths.
		if newDist >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = newDist
		r.prev[e.To] = u
		r.push(e.To, newDist)
	}

	return nil
}

// push enqueues id with the given tentative distance (lazy decrease-key).
func (r *runner) push(id string, dist int64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string // vertex ID
	dist int64  // distance from source
	seq  uint64 // push order
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq) ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist first, earlier push on ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
