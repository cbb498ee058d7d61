// Package dijkstra implements Dijkstra's shortest-path algorithm on
// core.Graph word graphs, where edge weights are positive co-occurrence
// counts.
//
// Overview:
//
//   - Dijkstra computes the minimum-weight path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Ties are broken by push order, so the chosen path among equal-length
//     alternatives is stable across runs.
//   - Weights are guaranteed ≥ 1 by core.Graph, so no negative-weight scan is needed.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), with O(E) worst-case heap entries under “lazy decrease-key”.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error)
//	func PathTo(dist map[string]int64, prev map[string]string, source, target string) ([]string, error)
//
//	  - opts:
//	      • Source(string):         required, the starting vertex ID.
//	      • WithReturnPath():       if set, returns a predecessor map; otherwise prev == nil.
//	      • WithMaxDistance(int64): if set, explores only vertices with distance ≤ given value.
//	  - dist: map[v] = minimal distance from Source to v, or Infinity if unreachable.
//	  - prev: map[v] = predecessor of v on the chosen shortest path, "" for Source/unreachable.
//
// Thread safety:
//
//   - core.Graph reads are lock-protected; Dijkstra keeps all run state local,
//     so concurrent queries over an unchanging graph are safe.
package dijkstra
