// Package core provides a small, thread-safe in-memory directed graph whose
// parallel edges collapse into a single integer weight.
//
// The Graph G = (V,E) is built for word-adjacency corpora:
//
//   - Every edge is directed, from → to.
//   - AddEdge(from, to, w) on an existing pair adds w to the stored weight
//     instead of creating a second edge, so Weight counts co-occurrences.
//   - Self-loops are permitted ("very very" yields very→very).
//   - Adding an edge creates both endpoints implicitly.
//   - Nothing is ever removed; weights only grow.
//
// Storage is a nested map adjacency[from][to] = *Edge for O(1) membership,
// plus insertion-order slices for vertices and out-neighbors:
//
//	Vertices()       // first-insertion order
//	NeighborIDs(id)  // first-insertion order of id's targets
//	Edges()          // by source order, then target order
//
// No sorting is involved, so algorithms built on top (bridge words,
// Dijkstra tie-breaking, seeded random walks) are reproducible run to run.
//
// Core Methods:
//
//	AddVertex(id string) error                              // O(1)
//	AddEdge(from, to string, w int64) (total int64, err error) // O(1)
//	HasVertex(id string) bool                               // O(1)
//	HasEdge(from, to string) bool                           // O(1)
//	Weight(from, to string) (int64, bool)                   // O(1)
//	Neighbors(id string) ([]Edge, error)                    // O(d)
//	NeighborIDs(id string) ([]string, error)                // O(d)
//	OutDegree(id string) int                                // O(1)
//	Vertices() []string                                     // O(V)
//	Edges() []Edge                                          // O(V+E)
//	VertexCount(), EdgeCount() int                          // O(1)
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrBadWeight      – weight increment < 1
//
// A single sync.RWMutex guards all state; readers never block each other.
package core
