// File: methods.go
// Role: Vertex & edge lifecycle and read-only queries on Graph.
// Determinism:
//   - Vertices() returns IDs in first-insertion order.
//   - Neighbors()/NeighborIDs() return out-edges in first-insertion order.
//   - Edges() walks vertices in order, then each vertex's out-edges in order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// AddEdge records weight more occurrences of the directed pair from→to.
//
// Steps:
//  1. Validate IDs and weight.
//  2. Ensure both endpoints exist.
//  3. Create the edge on first sight, otherwise increment its Weight.
//
// Self-loops are allowed. Returns the accumulated weight.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (int64, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return 0, ErrEmptyVertexID
	}
	if weight < 1 {
		return 0, ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Endpoints (idempotent)
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3) Collapse parallel occurrences into one weighted edge
	if e, ok := g.adjacency[from][to]; ok {
		e.Weight += weight
		return e.Weight, nil
	}
	g.adjacency[from][to] = &Edge{From: from, To: to, Weight: weight}
	g.out[from] = append(g.out[from], to)
	g.edgeCount++

	return weight, nil
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of edge from→to and whether it exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.adjacency[from][to]
	if !ok {
		return 0, false
	}

	return e.Weight, true
}

// Neighbors returns copies of all outgoing edges of id in insertion order.
// Returns ErrEmptyVertexID or ErrVertexNotFound for bad IDs.
// Complexity: O(d), where d is the out-degree of id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	tos := g.out[id]
	edges := make([]Edge, 0, len(tos))
	for _, to := range tos {
		edges = append(edges, *g.adjacency[id][to])
	}

	return edges, nil
}

// NeighborIDs returns the IDs of the out-neighbors of id in insertion order.
// Complexity: O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return append([]string(nil), g.out[id]...), nil
}

// OutDegree returns the number of distinct outgoing edges of id
// (0 for unknown vertices).
// Complexity: O(1).
func (g *Graph) OutDegree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out[id])
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.order...)
}

// Edges returns copies of all edges, grouped by source vertex in insertion
// order and, within a source, by target insertion order.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges := make([]Edge, 0, g.edgeCount)
	for _, from := range g.order {
		for _, to := range g.out[from] {
			edges = append(edges, *g.adjacency[from][to])
		}
	}

	return edges
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns total number of distinct directed edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Internal helper methods:
////////////////////

// addVertexLocked registers id and its adjacency bucket; caller holds mu.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id}
	g.order = append(g.order, id)
	g.adjacency[id] = make(map[string]*Edge)
}
