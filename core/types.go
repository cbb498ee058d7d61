// File: types.go
// Role: Vertex, Edge and Graph declarations.
//
// This file declares Vertex, Edge, Graph, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrBadWeight      - edge weight increment is not positive.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-positive weight increment passed to AddEdge.
	ErrBadWeight = errors.New("core: edge weight must be positive")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph. Insertion order is
// kept by Graph, not by the Vertex.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge represents a directed connection From→To.
//
// Repeated insertions of the same ordered pair collapse into a single Edge
// whose Weight counts the occurrences.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the accumulated co-occurrence count (always ≥ 1).
	Weight int64
}

// Graph is the core in-memory directed weighted graph.
//
// mu guards every field below it. Vertex and neighbor order slices record
// first-insertion order, so all enumerations are reproducible without sorting.
type Graph struct {
	mu sync.RWMutex

	// Storage
	vertices map[string]*Vertex // vertex ID → Vertex
	order    []string           // vertex IDs in insertion order

	// adjacency[from][to] = *Edge; out[from] keeps the "to" keys in insertion order.
	adjacency map[string]map[string]*Edge
	out       map[string][]string

	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]*Edge),
		out:       make(map[string][]string),
	}
}
