// Package dijkstra_test contains unit tests for the Dijkstra implementation.
package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edge is a (from, to, weight) triple used to build fixtures.
type edge struct {
	from, to string
	w        int64
}

// buildWeighted creates a graph from edge triples.
func buildWeighted(t *testing.T, edges ...edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("a")

	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("a"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("zzz"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeMaxDistancePanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. Shortest paths
// ------------------------------------------------------------------------

func TestDijkstra_PrefersCheaperDetour(t *testing.T) {
	// a→b(1), b→c(1), a→c(5): the detour through b wins.
	g := buildWeighted(t, edge{"a", "b", 1}, edge{"b", "c", 1}, edge{"a", "c", 5})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("a"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.EqualValues(t, 2, dist["c"])
	assert.Equal(t, "b", prev["c"])

	path, err := dijkstra.PathTo(dist, prev, "a", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, path)
}

func TestDijkstra_NoReturnPath(t *testing.T) {
	g := buildWeighted(t, edge{"a", "b", 3})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("a"))
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.EqualValues(t, 3, dist["b"])
}

func TestDijkstra_DirectionMatters(t *testing.T) {
	g := buildWeighted(t, edge{"a", "b", 1})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("b"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity, dist["a"])

	_, err = dijkstra.PathTo(dist, prev, "b", "a")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestDijkstra_DisconnectedComponents(t *testing.T) {
	g := buildWeighted(t, edge{"a", "b", 1}, edge{"x", "y", 1})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("a"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity, dist["y"])
	assert.Equal(t, "", prev["y"])

	_, err = dijkstra.PathTo(dist, prev, "a", "y")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
	_, err = dijkstra.PathTo(dist, prev, "a", "ghost")
	assert.ErrorIs(t, err, dijkstra.ErrTargetNotFound)
}

func TestDijkstra_SourceEqualsTarget(t *testing.T) {
	g := buildWeighted(t, edge{"a", "a", 4})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("a"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Zero(t, dist["a"])

	path, err := dijkstra.PathTo(dist, prev, "a", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, path)
}

func TestDijkstra_TieBreakIsStable(t *testing.T) {
	// Two equal-length routes a→b→d and a→c→d; b is pushed first.
	g := buildWeighted(t,
		edge{"a", "b", 1}, edge{"a", "c", 1},
		edge{"b", "d", 1}, edge{"c", "d", 1},
	)

	for i := 0; i < 20; i++ {
		dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("a"), dijkstra.WithReturnPath())
		require.NoError(t, err)
		path, err := dijkstra.PathTo(dist, prev, "a", "d")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "d"}, path)
	}
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := buildWeighted(t, edge{"a", "b", 2}, edge{"b", "c", 2})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("a"), dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.EqualValues(t, 2, dist["b"])
	assert.Equal(t, dijkstra.Infinity, dist["c"])
}
