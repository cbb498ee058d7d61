package walk_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/walk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain(t *testing.T, words ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i+1 < len(words); i++ {
		_, err := g.AddEdge(words[i], words[i+1], 1)
		require.NoError(t, err)
	}

	return g
}

// assertWellFormed checks that each hop is a real edge used at most once.
func assertWellFormed(t *testing.T, g *core.Graph, path []string) {
	t.Helper()
	seen := make(map[[2]string]bool)
	for i := 0; i+1 < len(path); i++ {
		hop := [2]string{path[i], path[i+1]}
		assert.True(t, g.HasEdge(hop[0], hop[1]), "missing edge %v", hop)
		assert.False(t, seen[hop], "edge %v traversed twice", hop)
		seen[hop] = true
	}
}

func TestWalk_StructuralProperties(t *testing.T) {
	g := chain(t, "the", "cat", "sat", "on", "the", "mat", "and", "the", "cat", "ran", "on", "the", "cat")

	for seed := int64(0); seed < 200; seed++ {
		path, err := walk.Walk(g, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.NotEmpty(t, path)
		assertWellFormed(t, g, path)
		assert.LessOrEqual(t, len(path), g.EdgeCount()+1)
	}
}

func TestWalk_StopsAtDeadEnd(t *testing.T) {
	g := chain(t, "a", "b", "c")

	path, err := walk.Walk(g, rand.New(rand.NewSource(1)), walk.WithStart("a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, path)
}

func TestWalk_StopsBeforeRepeatedEdge(t *testing.T) {
	// Single cycle a→b→a: every choice is forced.
	g := chain(t, "a", "b", "a")

	path, err := walk.Walk(g, rand.New(rand.NewSource(3)), walk.WithStart("a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "a"}, path)
}

func TestWalk_SelfLoop(t *testing.T) {
	g := chain(t, "go", "go")

	path, err := walk.Walk(g, rand.New(rand.NewSource(9)), walk.WithStart("go"))
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "go"}, path)
}

func TestWalk_SeedIsReproducible(t *testing.T) {
	g := chain(t, "a", "b", "c", "a", "c", "b", "a", "d", "a")

	first, err := walk.Walk(g, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	second, err := walk.Walk(g, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWalk_EmptyGraph(t *testing.T) {
	path, err := walk.Walk(core.NewGraph(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestWalk_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := walk.Walk(nil, rng)
	assert.ErrorIs(t, err, walk.ErrNilGraph)

	g := chain(t, "a", "b")
	_, err = walk.Walk(g, nil)
	assert.ErrorIs(t, err, walk.ErrNilRand)

	_, err = walk.Walk(g, rng, walk.WithStart("zzz"))
	assert.ErrorIs(t, err, walk.ErrStartNotFound)
}
