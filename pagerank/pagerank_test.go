package pagerank_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/pagerank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func chain(t *testing.T, words ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i+1 < len(words); i++ {
		_, err := g.AddEdge(words[i], words[i+1], 1)
		require.NoError(t, err)
	}

	return g
}

// naive is the direct O(I·V²) transcription of the update rule, used as an oracle.
func naive(g *core.Graph, d float64, iterations int) map[string]float64 {
	vertices := g.Vertices()
	N := float64(len(vertices))
	pr := make(map[string]float64)
	for _, v := range vertices {
		pr[v] = 1 / N
	}
	for i := 0; i < iterations; i++ {
		next := make(map[string]float64)
		for _, v := range vertices {
			sum := 0.0
			for _, u := range vertices {
				if g.HasEdge(u, v) {
					sum += pr[u] / float64(g.OutDegree(u))
				}
			}
			next[v] = (1-d)/N + d*sum
		}
		pr = next
	}

	return pr
}

func TestCompute_SymmetricPair(t *testing.T) {
	g := chain(t, "a", "b", "a")

	scores, err := pagerank.Compute(g)
	require.NoError(t, err)
	assert.InDelta(t, scores["a"], scores["b"], 1e-6)
	assert.InDelta(t, 0.5, scores["a"], 1e-6)
}

func TestCompute_CycleIsUniform(t *testing.T) {
	g := chain(t, "x", "y", "z", "x")

	scores, err := pagerank.Compute(g, pagerank.WithIterations(50))
	require.NoError(t, err)
	for _, v := range []string{"x", "y", "z"} {
		assert.InDelta(t, 1.0/3, scores[v], 1e-6, v)
	}
}

func TestCompute_DanglingMassIsNotRedistributed(t *testing.T) {
	g := chain(t, "a", "b")
	d := 0.85

	scores, err := pagerank.Compute(g, pagerank.WithDamping(d), pagerank.WithIterations(1))
	require.NoError(t, err)
	// After one sweep: a receives nothing, b receives all of a's rank.
	assert.InDelta(t, (1-d)/2, scores["a"], tolerance)
	assert.InDelta(t, (1-d)/2+d*0.5, scores["b"], tolerance)

	scores, err = pagerank.Compute(g)
	require.NoError(t, err)
	assert.Less(t, scores["a"]+scores["b"], 1.0)
}

func TestCompute_WeightsDoNotAffectRank(t *testing.T) {
	g := chain(t, "a", "b", "a", "b", "a", "c", "a")

	scores, err := pagerank.Compute(g)
	require.NoError(t, err)
	assert.InDelta(t, scores["b"], scores["c"], tolerance)
}

func TestCompute_MatchesNaiveSweep(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	g := core.NewGraph()
	for i := 0; i < 120; i++ {
		from := fmt.Sprintf("w%d", r.Intn(25))
		to := fmt.Sprintf("w%d", r.Intn(25))
		_, err := g.AddEdge(from, to, 1)
		require.NoError(t, err)
	}

	got, err := pagerank.Compute(g, pagerank.WithDamping(0.8), pagerank.WithIterations(40))
	require.NoError(t, err)
	want := naive(g, 0.8, 40)

	require.Len(t, got, len(want))
	for v, w := range want {
		assert.InDelta(t, w, got[v], tolerance, v)
	}
}

func TestCompute_ZeroIterationsIsUniform(t *testing.T) {
	g := chain(t, "a", "b", "c", "d")

	scores, err := pagerank.Compute(g, pagerank.WithIterations(0))
	require.NoError(t, err)
	for _, v := range g.Vertices() {
		assert.InDelta(t, 0.25, scores[v], tolerance)
	}
}

func TestCompute_EmptyGraph(t *testing.T) {
	scores, err := pagerank.Compute(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestCompute_Validation(t *testing.T) {
	_, err := pagerank.Compute(nil)
	assert.ErrorIs(t, err, pagerank.ErrNilGraph)

	g := chain(t, "a", "b")
	_, err = pagerank.Compute(g, pagerank.WithDamping(1.5))
	assert.ErrorIs(t, err, pagerank.ErrBadDamping)
	_, err = pagerank.Compute(g, pagerank.WithDamping(-0.1))
	assert.ErrorIs(t, err, pagerank.ErrBadDamping)
	_, err = pagerank.Compute(g, pagerank.WithIterations(-1))
	assert.ErrorIs(t, err, pagerank.ErrBadIterations)
}

func TestRanked_Order(t *testing.T) {
	ranked := pagerank.Ranked(map[string]float64{"b": 0.2, "a": 0.2, "c": 0.6})

	require.Len(t, ranked, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
}
