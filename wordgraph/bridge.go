package wordgraph

import (
	"math/rand"
	"strings"

	"github.com/katalvlaran/wordgraph/tokenize"
)

// BridgeWords finds every w with edges word1→w and w→word2.
// Bridges are listed in the order w was first seen after word1.
func (w *WordGraph) BridgeWords(word1, word2 string) BridgeResult {
	word1, word2 = tokenize.Word(word1), tokenize.Word(word2)
	res := BridgeResult{Word1: word1, Word2: word2}

	if miss := w.missing(word1, word2); len(miss) > 0 {
		res.Status = StatusNotFound
		res.Missing = miss
		return res
	}

	res.Bridges = w.bridges(word1, word2)
	if len(res.Bridges) == 0 {
		res.Status = StatusEmpty
	}

	return res
}

// GenerateText normalizes input and, for every adjacent pair of words,
// inserts one bridge word drawn uniformly from rng when any exist. Words
// missing from the graph simply have no bridges. Inputs of fewer than two
// words come back normalized and otherwise unchanged.
func (w *WordGraph) GenerateText(input string, rng *rand.Rand) (string, error) {
	if rng == nil {
		return "", ErrNilRand
	}
	words := tokenize.Normalize(input)
	if len(words) < 2 {
		return strings.Join(words, " "), nil
	}

	out := make([]string, 0, 2*len(words)-1)
	for i := 0; i+1 < len(words); i++ {
		out = append(out, words[i])
		if b := w.bridges(words[i], words[i+1]); len(b) > 0 {
			out = append(out, b[rng.Intn(len(b))])
		}
	}
	out = append(out, words[len(words)-1])

	return strings.Join(out, " "), nil
}

// bridges returns the bridge words from a to b; nil when none or either is absent.
func (w *WordGraph) bridges(a, b string) []string {
	next, err := w.g.NeighborIDs(a)
	if err != nil || !w.g.HasVertex(b) {
		return nil
	}
	var out []string
	for _, mid := range next {
		if w.g.HasEdge(mid, b) {
			out = append(out, mid)
		}
	}

	return out
}
