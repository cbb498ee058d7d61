// Package wordgraph builds a weighted directed word-adjacency graph from a
// token stream and answers five questions about it:
//
//   - BridgeWords:  which words w make "a w b" a path in the corpus?
//   - GenerateText: insert one random bridge word into every gap of a text.
//   - ShortestPath: minimum-weight route between two words (Dijkstra).
//   - PageRank:     fixed-iteration link importance of every word.
//   - RandomWalk:   random traversal stopping before a repeated edge; the
//     trace is written to a TraceSink.
//
// Word identity is case-insensitive: every entry point lowercases its
// input. The graph is fixed after New; only the PageRank cache changes.
//
// Absent words and empty results are reported through result Status
// values, never through errors or panics. Randomized operations take a
// caller-supplied *rand.Rand so a fixed seed gives a fixed answer.
package wordgraph

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/pagerank"
	"github.com/katalvlaran/wordgraph/sink"
	"github.com/katalvlaran/wordgraph/tokenize"
)

// Sentinel errors.
var (
	// ErrNilRand is returned by randomized operations called without a source.
	ErrNilRand = errors.New("wordgraph: random source is nil")

	// ErrTraceWrite wraps a TraceSink failure. The accompanying walk result
	// is still complete.
	ErrTraceWrite = errors.New("wordgraph: trace write failed")
)

// TraceSink receives the random-walk trace as a single line.
type TraceSink interface {
	WriteTrace(line string) error
}

// WordGraph is the built graph plus its derived PageRank cache.
type WordGraph struct {
	g      *core.Graph
	logger *zap.Logger
	trace  TraceSink
	rankOp pagerank.Options

	mu    sync.Mutex
	ranks map[string]float64 // nil until the first PageRank computation
}

// Option configures a WordGraph.
type Option func(*WordGraph)

// WithLogger sets the structured logger (default zap.NewNop()).
func WithLogger(l *zap.Logger) Option {
	return func(w *WordGraph) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithTraceSink sets where random-walk traces go
// (default sink.NewFile(sink.DefaultTraceFile)).
func WithTraceSink(s TraceSink) Option {
	return func(w *WordGraph) {
		if s != nil {
			w.trace = s
		}
	}
}

// WithDamping sets the PageRank damping factor (default 0.85).
func WithDamping(d float64) Option {
	return func(w *WordGraph) { w.rankOp.Damping = d }
}

// WithIterations sets the PageRank sweep count (default 100).
func WithIterations(n int) Option {
	return func(w *WordGraph) { w.rankOp.Iterations = n }
}

// New builds a WordGraph from tokens: each consecutive pair adds one unit of
// weight to the directed edge tokens[i] → tokens[i+1]. Tokens are lowercased;
// empty tokens are skipped. Returns an error only for invalid options.
func New(tokens []string, opts ...Option) (*WordGraph, error) {
	w := &WordGraph{
		g:      core.NewGraph(),
		logger: zap.NewNop(),
		trace:  sink.NewFile(sink.DefaultTraceFile),
		rankOp: pagerank.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if err := w.rankOp.Validate(); err != nil {
		return nil, fmt.Errorf("wordgraph: %w", err)
	}

	prev := ""
	for _, tok := range tokens {
		tok = strings.ToLower(tok)
		if tok == "" {
			continue
		}
		if prev == "" {
			if err := w.g.AddVertex(tok); err != nil {
				return nil, fmt.Errorf("wordgraph: add %q: %w", tok, err)
			}
		} else if _, err := w.g.AddEdge(prev, tok, 1); err != nil {
			return nil, fmt.Errorf("wordgraph: add %q→%q: %w", prev, tok, err)
		}
		prev = tok
	}

	w.logger.Debug("word graph built",
		zap.Int("tokens", len(tokens)),
		zap.Int("vertices", w.g.VertexCount()),
		zap.Int("edges", w.g.EdgeCount()),
	)

	return w, nil
}

// FromReader tokenizes r and builds a WordGraph from the result.
func FromReader(r io.Reader, opts ...Option) (*WordGraph, error) {
	tokens, err := tokenize.Read(r)
	if err != nil {
		return nil, err
	}

	return New(tokens, opts...)
}

// FromFile tokenizes the file at path and builds a WordGraph from it.
func FromFile(path string, opts ...Option) (*WordGraph, error) {
	tokens, err := tokenize.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return New(tokens, opts...)
}

// Graph exposes the underlying graph for read-only use.
func (w *WordGraph) Graph() *core.Graph { return w.g }

// Describe writes one line per word in first-seen order:
//
//	the -> cat(1) mat(2)
//
// Words without successors print as "word ->".
func (w *WordGraph) Describe(out io.Writer) error {
	for _, v := range w.g.Vertices() {
		edges, err := w.g.Neighbors(v)
		if err != nil {
			return err
		}
		var b strings.Builder
		b.WriteString(v)
		b.WriteString(" ->")
		for _, e := range edges {
			fmt.Fprintf(&b, " %s(%d)", e.To, e.Weight)
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(out, b.String()); err != nil {
			return err
		}
	}

	return nil
}

// missing returns the words (deduplicated, in argument order) absent from the graph.
func (w *WordGraph) missing(words ...string) []string {
	var out []string
	for i, word := range words {
		if w.g.HasVertex(word) {
			continue
		}
		dup := false
		for _, prev := range words[:i] {
			dup = dup || prev == word
		}
		if !dup {
			out = append(out, word)
		}
	}

	return out
}
