package wordgraph

import (
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/wordgraph/tokenize"
	"github.com/katalvlaran/wordgraph/walk"
)

// RandomWalk walks from a uniformly chosen word until a dead end or until
// the next hop would reuse an edge, then writes the space-joined path to
// the TraceSink. An empty graph gives an empty path and no write.
//
// If the sink fails, the error wraps ErrTraceWrite and is logged as a
// warning; the returned WalkResult is still valid.
func (w *WordGraph) RandomWalk(rng *rand.Rand) (WalkResult, error) {
	return w.randomWalk(rng)
}

// RandomWalkFrom is RandomWalk with a fixed first word. An absent start
// word yields StatusNotFound and no write.
func (w *WordGraph) RandomWalkFrom(start string, rng *rand.Rand) (WalkResult, error) {
	start = tokenize.Word(start)
	if !w.g.HasVertex(start) {
		return WalkResult{Status: StatusNotFound, Missing: []string{start}}, nil
	}

	return w.randomWalk(rng, walk.WithStart(start))
}

func (w *WordGraph) randomWalk(rng *rand.Rand, opts ...walk.Option) (WalkResult, error) {
	if rng == nil {
		return WalkResult{}, ErrNilRand
	}
	path, err := walk.Walk(w.g, rng, opts...)
	if err != nil {
		return WalkResult{}, fmt.Errorf("wordgraph: %w", err)
	}
	if len(path) == 0 {
		return WalkResult{Status: StatusEmpty}, nil
	}

	res := WalkResult{Status: StatusOK, Path: path}
	line := strings.Join(path, " ")
	if err := w.trace.WriteTrace(line); err != nil {
		w.logger.Warn("random walk trace not written", zap.Error(err))
		return res, fmt.Errorf("%w: %w", ErrTraceWrite, err)
	}
	w.logger.Debug("random walk traced", zap.Int("steps", len(path)))

	return res, nil
}
