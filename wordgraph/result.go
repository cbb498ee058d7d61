package wordgraph

import (
	"fmt"
	"strings"
)

// Status classifies a query outcome.
type Status int

const (
	// StatusOK means the query produced a non-empty answer.
	StatusOK Status = iota
	// StatusEmpty means both words exist but there is no bridge/path.
	StatusEmpty
	// StatusNotFound means at least one queried word is not in the graph.
	StatusNotFound
)

// String returns a short lowercase name for s.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusNotFound:
		return "not_found"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// BridgeResult is the outcome of a bridge-word query.
type BridgeResult struct {
	Word1, Word2 string
	Status       Status
	Bridges      []string // StatusOK: bridge words in deterministic order
	Missing      []string // StatusNotFound: absent words
}

// String renders the result as a user-facing sentence.
func (r BridgeResult) String() string {
	switch r.Status {
	case StatusNotFound:
		return notFoundMessage(r.Missing)
	case StatusEmpty:
		return fmt.Sprintf("No bridge words from %s to %s!", quote(r.Word1), quote(r.Word2))
	}
	if len(r.Bridges) == 1 {
		return fmt.Sprintf("The bridge word from %s to %s is: %s.", quote(r.Word1), quote(r.Word2), quote(r.Bridges[0]))
	}

	return fmt.Sprintf("The bridge words from %s to %s are: %s.", quote(r.Word1), quote(r.Word2), joinList(r.Bridges))
}

// PathResult is the outcome of a shortest-path query.
type PathResult struct {
	Source, Target string
	Status         Status
	Path           []string // StatusOK: Source … Target
	Length         int64    // StatusOK: summed edge weight
	Missing        []string // StatusNotFound: absent words
}

// String renders the result as a user-facing sentence.
func (r PathResult) String() string {
	switch r.Status {
	case StatusNotFound:
		return notFoundMessage(r.Missing)
	case StatusEmpty:
		return fmt.Sprintf("No path from %s to %s!", quote(r.Source), quote(r.Target))
	}

	return fmt.Sprintf("Shortest path: %s (length %d)", strings.Join(r.Path, " → "), r.Length)
}

// WalkResult is the outcome of a random walk.
type WalkResult struct {
	Status  Status
	Path    []string
	Missing []string // StatusNotFound: absent start word
}

// String returns the space-joined path, or a not-found sentence.
func (r WalkResult) String() string {
	if r.Status == StatusNotFound {
		return notFoundMessage(r.Missing)
	}

	return strings.Join(r.Path, " ")
}

func notFoundMessage(missing []string) string {
	return fmt.Sprintf("No %s in the graph!", joinList(missing))
}

// NotFoundMessage renders the sentence used for words absent from the graph.
func NotFoundMessage(words ...string) string {
	return notFoundMessage(words)
}

// quote wraps a word in double quotes so an empty word stays visible.
func quote(word string) string {
	return `"` + word + `"`
}

// joinList renders ["a"] as "a", ["a","b"] as "a" and "b" and
// ["a","b","c"] as "a", "b" and "c", quoting each word.
func joinList(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = quote(w)
	}
	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return quoted[0]
	}

	return strings.Join(quoted[:len(quoted)-1], ", ") + " and " + quoted[len(quoted)-1]
}
