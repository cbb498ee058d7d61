// Command wordgraph builds a word-adjacency graph from a text file and
// answers bridge-word, text-generation, shortest-path, PageRank and
// random-walk queries against it.
//
// Usage:
//
//	wordgraph -i corpus.txt show
//	wordgraph -i corpus.txt bridge new and
//	wordgraph -i corpus.txt path to [from]
//	wordgraph -i corpus.txt pagerank --top 5
//	wordgraph -i corpus.txt walk --start the
//	wordgraph -i corpus.txt shell
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
