package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgraph/dijkstra"
	"github.com/katalvlaran/wordgraph/pagerank"
	"github.com/katalvlaran/wordgraph/tokenize"
	"github.com/katalvlaran/wordgraph/wordgraph"
)

// defaultTop is how many words `pagerank` prints when --top is not given.
const defaultTop = 10

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every word with its weighted successors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.show(cmd.OutOrStdout())
		},
	}
}

func newBridgeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bridge <word1> <word2>",
		Short: "List the words w with word1 → w → word2",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.bridge(cmd.OutOrStdout(), args[0], args[1])
			return nil
		},
	}
}

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <text...>",
		Short: "Insert a random bridge word between each pair of input words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd.OutOrStdout(), strings.Join(args, " "))
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	var maxLength int64
	cmd := &cobra.Command{
		Use:   "path <word1> [word2]",
		Short: "Shortest weighted path from word1 to word2, or to every word",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxLength < 0 {
				return fmt.Errorf("--max-length %d: %w", maxLength, dijkstra.ErrBadMaxDistance)
			}
			to := ""
			if len(args) == 2 {
				to = args[1]
			}
			a.path(cmd.OutOrStdout(), args[0], to, wordgraph.MaxLength(maxLength))
			return nil
		},
	}
	cmd.Flags().Int64Var(&maxLength, "max-length", 0, "treat routes longer than this as missing (0 = no limit)")

	return cmd
}

func newPageRankCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "pagerank [word...]",
		Short: "Print PageRank scores, highest first, or the scores of the given words",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				a.rankOf(out, args)
				return nil
			}
			a.pagerank(out, top)
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", defaultTop, "number of words to print (0 prints all)")

	return cmd
}

func newWalkCmd(a *app) *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Random walk until a dead end or a repeated edge; the trace is saved to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.walk(cmd.OutOrStdout(), start)
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "first word of the walk (random when empty)")

	return cmd
}

func (a *app) show(out io.Writer) error {
	return a.graph.Describe(out)
}

func (a *app) bridge(out io.Writer, word1, word2 string) {
	fmt.Fprintln(out, a.graph.BridgeWords(word1, word2))
}

func (a *app) generate(out io.Writer, text string) error {
	s, err := a.graph.GenerateText(text, a.rng)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, s)

	return nil
}

func (a *app) path(out io.Writer, from, to string, opts ...wordgraph.PathOption) {
	if to != "" {
		fmt.Fprintln(out, a.graph.ShortestPath(from, to, opts...))
		return
	}
	for _, res := range a.graph.ShortestPathsFrom(from, opts...) {
		fmt.Fprintln(out, res)
	}
}

func (a *app) pagerank(out io.Writer, top int) {
	var scores []pagerank.Score
	if top > 0 {
		scores = a.graph.TopRanked(top)
	} else {
		scores = pagerank.Ranked(a.graph.PageRank())
	}
	for _, s := range scores {
		fmt.Fprintf(out, "%-16s %.6f\n", s.ID, s.Rank)
	}
}

func (a *app) rankOf(out io.Writer, words []string) {
	for _, w := range words {
		if r, ok := a.graph.Rank(w); ok {
			fmt.Fprintf(out, "%-16s %.6f\n", w, r)
		} else {
			fmt.Fprintln(out, wordgraph.NotFoundMessage(tokenize.Word(w)))
		}
	}
}

func (a *app) walk(out io.Writer, start string) error {
	var (
		res wordgraph.WalkResult
		err error
	)
	if start != "" {
		res, err = a.graph.RandomWalkFrom(start, a.rng)
	} else {
		res, err = a.graph.RandomWalk(a.rng)
	}

	switch res.Status {
	case wordgraph.StatusEmpty:
		fmt.Fprintln(out, "The graph is empty.")
	case wordgraph.StatusNotFound:
		fmt.Fprintln(out, res)
	case wordgraph.StatusOK:
		fmt.Fprintf(out, "Random walk: %s\n", res)
		if err == nil {
			fmt.Fprintf(out, "Saved to %s\n", a.cfg.TraceFile)
		}
	}

	return err
}
