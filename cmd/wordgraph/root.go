package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wordgraph/config"
	"github.com/katalvlaran/wordgraph/logging"
	"github.com/katalvlaran/wordgraph/sink"
	"github.com/katalvlaran/wordgraph/wordgraph"
)

// ErrNoInput is returned when neither --input nor the config names a corpus.
var ErrNoInput = errors.New("no input file: pass --input or set input in the config file")

// app carries the state shared by every subcommand once the root
// PersistentPreRunE has run.
type app struct {
	// flag values
	configPath string
	input      string
	seed       int64
	logLevel   string
	traceFile  string

	cfg    *config.Config
	logger *zap.Logger
	graph  *wordgraph.WordGraph
	rng    *rand.Rand
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "wordgraph",
		Short: "Query the word-adjacency graph of a text file",
		Long: `wordgraph reads a text file, lowercases it, keeps only the letters a-z
and links every word to the word that follows it. Edge weights count how
often each pair occurs. Subcommands query the resulting graph.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsGraph(cmd) {
				return nil
			}
			return a.prepare(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVarP(&a.input, "input", "i", "", "corpus text file")
	pf.Int64Var(&a.seed, "seed", 0, "random seed (0 seeds from the clock)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.traceFile, "trace-file", "", "file receiving each random-walk trace")

	rootCmd.AddCommand(
		newShowCmd(a),
		newBridgeCmd(a),
		newGenerateCmd(a),
		newPathCmd(a),
		newPageRankCmd(a),
		newWalkCmd(a),
		newShellCmd(a),
	)

	return rootCmd
}

// needsGraph reports whether cmd queries the corpus. cobra's help and
// completion commands (and their children) run without one.
func needsGraph(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}

	return true
}

// prepare loads configuration, applies flag overrides and builds the graph.
func (a *app) prepare(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	// 1) Flags explicitly set on the command line win over file and env.
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = a.input
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("trace-file") {
		cfg.TraceFile = a.traceFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	if cfg.Input == "" {
		return ErrNoInput
	}
	a.cfg = cfg

	// 2) Logger.
	logger, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("run_id", uuid.NewString()))

	// 3) Random source.
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.rng = rand.New(rand.NewSource(seed))

	// 4) Graph.
	g, err := wordgraph.FromFile(cfg.Input,
		wordgraph.WithLogger(a.logger),
		wordgraph.WithTraceSink(sink.NewFile(cfg.TraceFile)),
		wordgraph.WithDamping(cfg.Damping),
		wordgraph.WithIterations(cfg.Iterations),
	)
	if err != nil {
		return fmt.Errorf("build graph from %s: %w", cfg.Input, err)
	}
	a.graph = g

	a.logger.Info("graph loaded",
		zap.String("input", cfg.Input),
		zap.Int("vertices", g.Graph().VertexCount()),
		zap.Int("edges", g.Graph().EdgeCount()),
		zap.Int64("seed", seed),
	)

	return nil
}
