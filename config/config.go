// Package config loads wordgraph settings from layered sources.
//
// The loading order (from lowest to highest priority):
//  1. Default values (in code)
//  2. YAML file, if a path is given
//  3. WORDGRAPH_* environment variables
//
// Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordgraph/pagerank"
	"github.com/katalvlaran/wordgraph/sink"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "WORDGRAPH_"

var validate = validator.New()

// Validation errors.
var (
	ErrBadDamping    = errors.New("config: damping must be within [0, 1]")
	ErrBadIterations = errors.New("config: iterations must be non-negative")
	ErrNoTraceFile   = errors.New("config: trace_file must not be empty")
	ErrBadLogLevel   = errors.New("config: unknown log_level")
)

// Config holds all configuration values.
type Config struct {
	// Input is the corpus file the graph is built from.
	Input string `yaml:"input" env:"WORDGRAPH_INPUT"`

	// TraceFile receives each random-walk trace (overwritten per walk).
	TraceFile string `yaml:"trace_file" env:"WORDGRAPH_TRACE_FILE" validate:"required"`

	// Damping and Iterations parameterize PageRank.
	Damping    float64 `yaml:"damping" env:"WORDGRAPH_DAMPING" validate:"gte=0,lte=1"`
	Iterations int     `yaml:"iterations" env:"WORDGRAPH_ITERATIONS" validate:"gte=0"`

	// Seed fixes the random source; 0 means seed from the clock.
	Seed int64 `yaml:"seed" env:"WORDGRAPH_SEED"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"WORDGRAPH_LOG_LEVEL" validate:"oneof=debug info warn error"`

	// Development switches logging to the human-readable console encoder.
	Development bool `yaml:"development" env:"WORDGRAPH_DEVELOPMENT"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TraceFile:  sink.DefaultTraceFile,
		Damping:    pagerank.DefaultDamping,
		Iterations: pagerank.DefaultIterations,
		LogLevel:   "info",
	}
}

// Load builds a Config from defaults, the optional YAML file at path, and
// the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(nil); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Decode overlays YAML from r onto c. Keys absent from the document keep
// their current values.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode yaml: %w", err)
	}

	return nil
}

// Validate checks value ranges. The returned error wraps one of the
// package's sentinel errors.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return err
	}

	fe := fields[0]
	switch fe.Field() {
	case "Damping":
		return ErrBadDamping
	case "Iterations":
		return ErrBadIterations
	case "TraceFile":
		return ErrNoTraceFile
	case "LogLevel":
		return fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}

	return fmt.Errorf("config: %s: %w", fe.Field(), err)
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return c.Decode(f)
}

// applyEnv overlays WORDGRAPH_* variables from environ, or from the process
// environment when environ is nil. Unset variables leave fields untouched.
func (c *Config) applyEnv(environ map[string]string) error {
	if err := env.Parse(c, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}

	return nil
}
