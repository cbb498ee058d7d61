package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.85, cfg.Damping)
	assert.Equal(t, 100, cfg.Iterations)
	assert.Equal(t, "random_walk.txt", cfg.TraceFile)
	assert.Zero(t, cfg.Seed)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input: corpus.txt
damping: 0.5
seed: 7
log_level: debug
`), 0o644))
	t.Setenv("WORDGRAPH_SEED", "11")
	t.Setenv("WORDGRAPH_TRACE_FILE", "/tmp/walk.txt")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "corpus.txt", cfg.Input)
	assert.Equal(t, 0.5, cfg.Damping)
	assert.Equal(t, 100, cfg.Iterations, "untouched keys keep defaults")
	assert.EqualValues(t, 11, cfg.Seed, "env wins over file")
	assert.Equal(t, "/tmp/walk.txt", cfg.TraceFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Damping, cfg.Damping)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_UnknownKey(t *testing.T) {
	cfg := Default()
	err := cfg.Decode(strings.NewReader("dampng: 0.3\n"))
	assert.Error(t, err)
}

func TestDecode_EmptyDocument(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Decode(strings.NewReader("")))
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"WORDGRAPH_DAMPING":     "0.9",
		"WORDGRAPH_ITERATIONS":  "20",
		"WORDGRAPH_DEVELOPMENT": "true",
		"WORDGRAPH_INPUT":       "in.txt",
		"WORDGRAPH_LOG_LEVEL":   "warn",
	}
	cfg := Default()
	require.NoError(t, cfg.applyEnv(env))
	assert.Equal(t, 0.9, cfg.Damping)
	assert.Equal(t, 20, cfg.Iterations)
	assert.True(t, cfg.Development)
	assert.Equal(t, "in.txt", cfg.Input)
	assert.Equal(t, "warn", cfg.LogLevel)

	env["WORDGRAPH_ITERATIONS"] = "many"
	assert.Error(t, Default().applyEnv(env))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"damping high", func(c *Config) { c.Damping = 1.2 }, ErrBadDamping},
		{"damping low", func(c *Config) { c.Damping = -0.1 }, ErrBadDamping},
		{"iterations", func(c *Config) { c.Iterations = -1 }, ErrBadIterations},
		{"trace file", func(c *Config) { c.TraceFile = "" }, ErrNoTraceFile},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, ErrBadLogLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}
