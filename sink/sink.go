// Package sink provides destinations for random-walk traces.
//
// A trace is one line of space-separated words. Each write replaces the
// previous content; nothing is appended.
package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DefaultTraceFile is the file random walks are written to when no other
// path is configured.
const DefaultTraceFile = "random_walk.txt"

// File writes each trace to Path, truncating prior content.
type File struct {
	Path string
	Perm os.FileMode
}

// NewFile returns a File sink for path (DefaultTraceFile if empty).
func NewFile(path string) *File {
	if path == "" {
		path = DefaultTraceFile
	}

	return &File{Path: path, Perm: 0o644}
}

// WriteTrace overwrites the file with line followed by a newline.
// Parent directories are not created.
func (f *File) WriteTrace(line string) error {
	if err := os.WriteFile(f.Path, []byte(line+"\n"), f.Perm); err != nil {
		return fmt.Errorf("sink: write %s: %w", filepath.Clean(f.Path), err)
	}

	return nil
}

// Memory keeps the most recent trace in memory. Useful in tests and when
// no on-disk trace is wanted.
type Memory struct {
	mu     sync.Mutex
	last   string
	writes int
}

// WriteTrace replaces the stored trace.
func (m *Memory) WriteTrace(line string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = line
	m.writes++

	return nil
}

// Last returns the most recent trace and how many writes happened so far.
func (m *Memory) Last() (string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.last, m.writes
}

// Discard drops every trace.
type Discard struct{}

// WriteTrace does nothing.
func (Discard) WriteTrace(string) error { return nil }
