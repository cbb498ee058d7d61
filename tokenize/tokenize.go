// Package tokenize turns raw text into the normalized word stream the word
// graph is built from: every non-ASCII-letter character becomes a separator,
// letters are lowercased, and empty pieces are dropped.
//
//	"Hello, World! It's 2024" → [hello world it s]
package tokenize

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Normalize splits s into lowercase alphabetic words.
func Normalize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), isSeparator)
}

// Word lowercases a single query word. It does not strip characters, so a
// word containing non-letters will simply not match any vertex.
func Word(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Read consumes r line by line and returns the concatenated word stream.
// Line breaks separate words like any other non-letter.
func Read(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		words = append(words, Normalize(sc.Text())...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tokenize: read: %w", err)
	}

	return words, nil
}

// ReadFile opens path and returns its word stream.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tokenize: open %q: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

func isSeparator(r rune) bool {
	return !(r >= 'a' && r <= 'z')
}
