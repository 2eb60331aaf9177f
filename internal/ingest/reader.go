// Package ingest delivers raw placement lines to the engine. It
// performs no validation and no grouping: every line is forwarded
// exactly once, unmodified.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Lines reads every line from r.
func Lines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

// File reads every line from the file at path.
func File(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	return Lines(f)
}
