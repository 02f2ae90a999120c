// Package input reads puzzle input as text lines.
//
// Lines come back in file order with the newline (and a trailing '\r')
// stripped. Blank lines are kept as empty entries; there is no trailing
// sentinel for a final newline.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ErrNoPath is returned when an empty path or name is given.
var ErrNoPath = errors.New("input: no input path given")

// maxLineSize caps a single line; bufio's 64 KiB default is too small for
// some generated maps.
const maxLineSize = 1 << 20

// ReadLines reads the file at path and returns its lines.
func ReadLines(path string) ([]string, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	return Scan(f)
}

// ReadLinesFS reads name from fsys and returns its lines.
func ReadLinesFS(fsys fs.FS, name string) ([]string, error) {
	if name == "" {
		return nil, ErrNoPath
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	return Scan(f)
}

// Scan returns all lines read from r.
func Scan(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for s.Scan() {
		lines = append(lines, strings.TrimSuffix(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("input: scan: %w", err)
	}
	return lines, nil
}

// Sections splits lines into blocks separated by one or more blank lines.
// Blank lines themselves are dropped; empty blocks are not returned.
func Sections(lines []string) [][]string {
	var out [][]string
	var cur []string
	for _, line := range lines {
		if line == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
