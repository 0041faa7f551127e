// SPDX-License-Identifier: MIT

// Package ewd reads and writes edge-weighted digraphs in the plain-text EWD
// format:
//
//	8                 ← vertex count
//	15                ← edge count
//	4 5 0.35          ← from to weight, one edge per line
//	5 4 0.35
//	...
//
// Tokens are whitespace separated; blank lines are ignored. Weights are plain
// decimals ("0.35", "3", ".5"); exponents, hex floats, NaN and Inf are
// syntax errors.
//
// Every failure is reported as a *ParseError carrying the 1-based line
// number. Syntax errors match ErrParse; construction errors keep their
// digraph sentinel (digraph.ErrNegativeWeight, digraph.ErrDuplicateEdge,
// digraph.ErrTooManyVertices, ...) so both can be tested with errors.Is.
package ewd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/msdijkstra/digraph"
)

// ErrParse indicates malformed input: a missing or non-numeric count, or an
// edge line that is not exactly three valid tokens.
var ErrParse = errors.New("ewd: parse error")

// ParseError locates a failure in the input.
type ParseError struct {
	Line int   // 1-based; 0 when the failure is not tied to a line
	Err  error // underlying cause
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func syntaxErr(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Err: fmt.Errorf("%w: "+format, append([]any{ErrParse}, args...)...)}
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*digraph.Digraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read parses an EWD description from r and builds the digraph.
//
// Steps:
//  1. First non-blank line: vertex count (non-negative integer).
//  2. Second non-blank line: edge count (non-negative integer).
//  3. Each further non-blank line: "<from> <to> <weight>".
//  4. Build checks that exactly edge-count edges were read.
//
// Nothing is returned unless the whole input is valid.
func Read(r io.Reader) (*digraph.Digraph, error) {
	sc := bufio.NewScanner(r)
	line := 0

	// next returns the next non-blank line and its number.
	next := func() (string, bool) {
		for sc.Scan() {
			line++
			if text := strings.TrimSpace(sc.Text()); text != "" {
				return text, true
			}
		}
		return "", false
	}

	// 1) Header
	vertexCount, err := readCount(next, sc, &line, "vertex count")
	if err != nil {
		return nil, err
	}
	vertexLine := line
	if vertexCount > digraph.MaxVertexCount {
		return nil, &ParseError{Line: vertexLine, Err: fmt.Errorf("%w: %d > %d",
			digraph.ErrTooManyVertices, vertexCount, digraph.MaxVertexCount)}
	}
	edgeCount, err := readCount(next, sc, &line, "edge count")
	if err != nil {
		return nil, err
	}

	// 2) Edge lines
	b := digraph.NewBuilder(vertexCount, edgeCount)
	for {
		text, ok := next()
		if !ok {
			break
		}
		from, to, w, perr := parseEdge(text, line)
		if perr != nil {
			return nil, perr
		}
		if err = b.AddEdge(from, to, w); err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
	}
	if err = scanErr(sc, line); err != nil {
		return nil, err
	}

	// 3) Finalize
	g, err := b.Build()
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	return g, nil
}

// scanErr converts a scanner failure into a *ParseError. The failing line is
// the one after the last line read; an over-long line is a syntax error.
func scanErr(sc *bufio.Scanner, line int) error {
	err := sc.Err()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bufio.ErrTooLong):
		return syntaxErr(line+1, "line longer than %d bytes", bufio.MaxScanTokenSize)
	default:
		return &ParseError{Line: line + 1, Err: err}
	}
}

func readCount(next func() (string, bool), sc *bufio.Scanner, line *int, what string) (int, error) {
	text, ok := next()
	if !ok {
		if err := scanErr(sc, *line); err != nil {
			return 0, err
		}
		return 0, syntaxErr(*line, "missing %s", what)
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0, syntaxErr(*line, "%s %q is not a non-negative integer", what, text)
	}

	return n, nil
}

func parseEdge(text string, line int) (int, int, digraph.Weight, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return 0, 0, 0, syntaxErr(line, "want 3 fields \"from to weight\", got %d", len(fields))
	}
	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, syntaxErr(line, "bad source vertex %q", fields[0])
	}
	to, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, syntaxErr(line, "bad target vertex %q", fields[1])
	}
	if !isDecimal(fields[2]) {
		return 0, 0, 0, syntaxErr(line, "bad weight %q", fields[2])
	}
	w, err := strconv.ParseFloat(fields[2], 32)
	if err != nil {
		return 0, 0, 0, syntaxErr(line, "bad weight %q", fields[2])
	}

	return from, to, digraph.Weight(w), nil
}

// isDecimal reports whether s is a plain decimal number: an optional sign,
// digits and at most one point, with at least one digit. Exponents, hex
// floats, "NaN" and "Inf" are refused before strconv sees them.
func isDecimal(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	digits, points := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			points++
		default:
			return false
		}
	}

	return digits > 0 && points <= 1
}
