package tilegrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse builds a Grid from rows of ASCII digits.
// Every row must have the same length, the matrix must be square,
// and every character must be in '1'..'9'.
// The input is copied, so later changes to rows have no effect.
//
// Complexity: O(n²) time and memory.
func Parse(rows []string, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &ParseError{Row: -1, Col: -1, Err: ErrEmptyGrid}
	}
	w := len(rows[0])
	for r, row := range rows {
		if len(row) != w {
			return nil, &ParseError{Row: r, Col: -1, Err: ErrNonRectangular}
		}
	}
	if len(rows) != w {
		return nil, &ParseError{Row: -1, Col: -1,
			Err: fmt.Errorf("%w: %d rows × %d cols", ErrNonSquare, len(rows), w)}
	}

	base := make([][]int, w)
	for r, row := range rows {
		base[r] = make([]int, w)
		for c := 0; c < w; c++ {
			ch := row[c]
			if ch < '1' || ch > '9' {
				return nil, &ParseError{Row: r, Col: c,
					Err: fmt.Errorf("%w: %q", ErrInvalidCost, ch)}
			}
			base[r][c] = int(ch - '0')
		}
	}

	if err := checkExtent(w, o.TileFactor); err != nil {
		return nil, err
	}

	return &Grid{base: base, size: w, tileFactor: o.TileFactor}, nil
}

// ParseText splits text into lines and parses them.
// Surrounding whitespace is trimmed and CRLF line endings are accepted.
func ParseText(text string, opts ...Option) (*Grid, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return Parse(lines, opts...)
}

// ParseReader reads grid rows line by line from r.
// Trailing blank lines are ignored; blank lines in between are not.
func ParseReader(r io.Reader, opts ...Option) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tilegrid: read rows: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return Parse(lines, opts...)
}
