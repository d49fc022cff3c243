// SPDX-License-Identifier: MIT

package edgeio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/edgeprep/core"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Read parses a text edge list from r. Edges with an endpoint above the
// WithMaxVertex bound are skipped; both endpoints of every kept edge become
// known vertices. A self-loop line adds no edge, only its vertex.
//
// Errors: *ParseError for malformed lines and weights outside
// [core.MinWeight, core.MaxWeight]; read errors from r.
// Complexity: O(L) for L input lines.
func Read(r io.Reader, opts ...ReadOption) (*core.EdgeSet, error) {
	c := newReadConfig(opts)
	set := core.NewEdgeSet(0)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		if line == 1 && c.skipHeader {
			continue
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}

		u, v, w, err := parseLine(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		if c.bounded && (u > c.maxVertex || v > c.maxVertex) {
			continue
		}
		if u == v {
			set.AddVertex(u)
			c.log.Debugf("edgeio: line %d: skipping self-loop on %d", line, u)
			continue
		}
		if err = set.AddEdge(u, v, w); err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgeio: read line %d: %w", line+1, err)
	}

	return set, nil
}

// parseLine splits "from to [weight]".
func parseLine(text string) (core.Vertex, core.Vertex, int64, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 && len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w, got %d", ErrFieldCount, len(fields))
	}
	u, err := parseVertex(fields[0])
	if err != nil {
		return 0, 0, 0, err
	}
	v, err := parseVertex(fields[1])
	if err != nil {
		return 0, 0, 0, err
	}
	w := core.DefaultWeight
	if len(fields) == 3 {
		if w, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
			return 0, 0, 0, fmt.Errorf("weight: %w", err)
		}
		if w < core.MinWeight || w > core.MaxWeight {
			return 0, 0, 0, fmt.Errorf("%w: %d", ErrWeightBounds, w)
		}
	}

	return u, v, w, nil
}

func parseVertex(s string) (core.Vertex, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}

	return core.Vertex(n), nil
}
