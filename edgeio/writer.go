// SPDX-License-Identifier: MIT

package edgeio

import (
	"bufio"
	"io"
	"sort"
	"strconv"

	"github.com/katalvlaran/edgeprep/core"
)

// record is one serialized line: a directed view of an undirected edge.
type record struct {
	from, to core.Vertex
	weight   int64
}

// records lists the lines to emit for set, ascending by (from, to).
func records(set *core.EdgeSet, symmetric bool) []record {
	edges := set.Edges()
	n := len(edges)
	if symmetric {
		n *= 2
	}
	out := make([]record, 0, n)
	for _, e := range edges {
		out = append(out, record{from: e.U, to: e.V, weight: e.Weight})
		if symmetric {
			out = append(out, record{from: e.V, to: e.U, weight: e.Weight})
		}
	}
	if symmetric {
		sort.Slice(out, func(i, j int) bool {
			if out[i].from != out[j].from {
				return out[i].from < out[j].from
			}
			return out[i].to < out[j].to
		})
	}

	return out
}

// Write emits set as "<from> <to> <weight>" lines sorted ascending by from,
// then to. Each undirected edge is written once with from < to unless
// WithSymmetric is given; WithUnweighted drops the weight column.
// Complexity: O(E log E).
func Write(w io.Writer, set *core.EdgeSet, opts ...WriteOption) error {
	c := newWriteConfig(opts)
	bw := bufio.NewWriter(w)
	if c.header {
		header := Header
		if c.unweighted {
			header = UnweightedHeader
		}
		if _, err := bw.WriteString(header + "\n"); err != nil {
			return err
		}
	}

	buf := make([]byte, 0, 48)
	for _, r := range records(set, c.symmetric) {
		buf = strconv.AppendUint(buf[:0], uint64(r.from), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendUint(buf, uint64(r.to), 10)
		if !c.unweighted {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, r.weight, 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile writes set to name atomically; see Write for the format.
//
// Errors: *IOError wrapping any create, write, compress or rename failure.
func WriteFile(name string, set *core.EdgeSet, opts ...WriteOption) error {
	return writeAtomic(name, func(w io.Writer) error {
		return Write(w, set, opts...)
	})
}
