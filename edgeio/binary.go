// SPDX-License-Identifier: MIT

package edgeio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/edgeprep/core"
)

// recordSize is the byte size of one binary edge record.
const recordSize = 12

// WriteBinary emits one little-endian {uint32 src, uint32 dst, int32 weight}
// record per edge, ascending by (src, dst).
//
// Errors: ErrWeightRange if a weight does not fit in int32.
// Complexity: O(E log E).
func WriteBinary(w io.Writer, set *core.EdgeSet) error {
	bw := bufio.NewWriter(w)
	var buf [recordSize]byte
	for _, e := range set.Edges() {
		if e.Weight < math.MinInt32 || e.Weight > math.MaxInt32 {
			return fmt.Errorf("%w: {%d,%d} weight %d", ErrWeightRange, e.U, e.V, e.Weight)
		}
		binary.LittleEndian.PutUint32(buf[0:4], uint32(e.U))
		binary.LittleEndian.PutUint32(buf[4:8], uint32(e.V))
		binary.LittleEndian.PutUint32(buf[8:12], uint32(int32(e.Weight)))
		if _, err := bw.Write(buf[:]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadBinary parses records written by WriteBinary.
//
// Errors: ErrShortRecord on a trailing partial record; core.ErrSelfLoop.
// Complexity: O(E).
func ReadBinary(r io.Reader) (*core.EdgeSet, error) {
	br := bufio.NewReader(r)
	set := core.NewEdgeSet(0)
	var buf [recordSize]byte
	for n := 0; ; n++ {
		if _, err := io.ReadFull(br, buf[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return set, nil
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: record %d", ErrShortRecord, n)
			}
			return nil, err
		}
		u := core.Vertex(binary.LittleEndian.Uint32(buf[0:4]))
		v := core.Vertex(binary.LittleEndian.Uint32(buf[4:8]))
		w := int64(int32(binary.LittleEndian.Uint32(buf[8:12])))
		if err := set.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("edgeio: record %d: %w", n, err)
		}
	}
}

// WriteBinaryFile writes set to name atomically in the binary format.
func WriteBinaryFile(name string, set *core.EdgeSet) error {
	return writeAtomic(name, func(w io.Writer) error {
		return WriteBinary(w, set)
	})
}
