// SPDX-License-Identifier: MIT

// Package edgeio reads and writes edge lists.
//
// Text format, one edge per line:
//
//	# FromNodeId ToNodeId Weight
//	0 1 5
//	1 2 7
//
// Fields are whitespace separated; the weight column is optional and defaults
// to core.DefaultWeight. Blank lines and lines starting with '#' are skipped.
// Any other line that is not two or three non-negative integers fails the read
// with a *ParseError carrying the 1-based line number.
//
// Sources (ReadFile) are picked by extension:
//
//	.zip  the entry named by WithEntry (default "weighted_graph.txt")
//	.gz   gzip stream
//	.zst  zstandard stream
//	*     plain text
//
// Destinations (WriteFile, WriteBinaryFile) are written to a temporary file
// next to the target and renamed into place only after a successful flush,
// so a failed run never leaves a half-written output. ".gz" and ".zst"
// destinations are compressed.
//
// The binary format mirrors what the MST benchmark programs read: one
// little-endian record per edge, uint32 source, uint32 destination, int32
// weight, with no header.
package edgeio
