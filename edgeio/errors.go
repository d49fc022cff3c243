// SPDX-License-Identifier: MIT

package edgeio

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine classifies every *ParseError.
	ErrMalformedLine = errors.New("edgeio: malformed edge line")

	// ErrFieldCount indicates a line without 2 or 3 fields.
	ErrFieldCount = errors.New("edgeio: expected 2 or 3 fields")

	// ErrEntryNotFound indicates the requested archive entry does not exist.
	ErrEntryNotFound = errors.New("edgeio: archive entry not found")

	// ErrWeightBounds indicates a text weight outside [core.MinWeight, core.MaxWeight].
	ErrWeightBounds = errors.New("edgeio: weight outside [1, 1000]")

	// ErrWeightRange indicates a weight that does not fit the binary record.
	ErrWeightRange = errors.New("edgeio: weight out of int32 range")

	// ErrShortRecord indicates a truncated binary record.
	ErrShortRecord = errors.New("edgeio: truncated binary record")
)

// ParseError reports a malformed input line.
type ParseError struct {
	Line int    // 1-based physical line number
	Text string // offending line, trimmed
	Err  error  // cause
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("edgeio: line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes both ErrMalformedLine and the cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedLine, e.Err}
}

// IOError reports an inaccessible source or destination.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("edgeio: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
