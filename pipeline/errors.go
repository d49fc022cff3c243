// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/edgeprep/core"
)

var (
	// ErrMissingArgument indicates the vertex-count argument was absent,
	// duplicated or not a non-negative integer.
	ErrMissingArgument = errors.New("pipeline: exactly one vertex count argument is required")

	// ErrInvalidConfig indicates a configuration value that cannot be used.
	ErrInvalidConfig = errors.New("pipeline: invalid configuration")
)

// ParseVertexCount validates the positional arguments of the filter and
// stitch commands and returns the vertex filter.
func ParseVertexCount(args []string) (core.Vertex, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: got %d arguments", ErrMissingArgument, len(args))
	}
	n, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil || n > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %q is not a vertex count", ErrMissingArgument, args[0])
	}

	return core.Vertex(n), nil
}
