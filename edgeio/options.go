// SPDX-License-Identifier: MIT

package edgeio

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/edgeprep/core"
)

// DefaultEntry is the archive entry read when WithEntry is not given.
const DefaultEntry = "weighted_graph.txt"

// Header lines emitted by WithHeader for weighted and unweighted output.
const (
	Header           = "# FromNodeId ToNodeId Weight"
	UnweightedHeader = "# FromNodeId ToNodeId"
)

// ReadOption customizes Read and ReadFile.
type ReadOption func(*readConfig)

type readConfig struct {
	maxVertex  core.Vertex
	bounded    bool
	skipHeader bool
	entry      string
	log        logrus.FieldLogger
}

func newReadConfig(opts []ReadOption) readConfig {
	c := readConfig{entry: DefaultEntry, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithMaxVertex keeps only edges whose endpoints are both <= v.
func WithMaxVertex(v core.Vertex) ReadOption {
	return func(c *readConfig) {
		c.maxVertex = v
		c.bounded = true
	}
}

// WithSkipHeader drops the first physical line unconditionally.
func WithSkipHeader() ReadOption {
	return func(c *readConfig) { c.skipHeader = true }
}

// WithLogger receives Debug reports of skipped lines. Panics on nil.
func WithLogger(l logrus.FieldLogger) ReadOption {
	if l == nil {
		panic("edgeio: WithLogger(nil)")
	}
	return func(c *readConfig) { c.log = l }
}

// WithEntry names the archive entry to read from .zip sources.
// An empty name keeps DefaultEntry.
func WithEntry(name string) ReadOption {
	return func(c *readConfig) {
		if name != "" {
			c.entry = name
		}
	}
}

// WriteOption customizes Write and WriteFile.
type WriteOption func(*writeConfig)

type writeConfig struct {
	header     bool
	symmetric  bool
	unweighted bool
}

func newWriteConfig(opts []WriteOption) writeConfig {
	var c writeConfig
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithHeader emits the Header comment line before the edges.
func WithHeader() WriteOption {
	return func(c *writeConfig) { c.header = true }
}

// WithSymmetric emits both orientations of every edge.
func WithSymmetric() WriteOption {
	return func(c *writeConfig) { c.symmetric = true }
}

// WithUnweighted omits the weight column.
func WithUnweighted() WriteOption {
	return func(c *writeConfig) { c.unweighted = true }
}
