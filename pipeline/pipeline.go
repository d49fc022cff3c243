// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/edgeprep/components"
	"github.com/katalvlaran/edgeprep/core"
	"github.com/katalvlaran/edgeprep/edgeio"
	"github.com/katalvlaran/edgeprep/mst"
	"github.com/katalvlaran/edgeprep/repair"
	"github.com/katalvlaran/edgeprep/weights"
)

// Result summarizes a finished job.
type Result struct {
	Policy      repair.Policy
	InputEdges  int
	Components  int
	Largest     int // vertex count of the selected component
	Dropped     int // vertices removed by the drop policy
	Stitched    []core.Edge
	Vertices    int // vertices in the output
	Edges       int // edges in the output
	VertexMap   *repair.VertexMap
	MSTWeight   int64 // set when Config.Verify is on
	ElapsedTime time.Duration
}

// Option customizes Run, Process and Weigh.
type Option func(*runConfig)

type runConfig struct {
	src weights.Source
}

// WithRand injects the random source, overriding Config.Seed. Panics on nil.
func WithRand(src weights.Source) Option {
	if src == nil {
		panic("pipeline: WithRand(nil)")
	}
	return func(c *runConfig) { c.src = src }
}

func newRunConfig(cfg *Config, opts []Option) runConfig {
	var rc runConfig
	for _, opt := range opts {
		opt(&rc)
	}
	if rc.src == nil {
		rc.src = weights.NewSource(cfg.seed())
	}

	return rc
}

func (c *Config) readOptions() []edgeio.ReadOption {
	opts := []edgeio.ReadOption{edgeio.WithEntry(c.Entry), edgeio.WithLogger(log)}
	if c.Filter >= 0 {
		opts = append(opts, edgeio.WithMaxVertex(core.Vertex(c.Filter)))
	}
	if c.SkipHeader {
		opts = append(opts, edgeio.WithSkipHeader())
	}

	return opts
}

func (c *Config) writeOptions() []edgeio.WriteOption {
	var opts []edgeio.WriteOption
	if c.Header {
		opts = append(opts, edgeio.WithHeader())
	}
	if c.Symmetric {
		opts = append(opts, edgeio.WithSymmetric())
	}

	return opts
}

// Run executes the filter job described by cfg: it reads cfg.Input, keeps
// the largest component under the configured repair policy and writes
// cfg.Output (and cfg.BinaryOutput when set).
func Run(cfg Config, opts ...Option) (*Result, error) {
	start := time.Now()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Filter < 0 {
		return nil, fmt.Errorf("%w: filter is required", ErrInvalidConfig)
	}
	log.Debugf("config:\n%s", spew.Sdump(cfg))

	set, err := edgeio.ReadFile(cfg.Input, cfg.readOptions()...)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"input":    cfg.Input,
		"edges":    humanize.Comma(int64(set.Len())),
		"vertices": humanize.Comma(int64(set.Order())),
	}).Info("loaded edge list")

	out, res, err := Process(set, cfg, opts...)
	if err != nil {
		return nil, err
	}
	if err = write(&cfg, out); err != nil {
		return nil, err
	}

	res.ElapsedTime = time.Since(start)
	log.WithFields(logrus.Fields{
		"output":   cfg.Output,
		"edges":    humanize.Comma(int64(res.Edges)),
		"vertices": humanize.Comma(int64(res.Vertices)),
		"elapsed":  res.ElapsedTime,
	}).Info("wrote repaired graph")

	return res, nil
}

// Process runs the in-memory stages of Run on an already loaded set. Edges and
// vertices above cfg.Filter are discarded before anything else, so callers
// may pass an unfiltered set. set is not modified.
//
// Errors: components.ErrEmptyGraph when nothing lies within the filter;
// ErrInvalidConfig for unusable settings; mst.ErrDisconnected when
// Config.Verify finds the output split.
func Process(set *core.EdgeSet, cfg Config, opts ...Option) (*core.EdgeSet, *Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if cfg.Filter < 0 {
		return nil, nil, fmt.Errorf("%w: filter is required", ErrInvalidConfig)
	}
	policy, _ := repair.ParsePolicy(cfg.Policy)
	isolated, _ := components.ParseIsolatedPolicy(cfg.Isolated)
	strategy, _ := cfg.strategy()
	if set == nil {
		return nil, nil, components.ErrEdgeSetNil
	}
	filter := core.Vertex(cfg.Filter)
	inputEdges := set.Len()
	set = restrict(set, filter)

	comps, err := components.Find(set, filter, components.WithIsolated(isolated), components.WithStrategy(strategy))
	if err != nil {
		return nil, nil, err
	}
	largest, idx, err := components.Largest(comps)
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline: filter %d: %w", filter, err)
	}
	log.WithFields(logrus.Fields{
		"components": humanize.Comma(int64(len(comps))),
		"largest":    humanize.Comma(int64(len(largest))),
		"index":      idx,
	}).Info("selected largest component")

	res := &Result{Policy: policy, InputEdges: inputEdges, Components: len(comps), Largest: len(largest)}
	var out *core.EdgeSet
	switch policy {
	case repair.PolicyDrop:
		out = repair.Drop(set, largest)
		res.Dropped = set.Order() - out.Order()
		if res.Dropped < 0 {
			res.Dropped = 0
		}
	case repair.PolicyStitch:
		rc := newRunConfig(&cfg, opts)
		universe := repair.Range(filter)
		base, comp := set, largest
		if cfg.Renumber {
			base, res.VertexMap = repair.Renumber(set, universe)
			comp = res.VertexMap.Apply(largest)
			universe = res.VertexMap.Universe()
		}
		out, res.Stitched, err = repair.Stitch(base, comp, universe, repair.WithRand(rc.src))
		if err != nil {
			return nil, nil, err
		}
		log.Infof("stitched %s vertices into the largest component", humanize.Comma(int64(len(res.Stitched))))
	}

	res.Vertices = out.Order()
	res.Edges = out.Len()

	if cfg.Verify {
		tree, err := mst.Kruskal(out)
		if err != nil {
			return nil, nil, fmt.Errorf("pipeline: verify output: %w", err)
		}
		res.MSTWeight = tree.Weight
		log.WithField("weight", humanize.Comma(tree.Weight)).Info("output spanning tree")
	}

	return out, res, nil
}

// restrict returns the part of set within 0..filter, or set itself when
// nothing lies above filter.
func restrict(set *core.EdgeSet, filter core.Vertex) *core.EdgeSet {
	if top, ok := set.MaxVertex(); !ok || top <= filter {
		return set
	}
	out := set.FilterEdges(func(e core.Edge) bool { return e.V <= filter })
	for _, v := range set.Vertices() {
		if v > filter {
			break
		}
		out.AddVertex(v)
	}
	log.Debugf("discarded %s edges above vertex %d", humanize.Comma(int64(set.Len()-out.Len())), filter)

	return out
}

// Sort rewrites cfg.Input to cfg.Output ordered by source then target vertex.
// With unweighted set the weight column is omitted. A non-negative
// cfg.Filter still applies.
func Sort(cfg Config, unweighted bool) (*Result, error) {
	start := time.Now()
	set, err := edgeio.ReadFile(cfg.Input, cfg.readOptions()...)
	if err != nil {
		return nil, err
	}
	opts := cfg.writeOptions()
	if unweighted {
		opts = append(opts, edgeio.WithUnweighted())
	}
	if err = edgeio.WriteFile(cfg.Output, set, opts...); err != nil {
		return nil, err
	}
	log.Infof("sorted %s edges into %s", humanize.Comma(int64(set.Len())), cfg.Output)

	return &Result{InputEdges: set.Len(), Vertices: set.Order(), Edges: set.Len(), ElapsedTime: time.Since(start)}, nil
}

// Weigh assigns a random weight in [core.MinWeight, core.MaxWeight] to every
// edge of cfg.Input and writes the result to cfg.Output.
func Weigh(cfg Config, opts ...Option) (*Result, error) {
	start := time.Now()
	set, err := edgeio.ReadFile(cfg.Input, cfg.readOptions()...)
	if err != nil {
		return nil, err
	}
	rc := newRunConfig(&cfg, opts)
	if err = weights.Assign(set, weights.WithRand(rc.src)); err != nil {
		return nil, err
	}
	if err = write(&cfg, set); err != nil {
		return nil, err
	}
	log.Infof("weighted %s edges into %s", humanize.Comma(int64(set.Len())), cfg.Output)

	return &Result{InputEdges: set.Len(), Vertices: set.Order(), Edges: set.Len(), ElapsedTime: time.Since(start)}, nil
}

func write(cfg *Config, set *core.EdgeSet) error {
	if err := edgeio.WriteFile(cfg.Output, set, cfg.writeOptions()...); err != nil {
		return err
	}
	if cfg.BinaryOutput != "" {
		if err := edgeio.WriteBinaryFile(cfg.BinaryOutput, set); err != nil {
			return err
		}
		log.Infof("wrote binary edge list %s", cfg.BinaryOutput)
	}

	return nil
}
