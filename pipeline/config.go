// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/edgeprep/components"
	"github.com/katalvlaran/edgeprep/repair"
)

// Labeling names accepted by Config.Labeling.
const (
	LabelingDFS       = "dfs"
	LabelingUnionFind = "unionfind"
)

// Config describes one batch job. Zero values of optional fields mean
// "use the default".
type Config struct {
	Input        string `toml:"input"`
	Entry        string `toml:"entry"` // archive entry for .zip inputs
	Output       string `toml:"output"`
	BinaryOutput string `toml:"binary_output"`

	// Filter is the largest vertex id kept. Negative means unbounded, which
	// only Sort and Weigh accept.
	Filter int64 `toml:"filter"`

	Policy   string `toml:"policy"`   // drop | stitch
	Renumber bool   `toml:"renumber"` // dense ids before stitching
	Isolated string `toml:"isolated"` // include | skip
	Labeling string `toml:"labeling"` // dfs | unionfind

	SkipHeader bool `toml:"skip_header"`
	Header     bool `toml:"header"`
	Symmetric  bool `toml:"symmetric"`

	// Verify computes the minimum spanning tree of the output, failing the
	// job when the output is not connected.
	Verify bool `toml:"verify"`

	// Seed feeds the random source; 0 selects DefaultSeed.
	Seed int64 `toml:"seed"`

	Log LogConfig `toml:"log"`
}

// DefaultSeed replaces a zero Config.Seed so that runs stay reproducible.
const DefaultSeed int64 = 1

// DefaultConfig returns the file names and policies of the original filter
// script: weighted_graph.txt in, filtered_graph.txt out, drop policy.
func DefaultConfig() Config {
	return Config{
		Input:    "weighted_graph.txt",
		Output:   "filtered_graph.txt",
		Filter:   -1,
		Policy:   repair.PolicyDrop.String(),
		Isolated: components.IncludeIsolated.String(),
		Labeling: LabelingDFS,
	}
}

// LoadConfig overlays the TOML file at path onto cfg. Keys that do not map to
// a Config field are rejected.
func LoadConfig(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("pipeline: load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}

	return nil
}

// Validate checks every enumerated field and the filter range.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input is empty", ErrInvalidConfig)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output is empty", ErrInvalidConfig)
	}
	if c.Filter > math.MaxUint32 {
		return fmt.Errorf("%w: filter %d exceeds %d", ErrInvalidConfig, c.Filter, uint32(math.MaxUint32))
	}
	if _, err := repair.ParsePolicy(c.Policy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := components.ParseIsolatedPolicy(c.Isolated); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.strategy(); err != nil {
		return err
	}

	return nil
}

func (c *Config) strategy() (components.Strategy, error) {
	switch strings.ToLower(c.Labeling) {
	case "", LabelingDFS:
		return components.DepthFirst, nil
	case LabelingUnionFind:
		return components.UnionFind, nil
	default:
		return 0, fmt.Errorf("%w: labeling %q", ErrInvalidConfig, c.Labeling)
	}
}

func (c *Config) seed() int64 {
	if c.Seed == 0 {
		return DefaultSeed
	}

	return c.Seed
}
