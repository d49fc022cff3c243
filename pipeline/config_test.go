// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgeprep/core"
	"github.com/katalvlaran/edgeprep/pipeline"
)

func writeText(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeText(t, "job.toml", `
input = "graph.txt.gz"
output = "out.txt"
filter = 99
policy = "stitch"
renumber = true
seed = 7

[log]
level = "debug"
max_log_size = 10
`)
	cfg := pipeline.DefaultConfig()
	require.NoError(t, pipeline.LoadConfig(path, &cfg))

	assert.Equal(t, "graph.txt.gz", cfg.Input)
	assert.Equal(t, "out.txt", cfg.Output)
	assert.EqualValues(t, 99, cfg.Filter)
	assert.Equal(t, "stitch", cfg.Policy)
	assert.True(t, cfg.Renumber)
	assert.EqualValues(t, 7, cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Log.MaxSize)
	// untouched keys keep their defaults
	assert.Equal(t, "include", cfg.Isolated)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	path := writeText(t, "job.toml", "input = \"a\"\nfliter = 3\n")
	cfg := pipeline.DefaultConfig()
	err := pipeline.LoadConfig(path, &cfg)
	require.ErrorIs(t, err, pipeline.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "fliter")
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	assert.Error(t, pipeline.LoadConfig(filepath.Join(t.TempDir(), "none.toml"), &cfg))
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*pipeline.Config)
	}{
		{"EmptyInput", func(c *pipeline.Config) { c.Input = "" }},
		{"EmptyOutput", func(c *pipeline.Config) { c.Output = "" }},
		{"FilterTooLarge", func(c *pipeline.Config) { c.Filter = 1 << 33 }},
		{"Policy", func(c *pipeline.Config) { c.Policy = "merge" }},
		{"Isolated", func(c *pipeline.Config) { c.Isolated = "sometimes" }},
		{"Labeling", func(c *pipeline.Config) { c.Labeling = "bfs" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := pipeline.DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), pipeline.ErrInvalidConfig)
		})
	}

	cfg := pipeline.DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestParseVertexCount(t *testing.T) {
	n, err := pipeline.ParseVertexCount([]string{"4"})
	require.NoError(t, err)
	assert.Equal(t, core.Vertex(4), n)

	for _, args := range [][]string{nil, {"1", "2"}, {"x"}, {"-3"}, {"4294967296"}} {
		_, err := pipeline.ParseVertexCount(args)
		assert.ErrorIs(t, err, pipeline.ErrMissingArgument, "args %q", args)
	}
}
