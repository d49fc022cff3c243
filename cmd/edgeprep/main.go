// SPDX-License-Identifier: MIT

// Command edgeprep prepares edge-list files for minimum spanning tree
// benchmarks.
//
//	edgeprep filter [flags] <count>   keep the largest component of 0..count
//	edgeprep stitch [flags] <count>   link every vertex of 0..count into it
//	edgeprep weigh  [flags]           assign random weights
//	edgeprep sort   [flags]           sort by source vertex
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli"

	"github.com/katalvlaran/edgeprep/components"
	"github.com/katalvlaran/edgeprep/pipeline"
	"github.com/katalvlaran/edgeprep/repair"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

var commonFlags = []cli.Flag{
	cli.StringFlag{Name: "input, i", Value: "weighted_graph.txt", Usage: "edge list to read (.zip, .gz, .zst or plain)"},
	cli.StringFlag{Name: "output, o", Value: "filtered_graph.txt", Usage: "edge list to write (.gz, .zst or plain)"},
	cli.StringFlag{Name: "entry", Usage: "entry to read from a .zip input"},
	cli.StringFlag{Name: "binary", Usage: "also write the binary edge format to this file"},
	cli.StringFlag{Name: "config, c", Usage: "TOML job file; flags override its values"},
	cli.BoolFlag{Name: "header", Usage: "write the column header line"},
	cli.BoolFlag{Name: "skip-header", Usage: "skip the first input line"},
	cli.BoolFlag{Name: "symmetric", Usage: "write both orientations of every edge"},
	cli.StringFlag{Name: "log-file", Usage: "rotating log file instead of stderr"},
	cli.BoolFlag{Name: "verbose, v", Usage: "debug logging"},
}

var repairFlags = []cli.Flag{
	cli.BoolFlag{Name: "skip-isolated", Usage: "vertices without edges form no component"},
	cli.StringFlag{Name: "labeling", Value: pipeline.LabelingDFS, Usage: "component labeling: dfs or unionfind"},
	cli.BoolFlag{Name: "verify", Usage: "check the output is connected and report its spanning tree weight"},
}

// countUsage documents that flag parsing stops at the positional count.
const countUsage = "<count> (flags go before the count)"

var seedFlag = cli.Int64Flag{Name: "seed", Usage: "random seed (0 selects the default)"}

func flags(groups ...[]cli.Flag) []cli.Flag {
	var out []cli.Flag
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "edgeprep"
	app.Usage = "prepare edge lists for minimum spanning tree benchmarks"
	app.Version = "0.1.0"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Commands = []cli.Command{
		{
			Name:           "filter",
			Usage:          "keep the largest connected component of vertices 0..count",
			ArgsUsage:      countUsage,
			SkipArgReorder: true,
			Flags:          flags(commonFlags, repairFlags),
			Action:         repairAction(repair.PolicyDrop),
		},
		{
			Name:           "stitch",
			Usage:          "link every vertex of 0..count to the largest component",
			ArgsUsage:      countUsage,
			SkipArgReorder: true,
			Flags: flags(commonFlags, repairFlags, []cli.Flag{
				seedFlag,
				cli.BoolFlag{Name: "renumber", Usage: "assign dense vertex ids before stitching"},
			}),
			Action: repairAction(repair.PolicyStitch),
		},
		{
			Name:   "weigh",
			Usage:  "replace every edge weight with a random one in [1, 1000]",
			Flags:  flags(commonFlags, []cli.Flag{seedFlag}),
			Action: weighAction,
		},
		{
			Name:  "sort",
			Usage: "rewrite the edge list sorted by source vertex",
			Flags: flags(commonFlags, []cli.Flag{
				cli.BoolFlag{Name: "unweighted", Usage: "omit the weight column"},
			}),
			Action: sortAction,
		},
	}

	return app
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if err := newApp(stdout, stderr).Run(args); err != nil {
		fmt.Fprintf(stderr, "edgeprep: %v\n", err)
		return 1
	}

	return 0
}

// loadConfig resolves the job configuration: defaults, then the --config
// file, then any flag given on the command line.
func loadConfig(c *cli.Context) (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	if path := c.String("config"); path != "" {
		if err := pipeline.LoadConfig(path, &cfg); err != nil {
			return cfg, err
		}
	}

	setString := func(name string, dst *string) {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}
	setBool := func(name string, dst *bool) {
		if c.IsSet(name) {
			*dst = c.Bool(name)
		}
	}
	setString("input", &cfg.Input)
	setString("output", &cfg.Output)
	setString("entry", &cfg.Entry)
	setString("binary", &cfg.BinaryOutput)
	setString("labeling", &cfg.Labeling)
	setString("log-file", &cfg.Log.File)
	setBool("header", &cfg.Header)
	setBool("skip-header", &cfg.SkipHeader)
	setBool("symmetric", &cfg.Symmetric)
	setBool("renumber", &cfg.Renumber)
	setBool("verify", &cfg.Verify)
	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}
	if c.Bool("skip-isolated") {
		cfg.Isolated = components.SkipIsolated.String()
	}
	if c.Bool("verbose") {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Log.SetLogger(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func usageError(c *cli.Context, err error) error {
	fmt.Fprintf(c.App.ErrWriter, "usage: %s %s [flags] %s\n", c.App.Name, c.Command.Name, c.Command.ArgsUsage)
	for _, arg := range c.Args().Tail() {
		if strings.HasPrefix(arg, "-") {
			fmt.Fprintf(c.App.ErrWriter, "flag %s follows the count; move it before %s\n", arg, c.Args().First())
			break
		}
	}
	return err
}

func repairAction(policy repair.Policy) func(*cli.Context) error {
	return func(c *cli.Context) error {
		count, err := pipeline.ParseVertexCount([]string(c.Args()))
		if err != nil {
			return usageError(c, err)
		}
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		cfg.Filter = int64(count)
		cfg.Policy = policy.String()

		res, err := pipeline.Run(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "%s: %s vertices, %s edges (%d components, largest %s)\n",
			cfg.Output, humanize.Comma(int64(res.Vertices)), humanize.Comma(int64(res.Edges)),
			res.Components, humanize.Comma(int64(res.Largest)))
		if cfg.Verify {
			fmt.Fprintf(c.App.Writer, "spanning tree weight %s\n", humanize.Comma(res.MSTWeight))
		}

		return nil
	}
}

func weighAction(c *cli.Context) error {
	if c.NArg() != 0 {
		return usageError(c, fmt.Errorf("unexpected arguments %q", []string(c.Args())))
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	res, err := pipeline.Weigh(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s: %s edges weighted\n", cfg.Output, humanize.Comma(int64(res.Edges)))

	return nil
}

func sortAction(c *cli.Context) error {
	if c.NArg() != 0 {
		return usageError(c, fmt.Errorf("unexpected arguments %q", []string(c.Args())))
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	res, err := pipeline.Sort(cfg, c.Bool("unweighted"))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s: %s edges sorted\n", cfg.Output, humanize.Comma(int64(res.Edges)))

	return nil
}
