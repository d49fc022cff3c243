// SPDX-License-Identifier: MIT

// Package pipeline wires the edge-list stages into one-shot batch jobs.
//
//	Run:    load → components → largest → drop, or [renumber →] stitch → write
//	Sort:   load → write sorted by source vertex
//	Weigh:  load → assign random weights → write
//
// Run and the other jobs take a Config, usually built from DefaultConfig,
// optionally overlaid with a TOML file (LoadConfig) and then with command line
// flags. Process is the side-effect free core of Run and is what tests drive.
//
// Logging goes through a package logrus logger; LogConfig.SetLogger can send
// it to a rotating file.
package pipeline
