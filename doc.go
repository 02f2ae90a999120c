// Package pipeloop finds the closed loop of pipes running through the start
// tile of a rectangular map, and answers two questions about it: how far
// along the loop the farthest tile is, and how many tiles the loop encloses.
//
// What is in the box?
//
//	• Map model: tile kinds, directions, openings and the connectivity rule
//	• Loop tracing: a forward walk from Start that tolerates stray exits
//	• Start resolution: the real pipe shape hidden under 'S'
//	• Enclosure: a per-row parity scan, optionally spread over goroutines
//	• Rendering: a box-drawn view of the loop with enclosed tiles marked
//
// Subpackages:
//
//	pipegrid/         Grid, TileKind, Direction, Position; Parse and connectivity
//	loop/             Trace, Resolve, Farthest, Classify and the Analyze pipeline
//	input/            line reading for map files and fs.FS sources
//	render/           lipgloss rendering of an Analysis
//	internal/config/  YAML config with PIPELOOP_* environment overrides
//	cmd/pipeloop/     the cobra CLI: farthest, enclosed, show
//
// Quick ASCII example:
//
//	.....
//	.S-7.
//	.|.|.
//	.L-J.
//	.....
//
// is a loop of eight tiles: the farthest one is four steps from S and a
// single tile sits inside it.
//
//	go install github.com/katalvlaran/pipeloop/cmd/pipeloop@latest
package pipeloop
