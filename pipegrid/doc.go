// Package pipegrid treats a 2D map of pipe symbols as a graph of directional
// connections, enabling loop tracing and enclosure analysis on top of it.
//
// What:
//
//   - Grid wraps a rectangular block of TileKind values plus the single Start tile.
//   - Each TileKind exposes a fixed set of compass Openings (N/E/S/W).
//   - Connects decides whether a step between two tiles is legal in both directions.
//   - PipeComponents groups mutually connected pipe tiles into networks.
//
// Why:
//
//   - Pipe mazes: find the loop through a marked start tile.
//   - Topology analysis: tell the loop apart from stray pipe fragments.
//
// Symbols:
//
//	.  Ground      (no openings)
//	|  Vertical    (north, south)
//	-  Horizontal  (east, west)
//	L  NorthEast   (north, east)
//	J  NorthWest   (north, west)
//	7  SouthWest   (south, west)
//	F  SouthEast   (south, east)
//	S  Start       (openings unknown until resolved)
//
// Complexity:
//
//   - Parse:          O(R×C) time and memory.
//   - CanStep:        O(1).
//   - PipeComponents: O(R×C×4), Memory: O(R×C).
//
// Errors:
//
//   - ErrInvalidSymbol: a character outside the symbol set.
//   - ErrMalformedGrid: empty, non-rectangular, or not exactly one Start tile
//     (ErrEmptyGrid, ErrNonRectangular, ErrNoStart and ErrMultipleStarts all wrap it).
package pipegrid
