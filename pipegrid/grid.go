package pipegrid

import (
	"fmt"
	"strings"
)

// Parse builds a Grid from text rows, one row per line.
// Rows are read until the first blank line, which ends the grid section;
// a trailing '\r' on a row is dropped.
// Returns an error wrapping ErrInvalidSymbol on the first unknown character,
// or one wrapping ErrMalformedGrid for empty, ragged, or start-less input.
// Algorithmic complexity: O(R×C) time and memory.
func Parse(lines []string) (*Grid, error) {
	kinds := make([][]TileKind, 0, len(lines))
	for r, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			break // end of grid section
		}
		row := make([]TileKind, 0, len(line))
		for c, ch := range []rune(line) {
			k, err := KindFromSymbol(ch)
			if err != nil {
				return nil, fmt.Errorf("pipegrid: Parse: row %d, col %d: %w", r, c, err)
			}
			row = append(row, k)
		}
		kinds = append(kinds, row)
	}

	return New(kinds)
}

// New constructs a Grid from a non-empty, rectangular 2D slice of kinds.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if kinds has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNoStart or ErrMultipleStarts unless exactly one Start tile is present.
func New(kinds [][]TileKind) (*Grid, error) {
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(kinds), len(kinds[0])
	for _, row := range kinds {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{
		rows:  h,
		cols:  w,
		tiles: make([]TileKind, h*w),
	}
	starts := 0
	for r := 0; r < h; r++ {
		copy(g.tiles[r*w:(r+1)*w], kinds[r])
		for c, k := range kinds[r] {
			if k >= numKinds {
				return nil, fmt.Errorf("%w: kind %d at (%d,%d)", ErrInvalidSymbol, uint8(k), r, c)
			}
			if k == Start {
				starts++
				g.start = Position{Row: r, Col: c}
			}
		}
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w (found %d)", ErrMultipleStarts, starts)
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the total number of tiles, Rows()×Cols().
func (g *Grid) Size() int { return g.rows * g.cols }

// Start returns the position of the Start tile.
func (g *Grid) Start() Position { return g.start }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the tile kind at p and whether p is inside the grid.
func (g *Grid) At(p Position) (TileKind, bool) {
	if !g.InBounds(p) {
		return Ground, false
	}
	return g.tiles[g.index(p)], true
}

// WithTile returns a copy of g with the tile at p replaced by k.
// The receiver is left untouched. Replacing the Start tile with a pipe
// is how a resolved grid is produced; the copy keeps the original
// start position so loop data still lines up with it.
func (g *Grid) WithTile(p Position, k TileKind) (*Grid, error) {
	if !g.InBounds(p) {
		return nil, fmt.Errorf("pipegrid: WithTile: position %v out of bounds", p)
	}
	if k >= numKinds {
		return nil, fmt.Errorf("%w: kind %d", ErrInvalidSymbol, uint8(k))
	}
	cp := &Grid{
		rows:  g.rows,
		cols:  g.cols,
		tiles: make([]TileKind, len(g.tiles)),
		start: g.start,
	}
	copy(cp.tiles, g.tiles)
	cp.tiles[g.index(p)] = k

	return cp, nil
}

// Lines renders the grid back to its symbol rows.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	buf := make([]rune, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			buf[c] = g.tiles[r*g.cols+c].Symbol()
		}
		out[r] = string(buf)
	}
	return out
}

// String renders the grid as newline-separated symbol rows.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Index maps p to its row-major index: Row*Cols + Col.
// p must be in bounds. Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return g.index(p)
}

// index maps p to a row-major index.
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}
