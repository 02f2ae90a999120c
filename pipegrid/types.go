// Package pipegrid defines core types, tables, and sentinel errors
// for the pipegrid subpackage of github.com/katalvlaran/pipeloop.
package pipegrid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for pipegrid operations.
var (
	// ErrInvalidSymbol indicates a character outside the known pipe symbol set.
	ErrInvalidSymbol = errors.New("pipegrid: invalid symbol")
	// ErrMalformedGrid indicates the grid shape or its Start tile is invalid.
	ErrMalformedGrid = errors.New("pipegrid: malformed grid")

	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrNoStart indicates the grid holds no Start tile.
	ErrNoStart = fmt.Errorf("%w: no start tile", ErrMalformedGrid)
	// ErrMultipleStarts indicates the grid holds more than one Start tile.
	ErrMultipleStarts = fmt.Errorf("%w: more than one start tile", ErrMalformedGrid)
)

// Direction is one of the four compass directions a pipe may open toward.
type Direction int8

const (
	// North points to the previous row.
	North Direction = iota
	// East points to the next column.
	East
	// South points to the next row.
	South
	// West points to the previous column.
	West

	// NoDirection marks the absence of a direction, e.g. the entry of the first step.
	NoDirection Direction = -1
)

// Directions lists the cardinal directions in clockwise order starting at North.
// Every neighbor scan uses this order.
var Directions = [4]Direction{North, East, South, West}

// deltas holds (dRow, dCol) per direction, indexed by Direction.
var deltas = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Opposite returns the direction pointing back the way d came.
// NoDirection is its own opposite.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return NoDirection
	}
	return (d + 2) % 4
}

// Delta returns the row and column offsets of a single step toward d.
func (d Direction) Delta() (dRow, dCol int) {
	if !d.Valid() {
		return 0, 0
	}
	return deltas[d][0], deltas[d][1]
}

// String returns the single-letter compass name ("N", "E", "S", "W").
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "-"
}

// Openings is a bitset of directions a tile opens toward.
type Openings uint8

// OpeningsOf builds an Openings set from the given directions.
// Invalid directions are ignored.
func OpeningsOf(dirs ...Direction) Openings {
	var o Openings
	for _, d := range dirs {
		if d.Valid() {
			o |= 1 << uint(d)
		}
	}
	return o
}

// allOpenings is the provisional opening set of an unresolved Start tile.
const allOpenings = Openings(1<<North | 1<<East | 1<<South | 1<<West)

// Has reports whether d is in the set.
func (o Openings) Has(d Direction) bool {
	return d.Valid() && o&(1<<uint(d)) != 0
}

// Len returns the number of directions in the set.
func (o Openings) Len() int {
	n := 0
	for _, d := range Directions {
		if o.Has(d) {
			n++
		}
	}
	return n
}

// Directions returns the members of the set in clockwise order.
func (o Openings) Directions() []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range Directions {
		if o.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String renders the set as concatenated compass letters, e.g. "NE".
func (o Openings) String() string {
	var sb strings.Builder
	for _, d := range o.Directions() {
		sb.WriteString(d.String())
	}
	return sb.String()
}

// Position addresses a tile by row and column. There is no wraparound.
type Position struct {
	Row, Col int
}

// Step returns the position one tile away toward d.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is an immutable rectangular map of tiles with exactly one Start tile.
// Tiles are stored row-major; use index and Coordinate to convert.
type Grid struct {
	rows, cols int
	tiles      []TileKind
	start      Position
}
