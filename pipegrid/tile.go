package pipegrid

import "fmt"

// TileKind identifies what occupies a tile: ground, one of six pipe shapes, or the Start marker.
type TileKind uint8

const (
	// Ground has no openings.
	Ground TileKind = iota
	// Vertical connects north and south ('|').
	Vertical
	// Horizontal connects east and west ('-').
	Horizontal
	// NorthEast is the 90-degree bend connecting north and east ('L').
	NorthEast
	// NorthWest is the 90-degree bend connecting north and west ('J').
	NorthWest
	// SouthWest is the 90-degree bend connecting south and west ('7').
	SouthWest
	// SouthEast is the 90-degree bend connecting south and east ('F').
	SouthEast
	// Start marks the animal's tile; its shape is unknown until resolved ('S').
	Start

	numKinds
)

// kindBySymbol maps input characters to tile kinds.
var kindBySymbol = map[rune]TileKind{
	'.': Ground,
	'|': Vertical,
	'-': Horizontal,
	'L': NorthEast,
	'J': NorthWest,
	'7': SouthWest,
	'F': SouthEast,
	'S': Start,
}

// symbols holds the canonical character of each kind, indexed by TileKind.
var symbols = [numKinds]rune{'.', '|', '-', 'L', 'J', '7', 'F', 'S'}

// names holds the readable name of each kind, indexed by TileKind.
var names = [numKinds]string{"Ground", "Vertical", "Horizontal", "NorthEast", "NorthWest", "SouthWest", "SouthEast", "Start"}

// openings holds the fixed opening set of each kind, indexed by TileKind.
// Start is empty here; its provisional and resolved openings are handled by
// Connects and the loop resolver respectively.
var openings = [numKinds]Openings{
	Ground:     0,
	Vertical:   OpeningsOf(North, South),
	Horizontal: OpeningsOf(East, West),
	NorthEast:  OpeningsOf(North, East),
	NorthWest:  OpeningsOf(North, West),
	SouthWest:  OpeningsOf(South, West),
	SouthEast:  OpeningsOf(South, East),
	Start:      0,
}

// KindFromSymbol returns the TileKind for r.
// Returns ErrInvalidSymbol if r is not one of ". | - L J 7 F S".
func KindFromSymbol(r rune) (TileKind, error) {
	k, ok := kindBySymbol[r]
	if !ok {
		return Ground, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
	}
	return k, nil
}

// KindOf returns the pipe kind whose openings are exactly {a, b}.
// Order does not matter. Returns false if a == b or either direction is invalid.
func KindOf(a, b Direction) (TileKind, bool) {
	want := OpeningsOf(a, b)
	if want.Len() != 2 {
		return Ground, false
	}
	for k := Vertical; k <= SouthEast; k++ {
		if openings[k] == want {
			return k, true
		}
	}
	return Ground, false
}

// Openings returns the fixed opening set of k. Ground and Start have none.
func (k TileKind) Openings() Openings {
	if k >= numKinds {
		return 0
	}
	return openings[k]
}

// IsPipe reports whether k is one of the six pipe shapes.
func (k TileKind) IsPipe() bool {
	return k >= Vertical && k <= SouthEast
}

// Symbol returns the input character of k.
func (k TileKind) Symbol() rune {
	if k >= numKinds {
		return '?'
	}
	return symbols[k]
}

// String returns the readable name of k.
func (k TileKind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("TileKind(%d)", uint8(k))
	}
	return names[k]
}
