package pipegrid

// openingsFor returns the openings used for connectivity checks.
// An unresolved Start tile is provisionally open on all four sides.
func openingsFor(k TileKind) Openings {
	if k == Start {
		return allOpenings
	}
	return k.Openings()
}

// Connects reports whether a step toward d from a tile of kind from
// into an adjacent tile of kind to is legal: from must open toward d,
// and to must open back toward d.Opposite().
//
// Start is treated as open on every side in both roles, so a walk can
// leave it in any direction and both ends of the loop can close onto it.
func Connects(from TileKind, d Direction, to TileKind) bool {
	if !d.Valid() {
		return false
	}
	return openingsFor(from).Has(d) && openingsFor(to).Has(d.Opposite())
}

// CanStep reports whether a step from p toward d is legal on g and returns
// the destination. The destination must be in bounds and Connects must hold
// between the two tiles.
// Complexity: O(1).
func (g *Grid) CanStep(p Position, d Direction) (Position, bool) {
	from, ok := g.At(p)
	if !ok {
		return p, false
	}
	next := p.Step(d)
	to, ok := g.At(next)
	if !ok {
		return p, false
	}
	if !Connects(from, d, to) {
		return p, false
	}
	return next, true
}

// Exits returns the directions in which a legal step from p exists,
// in clockwise order starting at North.
func (g *Grid) Exits(p Position) []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range Directions {
		if _, ok := g.CanStep(p, d); ok {
			out = append(out, d)
		}
	}
	return out
}
