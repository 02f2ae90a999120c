package pipegrid

// PipeComponents finds all networks of mutually connected pipe tiles
// (every tile except Ground), using Connects for adjacency.
// Returns a slice of components; each component is a slice of row-major
// indices in BFS discovery order. Components are ordered by the row-major
// index of their first tile.
//
// The component holding Start contains the loop, plus any pipe that happens
// to point into Start or into the loop from outside it.
//
// To convert an index back to a Position, use Coordinate(idx).
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) PipeComponents() [][]int {
	seen := make([]bool, len(g.tiles))
	var comps [][]int

	for i0, k := range g.tiles {
		if k == Ground || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			up := g.Coordinate(u)
			for _, d := range Directions {
				vp, ok := g.CanStep(up, d)
				if !ok {
					continue
				}
				vi := g.index(vp)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// StartComponent returns the component of PipeComponents that holds Start.
func (g *Grid) StartComponent() []int {
	si := g.index(g.start)
	for _, comp := range g.PipeComponents() {
		for _, i := range comp {
			if i == si {
				return comp
			}
		}
	}
	return nil
}
