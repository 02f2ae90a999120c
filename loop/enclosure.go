package loop

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Classify counts the tiles of resolved that lie strictly inside loop l.
//
// Each row is scanned left to right with an inside flag that starts false.
// A loop tile whose shape opens north ('|', 'L', 'J') toggles the flag; other
// loop tiles ('-', 'F', '7') leave it alone and are never counted. Any tile
// off the loop, ground or stray pipe alike, is enclosed while the flag is set.
// This is the ray-casting parity rule; it does not depend on the direction
// the loop was walked in.
//
// resolved must be the grid the loop was traced on with Start replaced by
// its resolved shape (see Resolve); an unresolved Start on the loop yields
// ErrUnresolvedStart.
//
// Rows are independent. With WithParallelRows(n), n > 1, rows are scanned on
// an errgroup limited to n goroutines, each writing its own count slot.
//
// Complexity: O(R·C), Memory: O(R·C) for the inside bitmap.
func Classify(resolved *pipegrid.Grid, l *Loop, opts ...Option) (*Enclosure, error) {
	if resolved == nil {
		return nil, ErrGridNil
	}
	if l == nil || l.Len() == 0 {
		return nil, fmt.Errorf("%w: empty loop", ErrNoCycleFound)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if resolved.Cols() != l.cols || resolved.Size() != len(l.onLoop) {
		return nil, fmt.Errorf("loop: Classify: grid %d×%d does not match traced loop", resolved.Rows(), resolved.Cols())
	}
	if k, _ := resolved.At(l.Start()); k == pipegrid.Start {
		return nil, ErrUnresolvedStart
	}

	enc := &Enclosure{
		inside: make([]bool, resolved.Size()),
		cols:   resolved.Cols(),
	}
	counts := make([]int, resolved.Rows())

	if o.Workers > 1 {
		eg, ctx := errgroup.WithContext(o.Ctx)
		eg.SetLimit(o.Workers)
		for r := 0; r < resolved.Rows(); r++ {
			r := r // per-iteration copy: go directive is 1.21 (pre-1.22 loop semantics)
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				counts[r] = scanRow(resolved, l, enc, r)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for r := 0; r < resolved.Rows(); r++ {
			// cancellation check (once per row)
			select {
			case <-o.Ctx.Done():
				return nil, o.Ctx.Err()
			default:
			}
			counts[r] = scanRow(resolved, l, enc, r)
		}
	}

	for _, c := range counts {
		enc.Count += c
	}
	o.Logger.Debug("enclosure classified",
		zap.Int("rows", resolved.Rows()),
		zap.Int("workers", o.Workers),
		zap.Int("enclosed", enc.Count))

	return enc, nil
}

// scanRow applies the parity rule to row r, marks enclosed tiles in enc,
// and returns how many it found. Only enc.inside[r*cols:(r+1)*cols] is written.
func scanRow(g *pipegrid.Grid, l *Loop, enc *Enclosure, r int) int {
	inside := false
	n := 0
	for c := 0; c < g.Cols(); c++ {
		p := pipegrid.Position{Row: r, Col: c}
		if l.Contains(p) {
			if k, _ := g.At(p); k.Openings().Has(pipegrid.North) {
				inside = !inside
			}
			continue
		}
		if inside {
			enc.inside[g.Index(p)] = true
			n++
		}
	}
	return n
}

// Inside reports whether p was classified as enclosed.
func (e *Enclosure) Inside(p pipegrid.Position) bool {
	if p.Row < 0 || p.Col < 0 || p.Col >= e.cols {
		return false
	}
	i := p.Row*e.cols + p.Col
	return i < len(e.inside) && e.inside[i]
}

// Tiles returns the enclosed positions in row-major order.
func (e *Enclosure) Tiles() []pipegrid.Position {
	out := make([]pipegrid.Position, 0, e.Count)
	for i, in := range e.inside {
		if in {
			out = append(out, pipegrid.Position{Row: i / e.cols, Col: i % e.cols})
		}
	}
	return out
}
