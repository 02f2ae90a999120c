package loop

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// errDeadEnd marks a single walk that failed to return to Start.
var errDeadEnd = errors.New("walk dead-ended")

// walker encapsulates mutable state of one forward-only walk.
type walker struct {
	grid    *pipegrid.Grid
	ctx     context.Context
	log     *zap.Logger
	visited []bool
	steps   []Step
}

// Trace walks the loop through g's Start tile.
//
// Behavior:
//  1. Collect Start's exits: directions whose neighbor opens back toward Start.
//  2. Fewer than two exits → ErrNoCycleFound.
//  3. From the chosen exit, repeatedly leave each tile through its one
//     opening that is not the entry opening, recording (position, direction).
//  4. Stop when the next step lands on Start and append Start to close the walk.
//
// A walk that steps off a pipe, into a tile that does not open back, or onto a
// tile it already visited is a dead end. Without WithInitialDirection the
// exits are tried in N, E, S, W order and the first walk that closes wins;
// when none does, ErrNoCycleFound is returned.
//
// Complexity: O(R·C) per walk, Memory: O(R·C) for the visited bitmap.
func Trace(g *pipegrid.Grid, opts ...Option) (*Loop, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	exits := g.Exits(g.Start())
	if len(exits) < 2 {
		return nil, fmt.Errorf("%w: start %v has %d connecting neighbor(s)", ErrNoCycleFound, g.Start(), len(exits))
	}
	candidates := exits
	if o.InitialDirection.Valid() {
		if !containsDirection(exits, o.InitialDirection) {
			return nil, fmt.Errorf("%w: start %v does not connect toward %v", ErrNoCycleFound, g.Start(), o.InitialDirection)
		}
		candidates = []pipegrid.Direction{o.InitialDirection}
	}

	var lastErr error
	for _, d := range candidates {
		w := &walker{
			grid:    g,
			ctx:     o.Ctx,
			log:     o.Logger,
			visited: make([]bool, g.Size()),
			steps:   make([]Step, 0, 64),
		}
		l, err := w.walk(d)
		if err == nil {
			o.Logger.Debug("loop traced",
				zap.Stringer("start", g.Start()),
				zap.Stringer("departure", l.Departure()),
				zap.Stringer("arrival", l.Arrival()),
				zap.Int("length", l.Len()))
			return l, nil
		}
		if !errors.Is(err, errDeadEnd) {
			return nil, err // cancellation
		}
		o.Logger.Debug("walk abandoned", zap.Stringer("departure", d), zap.Error(err))
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %v", ErrNoCycleFound, lastErr)
}

// walk runs the forward-only walk leaving Start toward first.
func (w *walker) walk(first pipegrid.Direction) (*Loop, error) {
	start := w.grid.Start()
	w.visit(start, pipegrid.NoDirection)

	cur, dir := start, first
	limit := w.grid.Size()
	for n := 0; n < limit; n++ {
		// cancellation check (once per step)
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		next, ok := w.grid.CanStep(cur, dir)
		if !ok {
			return nil, fmt.Errorf("%w at %v heading %v", errDeadEnd, cur, dir)
		}
		if next == start {
			w.steps = append(w.steps, Step{Pos: start, Dir: dir})
			return w.finish(), nil
		}
		if w.visited[w.grid.Index(next)] {
			return nil, fmt.Errorf("%w: revisited %v", errDeadEnd, next)
		}
		w.visit(next, dir)

		fwd, ok := w.forward(next, dir)
		if !ok {
			return nil, fmt.Errorf("%w at %v: no way forward", errDeadEnd, next)
		}
		cur, dir = next, fwd
	}

	return nil, fmt.Errorf("%w: exceeded %d steps", errDeadEnd, limit)
}

// visit marks p visited and records how it was entered.
func (w *walker) visit(p pipegrid.Position, entered pipegrid.Direction) {
	w.visited[w.grid.Index(p)] = true
	w.steps = append(w.steps, Step{Pos: p, Dir: entered})
}

// forward returns the opening of the tile at p other than the one it was
// entered through. A tile entered heading d was entered via d.Opposite().
func (w *walker) forward(p pipegrid.Position, entered pipegrid.Direction) (pipegrid.Direction, bool) {
	k, _ := w.grid.At(p)
	back := entered.Opposite()
	open := k.Openings()
	if !open.Has(back) {
		return pipegrid.NoDirection, false
	}
	for _, d := range open.Directions() {
		if d != back {
			return d, true
		}
	}
	return pipegrid.NoDirection, false
}

// finish freezes the recorded steps into a Loop.
func (w *walker) finish() *Loop {
	return &Loop{
		Steps:  w.steps,
		onLoop: w.visited,
		cols:   w.grid.Cols(),
	}
}

// containsDirection reports whether d is in ds.
func containsDirection(ds []pipegrid.Direction, d pipegrid.Direction) bool {
	for _, x := range ds {
		if x == d {
			return true
		}
	}
	return false
}

// Len returns the number of distinct tiles on the loop, Start counted once.
func (l *Loop) Len() int {
	if len(l.Steps) == 0 {
		return 0
	}
	return len(l.Steps) - 1
}

// Start returns the position the loop begins and ends at.
func (l *Loop) Start() pipegrid.Position {
	return l.Steps[0].Pos
}

// Departure returns the direction of the first step out of Start.
func (l *Loop) Departure() pipegrid.Direction {
	if len(l.Steps) < 2 {
		return pipegrid.NoDirection
	}
	return l.Steps[1].Dir
}

// Arrival returns the direction of the last step, the one back into Start.
func (l *Loop) Arrival() pipegrid.Direction {
	if len(l.Steps) < 2 {
		return pipegrid.NoDirection
	}
	return l.Steps[len(l.Steps)-1].Dir
}

// Contains reports whether p lies on the loop.
func (l *Loop) Contains(p pipegrid.Position) bool {
	if p.Row < 0 || p.Col < 0 || p.Col >= l.cols {
		return false
	}
	i := p.Row*l.cols + p.Col
	return i < len(l.onLoop) && l.onLoop[i]
}

// Positions returns the distinct loop tiles in walk order, Start first.
func (l *Loop) Positions() []pipegrid.Position {
	out := make([]pipegrid.Position, 0, l.Len())
	for _, s := range l.Steps[:l.Len()] {
		out = append(out, s.Pos)
	}
	return out
}
