package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ResolveStart infers the pipe shape Start stands for from the loop l.
// Start opens toward the first step out of it and back toward where the
// last step came from, i.e. {Departure, Arrival.Opposite()}.
// Every one of the six pipe shapes can come out, straight ones included.
func ResolveStart(l *Loop) (pipegrid.TileKind, error) {
	if l == nil || l.Len() < 2 {
		return pipegrid.Ground, fmt.Errorf("%w: loop too short to resolve start", ErrNoCycleFound)
	}
	out, in := l.Departure(), l.Arrival().Opposite()
	k, ok := pipegrid.KindOf(out, in)
	if !ok {
		return pipegrid.Ground, fmt.Errorf("%w: start openings %v and %v form no pipe", ErrNoCycleFound, out, in)
	}
	return k, nil
}

// Resolve returns a copy of g with its Start tile replaced by the shape
// ResolveStart infers from l.
func Resolve(g *pipegrid.Grid, l *Loop) (*pipegrid.Grid, pipegrid.TileKind, error) {
	if g == nil {
		return nil, pipegrid.Ground, ErrGridNil
	}
	k, err := ResolveStart(l)
	if err != nil {
		return nil, pipegrid.Ground, err
	}
	resolved, err := g.WithTile(g.Start(), k)
	if err != nil {
		return nil, pipegrid.Ground, fmt.Errorf("loop: Resolve: %w", err)
	}
	return resolved, k, nil
}

// Farthest returns the number of steps from Start to the loop tile
// farthest from it along the loop: half the loop length, rounded down.
func Farthest(l *Loop) int {
	if l == nil {
		return 0
	}
	return l.Len() / 2
}
