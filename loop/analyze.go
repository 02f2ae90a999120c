package loop

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Analyze runs the whole pipeline on g once: Trace, Resolve, Farthest and
// Classify. The returned Analysis exposes every intermediate result.
func Analyze(g *pipegrid.Grid, opts ...Option) (*Analysis, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	l, err := Trace(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("loop: Analyze: %w", err)
	}
	resolved, kind, err := Resolve(g, l)
	if err != nil {
		return nil, fmt.Errorf("loop: Analyze: %w", err)
	}
	enc, err := Classify(resolved, l, opts...)
	if err != nil {
		return nil, fmt.Errorf("loop: Analyze: %w", err)
	}

	a := &Analysis{
		Grid:      g,
		Resolved:  resolved,
		Loop:      l,
		StartKind: kind,
		Farthest:  Farthest(l),
		Enclosure: enc,
		Stray:     len(g.StartComponent()) - l.Len(),
	}
	o.Logger.Debug("analysis complete",
		zap.Stringer("start_kind", a.StartKind),
		zap.Int("loop_length", l.Len()),
		zap.Int("farthest", a.Farthest),
		zap.Int("enclosed", enc.Count),
		zap.Int("stray", a.Stray))

	return a, nil
}

// FarthestSteps returns the number of steps along the loop from Start to
// the point farthest from it.
func FarthestSteps(g *pipegrid.Grid, opts ...Option) (int, error) {
	l, err := Trace(g, opts...)
	if err != nil {
		return 0, err
	}
	return Farthest(l), nil
}

// EnclosedTileCount returns the number of tiles strictly inside the loop.
func EnclosedTileCount(g *pipegrid.Grid, opts ...Option) (int, error) {
	l, err := Trace(g, opts...)
	if err != nil {
		return 0, err
	}
	resolved, _, err := Resolve(g, l)
	if err != nil {
		return 0, err
	}
	enc, err := Classify(resolved, l, opts...)
	if err != nil {
		return 0, err
	}
	return enc.Count, nil
}
