// Package loop defines types, options, and error definitions
// for tracing the pipe loop through a pipegrid.Grid and classifying
// the tiles it encloses.
package loop

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Sentinel errors for loop operations.
var (
	// ErrGridNil is returned when a nil *pipegrid.Grid is passed.
	ErrGridNil = errors.New("loop: grid is nil")

	// ErrNoCycleFound indicates that Start has fewer than two connecting
	// neighbors, or that a walk dead-ended before returning to Start.
	ErrNoCycleFound = errors.New("loop: no cycle through start")

	// ErrUnresolvedStart is returned when the enclosure scan is handed a
	// grid whose Start tile has not been replaced by its resolved pipe.
	ErrUnresolvedStart = errors.New("loop: start tile is not resolved")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("loop: invalid option supplied")
)

// Option configures tracing and classification via functional arguments.
// If an Option is invalid (e.g. negative worker count), it will be recorded
// internally and surfaced as ErrOptionViolation when the operation runs.
type Option func(*Options)

// Options holds parameters to customize Trace, Classify, and Analyze.
type Options struct {
	// Ctx allows cancellation; checked once per walk step and per row.
	Ctx context.Context

	// InitialDirection, if valid, forces the first step out of Start.
	// NoDirection (the default) tries Start's exits in N, E, S, W order.
	InitialDirection pipegrid.Direction

	// Workers, if > 1, scans rows concurrently with at most Workers goroutines.
	// 0 or 1 scans sequentially.
	Workers int

	// Logger receives Debug-level progress records. Defaults to a no-op logger.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with:
//   - Background context
//   - no forced initial direction
//   - sequential row scan (Workers == 0)
//   - no-op logger
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		InitialDirection: pipegrid.NoDirection,
		Workers:          0,
		Logger:           zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithInitialDirection forces the first step out of Start toward d.
// An invalid direction is an ErrOptionViolation.
func WithInitialDirection(d pipegrid.Direction) Option {
	return func(o *Options) {
		if !d.Valid() {
			o.err = fmt.Errorf("%w: initial direction %d is not a compass direction", ErrOptionViolation, d)
			return
		}
		o.InitialDirection = d
	}
}

// WithParallelRows scans rows with up to n goroutines.
//
//	n > 1:  concurrent scan, at most n rows in flight
//	n == 0 or 1: sequential scan
//	n < 0:  invalid option → ErrOptionViolation
func WithParallelRows(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: worker count cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger installs l for Debug-level progress logging. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// buildOptions applies opts over DefaultOptions and reports the first violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Step is one entry of a traced loop: the tile reached and the direction
// travelled to reach it. The opening entry at Start carries NoDirection.
type Step struct {
	Pos pipegrid.Position
	Dir pipegrid.Direction
}

// Loop is the closed walk through Start.
// Steps begins and ends at Start; every other position appears exactly once.
type Loop struct {
	// Steps is the ordered walk, Start first and last.
	Steps []Step

	// onLoop flags row-major indices of loop tiles.
	onLoop []bool
	cols   int
}

// Enclosure is the outcome of the parity scan.
type Enclosure struct {
	// Count is the number of off-loop tiles classified inside the loop.
	Count int

	// inside flags row-major indices of enclosed tiles.
	inside []bool
	cols   int
}

// Analysis bundles everything computed for one grid: the walk, the
// resolved start shape, and both puzzle answers.
type Analysis struct {
	// Grid is the parsed input, Start unresolved.
	Grid *pipegrid.Grid

	// Resolved is Grid with Start replaced by StartKind.
	Resolved *pipegrid.Grid

	// Loop is the traced cycle.
	Loop *Loop

	// StartKind is the pipe shape Start stands for.
	StartKind pipegrid.TileKind

	// Farthest is the step count to the loop tile farthest from Start.
	Farthest int

	// Enclosure holds the enclosed tiles.
	Enclosure *Enclosure

	// Stray counts pipe tiles connected to Start's network but not on the loop.
	Stray int
}
