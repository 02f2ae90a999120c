package loop_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

type pos = pipegrid.Position

// TestTrace_Square checks the exact walk around the simple square sample.
func TestTrace_Square(t *testing.T) {
	g := loadGrid(t, "square.txt")

	l, err := loop.Trace(g)
	require.NoError(t, err)

	want := []loop.Step{
		{Pos: pos{Row: 1, Col: 1}, Dir: pipegrid.NoDirection},
		{Pos: pos{Row: 1, Col: 2}, Dir: pipegrid.East},
		{Pos: pos{Row: 1, Col: 3}, Dir: pipegrid.East},
		{Pos: pos{Row: 2, Col: 3}, Dir: pipegrid.South},
		{Pos: pos{Row: 3, Col: 3}, Dir: pipegrid.South},
		{Pos: pos{Row: 3, Col: 2}, Dir: pipegrid.West},
		{Pos: pos{Row: 3, Col: 1}, Dir: pipegrid.West},
		{Pos: pos{Row: 2, Col: 1}, Dir: pipegrid.North},
		{Pos: pos{Row: 1, Col: 1}, Dir: pipegrid.North},
	}
	if diff := cmp.Diff(want, l.Steps); diff != "" {
		t.Errorf("Trace steps mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 8, l.Len())
	require.Equal(t, pipegrid.East, l.Departure())
	require.Equal(t, pipegrid.North, l.Arrival())
	require.Equal(t, g.Start(), l.Start())
	require.True(t, l.Contains(pos{Row: 3, Col: 2}))
	require.False(t, l.Contains(pos{Row: 2, Col: 2}))
	require.False(t, l.Contains(pos{Row: -1, Col: 0}))
}

// TestTrace_MinimalLoop is the smallest possible cycle: four tiles.
func TestTrace_MinimalLoop(t *testing.T) {
	g := mustParse(t,
		"...",
		".S7",
		".LJ",
	)
	l, err := loop.Trace(g)
	require.NoError(t, err)
	require.Equal(t, 4, l.Len())
	require.Equal(t, 2, loop.Farthest(l))

	steps, err := loop.FarthestSteps(g)
	require.NoError(t, err)
	require.Equal(t, 2, steps)
}

// TestTrace_DirectionSymmetry walks every sample from each of Start's exits
// and checks that the same set of tiles comes out.
func TestTrace_DirectionSymmetry(t *testing.T) {
	for _, s := range samples {
		t.Run(s.file, func(t *testing.T) {
			g := loadGrid(t, s.file)
			exits := g.Exits(g.Start())
			require.Len(t, exits, 2)

			var sets [][]pos
			for _, d := range exits {
				l, err := loop.Trace(g, loop.WithInitialDirection(d))
				require.NoError(t, err, "departing %v", d)
				require.Equal(t, d, l.Departure())
				sets = append(sets, sortedPositions(l.Positions()))
			}
			if diff := cmp.Diff(sets[0], sets[1]); diff != "" {
				t.Errorf("loop tiles differ by departure (-%v +%v):\n%s", exits[0], exits[1], diff)
			}
		})
	}
}

// TestTrace_UniquePositions checks no tile other than Start repeats.
func TestTrace_UniquePositions(t *testing.T) {
	for _, s := range samples {
		g := loadGrid(t, s.file)
		l, err := loop.Trace(g)
		require.NoError(t, err, s.file)

		seen := make(map[pos]bool, l.Len())
		for _, p := range l.Positions() {
			require.False(t, seen[p], "%s: %v visited twice", s.file, p)
			seen[p] = true
		}
		require.Equal(t, l.Steps[0].Pos, l.Steps[len(l.Steps)-1].Pos)
	}
}

// TestTrace_ExtraExits covers a Start with stray pipes pointing at it:
// the dead-end exit is abandoned and the closing one is used.
//
//	.|..
//	-S7.
//	.LJ.
func TestTrace_ExtraExits(t *testing.T) {
	g := mustParse(t,
		".|..",
		"-S7.",
		".LJ.",
	)
	require.Len(t, g.Exits(g.Start()), 4)

	l, err := loop.Trace(g)
	require.NoError(t, err)
	require.Equal(t, 4, l.Len())
	require.Equal(t, pipegrid.East, l.Departure())

	k, err := loop.ResolveStart(l)
	require.NoError(t, err)
	require.Equal(t, pipegrid.SouthEast, k)

	_, err = loop.Trace(g, loop.WithInitialDirection(pipegrid.North))
	require.ErrorIs(t, err, loop.ErrNoCycleFound)
}

// TestTrace_NoCycle checks the malformed-loop cases.
func TestTrace_NoCycle(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
	}{
		{"Alone", []string{"S"}},
		{"OneExit", []string{"S-."}},
		{"DeadEnds", []string{
			"S-7",
			"|..",
			"L-.",
		}},
		{"OpenBothWays", []string{
			".|.",
			".S.",
			".|.",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.lines...)
			_, err := loop.Trace(g)
			if !errors.Is(err, loop.ErrNoCycleFound) {
				t.Errorf("Trace error = %v; want ErrNoCycleFound", err)
			}
			_, err = loop.EnclosedTileCount(g)
			if !errors.Is(err, loop.ErrNoCycleFound) {
				t.Errorf("EnclosedTileCount error = %v; want ErrNoCycleFound", err)
			}
		})
	}
}

// TestTrace_InvalidInputs covers nil grids, bad options, and forced exits that do not exist.
func TestTrace_InvalidInputs(t *testing.T) {
	_, err := loop.Trace(nil)
	require.ErrorIs(t, err, loop.ErrGridNil)

	g := loadGrid(t, "square.txt")
	_, err = loop.Trace(g, loop.WithInitialDirection(pipegrid.NoDirection))
	require.ErrorIs(t, err, loop.ErrOptionViolation)

	_, err = loop.Trace(g, loop.WithInitialDirection(pipegrid.West))
	require.ErrorIs(t, err, loop.ErrNoCycleFound)
}

// TestTrace_Cancelled ensures a cancelled context stops the walk.
func TestTrace_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loop.Trace(loadGrid(t, "square.txt"), loop.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// sortedPositions returns ps sorted row-major.
func sortedPositions(ps []pos) []pos {
	out := append([]pos(nil), ps...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
