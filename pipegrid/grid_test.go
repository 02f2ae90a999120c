package pipegrid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

//----------------------------------------------------------------------------//
// Parse and New Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects unknown symbols and malformed grids.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"Nil", nil, pipegrid.ErrEmptyGrid},
		{"LeadingBlank", []string{"", "S-7"}, pipegrid.ErrEmptyGrid},
		{"NonRectangular", []string{"S-7", "|."}, pipegrid.ErrNonRectangular},
		{"NoStart", []string{"F-7", "L-J"}, pipegrid.ErrNoStart},
		{"TwoStarts", []string{"S-7", "L-S"}, pipegrid.ErrMultipleStarts},
		{"InvalidSymbol", []string{"S-7", "L#J"}, pipegrid.ErrInvalidSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pipegrid.Parse(tc.lines)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.lines, err, tc.err)
			}
		})
	}
}

// TestParse_MalformedFamily checks that every shape error is also a MalformedGrid.
func TestParse_MalformedFamily(t *testing.T) {
	for _, err := range []error{
		pipegrid.ErrEmptyGrid,
		pipegrid.ErrNonRectangular,
		pipegrid.ErrNoStart,
		pipegrid.ErrMultipleStarts,
	} {
		require.ErrorIs(t, err, pipegrid.ErrMalformedGrid)
	}
	require.NotErrorIs(t, pipegrid.ErrInvalidSymbol, pipegrid.ErrMalformedGrid)
}

// TestParse_TwoStartsScenario is the "two S characters" scenario.
func TestParse_TwoStartsScenario(t *testing.T) {
	_, err := pipegrid.Parse([]string{
		".....",
		".S-7.",
		".|.|.",
		".L-S.",
		".....",
	})
	require.ErrorIs(t, err, pipegrid.ErrMalformedGrid)
}

// TestParse_StopsAtBlankLine checks that a blank row ends the grid section
// and that CRLF line endings are tolerated.
func TestParse_StopsAtBlankLine(t *testing.T) {
	g, err := pipegrid.Parse([]string{"S7\r", "LJ\r", "", "garbage#"})
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 2, g.Cols())
	require.Equal(t, pipegrid.Position{Row: 0, Col: 0}, g.Start())
	require.Equal(t, "S7\nLJ", g.String())
}

// TestParse_InvalidSymbolLocation checks that the error names the offending tile.
func TestParse_InvalidSymbolLocation(t *testing.T) {
	_, err := pipegrid.Parse([]string{"S-7", "|x|"})
	require.ErrorIs(t, err, pipegrid.ErrInvalidSymbol)
	require.Contains(t, err.Error(), "row 1, col 1")
	require.Contains(t, err.Error(), `'x'`)
}

// TestNew_DeepCopy ensures later mutation of the input does not leak into the grid.
func TestNew_DeepCopy(t *testing.T) {
	kinds := [][]pipegrid.TileKind{
		{pipegrid.Start, pipegrid.SouthWest},
		{pipegrid.NorthEast, pipegrid.NorthWest},
	}
	g, err := pipegrid.New(kinds)
	require.NoError(t, err)

	kinds[0][1] = pipegrid.Ground
	k, ok := g.At(pipegrid.Position{Row: 0, Col: 1})
	require.True(t, ok)
	require.Equal(t, pipegrid.SouthWest, k)
}

//----------------------------------------------------------------------------//
// Accessor Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := pipegrid.Parse([]string{
		"S-7",
		"L-J",
	})
	require.NoError(t, err)

	valid := []pipegrid.Position{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 1, Col: 1}}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	invalid := []pipegrid.Position{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 2, Col: 1}, {Row: 1, Col: -1}}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
		if _, ok := g.At(p); ok {
			t.Errorf("At(%v) ok=true; want false", p)
		}
	}
}

// TestWithTile verifies that WithTile copies and leaves the receiver untouched.
func TestWithTile(t *testing.T) {
	g, err := pipegrid.Parse([]string{
		"S-7",
		"L-J",
	})
	require.NoError(t, err)

	resolved, err := g.WithTile(g.Start(), pipegrid.SouthEast)
	require.NoError(t, err)
	require.Equal(t, "F-7\nL-J", resolved.String())
	require.Equal(t, "S-7\nL-J", g.String())
	require.Equal(t, g.Start(), resolved.Start())

	_, err = g.WithTile(pipegrid.Position{Row: 5, Col: 5}, pipegrid.Ground)
	require.Error(t, err)
}

// TestIndexCoordinate checks the row-major round trip.
func TestIndexCoordinate(t *testing.T) {
	g, err := pipegrid.Parse([]string{
		"S-7.",
		"L-J.",
		"....",
	})
	require.NoError(t, err)
	require.Equal(t, 12, g.Size())
	for i := 0; i < g.Size(); i++ {
		require.Equal(t, i, g.Index(g.Coordinate(i)))
	}
	require.Equal(t, pipegrid.Position{Row: 2, Col: 1}, g.Coordinate(9))
}
