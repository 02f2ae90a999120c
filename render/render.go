// Package render draws an analysed pipe map for terminals: loop tiles as
// box-drawing characters, enclosed tiles as 'I', everything else as '.'.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// glyphs holds the box-drawing character of each pipe kind.
var glyphs = map[pipegrid.TileKind]string{
	pipegrid.Vertical:   "│",
	pipegrid.Horizontal: "─",
	pipegrid.NorthEast:  "└",
	pipegrid.NorthWest:  "┘",
	pipegrid.SouthWest:  "┐",
	pipegrid.SouthEast:  "┌",
}

const (
	insideGlyph  = "I"
	outsideGlyph = "."
)

// Renderer turns a loop.Analysis into text.
type Renderer struct {
	plain   bool
	loop    lipgloss.Style
	start   lipgloss.Style
	inside  lipgloss.Style
	outside lipgloss.Style
}

// New returns a Renderer. With plain set, no ANSI styling is emitted.
func New(plain bool) *Renderer {
	return &Renderer{
		plain:   plain,
		loop:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		start:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		inside:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		outside: lipgloss.NewStyle().Faint(true),
	}
}

// Render draws a.Resolved row by row. Start is drawn with its resolved shape.
func (r *Renderer) Render(a *loop.Analysis) string {
	g := a.Resolved
	var sb strings.Builder
	for row := 0; row < g.Rows(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.Cols(); col++ {
			p := pipegrid.Position{Row: row, Col: col}
			sb.WriteString(r.tile(a, p))
		}
	}
	return sb.String()
}

// Summary renders the answer block printed under the map.
func (r *Renderer) Summary(a *loop.Analysis) string {
	return fmt.Sprintf("start:    %v = %c\nloop:     %d tiles\nfarthest: %d\nenclosed: %d",
		a.Grid.Start(), a.StartKind.Symbol(), a.Loop.Len(), a.Farthest, a.Enclosure.Count)
}

// tile returns the styled glyph for p.
func (r *Renderer) tile(a *loop.Analysis, p pipegrid.Position) string {
	switch {
	case a.Loop.Contains(p):
		k, _ := a.Resolved.At(p)
		if p == a.Grid.Start() {
			return r.style(r.start, glyphs[k])
		}
		return r.style(r.loop, glyphs[k])
	case a.Enclosure.Inside(p):
		return r.style(r.inside, insideGlyph)
	default:
		return r.style(r.outside, outsideGlyph)
	}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}
