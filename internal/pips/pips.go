// Package pips lays out the grid of suit glyphs on cards drawn without face
// art.
package pips

import (
	"github.com/gogpu/cardface/geom"
	"github.com/gogpu/cardface/internal/fontfit"
)

// Patterns holds the number of pips per row, top to bottom, indexed by rank.
// Index 0 is a sentinel with a single empty row. Court cards (11-13) have
// no entry.
var Patterns = [...][]int{
	{0},
	{1},
	{1, 1},
	{1, 1, 1},
	{2, 2},
	{2, 1, 2},
	{2, 2, 2},
	{2, 1, 2, 2},
	{2, 2, 2, 2},
	{2, 2, 1, 2, 2},
	{2, 2, 2, 2, 2},
}

// MaxRows and MaxColumns are the largest row count and the widest row in
// Patterns. Every rank shares one glyph size computed from them.
var (
	MaxRows    = maxRows()
	MaxColumns = maxColumns()
)

func maxRows() int {
	n := 0
	for _, p := range Patterns {
		n = max(n, len(p))
	}
	return n
}

func maxColumns() int {
	n := 0
	for _, p := range Patterns {
		for _, c := range p {
			n = max(n, c)
		}
	}
	return n
}

// Pattern returns the row pattern for rank and whether one exists.
func Pattern(rank int) ([]int, bool) {
	if rank < 0 || rank >= len(Patterns) {
		return nil, false
	}
	return Patterns[rank], true
}

// Pip is one glyph placement. The glyph is centred horizontally in Rect
// and its top edge sits on Rect's top edge.
type Pip struct {
	Rect     geom.Rect
	FontSize float64
}

// Layout places glyph pips for rank inside playable. Ranks without a
// pattern produce no pips.
func Layout(m fontfit.Measurer, rank int, glyph string, playable geom.Rect) []Pip {
	pattern, ok := Pattern(rank)
	if !ok || m == nil {
		return nil
	}

	size := fontfit.Fit(m, glyph, playable.Size(), MaxRows, MaxColumns)
	_, glyphH := m.Measure(glyph, size)

	rowSpacing := playable.H / float64(len(pattern))
	row := playable
	row.H = glyphH
	row.Y += (rowSpacing - glyphH) / 2

	var out []Pip
	for _, count := range pattern {
		switch count {
		case 1:
			out = append(out, Pip{Rect: row, FontSize: size})
		case 2:
			out = append(out,
				Pip{Rect: geom.LeftHalf(row), FontSize: size},
				Pip{Rect: geom.RightHalf(row), FontSize: size},
			)
		}
		row.Y += rowSpacing
	}
	return out
}

// Count returns the total number of pips for rank.
func Count(rank int) int {
	pattern, _ := Pattern(rank)
	n := 0
	for _, c := range pattern {
		if c == 1 || c == 2 {
			n += c
		}
	}
	return n
}
