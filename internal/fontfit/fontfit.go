// Package fontfit picks a font size for a glyph string so that it fills one
// cell of a grid.
//
// The fit is a two-measurement heuristic, not a search: one measurement
// corrects the height, a second one optionally corrects the width. Small
// overflow or underflow after the second step is accepted.
package fontfit

import (
	"math"

	"github.com/gogpu/cardface/geom"
)

// MinSize is returned whenever the inputs cannot produce a usable size.
const MinSize = 1.0

// Measurer reports the rendered size of text at a font size.
// It must return the same result for the same input during a pass.
type Measurer interface {
	Measure(text string, size float64) (w, h float64)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(text string, size float64) (w, h float64)

// Measure calls f(text, size).
func (f MeasurerFunc) Measure(text string, size float64) (w, h float64) {
	return f(text, size)
}

// Fit returns a font size at which text fits one cell of box divided into
// rows by cols cells, biased toward filling the cell's height.
func Fit(m Measurer, text string, box geom.Size, rows, cols int) float64 {
	if m == nil || rows <= 0 || cols <= 0 {
		return MinSize
	}
	rowSpacing := box.H / float64(rows)
	colSpacing := box.W / float64(cols)
	if !usable(rowSpacing) {
		return MinSize
	}

	_, h := m.Measure(text, rowSpacing)
	if !usable(h) {
		return MinSize
	}
	probably := rowSpacing / (h / rowSpacing)
	if !usable(probably) {
		return MinSize
	}

	w, _ := m.Measure(text, probably)
	if w > colSpacing && usable(w) {
		if !usable(colSpacing) {
			return MinSize
		}
		return clamp(probably / (w / colSpacing))
	}
	return probably
}

func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func clamp(v float64) float64 {
	if !usable(v) {
		return MinSize
	}
	return v
}
