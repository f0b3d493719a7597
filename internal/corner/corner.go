// Package corner builds the two rank-and-suit labels printed in opposite
// corners of a card.
package corner

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/cardface/geom"
	"github.com/gogpu/cardface/internal/fontfit"
)

// Metrics are the bounds-derived sizes a label depends on.
type Metrics struct {
	FontSize float64
	Offset   float64
}

// Label is one corner label for a single render pass.
//
// The text is laid out in label-local coordinates, a box of Size with its
// top-left corner at (0, 0). Transform maps label-local coordinates onto the
// surface.
type Label struct {
	Text      string
	FontSize  float64
	Size      geom.Size
	Origin    gg.Point
	Transform gg.Matrix
	Hidden    bool
}

// Frame returns the surface rectangle the label covers.
func (l Label) Frame() geom.Rect {
	return geom.Rect{X: l.Origin.X, Y: l.Origin.Y, W: l.Size.W, H: l.Size.H}
}

// Text returns the label text for a rank string and suit glyph.
func Text(rank, suit string) string {
	return rank + "\n" + suit
}

// Compose measures text at m.FontSize and places the upper-left label and
// its mirrored lower-right twin inside bounds. Both are hidden when faceUp
// is false.
func Compose(m fontfit.Measurer, metrics Metrics, bounds geom.Rect, text string, faceUp bool) (upperLeft, lowerRight Label) {
	var size geom.Size
	if m != nil {
		size.W, size.H = m.Measure(text, metrics.FontSize)
	}

	upperLeft = Label{
		Text:     text,
		FontSize: metrics.FontSize,
		Size:     size,
		Origin:   geom.Offset(bounds.Origin(), metrics.Offset, metrics.Offset),
		Hidden:   !faceUp,
	}
	upperLeft.Transform = gg.Translate(upperLeft.Origin.X, upperLeft.Origin.Y)

	lowerRight = upperLeft
	lowerRight.Origin = geom.Offset(
		geom.Offset(gg.Pt(bounds.MaxX(), bounds.MaxY()), -metrics.Offset, -metrics.Offset),
		-size.W, -size.H,
	)
	lowerRight.Transform = gg.Translate(lowerRight.Origin.X, lowerRight.Origin.Y).
		Multiply(Mirror(size))
	return upperLeft, lowerRight
}

// Mirror returns the label-local transform that turns a label of size s
// upside down in place: a translation by (W, H) followed by a half turn.
func Mirror(s geom.Size) gg.Matrix {
	return gg.Translate(s.W, s.H).Multiply(gg.Rotate(math.Pi))
}
