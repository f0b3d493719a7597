package cardface

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/gogpu/cardface/geom"
)

// Measurer reports the size of text rendered at a font size. Text may
// contain newlines; lines are stacked and the widest line sets the width.
// Results must be stable for the same input within a render pass.
type Measurer interface {
	Measure(text string, size float64) (w, h float64)
}

// ImageLookup finds card art by key. A missing image is reported with
// false, never an error.
type ImageLookup interface {
	LookupImage(key string) (image.Image, bool)
}

// ImageLookupFunc adapts a function to the ImageLookup interface.
type ImageLookupFunc func(key string) (image.Image, bool)

// LookupImage calls f(key).
func (f ImageLookupFunc) LookupImage(key string) (image.Image, bool) {
	return f(key)
}

// noArt is the lookup used when none is configured.
var noArt = ImageLookupFunc(func(string) (image.Image, bool) { return nil, false })

// Surface receives the draw calls of one render pass.
type Surface interface {
	// FillRoundedRect fills r with rounded corners of the given radius.
	FillRoundedRect(r geom.Rect, radius float64, c color.Color)

	// DrawText draws text centred line by line inside a box of the given
	// size whose top-left corner is at (0, 0) in local coordinates.
	// transform maps local coordinates onto the surface.
	DrawText(text string, size float64, box geom.Size, transform gg.Matrix, c color.Color)

	// DrawImage draws img scaled to fill r.
	DrawImage(img image.Image, r geom.Rect)
}
