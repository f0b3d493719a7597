package cardface

import "github.com/gogpu/cardface/geom"

// SizeRatios express card metrics as fractions of the bounds so the layout
// scales uniformly with the surface.
type SizeRatios struct {
	CornerFontSizeToBoundsHeight float64
	CornerRadiusToBoundsHeight   float64
	CornerOffsetToCornerRadius   float64
	FaceArtSizeToBoundsSize      float64
}

// DefaultRatios returns the standard card proportions.
func DefaultRatios() SizeRatios {
	return SizeRatios{
		CornerFontSizeToBoundsHeight: 0.085,
		CornerRadiusToBoundsHeight:   0.06,
		CornerOffsetToCornerRadius:   0.33,
		FaceArtSizeToBoundsSize:      0.75,
	}
}

// CornerRadius returns the radius of the card's rounded border.
func (s SizeRatios) CornerRadius(bounds geom.Rect) float64 {
	return bounds.H * s.CornerRadiusToBoundsHeight
}

// CornerOffset returns the inward offset of the corner labels.
func (s SizeRatios) CornerOffset(bounds geom.Rect) float64 {
	return s.CornerRadius(bounds) * s.CornerOffsetToCornerRadius
}

// CornerFontSize returns the font size of the corner labels.
func (s SizeRatios) CornerFontSize(bounds geom.Rect) float64 {
	return bounds.H * s.CornerFontSizeToBoundsHeight
}
