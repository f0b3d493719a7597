// Package geom provides the rectangle and point helpers used to lay out a
// card face.
//
// Coordinates follow gg: origin at the top-left, X grows right, Y grows
// down. Points are [gg.Point] values so layout results can be handed to a
// gg.Context or a gg.Matrix without conversion.
package geom

import (
	"math"

	"github.com/gogpu/gg"
)

// Size is a width and height pair.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// FromSize returns a rectangle at the origin with the given size.
func FromSize(s Size) Rect {
	return Rect{W: s.W, H: s.H}
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.X }

// MidX returns the horizontal centre.
func (r Rect) MidX() float64 { return r.X + r.W/2 }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MidY returns the vertical centre.
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Origin returns the top-left corner.
func (r Rect) Origin() gg.Point { return gg.Pt(r.X, r.Y) }

// Center returns the centre point.
func (r Rect) Center() gg.Point { return gg.Pt(r.MidX(), r.MidY()) }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// ToGG converts r to a gg.Rect (min/max form).
func (r Rect) ToGG() gg.Rect {
	return gg.Rect{Min: r.Origin(), Max: gg.Pt(r.MaxX(), r.MaxY())}
}

// FromGG converts a gg.Rect to a Rect.
func FromGG(r gg.Rect) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Width(), H: r.Height()}
}

// LeftHalf returns the left half of r. Both halves share r's full height.
func LeftHalf(r Rect) Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W / 2, H: r.H}
}

// RightHalf returns the right half of r, starting at r.MidX().
func RightHalf(r Rect) Rect {
	return Rect{X: r.MidX(), Y: r.Y, W: r.W / 2, H: r.H}
}

// Inset shrinks r by dx on the left and right and by dy on the top and
// bottom. Negative values grow the rectangle.
func Inset(r Rect, dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// InsetBySize is Inset with the amounts taken from s.
func InsetBySize(r Rect, s Size) Rect {
	return Inset(r, s.W, s.H)
}

// Sized returns a rectangle with r's origin and the size s.
func Sized(r Rect, s Size) Rect {
	return Rect{X: r.X, Y: r.Y, W: s.W, H: s.H}
}

// Zoom scales r about its own centre. The caller guarantees scale > 0.
func Zoom(r Rect, scale float64) Rect {
	w := r.W * scale
	h := r.H * scale
	return Inset(r, (r.W-w)/2, (r.H-h)/2)
}

// Offset translates p by (dx, dy).
func Offset(p gg.Point, dx, dy float64) gg.Point {
	return gg.Pt(p.X+dx, p.Y+dy)
}

// ApproxEqual reports whether a and b differ by at most eps in every field.
func ApproxEqual(a, b Rect, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.W-b.W) <= eps && math.Abs(a.H-b.H) <= eps
}

// Fit returns the largest rectangle with the aspect ratio of s that fits in
// r, centred in r. It returns an empty rectangle at r's centre when s or r
// is empty.
func Fit(s Size, r Rect) Rect {
	if s.W <= 0 || s.H <= 0 || r.Empty() {
		return Rect{X: r.MidX(), Y: r.MidY()}
	}
	k := min(r.W/s.W, r.H/s.H)
	w, h := s.W*k, s.H*k
	return Rect{X: r.MidX() - w/2, Y: r.MidY() - h/2, W: w, H: h}
}
