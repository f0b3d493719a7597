// Package ggsurface draws card display lists with the gg 2D library.
//
// A Surface wraps a *gg.Context and a fonts.Font:
//
//	dc := gg.NewContext(250, 350)
//	s := ggsurface.New(dc, font)
//	view.Flush(s)
//	_ = dc.SavePNG("card.png")
//
// Text whose transform is a pure translation is drawn straight onto the
// context. Any other transform (the mirrored lower-right corner label) is
// rasterised into an offscreen label, resampled with x/image/draw and
// composited at its transformed bounds.
package ggsurface

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/cardface"
	"github.com/gogpu/cardface/fonts"
	"github.com/gogpu/cardface/geom"
)

// Surface implements cardface.Surface on a gg context. It is not safe for
// concurrent use.
type Surface struct {
	dc   *gg.Context
	font *fonts.Font
}

var _ cardface.Surface = (*Surface)(nil)

// New returns a surface drawing onto dc with font.
func New(dc *gg.Context, font *fonts.Font) *Surface {
	return &Surface{dc: dc, font: font}
}

// Context returns the wrapped gg context.
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// Measurer returns the font used for text, which also measures it.
func (s *Surface) Measurer() cardface.Measurer {
	return s.font
}

// FillRoundedRect implements cardface.Surface.
func (s *Surface) FillRoundedRect(r geom.Rect, radius float64, c color.Color) {
	if r.Empty() {
		return
	}
	s.dc.SetColor(c)
	s.dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, radius)
	if err := s.dc.Fill(); err != nil {
		cardface.Logger().Warn("fill rounded rect", "rect", r, "error", err)
	}
}

// DrawImage implements cardface.Surface.
func (s *Surface) DrawImage(img image.Image, r geom.Rect) {
	if img == nil || r.Empty() {
		return
	}
	s.dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:             r.X,
		Y:             r.Y,
		DstWidth:      r.W,
		DstHeight:     r.H,
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
	})
}

// DrawText implements cardface.Surface.
func (s *Surface) DrawText(str string, size float64, box geom.Size, transform gg.Matrix, c color.Color) {
	if s.font == nil || str == "" || size <= 0 || box.W <= 0 || box.H <= 0 {
		return
	}
	if transform.IsTranslation() {
		s.dc.SetColor(c)
		s.dc.SetFont(s.font.Face(size))
		s.eachLine(str, size, box, func(line string, x, y float64) {
			s.dc.DrawString(line, transform.C+x, transform.F+y)
		})
		return
	}
	s.drawTransformed(str, size, box, transform, c)
}

// eachLine calls fn with every line of str and its baseline origin inside
// box. Lines are centred horizontally and the block is centred vertically.
func (s *Surface) eachLine(str string, size float64, box geom.Size, fn func(line string, x, y float64)) {
	face := s.font.Face(size)
	m := face.Metrics()
	lineH := m.LineHeight()
	lines := strings.Split(str, "\n")
	top := (box.H - lineH*float64(len(lines))) / 2
	for i, line := range lines {
		w, _ := text.Measure(line, face)
		fn(line, (box.W-w)/2, top+float64(i)*lineH+m.Ascent)
	}
}

func (s *Surface) drawTransformed(str string, size float64, box geom.Size, transform gg.Matrix, c color.Color) {
	lw, lh := int(math.Ceil(box.W)), int(math.Ceil(box.H))
	label := image.NewRGBA(image.Rect(0, 0, lw, lh))
	face := s.font.Face(size)
	s.eachLine(str, size, box, func(line string, x, y float64) {
		text.Draw(label, line, face, x, y, c)
	})

	bounds := transformedBounds(transform, box)
	if bounds.Empty() {
		return
	}
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	// Shift the transform so the bounds' top-left lands on dst's origin.
	s2d := f64.Aff3{
		transform.A, transform.B, transform.C - float64(bounds.Min.X),
		transform.D, transform.E, transform.F - float64(bounds.Min.Y),
	}
	xdraw.BiLinear.Transform(dst, s2d, label, label.Bounds(), xdraw.Over, nil)

	s.dc.DrawImageEx(gg.ImageBufFromImage(dst), gg.DrawImageOptions{
		X:       float64(bounds.Min.X),
		Y:       float64(bounds.Min.Y),
		Opacity: 1,
	})
}

// transformedBounds returns the integer bounding box of the local box
// [0,w]x[0,h] after transform.
func transformedBounds(m gg.Matrix, box geom.Size) image.Rectangle {
	corners := [4]gg.Point{
		m.TransformPoint(gg.Pt(0, 0)),
		m.TransformPoint(gg.Pt(box.W, 0)),
		m.TransformPoint(gg.Pt(0, box.H)),
		m.TransformPoint(gg.Pt(box.W, box.H)),
	}
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, p := range corners[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}
