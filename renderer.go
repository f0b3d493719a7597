package cardface

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/cardface/geom"
	"github.com/gogpu/cardface/internal/corner"
	"github.com/gogpu/cardface/internal/pips"
)

// BodyKind says what fills the card between the corner labels.
type BodyKind uint8

const (
	BodyNone BodyKind = iota // face down without back art: background only
	BodyBack                 // back art filling the bounds
	BodyArt                  // face art zoomed by the face scale
	BodyPips                 // procedural pip grid
)

var bodyKindNames = [...]string{
	BodyNone: "none",
	BodyBack: "back",
	BodyArt:  "art",
	BodyPips: "pips",
}

// String returns the string representation of a BodyKind.
func (k BodyKind) String() string {
	if int(k) < len(bodyKindNames) {
		return bodyKindNames[k]
	}
	return "unknown"
}

// CornerLabel is a corner label laid out for one pass.
type CornerLabel = corner.Label

// Pip is one placed suit glyph.
type Pip = pips.Pip

// Frame is the complete layout of one render pass. It is derived from a
// State and discarded after drawing.
type Frame struct {
	Bounds     geom.Rect
	Radius     float64
	Background color.Color
	Ink        color.Color

	// Corners holds the upper-left and the mirrored lower-right label.
	Corners [2]CornerLabel

	Body BodyKind

	// Art and ArtRect are set for BodyArt and BodyBack.
	Art     image.Image
	ArtRect geom.Rect

	// Playable, PipGlyph and Pips are set for BodyPips.
	Playable geom.Rect
	PipGlyph string
	Pips     []Pip
}

// Draw issues the frame's draw calls: background, body, then the visible
// corner labels.
func (f *Frame) Draw(s Surface) {
	s.FillRoundedRect(f.Bounds, f.Radius, f.Background)

	switch f.Body {
	case BodyArt, BodyBack:
		s.DrawImage(f.Art, f.ArtRect)
	case BodyPips:
		for _, p := range f.Pips {
			s.DrawText(f.PipGlyph, p.FontSize, p.Rect.Size(), gg.Translate(p.Rect.X, p.Rect.Y), f.Ink)
		}
	}

	for _, l := range f.Corners {
		if l.Hidden {
			continue
		}
		s.DrawText(l.Text, l.FontSize, l.Size, l.Transform, f.Ink)
	}
}

// Renderer lays out and draws card faces. A Renderer holds no per-card
// state; every call recomputes the layout from the State it is given.
//
// Renderer is not safe for concurrent use when its collaborators are not.
type Renderer struct {
	measurer Measurer
	art      ImageLookup
	opts     options
}

// NewRenderer creates a Renderer. A nil art lookup behaves as if no image
// exists for any key.
func NewRenderer(m Measurer, art ImageLookup, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if art == nil {
		art = noArt
	}
	return &Renderer{measurer: m, art: art, opts: o}
}

// Ratios returns the proportions the renderer lays cards out with.
func (r *Renderer) Ratios() SizeRatios {
	return r.opts.ratios
}

// Layout computes the frame for st without drawing anything.
func (r *Renderer) Layout(st State) Frame {
	b := st.Bounds
	ratios := r.opts.ratios

	f := Frame{
		Bounds:     b,
		Radius:     ratios.CornerRadius(b),
		Background: r.opts.background,
		Ink:        r.ink(st.Suit),
	}

	metrics := corner.Metrics{
		FontSize: ratios.CornerFontSize(b),
		Offset:   ratios.CornerOffset(b),
	}
	text := corner.Text(RankString(st.Rank), string(st.Suit))
	f.Corners[0], f.Corners[1] = corner.Compose(r.measurer, metrics, b, text, st.FaceUp)

	if !st.FaceUp {
		if img, ok := r.art.LookupImage(r.opts.backKey); ok && img != nil {
			f.Body = BodyBack
			f.Art = img
			f.ArtRect = b
		}
	} else if !r.layoutArt(&f, st) {
		cornerSize := f.Corners[0].Size
		f.Body = BodyPips
		f.Playable = geom.Inset(geom.Inset(b, metrics.Offset, metrics.Offset), cornerSize.W, cornerSize.H/2)
		f.PipGlyph = string(st.Suit)
		f.Pips = pips.Layout(r.measurer, st.Rank, f.PipGlyph, f.Playable)
	}

	Logger().Debug("card laid out",
		"card", FaceArtKey(st.Rank, st.Suit),
		"faceUp", st.FaceUp,
		"body", f.Body.String(),
		"pips", len(f.Pips))
	return f
}

// layoutArt fills in face art for st if the lookup has it.
func (r *Renderer) layoutArt(f *Frame, st State) bool {
	if st.Rank < MinRank || st.Rank > MaxRank {
		return false
	}
	img, ok := r.art.LookupImage(FaceArtKey(st.Rank, st.Suit))
	if !ok || img == nil {
		return false
	}
	scale := st.FaceScale
	if !validScale(scale) {
		scale = r.opts.ratios.FaceArtSizeToBoundsSize
	}
	f.Body = BodyArt
	f.Art = img
	f.ArtRect = geom.Zoom(st.Bounds, scale)
	return true
}

// Render lays out st and records its draw calls into a new DisplayList.
func (r *Renderer) Render(st State) *DisplayList {
	d := &DisplayList{}
	r.RenderTo(d, st)
	return d
}

// RenderTo lays out st and draws it directly onto s.
func (r *Renderer) RenderTo(s Surface, st State) {
	f := r.Layout(st)
	f.Draw(s)
}

func (r *Renderer) ink(s Suit) color.Color {
	if s.IsRed() {
		return r.opts.redInk
	}
	return r.opts.blackInk
}

func validScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}
