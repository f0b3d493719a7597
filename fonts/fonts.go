// Package fonts measures card text with gg's text package.
//
// A [Font] wraps a gg [text.FontSource] and implements cardface.Measurer.
// Multi-line strings are measured line by line: the widest line sets the
// width and every line adds one line height.
//
// Glyph coverage is checked against the font's cmap with go-text/typesetting
// so callers can detect fonts that lack suit symbols before drawing.
package fonts

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrEmptyFont is returned when font data is empty.
var ErrEmptyFont = errors.New("fonts: empty font data")

// MissingGlyphError is returned by Font.Require when a rune has no glyph.
type MissingGlyphError struct {
	Font string
	Rune rune
}

func (e *MissingGlyphError) Error() string {
	return fmt.Sprintf("fonts: %s has no glyph for %U %q", e.Font, e.Rune, e.Rune)
}

// Option configures a Font.
type Option func(*Font)

// WithTextScale multiplies every requested font size by scale, the way a
// platform applies a user's preferred text size. Non-positive values are
// ignored.
func WithTextScale(scale float64) Option {
	return func(f *Font) {
		if scale > 0 {
			f.scale = scale
		}
	}
}

// Font measures and supplies faces for one font file. It is not safe for
// concurrent use.
type Font struct {
	source *text.FontSource
	cmap   *font.Face
	scale  float64
}

// New parses TTF or OTF data.
func New(data []byte, opts ...Option) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFont
	}
	source, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse: %w", err)
	}
	cmap, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fonts: read cmap: %w", err)
	}
	f := &Font{source: source, cmap: cmap, scale: 1}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Load reads a font file.
func Load(path string, opts ...Option) (*Font, error) {
	// #nosec G304 -- font path comes from the user's configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fonts: read %s: %w", path, err)
	}
	return New(data, opts...)
}

// Default returns the Go Regular font, which covers the four suit symbols.
func Default(opts ...Option) (*Font, error) {
	return New(goregular.TTF, opts...)
}

// Name returns the font's name.
func (f *Font) Name() string {
	return f.source.Name()
}

// Source returns the underlying gg font source.
func (f *Font) Source() *text.FontSource {
	return f.source
}

// TextScale returns the factor applied to requested sizes.
func (f *Font) TextScale() float64 {
	return f.scale
}

// Face returns a gg face for a requested size, after text scaling.
func (f *Font) Face(size float64) text.Face {
	return f.source.Face(size * f.scale)
}

// LineHeight returns the height of one line at size.
func (f *Font) LineHeight(size float64) float64 {
	if size <= 0 {
		return 0
	}
	return f.Face(size).Metrics().LineHeight()
}

// Measure implements cardface.Measurer.
func (f *Font) Measure(s string, size float64) (w, h float64) {
	if s == "" || size <= 0 {
		return 0, 0
	}
	face := f.Face(size)
	lineH := face.Metrics().LineHeight()
	for _, line := range strings.Split(s, "\n") {
		lw, _ := text.Measure(line, face)
		w = max(w, lw)
		h += lineH
	}
	return w, h
}

// Covers reports whether the font has a glyph for every visible rune of s.
// Whitespace and variation selectors are ignored.
func (f *Font) Covers(s string) bool {
	return f.Require(s) == nil
}

// Require returns a *MissingGlyphError for the first visible rune of s the
// font cannot draw.
func (f *Font) Require(s string) error {
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.Is(unicode.Variation_Selector, r) {
			continue
		}
		if _, ok := f.cmap.NominalGlyph(r); !ok {
			return &MissingGlyphError{Font: f.Name(), Rune: r}
		}
	}
	return nil
}
