package cardface

import "image/color"

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default proportions, black and red ink
//	r := cardface.NewRenderer(measurer, art)
//
//	// Larger corner text, custom card back
//	ratios := cardface.DefaultRatios()
//	ratios.CornerFontSizeToBoundsHeight = 0.1
//	r := cardface.NewRenderer(measurer, art,
//	    cardface.WithRatios(ratios),
//	    cardface.WithBackKey("back-blue"))
type Option func(*options)

type options struct {
	ratios     SizeRatios
	background color.Color
	blackInk   color.Color
	redInk     color.Color
	backKey    string
}

func defaultOptions() options {
	return options{
		ratios:     DefaultRatios(),
		background: color.White,
		blackInk:   color.Black,
		redInk:     DefaultInkRed(),
		backKey:    BackArtKey,
	}
}

// WithRatios overrides the card proportions.
func WithRatios(r SizeRatios) Option {
	return func(o *options) {
		o.ratios = r
	}
}

// WithBackground sets the fill colour of the rounded card background.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.background = c
		}
	}
}

// WithInk sets the text colours used for black suits and red suits.
// A nil colour keeps the default.
func WithInk(black, red color.Color) Option {
	return func(o *options) {
		if black != nil {
			o.blackInk = black
		}
		if red != nil {
			o.redInk = red
		}
	}
}

// WithBackKey sets the image key looked up for face-down cards.
func WithBackKey(key string) Option {
	return func(o *options) {
		o.backKey = key
	}
}

// DefaultInkRed returns the ink used for hearts and diamonds unless WithInk
// overrides it.
func DefaultInkRed() color.Color {
	return color.RGBA{R: 0xc8, G: 0x10, B: 0x2e, A: 0xff}
}
