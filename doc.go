// Package cardface lays out and draws the face of a playing card.
//
// # Overview
//
// Given a rank, a suit, a face-up flag, a face-art zoom factor and a
// bounding rectangle, a [Renderer] produces a rounded card background, two
// corner labels (the lower-right one turned upside down) and a body: face
// art when the [ImageLookup] has it, a procedurally placed grid of suit
// pips when it does not, or the card back when the card is face down.
//
// # Quick Start
//
//	src, _ := fonts.Default()
//	r := cardface.NewRenderer(src, assets.NewStore(os.DirFS("art")))
//
//	dc := gg.NewContext(250, 350)
//	r.RenderTo(ggsurface.New(dc, src), cardface.State{
//	    Rank:      5,
//	    Suit:      cardface.Spades,
//	    FaceUp:    true,
//	    FaceScale: 0.75,
//	    Bounds:    geom.R(0, 0, 250, 350),
//	})
//	dc.SavePNG("five.png")
//
// # Collaborators
//
// The package does not measure text, load images or rasterise anything
// itself. It talks to three small interfaces:
//   - [Measurer]: text size at a font size (see package fonts)
//   - [ImageLookup]: art by key (see package assets)
//   - [Surface]: draw calls (see package ggsurface, or [DisplayList])
//
// # Redraws
//
// A [View] holds the card being shown. Its mutation methods mark it dirty
// and return true; [View.Flush] performs a full redraw when dirty. Nothing
// but the face scale survives between passes: every pass recomputes the
// layout from the current [State].
//
// # Proportions
//
// All metrics derive from the bounds through [SizeRatios]: the border
// radius is 6% of the height, the corner label offset a third of that, the
// corner font 8.5% of the height.
package cardface
