package cardface

import "github.com/gogpu/cardface/geom"

// View owns the state of one displayed card and tracks whether it needs to
// be drawn again.
//
// Every mutation returns true when it changed what must be drawn; the caller
// decides when to Flush. View is meant to be driven from a single input
// loop and is not safe for concurrent use.
type View struct {
	renderer *Renderer
	state    State
	dirty    bool
	list     DisplayList
}

// NewView creates a view showing the default card inside bounds. The view
// starts dirty so the first Flush draws it.
func NewView(r *Renderer, bounds geom.Rect) *View {
	st := DefaultState()
	st.Bounds = bounds
	st.FaceScale = r.Ratios().FaceArtSizeToBoundsSize
	return &View{renderer: r, state: st, dirty: true}
}

// State returns a copy of the current state.
func (v *View) State() State {
	return v.state
}

// NeedsRender reports whether a mutation happened since the last Flush.
func (v *View) NeedsRender() bool {
	return v.dirty
}

func (v *View) invalidate() bool {
	v.dirty = true
	return true
}

// SetCard replaces the displayed card.
func (v *View) SetCard(rank int, suit Suit) bool {
	v.state.Rank = rank
	v.state.Suit = suit
	return v.invalidate()
}

// NextCard draws the next card from d. An exhausted dealer leaves the
// current card on display and returns false.
func (v *View) NextCard(d Dealer) bool {
	if d == nil {
		return false
	}
	c, ok := d.Draw()
	if !ok {
		Logger().Debug("dealer exhausted, keeping card", "card", v.state.Card().String())
		return false
	}
	return v.SetCard(c.Rank, c.Suit)
}

// SetFaceUp shows the face (true) or the back (false).
func (v *View) SetFaceUp(up bool) bool {
	v.state.FaceUp = up
	return v.invalidate()
}

// ToggleFaceUp flips the card over.
func (v *View) ToggleFaceUp() bool {
	return v.SetFaceUp(!v.state.FaceUp)
}

// SetFaceScale replaces the face-art zoom factor. Non-positive or
// non-finite values are ignored.
func (v *View) SetFaceScale(scale float64) bool {
	if !validScale(scale) {
		return false
	}
	v.state.FaceScale = scale
	return v.invalidate()
}

// AdjustFaceScale multiplies the face-art zoom factor by multiplier, as a
// pinch gesture does once per update. Non-positive or non-finite
// multipliers are ignored.
func (v *View) AdjustFaceScale(multiplier float64) bool {
	if !validScale(multiplier) {
		return false
	}
	return v.SetFaceScale(v.state.FaceScale * multiplier)
}

// Resize moves the card to new bounds.
func (v *View) Resize(bounds geom.Rect) bool {
	v.state.Bounds = bounds
	return v.invalidate()
}

// InvalidateAppearance forces a redraw without changing state, for example
// after the text measurer's scaling changed.
func (v *View) InvalidateAppearance() bool {
	return v.invalidate()
}

// Flush redraws the card onto s if a mutation is pending and reports
// whether it drew. The full card is drawn every time.
func (v *View) Flush(s Surface) bool {
	if !v.dirty {
		return false
	}
	v.list.Reset()
	v.renderer.RenderTo(&v.list, v.state)
	if s != nil {
		v.list.Replay(s)
	}
	v.dirty = false
	return true
}

// LastDisplayList returns the commands issued by the most recent Flush.
// The list is reused by the next Flush.
func (v *View) LastDisplayList() *DisplayList {
	return &v.list
}
