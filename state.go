package cardface

import (
	"strconv"
	"strings"

	"github.com/gogpu/cardface/geom"
)

// Suit is the glyph printed for a card's suit. Any string is accepted so
// callers can use emoji presentation forms such as "♥️".
type Suit string

// The four standard suits.
const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Suits lists the standard suits in deck order.
var Suits = [...]Suit{Spades, Hearts, Diamonds, Clubs}

// IsRed reports whether the suit is printed in red ink. Emoji variants of
// hearts and diamonds count as red.
func (s Suit) IsRed() bool {
	return strings.HasPrefix(string(s), string(Hearts)) ||
		strings.HasPrefix(string(s), string(Diamonds))
}

// Rank bounds.
const (
	MinRank = 1
	MaxRank = 13
)

// FallbackRank is displayed for ranks outside MinRank..MaxRank.
const FallbackRank = "?"

// RankString returns the corner text for rank: "A", "2".."10", "J", "Q",
// "K", or FallbackRank.
func RankString(rank int) string {
	switch {
	case rank == 1:
		return "A"
	case rank >= 2 && rank <= 10:
		return strconv.Itoa(rank)
	case rank == 11:
		return "J"
	case rank == 12:
		return "Q"
	case rank == 13:
		return "K"
	default:
		return FallbackRank
	}
}

// Card is a rank and suit pair handed over by a Dealer.
type Card struct {
	Rank int
	Suit Suit
}

// String returns the card as its face-art key, e.g. "10♠".
func (c Card) String() string {
	return FaceArtKey(c.Rank, c.Suit)
}

// Dealer hands out cards without replacement. Draw returns false once the
// stock is exhausted.
type Dealer interface {
	Draw() (Card, bool)
}

// State is everything one render pass reads.
type State struct {
	Rank      int
	Suit      Suit
	FaceUp    bool
	FaceScale float64
	Bounds    geom.Rect
}

// DefaultState returns the queen of hearts face up at the default face-art
// scale with empty bounds.
func DefaultState() State {
	return State{
		Rank:      12,
		Suit:      Hearts,
		FaceUp:    true,
		FaceScale: DefaultRatios().FaceArtSizeToBoundsSize,
	}
}

// Card returns the rank and suit of s.
func (s State) Card() Card {
	return Card{Rank: s.Rank, Suit: s.Suit}
}

// BackArtKey is the image key looked up for face-down cards.
const BackArtKey = "cardback"

// FaceArtKey returns the image key for a card's face art.
func FaceArtKey(rank int, suit Suit) string {
	return RankString(rank) + string(suit)
}
