// Package deck provides a standard 52-card deck that deals without
// replacement.
package deck

import (
	"math/rand/v2"

	"github.com/gogpu/cardface"
)

// Size is the number of cards in a full deck.
const Size = 52

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
}

type stdRNG struct{}

func (stdRNG) IntN(n int) int { return rand.IntN(n) }

// Deck is the remaining stock of a deck. It is not safe for concurrent use.
type Deck struct {
	cards []cardface.Card
	rng   RNG
}

// New returns a full deck that draws with rng. A nil rng uses math/rand/v2.
func New(rng RNG) *Deck {
	if rng == nil {
		rng = stdRNG{}
	}
	return &Deck{cards: Standard(), rng: rng}
}

// Standard returns the 52 cards in suit-major order, ace to king.
func Standard() []cardface.Card {
	cards := make([]cardface.Card, 0, Size)
	for _, s := range cardface.Suits {
		for r := cardface.MinRank; r <= cardface.MaxRank; r++ {
			cards = append(cards, cardface.Card{Rank: r, Suit: s})
		}
	}
	return cards
}

// Draw removes and returns a random card. It returns false once the deck is
// empty.
func (d *Deck) Draw() (cardface.Card, bool) {
	if len(d.cards) == 0 {
		return cardface.Card{}, false
	}
	i := d.rng.IntN(len(d.cards))
	c := d.cards[i]
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	return c, true
}

// Remaining returns the number of cards left.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Reset returns every card to the deck.
func (d *Deck) Reset() {
	d.cards = Standard()
}
