package poker

import (
	"fmt"
	"math/rand/v2"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Deck is a standard 52-card deck dealt from the top.
type Deck struct {
	cards [DeckSize]Card // Fixed size array
	next  int
	rng   *rand.Rand
}

// NewDeck creates a shuffled deck drawing randomness from rng.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}

	i := 0
	for suit := range Suit(NumSuits) {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	d.Shuffle()
	return d
}

// Shuffle applies Fisher-Yates over the whole deck and rewinds the deal position.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Reset reshuffles all 52 cards and returns the new order. The returned slice
// is a copy; dealing does not mutate it.
func (d *Deck) Reset() []Card {
	d.Shuffle()
	out := make([]Card, DeckSize)
	copy(out, d.cards[:])
	return out
}

// Deal removes n cards from the top of the deck. The result aliases the
// deck's storage and is only valid until the next Reset.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 || d.next+n > len(d.cards) {
		return nil, fmt.Errorf("deal %d cards: %d remaining", n, d.Remaining())
	}
	cards := d.cards[d.next : d.next+n : d.next+n]
	d.next += n
	return cards, nil
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
