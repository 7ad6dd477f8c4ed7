package poker

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrDeckExhausted is returned when a card is requested from an empty deck.
var ErrDeckExhausted = errors.New("deck exhausted")

// CardSource hands out cards one at a time.
type CardSource interface {
	DealOne() (Card, error)
	Remaining() int
}

// Deck is a sequence of unique cards dealt from the front.
type Deck struct {
	cards []Card
	next  int
}

// NewDeck creates a 52-card deck shuffled with the given RNG.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{cards: FullDeck()}
	d.Shuffle(rng)
	return d
}

// NewStackedDeck returns a deck that deals exactly the given cards in order.
// Used for deterministic hands in tests and replays.
func NewStackedDeck(cards ...Card) *Deck {
	c := make([]Card, len(cards))
	copy(c, cards)
	return &Deck{cards: c}
}

// FullDeck returns the 52 cards in suit-major order.
func FullDeck() []Card {
	cards := make([]Card, NumCards)
	for i := range cards {
		cards[i] = Card(i)
	}
	return cards
}

// Shuffle resets the deck and shuffles it using Fisher-Yates.
func (d *Deck) Shuffle(rng *rand.Rand) {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// DealOne deals a single card from the deck.
func (d *Deck) DealOne() (Card, error) {
	if d.next >= len(d.cards) {
		return 0, ErrDeckExhausted
	}
	c := d.cards[d.next]
	d.next++
	return c, nil
}

// Deal deals n cards. Nothing is dealt if fewer than n remain.
func (d *Deck) Deal(n int) ([]Card, error) {
	if d.next+n > len(d.cards) {
		return nil, fmt.Errorf("deal %d with %d remaining: %w", n, d.Remaining(), ErrDeckExhausted)
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// Remaining returns the number of cards left to deal.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Cards returns the undealt cards in dealing order.
func (d *Deck) Cards() []Card {
	out := make([]Card, d.Remaining())
	copy(out, d.cards[d.next:])
	return out
}
