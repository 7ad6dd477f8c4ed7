package poker

import (
	"fmt"
	"strings"
)

// Suit is one of the four card suits.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the suit glyph.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Letter returns the single-letter suit code used in card strings.
func (s Suit) Letter() byte {
	if s > Spades {
		return '?'
	}
	return "cdhs"[s]
}

// Rank is a card rank, Two (0) through Ace (12).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

// String returns the rank character (2-9, T, J, Q, K, A).
func (r Rank) String() string {
	if r > Ace {
		return "?"
	}
	return string(rankChars[r])
}

// Value returns the conventional 2-14 value of the rank.
func (r Rank) Value() int {
	return int(r) + 2
}

// Card is an immutable playing card packed as suit*13 + rank.
type Card uint8

// NumCards is the number of distinct cards in a deck.
const NumCards = 52

// NewCard creates a card from rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card(uint8(suit)*13 + uint8(rank))
}

// Rank returns the rank of the card.
func (c Card) Rank() Rank {
	return Rank(uint8(c) % 13)
}

// Suit returns the suit of the card.
func (c Card) Suit() Suit {
	return Suit(uint8(c) / 13)
}

// Valid reports whether c is one of the 52 cards.
func (c Card) Valid() bool {
	return uint8(c) < NumCards
}

// IsRed returns true for hearts and diamonds.
func (c Card) IsRed() bool {
	s := c.Suit()
	return s == Hearts || s == Diamonds
}

// String returns the two-character form, e.g. "As" or "Td".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + string(c.Suit().Letter())
}

// Glyph returns the card with its suit symbol, e.g. "A♠".
func (c Card) Glyph() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().String()
}

// ParseCard parses a card such as "As", "th", "10c" or "K♦".
func ParseCard(s string) (Card, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) == 3 && runes[0] == '1' && runes[1] == '0' {
		runes = []rune{'T', runes[2]}
	}
	if len(runes) != 2 {
		return 0, fmt.Errorf("invalid card string: %q", s)
	}

	idx := strings.IndexRune(rankChars, toUpper(runes[0]))
	if idx < 0 {
		return 0, fmt.Errorf("invalid rank: %c", runes[0])
	}

	var suit Suit
	switch runes[1] {
	case 'c', 'C', '♣':
		suit = Clubs
	case 'd', 'D', '♦':
		suit = Diamonds
	case 'h', 'H', '♥':
		suit = Hearts
	case 's', 'S', '♠':
		suit = Spades
	default:
		return 0, fmt.Errorf("invalid suit: %c", runes[1])
	}

	return NewCard(Rank(idx), suit), nil
}

// ParseCards parses a whitespace separated list of cards ("As Kd 7c").
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is ParseCards for fixed inputs; it panics on error.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards joins cards with spaces using their two-character form.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
