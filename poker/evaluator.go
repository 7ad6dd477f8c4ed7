package poker

import (
	"errors"
	"fmt"

	ph "github.com/paulhankin/poker"
)

// ErrCardCount is returned when a hand has fewer than 5 or more than 7 cards.
var ErrCardCount = errors.New("hand must have 5 to 7 cards")

// HandRank is the strength of the best five-card hand. Higher scores win.
type HandRank struct {
	Score       int
	Category    Category
	Description string
}

// Compare returns 1 if r beats o, -1 if o beats r and 0 for a tie.
func (r HandRank) Compare(o HandRank) int {
	switch {
	case r.Score > o.Score:
		return 1
	case r.Score < o.Score:
		return -1
	default:
		return 0
	}
}

func (r HandRank) String() string {
	if r.Description != "" {
		return r.Description
	}
	return r.Category.String()
}

// Evaluator ranks hands and picks winners among ranks.
type Evaluator interface {
	// Evaluate ranks the best five-card hand found in 5 to 7 cards.
	Evaluate(cards []Card) (HandRank, error)
	// BestOf returns the indexes of every rank tied for the maximum.
	BestOf(ranks []HandRank) []int
}

// StandardEvaluator ranks hands with github.com/paulhankin/poker.
type StandardEvaluator struct{}

// NewEvaluator returns the default Evaluator.
func NewEvaluator() *StandardEvaluator {
	return &StandardEvaluator{}
}

// Evaluate implements Evaluator.
func (StandardEvaluator) Evaluate(cards []Card) (HandRank, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return HandRank{}, fmt.Errorf("evaluate %d cards: %w", len(cards), ErrCardCount)
	}

	var seen [NumCards]bool
	converted := make([]ph.Card, len(cards))
	for i, c := range cards {
		if !c.Valid() {
			return HandRank{}, fmt.Errorf("invalid card %d", c)
		}
		if seen[c] {
			return HandRank{}, fmt.Errorf("duplicate card %s", c)
		}
		seen[c] = true

		pc, err := toEvalCard(c)
		if err != nil {
			return HandRank{}, err
		}
		converted[i] = pc
	}

	var score int16
	described := converted
	switch len(converted) {
	case 7:
		var hand [7]ph.Card
		copy(hand[:], converted)
		score = ph.Eval7(&hand)
	case 5:
		var hand [5]ph.Card
		copy(hand[:], converted)
		score = ph.Eval5(&hand)
	default:
		var best [5]ph.Card
		score, best = bestFive(converted)
		described = best[:]
	}

	category := Classify(cards)
	desc, err := ph.Describe(described)
	if err != nil {
		desc = category.String()
	}

	return HandRank{
		Score:       int(score),
		Category:    category,
		Description: desc,
	}, nil
}

// BestOf implements Evaluator.
func (StandardEvaluator) BestOf(ranks []HandRank) []int {
	return BestOf(ranks)
}

// BestOf returns the indexes of all ranks sharing the highest score.
func BestOf(ranks []HandRank) []int {
	var best []int
	for i, r := range ranks {
		if len(best) == 0 {
			best = []int{i}
			continue
		}
		switch r.Compare(ranks[best[0]]) {
		case 1:
			best = []int{i}
		case 0:
			best = append(best, i)
		}
	}
	return best
}

// bestFive scores every five-card subset of six cards.
func bestFive(cards []ph.Card) (int16, [5]ph.Card) {
	var (
		best      [5]ph.Card
		bestScore int16 = -1
	)
	for skip := range cards {
		var hand [5]ph.Card
		n := 0
		for i, c := range cards {
			if i == skip {
				continue
			}
			hand[n] = c
			n++
		}
		if s := ph.Eval5(&hand); s > bestScore {
			bestScore = s
			best = hand
		}
	}
	return bestScore, best
}

func toEvalCard(c Card) (ph.Card, error) {
	rank := ph.Rank(c.Rank().Value())
	if c.Rank() == Ace {
		rank = 1
	}

	var suit ph.Suit
	switch c.Suit() {
	case Clubs:
		suit = ph.Club
	case Diamonds:
		suit = ph.Diamond
	case Hearts:
		suit = ph.Heart
	case Spades:
		suit = ph.Spade
	}

	pc, err := ph.MakeCard(suit, rank)
	if err != nil {
		return pc, fmt.Errorf("convert card %s: %w", c, err)
	}
	return pc, nil
}
