package game

import (
	"errors"
	"fmt"

	"github.com/lox/tablestakes/poker"
)

// Award is the chips paid to one winning seat.
type Award struct {
	Seat   int
	Name   string
	Amount int
}

// ShownHand is a hand revealed and ranked at showdown.
type ShownHand struct {
	Seat  int
	Name  string
	Cards []poker.Card
	Rank  poker.HandRank
}

// Result describes how the pot was paid out.
type Result struct {
	Pot        int
	DefaultWin bool // everyone else folded, no cards were compared
	Winners    []int
	Awards     []Award
	Discarded  int // odd chips left over from an uneven split
	Shown      []ShownHand
}

func (r Result) clone() Result {
	c := r
	c.Winners = append([]int(nil), r.Winners...)
	c.Awards = append([]Award(nil), r.Awards...)
	c.Shown = make([]ShownHand, len(r.Shown))
	for i, s := range r.Shown {
		s.Cards = append([]poker.Card(nil), s.Cards...)
		c.Shown[i] = s
	}
	return c
}

// resolveShowdown ranks every seat still holding cards and splits the pot
// evenly among the best. Nothing is mutated until all hands are ranked.
func (h *Hand) resolveShowdown() (*Result, error) {
	res := &Result{Pot: h.pot}

	var contenders []*Participant
	for _, p := range h.players {
		if !p.Folded {
			contenders = append(contenders, p)
		}
	}

	switch len(contenders) {
	case 0:
		h.logger.Warn("No seats left at showdown", "pot", h.pot)
		res.Discarded = h.pot
		return res, nil
	case 1:
		res.DefaultWin = true
		h.award(res, contenders[0], h.pot)
		return res, nil
	}

	ranks := make([]poker.HandRank, len(contenders))
	for i, p := range contenders {
		cards := make([]poker.Card, 0, len(p.HoleCards)+len(h.board))
		cards = append(cards, p.HoleCards...)
		cards = append(cards, h.board...)

		rank, err := h.evaluator.Evaluate(cards)
		if err != nil {
			return nil, fmt.Errorf("evaluate seat %d: %w", p.Seat, err)
		}
		ranks[i] = rank
		res.Shown = append(res.Shown, ShownHand{
			Seat:  p.Seat,
			Name:  p.Name,
			Cards: append([]poker.Card(nil), p.HoleCards...),
			Rank:  rank,
		})
		h.logger.Debug("Hand shown", "seat", p.Seat, "cards", poker.FormatCards(p.HoleCards), "rank", rank)
	}

	best := h.evaluator.BestOf(ranks)
	if len(best) == 0 {
		return nil, errors.New("evaluator picked no winner")
	}
	for _, i := range best {
		if i < 0 || i >= len(contenders) {
			return nil, fmt.Errorf("evaluator picked winner index %d of %d", i, len(contenders))
		}
	}

	share := h.pot / len(best)
	for _, i := range best {
		h.award(res, contenders[i], share)
	}
	res.Discarded = h.pot - share*len(best)
	return res, nil
}

func (h *Hand) award(res *Result, p *Participant, amount int) {
	p.Stack += amount
	p.Won += amount
	res.Winners = append(res.Winners, p.Seat)
	res.Awards = append(res.Awards, Award{Seat: p.Seat, Name: p.Name, Amount: amount})
}
