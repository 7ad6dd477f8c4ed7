package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/tablestakes/internal/game"
	"github.com/lox/tablestakes/poker"
)

// Strength thresholds for the heuristic.
const (
	raiseThreshold = 0.7
	callThreshold  = 0.5
)

// Heuristic bets on made hands. It is a simple stand-in strategy: strong
// hands raise by a fixed unit when nothing is owed, reasonable hands call
// bets that cost less than half the stack, and the rest check or fold.
type Heuristic struct {
	logger        *log.Logger
	evaluator     poker.Evaluator
	raiseBy       int
	minRaiseStack int
}

// NewHeuristic creates a Heuristic. A nil evaluator uses poker.NewEvaluator.
func NewHeuristic(logger *log.Logger, evaluator poker.Evaluator, raiseBy, minRaiseStack int) *Heuristic {
	if evaluator == nil {
		evaluator = poker.NewEvaluator()
	}
	return &Heuristic{
		logger:        logger.WithPrefix("bot"),
		evaluator:     evaluator,
		raiseBy:       raiseBy,
		minRaiseStack: minRaiseStack,
	}
}

// Decide implements game.DecisionPolicy.
func (h *Heuristic) Decide(v game.View) game.Decision {
	thinking := &ThinkingContext{}
	strength := h.strength(v, thinking)
	toCall := v.ToCall()
	stack := v.Self.Stack

	var d game.Decision
	switch {
	case toCall == 0 && strength > raiseThreshold && stack > h.minRaiseStack:
		thinking.AddThought("strong enough to bet %d", h.raiseBy)
		d = game.Decision{Action: game.Raise, RaiseBy: h.raiseBy}
	case toCall == 0:
		thinking.AddThought("nothing to call, checking")
		d = game.Decision{Action: game.Check}
	case strength > callThreshold && 2*toCall < stack:
		thinking.AddThought("%d to call is affordable", toCall)
		d = game.Decision{Action: game.Call}
	default:
		thinking.AddThought("not worth %d of %d", toCall, stack)
		d = game.Decision{Action: game.Fold}
	}
	d.Reasoning = thinking.GetThoughts()

	h.logger.Debug("Bot decision",
		"player", v.Self.Name,
		"round", v.Round,
		"holeCards", poker.FormatCards(v.Self.HoleCards),
		"strength", strength,
		"toCall", toCall,
		"stack", stack,
		"decision", d.Action,
		"raiseBy", d.RaiseBy)
	return d
}

func (h *Heuristic) strength(v game.View, thinking *ThinkingContext) float64 {
	cards := make([]poker.Card, 0, len(v.Self.HoleCards)+len(v.Board))
	cards = append(cards, v.Self.HoleCards...)
	cards = append(cards, v.Board...)

	if len(cards) >= 5 {
		rank, err := h.evaluator.Evaluate(cards)
		if err == nil {
			s := Strength(rank.Category)
			thinking.AddThought("I have %s (strength %.2f)", rank.Category, s)
			return s
		}
		h.logger.Warn("Evaluation failed, judging hole cards only", "error", err)
	}

	s := HoleStrength(v.Self.HoleCards)
	thinking.AddThought("hole cards %s (strength %.2f)", poker.FormatCards(v.Self.HoleCards), s)
	return s
}

// Strength maps a hand category to a score in [0, 1].
func Strength(c poker.Category) float64 {
	switch c {
	case poker.Pair, poker.TwoPair:
		return 0.7
	case poker.ThreeOfAKind, poker.Straight, poker.Flush:
		return 0.85
	case poker.FullHouse, poker.FourOfAKind, poker.StraightFlush:
		return 0.95
	default:
		return 0.5
	}
}

// HoleStrength scores two hole cards before the flop.
func HoleStrength(hole []poker.Card) float64 {
	if len(hole) == 2 && hole[0].Rank() == hole[1].Rank() {
		return 0.7
	}
	return 0.5
}
