package game

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"

	"github.com/lox/tablestakes/poker"
)

// countingEvaluator scores hands with a caller supplied function and counts
// how often it was asked.
type countingEvaluator struct {
	calls int
	score func(cards []poker.Card) int
	err   error
}

func (e *countingEvaluator) Evaluate(cards []poker.Card) (poker.HandRank, error) {
	e.calls++
	if e.err != nil {
		return poker.HandRank{}, e.err
	}
	return poker.HandRank{Score: e.score(cards)}, nil
}

func (e *countingEvaluator) BestOf(ranks []poker.HandRank) []int {
	return poker.BestOf(ranks)
}

// highHole scores a hand by its best hole card. Hole cards come first.
func highHole(cards []poker.Card) int {
	return int(max(cards[0].Rank(), cards[1].Rank()))
}

func alwaysTie([]poker.Card) int { return 1 }

var errEvaluator = errors.New("evaluator exploded")

type eventLog struct {
	events []Event
}

func (l *eventLog) OnEvent(e Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) types() []EventType {
	out := make([]EventType, len(l.events))
	for i, e := range l.events {
		out[i] = e.EventType()
	}
	return out
}

func (l *eventLog) actions() []ActionEvent {
	var out []ActionEvent
	for _, e := range l.events {
		if a, ok := e.(ActionEvent); ok {
			out = append(out, a)
		}
	}
	return out
}

func humans(stacks ...int) []Seat {
	seats := make([]Seat, len(stacks))
	for i, s := range stacks {
		seats[i] = Seat{Kind: Human, Stack: s}
	}
	return seats
}

func callingPolicy() DecisionPolicy {
	return PolicyFunc(func(View) Decision {
		return Decision{Action: Call, Reasoning: "always call"}
	})
}

// defaultDeal gives seat 0 aces, seat 1 kings-queen and seat 2 deuce-trey,
// with a board of 9s 9h 4d 7c Jd.
const defaultDeal = "As Kd 2c Ah Qd 3c 9s 9h 4d 7c Jd"

// headsUpDeal is the same hands and board for two seats.
const headsUpDeal = "As Kd Ah Qd 9s 9h 4d 7c Jd"

func newTestHand(t *testing.T, seats []Seat, deal string, opts ...HandOption) *Hand {
	t.Helper()
	base := []HandOption{
		WithDeck(poker.NewStackedDeck(poker.MustParseCards(deal)...)),
		WithHandID("test-hand"),
		WithClock(quartz.NewMock(t)),
		WithLogger(log.New(io.Discard)),
	}
	h, err := NewHand(nil, seats, append(base, opts...)...)
	require.NoError(t, err)
	require.NoError(t, h.CheckInvariants())
	return h
}

// must applies an action and checks the chip accounting afterwards.
func must(t *testing.T, h *Hand, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NoError(t, h.CheckInvariants())
}

func stack(t *testing.T, h *Hand, seat int) int {
	t.Helper()
	p, ok := h.Participant(seat)
	require.True(t, ok)
	return p.Stack
}
