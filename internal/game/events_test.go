package game

import (
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventSequenceForFoldedHand(t *testing.T) {
	t.Parallel()
	clock := quartz.NewMock(t)
	events := &eventLog{}
	bus := NewEventBus()
	bus.Subscribe(events)

	h := newTestHand(t, humans(100, 100), headsUpDeal, WithEventBus(bus), WithClock(clock))
	must(t, h, h.Raise(0, 10))
	must(t, h, h.Fold(1))

	assert.Equal(t, []EventType{
		EventTypeHandStarted,
		EventTypeHoleCardsDealt,
		EventTypeHoleCardsDealt,
		EventTypeRoundChanged,
		EventTypeActionTaken,
		EventTypeActionTaken,
		EventTypeRoundChanged,
		EventTypePotAwarded,
		EventTypeHandEnded,
	}, events.types())

	for _, e := range events.events {
		assert.Equal(t, "test-hand", e.HandID())
		assert.Equal(t, clock.Now(), e.Timestamp())
	}

	started, ok := events.events[0].(HandStartedEvent)
	require.True(t, ok)
	assert.Equal(t, []SeatInfo{
		{Seat: 0, Name: "Seat 1", Kind: Human, Stack: 100},
		{Seat: 1, Name: "Seat 2", Kind: Human, Stack: 100},
	}, started.Seats)

	awarded, ok := events.events[7].(PotAwardedEvent)
	require.True(t, ok)
	assert.Equal(t, 0, awarded.Seat)
	assert.Equal(t, 10, awarded.Amount)
	assert.True(t, awarded.DefaultWin)

	ended, ok := events.events[8].(HandEndedEvent)
	require.True(t, ok)
	assert.Equal(t, []int{100, 90}, ended.Stacks)
	assert.True(t, ended.Result.DefaultWin)
}

func TestEventSequenceForShowdown(t *testing.T) {
	t.Parallel()
	events := &eventLog{}
	bus := NewEventBus()
	bus.Subscribe(events)

	h := newTestHand(t, humans(100, 100), headsUpDeal, WithEventBus(bus))
	must(t, h, h.Raise(0, 20))
	must(t, h, h.Call(1))
	for range 3 {
		must(t, h, h.Check(0))
	}
	require.True(t, h.IsComplete())

	var rounds []Round
	var dealt []int
	shown := 0
	for _, e := range events.events {
		switch e := e.(type) {
		case RoundChangedEvent:
			rounds = append(rounds, e.Round)
			dealt = append(dealt, len(e.Dealt))
		case HandShownEvent:
			shown++
			assert.NotEmpty(t, e.Rank.Description)
		}
	}
	assert.Equal(t, []Round{PreFlop, Flop, Turn, River, Showdown}, rounds)
	assert.Equal(t, []int{0, 3, 1, 1, 0}, dealt)
	assert.Equal(t, 2, shown)
	assert.Equal(t, EventTypeHandEnded, events.events[len(events.events)-1].EventType())
}

func TestActionEventDetails(t *testing.T) {
	t.Parallel()
	events := &eventLog{}
	bus := NewEventBus()
	bus.Subscribe(events)

	h := newTestHand(t, humans(100, 40), headsUpDeal, WithEventBus(bus))
	must(t, h, h.Raise(0, 25))
	must(t, h, h.Raise(1, 25))

	actions := events.actions()
	require.Len(t, actions, 2)
	assert.Equal(t, ActionEvent{
		eventMeta: actions[1].eventMeta,
		Seat:      1,
		Name:      "Seat 2",
		Round:     PreFlop,
		Action:    Raise,
		Amount:    40,
		RaiseBy:   25,
		Committed: 40,
		Highest:   40,
		Stack:     0,
		Pot:       65,
		AllIn:     true,
	}, actions[1])
}

func TestEventBusUnsubscribe(t *testing.T) {
	t.Parallel()
	bus := NewEventBus()
	first := &eventLog{}
	second := &eventLog{}
	var funcCalls int

	bus.Subscribe(first)
	bus.Subscribe(SubscriberFunc(func(Event) { funcCalls++ }))
	bus.Subscribe(second)

	bus.Publish(HandStartedEvent{})
	bus.Unsubscribe(first)
	bus.Unsubscribe(SubscriberFunc(func(Event) {}))
	bus.Publish(HandStartedEvent{})

	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 2)
	assert.Equal(t, 2, funcCalls)
}
