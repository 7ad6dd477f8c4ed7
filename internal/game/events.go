package game

import (
	"time"

	"github.com/lox/tablestakes/poker"
)

// EventType identifies a hand event.
type EventType string

const (
	EventTypeHandStarted    EventType = "hand_started"
	EventTypeHoleCardsDealt EventType = "hole_cards_dealt"
	EventTypeActionTaken    EventType = "action_taken"
	EventTypeRoundChanged   EventType = "round_changed"
	EventTypeHandShown      EventType = "hand_shown"
	EventTypePotAwarded     EventType = "pot_awarded"
	EventTypeHandEnded      EventType = "hand_ended"
)

func (et EventType) String() string {
	return string(et)
}

// Event is a structured notification of something that happened in a hand.
// Rendering is left to subscribers.
type Event interface {
	EventType() EventType
	HandID() string
	Timestamp() time.Time
}

type eventMeta struct {
	handID    string
	timestamp time.Time
}

func (m eventMeta) HandID() string       { return m.handID }
func (m eventMeta) Timestamp() time.Time { return m.timestamp }

// SeatInfo describes a seat as the hand starts.
type SeatInfo struct {
	Seat  int
	Name  string
	Kind  SeatKind
	Stack int
}

// HandStartedEvent is published once the seats are validated.
type HandStartedEvent struct {
	eventMeta
	Seats []SeatInfo
}

func (HandStartedEvent) EventType() EventType { return EventTypeHandStarted }

// HoleCardsDealtEvent is published for each seat after the deal.
type HoleCardsDealtEvent struct {
	eventMeta
	Seat  int
	Name  string
	Kind  SeatKind
	Cards []poker.Card
}

func (HoleCardsDealtEvent) EventType() EventType { return EventTypeHoleCardsDealt }

// ActionEvent is published after an action has been applied.
type ActionEvent struct {
	eventMeta
	Seat      int
	Name      string
	Round     Round
	Action    Action
	Amount    int // chips moved into the pot by this action
	RaiseBy   int // as requested, before any stack cap
	Committed int // seat's commitment this round afterwards
	Highest   int // HighestCommitment afterwards
	Stack     int
	Pot       int
	AllIn     bool
	Reasoning string
}

func (ActionEvent) EventType() EventType { return EventTypeActionTaken }

// RoundChangedEvent is published on every round transition, including the
// move to Showdown.
type RoundChangedEvent struct {
	eventMeta
	Round Round
	Dealt []poker.Card
	Board []poker.Card
	Pot   int
}

func (RoundChangedEvent) EventType() EventType { return EventTypeRoundChanged }

// HandShownEvent is published for every hand evaluated at showdown.
type HandShownEvent struct {
	eventMeta
	Seat  int
	Name  string
	Cards []poker.Card
	Rank  poker.HandRank
}

func (HandShownEvent) EventType() EventType { return EventTypeHandShown }

// PotAwardedEvent is published for each winner.
type PotAwardedEvent struct {
	eventMeta
	Seat       int
	Name       string
	Amount     int
	Winners    int
	DefaultWin bool
}

func (PotAwardedEvent) EventType() EventType { return EventTypePotAwarded }

// HandEndedEvent is the last event of every hand.
type HandEndedEvent struct {
	eventMeta
	Result Result
	Board  []poker.Card
	Stacks []int
}

func (HandEndedEvent) EventType() EventType { return EventTypeHandEnded }

// EventSubscriber receives hand events.
type EventSubscriber interface {
	OnEvent(event Event)
}

// SubscriberFunc adapts a function to EventSubscriber.
type SubscriberFunc func(event Event)

// OnEvent implements EventSubscriber.
func (f SubscriberFunc) OnEvent(event Event) { f(event) }

// EventBus manages event publishing and subscription.
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event Event)
}

// SimpleEventBus delivers events synchronously in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates an empty event bus.
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events.
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber. Func subscribers cannot be compared and
// are never removed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if _, ok := subscriber.(SubscriberFunc); ok {
		return
	}
	for i, sub := range bus.subscribers {
		if _, ok := sub.(SubscriberFunc); ok {
			continue
		}
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribers.
func (bus *SimpleEventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
