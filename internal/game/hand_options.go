package game

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/tablestakes/poker"
)

// MaxSeats is the largest table a hand can be dealt to.
const MaxSeats = 10

// HandOption configures a Hand during creation.
type HandOption func(*handConfig)

type handConfig struct {
	deck      poker.CardSource // overrides the RNG-shuffled deck
	evaluator poker.Evaluator
	policy    DecisionPolicy // default for automated seats without their own
	bus       EventBus
	clock     quartz.Clock
	logger    *log.Logger
	handID    string
}

// WithDeck deals from a specific card source, e.g. a stacked deck.
func WithDeck(deck poker.CardSource) HandOption {
	return func(c *handConfig) {
		c.deck = deck
	}
}

// WithEvaluator replaces the default paulhankin-backed evaluator.
func WithEvaluator(evaluator poker.Evaluator) HandOption {
	return func(c *handConfig) {
		c.evaluator = evaluator
	}
}

// WithPolicy sets the decision policy for automated seats that do not
// carry their own.
func WithPolicy(policy DecisionPolicy) HandOption {
	return func(c *handConfig) {
		c.policy = policy
	}
}

// WithEventBus publishes hand events to bus. Subscribers should be attached
// before NewHand so they see the deal.
func WithEventBus(bus EventBus) HandOption {
	return func(c *handConfig) {
		c.bus = bus
	}
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock quartz.Clock) HandOption {
	return func(c *handConfig) {
		c.clock = clock
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) HandOption {
	return func(c *handConfig) {
		c.logger = logger
	}
}

// WithHandID sets the hand ID instead of generating one.
func WithHandID(id string) HandOption {
	return func(c *handConfig) {
		c.handID = id
	}
}
