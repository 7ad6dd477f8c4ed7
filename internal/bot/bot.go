// Package bot provides decision policies for automated seats.
package bot

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/tablestakes/internal/game"
	"github.com/lox/tablestakes/poker"
)

// Strategy names understood by New.
const (
	StrategyHeuristic = "heuristic"
	StrategyCall      = "call"
	StrategyFold      = "fold"
	StrategyRandom    = "random"
)

// Defaults for the heuristic and random strategies.
const (
	DefaultRaiseBy       = 10
	DefaultMinRaiseStack = 5
)

// ErrUnknownStrategy is returned by New for an unrecognised name.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Option configures a strategy built by New.
type Option func(*options)

type options struct {
	logger        *log.Logger
	rng           *rand.Rand
	evaluator     poker.Evaluator
	raiseBy       int
	minRaiseStack int
}

// WithLogger sets the logger used to explain decisions.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRNG sets the random source for the random strategy.
func WithRNG(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithEvaluator sets the evaluator used to estimate hand strength.
func WithEvaluator(evaluator poker.Evaluator) Option {
	return func(o *options) {
		o.evaluator = evaluator
	}
}

// WithRaiseBy sets the fixed raise unit.
func WithRaiseBy(n int) Option {
	return func(o *options) {
		o.raiseBy = n
	}
}

// WithMinRaiseStack sets the stack a seat must exceed before it raises.
func WithMinRaiseStack(n int) Option {
	return func(o *options) {
		o.minRaiseStack = n
	}
}

// Names returns every strategy New accepts.
func Names() []string {
	return []string{StrategyHeuristic, StrategyCall, StrategyFold, StrategyRandom}
}

// New returns the named strategy.
func New(name string, opts ...Option) (game.DecisionPolicy, error) {
	o := &options{
		raiseBy:       DefaultRaiseBy,
		minRaiseStack: DefaultMinRaiseStack,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.raiseBy <= 0 {
		return nil, fmt.Errorf("raise unit must be positive, got %d", o.raiseBy)
	}

	switch strings.ToLower(name) {
	case StrategyHeuristic, "":
		return NewHeuristic(o.logger, o.evaluator, o.raiseBy, o.minRaiseStack), nil
	case StrategyCall:
		return NewCallBot(o.logger), nil
	case StrategyFold:
		return NewFoldBot(o.logger), nil
	case StrategyRandom:
		if o.rng == nil {
			return nil, fmt.Errorf("%s strategy needs an rng", StrategyRandom)
		}
		return NewRandBot(o.rng, o.logger, o.raiseBy), nil
	default:
		return nil, fmt.Errorf("%w %q, expected one of %s", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
	}
}

// Valid reports whether name is a known strategy.
func Valid(name string) bool {
	return name == "" || slices.Contains(Names(), strings.ToLower(name))
}

// ThinkingContext accumulates the reasons behind a decision.
type ThinkingContext struct {
	thoughts []string
}

// AddThought records a reason.
func (tc *ThinkingContext) AddThought(format string, args ...any) {
	tc.thoughts = append(tc.thoughts, fmt.Sprintf(format, args...))
}

// GetThoughts joins every recorded reason.
func (tc *ThinkingContext) GetThoughts() string {
	if len(tc.thoughts) == 0 {
		return "no clear reasoning available"
	}
	return strings.Join(tc.thoughts, ". ")
}
