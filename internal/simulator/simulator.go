// Package simulator plays many automated hands in parallel.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/tablestakes/internal/config"
	"github.com/lox/tablestakes/internal/game"
	"github.com/lox/tablestakes/internal/randutil"
	"github.com/lox/tablestakes/internal/statistics"
)

// Config holds configuration for running simulations.
type Config struct {
	Hands   int
	Seed    int64
	Workers int // parallel hands, defaults to GOMAXPROCS
	Table   *config.Config
	Logger  *log.Logger
	Clock   quartz.Clock
	// Subscribers receive every hand's events. They must be safe for
	// concurrent use.
	Subscribers []game.EventSubscriber
}

// Simulator runs hand simulations.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration.
func New(cfg Config) *Simulator {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Table == nil {
		cfg.Table = config.Default()
	}
	return &Simulator{config: cfg}
}

// Run plays every hand and returns the aggregated results. Hands are
// independent: hand i is seeded from Seed and i, and seats rotate one place
// per hand so every player sits in every position.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Hands <= 0 {
		return nil, errors.New("hands must be positive")
	}
	if err := s.config.Table.Validate(); err != nil {
		return nil, err
	}

	logger := s.config.Logger.WithPrefix("simulator")
	results := make([]statistics.HandResult, s.config.Hands)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range s.config.Hands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.playHand(i)
			if err != nil {
				return fmt.Errorf("hand %d: %w", i+1, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	logger.Info("Simulation complete", "hands", stats.Hands, "showdowns", stats.Showdowns, "discarded", stats.Discarded)
	return stats, nil
}

// playHand simulates a single hand.
func (s *Simulator) playHand(n int) (statistics.HandResult, error) {
	seed := randutil.Derive(s.config.Seed, n)
	rng := randutil.New(seed)

	seats, err := s.config.Table.GameSeats(rng, s.config.Logger, true)
	if err != nil {
		return statistics.HandResult{}, err
	}
	seats = rotate(seats, n)

	bus := game.NewEventBus()
	for _, sub := range s.config.Subscribers {
		bus.Subscribe(sub)
	}

	h, err := game.NewHand(rng, seats,
		game.WithEventBus(bus),
		game.WithLogger(s.config.Logger),
		game.WithClock(s.config.Clock))
	if err != nil {
		return statistics.HandResult{}, err
	}
	if !h.IsComplete() {
		return statistics.HandResult{}, fmt.Errorf("hand %s stopped in %s with seat %d on action", h.ID(), h.Round(), h.OnAction())
	}
	if err := h.CheckInvariants(); err != nil {
		return statistics.HandResult{}, fmt.Errorf("hand %s: %w", h.ID(), err)
	}

	return summarize(h, seed), nil
}

func summarize(h *game.Hand, seed int64) statistics.HandResult {
	res := h.Result()
	won := make(map[int]bool, len(res.Winners))
	for _, w := range res.Winners {
		won[w] = true
	}

	reached := game.Showdown.String()
	if res.DefaultWin {
		reached = roundForBoard(len(h.Board())).String()
	}

	out := statistics.HandResult{
		Seed:         seed,
		HandID:       h.ID(),
		Pot:          res.Pot,
		DefaultWin:   res.DefaultWin,
		Discarded:    res.Discarded,
		RoundReached: reached,
	}
	for _, p := range h.Participants() {
		out.Seats = append(out.Seats, statistics.SeatOutcome{
			Name:     p.Name,
			Position: p.Seat,
			Net:      p.Stack - p.StartingStack,
			Won:      won[p.Seat],
		})
	}
	return out
}

func roundForBoard(cards int) game.Round {
	switch cards {
	case 0:
		return game.PreFlop
	case 3:
		return game.Flop
	case 4:
		return game.Turn
	default:
		return game.River
	}
}

func rotate(seats []game.Seat, n int) []game.Seat {
	k := n % len(seats)
	return append(append([]game.Seat(nil), seats[k:]...), seats[:k]...)
}
