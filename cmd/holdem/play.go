package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/tablestakes/internal/display"
	"github.com/lox/tablestakes/internal/game"
	"github.com/lox/tablestakes/internal/phh"
	"github.com/lox/tablestakes/internal/randutil"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

// PlayCmd deals hands to the configured table until the player quits. Every
// hand starts from the configured stacks.
type PlayCmd struct {
	Hands  int  `default:"0" help:"Number of hands to play (0 = until quit)"`
	Reveal bool `help:"Show every player's hole cards as they are dealt"`
}

func (cmd PlayCmd) Run(cli *CLI) error {
	e, err := cli.env()
	if err != nil {
		return err
	}
	defer e.closer()

	if err := e.cfg.RequireHuman(); err != nil {
		return err
	}

	fmt.Fprintln(e.stdout, titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	fmt.Fprintln(e.stdout)

	narrator := display.NewNarrator(e.stdout)
	narrator.RevealAll = cmd.Reveal
	ui := display.NewInterface(e.stdin, e.stdout, e.logger)

	var recorder *phh.Recorder
	if e.cfg.History.Dir != "" {
		recorder = phh.NewRecorder(e.cfg.History.Dir,
			phh.WithMinBet(e.cfg.Table.RaiseBy),
			phh.WithLogger(e.logger))
	}

	for n := 0; cmd.Hands == 0 || n < cmd.Hands; n++ {
		seed := randutil.Derive(e.seed, n)
		rng := randutil.New(seed)

		seats, err := e.cfg.GameSeats(rng, e.logger, false)
		if err != nil {
			return err
		}

		bus := game.NewEventBus()
		bus.Subscribe(narrator)
		if recorder != nil {
			bus.Subscribe(recorder)
		}

		e.logger.Info("Starting hand", "hand", n+1, "seed", seed)
		h, err := game.NewHand(rng, seats,
			game.WithEventBus(bus),
			game.WithLogger(e.logger),
			game.WithClock(e.clock))
		if err != nil {
			return err
		}

		if err := ui.Play(h); err != nil {
			if errors.Is(err, display.ErrQuit) {
				fmt.Fprintln(e.stdout, "Thanks for playing!")
				return nil
			}
			return err
		}
		if recorder != nil {
			if err := recorder.Err(); err != nil {
				return err
			}
		}
		summarizeHand(e.stdout, h)
	}
	return nil
}

// summarizeHand prints each seat's net result for the hand.
func summarizeHand(w io.Writer, h *game.Hand) {
	for _, p := range h.Participants() {
		fmt.Fprintf(w, "  %-12s %4d (%+d)\n", p.Name, p.Stack, p.Stack-p.StartingStack)
	}
	fmt.Fprintln(w)
}
