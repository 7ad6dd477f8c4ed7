package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/lox/tablestakes/internal/game"
	"github.com/lox/tablestakes/internal/phh"
	"github.com/lox/tablestakes/internal/simulator"
)

// SimulateCmd plays bot-only hands; human seats use the heuristic strategy.
type SimulateCmd struct {
	Hands   int  `default:"1000" help:"Number of hands to simulate"`
	Workers int  `default:"0" help:"Hands played in parallel (0 = GOMAXPROCS)"`
	Record  bool `help:"Write a hand history per hand to the configured history dir"`
}

func (cmd SimulateCmd) Run(cli *CLI) error {
	e, err := cli.env()
	if err != nil {
		return err
	}
	defer e.closer()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var subscribers []game.EventSubscriber
	var recorder *phh.Recorder
	if cmd.Record && e.cfg.History.Dir != "" {
		recorder = phh.NewRecorder(e.cfg.History.Dir,
			phh.WithTable("simulation"),
			phh.WithMinBet(e.cfg.Table.RaiseBy),
			phh.WithLogger(e.logger))
		subscribers = append(subscribers, recorder)
	}

	e.logger.Info("Starting simulation", "hands", cmd.Hands, "seed", e.seed)
	sim := simulator.New(simulator.Config{
		Hands:       cmd.Hands,
		Seed:        e.seed,
		Workers:     cmd.Workers,
		Table:       e.cfg,
		Logger:      e.logger,
		Clock:       e.clock,
		Subscribers: subscribers,
	})
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	if recorder != nil {
		if err := recorder.Err(); err != nil {
			return err
		}
	}

	simulator.PrintSummary(e.stdout, stats)
	return nil
}
