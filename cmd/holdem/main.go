package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/tablestakes/internal/config"
	"github.com/lox/tablestakes/internal/randutil"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"holdem.hcl" type:"path" help:"Table configuration file (defaults apply if missing)"`
	Seed     int64            `help:"RNG seed (0 for random)"`
	LogLevel string           `help:"Override the configured log level"`

	Play     PlayCmd     `cmd:"" default:"withargs" help:"Play hands against the bots"`
	Simulate SimulateCmd `cmd:"" help:"Play many bot-only hands and report results"`
	History  HistoryCmd  `cmd:"" help:"Show a recorded hand history"`
}

// env is the state shared by every command.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	clock  quartz.Clock
	seed   int64
	stdout io.Writer
	stdin  io.Reader
	closer func() error
}

func (c *CLI) env() (*env, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	clock := quartz.NewReal()
	seed := c.Seed
	if seed == 0 {
		seed = randutil.Seed(clock)
	}
	logger.Debug("Configuration loaded", "file", c.Config, "seats", len(cfg.Seats), "seed", seed)

	return &env{
		cfg:    cfg,
		logger: logger,
		clock:  clock,
		seed:   seed,
		stdout: os.Stdout,
		stdin:  os.Stdin,
		closer: closer,
	}, nil
}

// newLogger logs to stderr, or to the configured file so log lines do not
// interleave with the table.
func newLogger(cfg *config.Config) (*log.Logger, func() error, error) {
	var (
		w      io.Writer = os.Stderr
		closer           = func() error { return nil }
	)
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = f.Close
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           cfg.LogLevel(),
	})
	return logger, closer, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Texas Hold'em against simple bots"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
