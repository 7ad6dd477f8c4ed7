// Package config loads table configuration from HCL files.
package config

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/tablestakes/internal/bot"
	"github.com/lox/tablestakes/internal/game"
)

// Seat kinds accepted in seat blocks.
const (
	KindHuman = "human"
	KindBot   = "bot"
)

// Config is a complete table configuration.
type Config struct {
	Table   TableSettings
	Seats   []SeatConfig
	Log     LogSettings
	History HistorySettings
}

// TableSettings are the chip amounts used by every seat.
type TableSettings struct {
	StartingStack int `hcl:"starting_stack,optional"`
	RaiseBy       int `hcl:"raise_by,optional"`
	MinRaiseStack int `hcl:"min_raise_stack,optional"`
}

// SeatConfig defines one seat, in table order.
type SeatConfig struct {
	Name     string `hcl:"name,label"`
	Kind     string `hcl:"kind,optional"`
	Strategy string `hcl:"strategy,optional"`
	Stack    int    `hcl:"stack,optional"`
}

// LogSettings configure the log sink.
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// HistorySettings configure hand history recording. An empty Dir disables it.
type HistorySettings struct {
	Dir string `hcl:"dir,optional"`
}

// fileConfig mirrors the HCL layout, where every block is optional.
type fileConfig struct {
	Table   *TableSettings   `hcl:"table,block"`
	Seats   []SeatConfig     `hcl:"seat,block"`
	Log     *LogSettings     `hcl:"log,block"`
	History *HistorySettings `hcl:"history,block"`
}

// Default returns one human against two heuristic bots.
func Default() *Config {
	return &Config{
		Table: TableSettings{
			StartingStack: 100,
			RaiseBy:       bot.DefaultRaiseBy,
			MinRaiseStack: bot.DefaultMinRaiseStack,
		},
		Seats: []SeatConfig{
			{Name: "You", Kind: KindHuman},
			{Name: "Bot 1", Kind: KindBot, Strategy: bot.StrategyHeuristic},
			{Name: "Bot 2", Kind: KindBot, Strategy: bot.StrategyHeuristic},
		},
		Log: LogSettings{Level: "info"},
	}
}

// Load reads filename. A missing file yields Default.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills in defaults.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", formatDiagnostics(diags))
	}

	config := Default()
	if raw.Table != nil {
		if raw.Table.StartingStack != 0 {
			config.Table.StartingStack = raw.Table.StartingStack
		}
		if raw.Table.RaiseBy != 0 {
			config.Table.RaiseBy = raw.Table.RaiseBy
		}
		if raw.Table.MinRaiseStack != 0 {
			config.Table.MinRaiseStack = raw.Table.MinRaiseStack
		}
	}
	if len(raw.Seats) > 0 {
		config.Seats = raw.Seats
	}
	for i := range config.Seats {
		s := &config.Seats[i]
		if s.Kind == "" {
			s.Kind = KindBot
		}
		if s.Kind == KindBot && s.Strategy == "" {
			s.Strategy = bot.StrategyHeuristic
		}
	}
	if raw.Log != nil {
		if raw.Log.Level != "" {
			config.Log.Level = raw.Log.Level
		}
		config.Log.File = raw.Log.File
	}
	if raw.History != nil {
		config.History = *raw.History
	}
	return config, nil
}

func formatDiagnostics(diags hcl.Diagnostics) string {
	msgs := make([]string, 0, len(diags))
	for _, d := range diags {
		msgs = append(msgs, d.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration. Every problem is a
// *game.ConfigurationError.
func (c *Config) Validate() error {
	if c.Table.StartingStack <= 0 {
		return invalid("starting stack must be positive, got %d", c.Table.StartingStack)
	}
	if c.Table.RaiseBy <= 0 {
		return invalid("raise_by must be positive, got %d", c.Table.RaiseBy)
	}
	if c.Table.MinRaiseStack < 0 {
		return invalid("min_raise_stack cannot be negative, got %d", c.Table.MinRaiseStack)
	}
	if len(c.Seats) < 2 || len(c.Seats) > game.MaxSeats {
		return invalid("between 2 and %d seats required, got %d", game.MaxSeats, len(c.Seats))
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return invalid("log level: %v", err)
		}
	}

	names := make(map[string]bool, len(c.Seats))
	for _, s := range c.Seats {
		if s.Name == "" {
			return invalid("seat name cannot be empty")
		}
		if names[s.Name] {
			return invalid("seat %q defined twice", s.Name)
		}
		names[s.Name] = true

		switch s.Kind {
		case KindHuman:
		case KindBot:
			if !bot.Valid(s.Strategy) {
				return invalid("seat %q: unknown strategy %q", s.Name, s.Strategy)
			}
		default:
			return invalid("seat %q: kind must be %q or %q, got %q", s.Name, KindHuman, KindBot, s.Kind)
		}
		if s.Stack < 0 {
			return invalid("seat %q: stack cannot be negative", s.Name)
		}
	}
	return nil
}

// RequireHuman returns an error unless at least one seat is human.
func (c *Config) RequireHuman() error {
	for _, s := range c.Seats {
		if s.Kind == KindHuman {
			return nil
		}
	}
	return invalid("at least one human seat is required to play")
}

// LogLevel returns the parsed log level, defaulting to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// GameSeats builds the seats for one hand. When asBots is set, human seats
// are played by the heuristic strategy instead.
func (c *Config) GameSeats(rng *rand.Rand, logger *log.Logger, asBots bool) ([]game.Seat, error) {
	seats := make([]game.Seat, len(c.Seats))
	for i, s := range c.Seats {
		stack := s.Stack
		if stack == 0 {
			stack = c.Table.StartingStack
		}
		seats[i] = game.Seat{Name: s.Name, Kind: game.Human, Stack: stack}
		if s.Kind == KindHuman && !asBots {
			continue
		}

		strategy := s.Strategy
		if s.Kind == KindHuman {
			strategy = bot.StrategyHeuristic
		}
		policy, err := bot.New(strategy,
			bot.WithLogger(logger),
			bot.WithRNG(rng),
			bot.WithRaiseBy(c.Table.RaiseBy),
			bot.WithMinRaiseStack(c.Table.MinRaiseStack))
		if err != nil {
			return nil, fmt.Errorf("seat %q: %w", s.Name, err)
		}
		seats[i].Kind = game.Automated
		seats[i].Policy = policy
	}
	return seats, nil
}

func invalid(format string, args ...any) error {
	return &game.ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
