package phh

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lox/tablestakes/internal/game"
)

// Recorder builds a HandHistory from hand events and writes each finished
// hand to its own file. It is safe to share between concurrent hands.
type Recorder struct {
	dir     string
	table   string
	minBet  int
	logger  *log.Logger
	onWrite func(path string, hand *HandHistory)

	mu       sync.Mutex
	current  map[string]*HandHistory
	finished []*HandHistory
	err      error
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithTable sets the table name written to each history.
func WithTable(name string) RecorderOption {
	return func(r *Recorder) {
		r.table = name
	}
}

// WithMinBet sets the min_bet field, the table's raise unit.
func WithMinBet(n int) RecorderOption {
	return func(r *Recorder) {
		r.minBet = n
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) RecorderOption {
	return func(r *Recorder) {
		r.logger = logger
	}
}

// WithOnWrite is called after each hand is written.
func WithOnWrite(fn func(path string, hand *HandHistory)) RecorderOption {
	return func(r *Recorder) {
		r.onWrite = fn
	}
}

// NewRecorder creates a Recorder writing to dir. An empty dir keeps
// histories in memory only.
func NewRecorder(dir string, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		dir:     dir,
		table:   "tablestakes",
		logger:  log.New(io.Discard),
		current: make(map[string]*HandHistory),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithPrefix("phh")
	return r
}

// OnEvent implements game.EventSubscriber.
func (r *Recorder) OnEvent(event game.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := event.(game.HandStartedEvent); ok {
		r.start(e)
		return
	}

	hist := r.current[event.HandID()]
	if hist == nil {
		return
	}

	switch e := event.(type) {
	case game.HoleCardsDealtEvent:
		hist.Actions = append(hist.Actions, fmt.Sprintf("d dh p%d %s", e.Seat+1, FormatCards(e.Cards)))
	case game.ActionEvent:
		hist.Actions = append(hist.Actions, FormatAction(e.Seat, e.Action, e.Committed, e.Highest))
	case game.RoundChangedEvent:
		if len(e.Dealt) > 0 {
			hist.Actions = append(hist.Actions, "d db "+FormatCards(e.Dealt))
		}
	case game.HandShownEvent:
		hist.Actions = append(hist.Actions, fmt.Sprintf("p%d sm %s", e.Seat+1, FormatCards(e.Cards)))
	case game.HandEndedEvent:
		r.end(hist, e)
	}
}

func (r *Recorder) start(e game.HandStartedEvent) {
	n := len(e.Seats)
	hist := &HandHistory{
		Variant:           "NT",
		Table:             r.table,
		SeatCount:         n,
		Seats:             make([]int, n),
		Antes:             make([]int, n),
		BlindsOrStraddles: make([]int, n),
		MinBet:            r.minBet,
		StartingStacks:    make([]int, n),
		FinishingStacks:   make([]int, n),
		Winnings:          make([]int, n),
		Actions:           make([]string, 0, n+16),
		Players:           make([]string, n),
		HandID:            e.HandID(),
		Timestamp:         e.Timestamp(),
	}
	for i, s := range e.Seats {
		hist.Seats[i] = s.Seat + 1
		hist.StartingStacks[i] = s.Stack
		hist.FinishingStacks[i] = s.Stack
		hist.Players[i] = s.Name
	}
	hist.populateTimeFields()
	r.current[hist.HandID] = hist
}

func (r *Recorder) end(hist *HandHistory, e game.HandEndedEvent) {
	delete(r.current, hist.HandID)

	copy(hist.FinishingStacks, e.Stacks)
	for _, a := range e.Result.Awards {
		if a.Seat >= 0 && a.Seat < len(hist.Winnings) {
			hist.Winnings[a.Seat] += a.Amount
		}
	}
	for _, c := range e.Board {
		hist.Board = append(hist.Board, c.String())
	}
	hist.Metadata = map[string]any{
		"pot":         e.Result.Pot,
		"default_win": e.Result.DefaultWin,
		"discarded":   e.Result.Discarded,
	}
	r.finished = append(r.finished, hist)

	if r.dir == "" {
		return
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		r.fail(hist, err)
		return
	}
	path := filepath.Join(r.dir, hist.HandID+".phh")
	if err := WriteFile(path, hist); err != nil {
		r.fail(hist, err)
		return
	}
	r.logger.Debug("Hand history written", "hand", hist.HandID, "path", path)
	if r.onWrite != nil {
		r.onWrite(path, hist)
	}
}

func (r *Recorder) fail(hist *HandHistory, err error) {
	err = fmt.Errorf("write hand %s: %w", hist.HandID, err)
	r.logger.Error("Failed to write hand history", "error", err)
	if r.err == nil {
		r.err = err
	}
}

// Hands returns the finished histories in completion order.
func (r *Recorder) Hands() []*HandHistory {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*HandHistory(nil), r.finished...)
}

// Err returns the first write error.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}
