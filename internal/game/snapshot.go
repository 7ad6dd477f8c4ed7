package game

import (
	"errors"
	"fmt"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/lox/tablestakes/poker"
)

// SeatSnapshot is one participant's state in a Snapshot.
type SeatSnapshot struct {
	Seat           int
	Name           string
	Stack          int
	Committed      int
	TotalCommitted int
	Won            int
	Folded         bool
	AllIn          bool
	HoleCards      []string
}

// Snapshot is a plain copy of the hand state, safe to keep or compare.
type Snapshot struct {
	HandID   string `hash:"ignore"`
	Round    Round
	Board    []string
	Pot      int
	Highest  int
	OnAction int
	Seats    []SeatSnapshot
}

// Snapshot copies the current state.
func (h *Hand) Snapshot() Snapshot {
	s := Snapshot{
		HandID:   h.id,
		Round:    h.round,
		Board:    cardStrings(h.board),
		Pot:      h.pot,
		Highest:  h.betting.highest,
		OnAction: h.onAction,
		Seats:    make([]SeatSnapshot, len(h.players)),
	}
	for i, p := range h.players {
		s.Seats[i] = SeatSnapshot{
			Seat:           p.Seat,
			Name:           p.Name,
			Stack:          p.Stack,
			Committed:      p.Committed,
			TotalCommitted: p.TotalCommitted,
			Won:            p.Won,
			Folded:         p.Folded,
			AllIn:          p.AllIn,
			HoleCards:      cardStrings(p.HoleCards),
		}
	}
	return s
}

// Fingerprint hashes the snapshot. Two hands dealt from the same deck and
// played the same way share a fingerprint regardless of their IDs.
func (h *Hand) Fingerprint() (uint64, error) {
	return hashstructure.Hash(h.Snapshot(), hashstructure.FormatV2, nil)
}

// CheckInvariants verifies the chip accounting and the action cursor.
func (h *Hand) CheckInvariants() error {
	var errs []error
	committed := 0
	for _, p := range h.players {
		committed += p.TotalCommitted
		if p.Stack < 0 {
			errs = append(errs, fmt.Errorf("seat %d: negative stack %d", p.Seat, p.Stack))
		}
		if got := p.Stack + p.TotalCommitted - p.Won; got != p.StartingStack {
			errs = append(errs, fmt.Errorf("seat %d: stack %d + committed %d - won %d != starting %d",
				p.Seat, p.Stack, p.TotalCommitted, p.Won, p.StartingStack))
		}
		if h.round != Showdown && p.Committed > h.betting.highest {
			errs = append(errs, fmt.Errorf("seat %d: committed %d above highest %d", p.Seat, p.Committed, h.betting.highest))
		}
	}
	if committed != h.pot {
		errs = append(errs, fmt.Errorf("pot %d != total committed %d", h.pot, committed))
	}

	if h.onAction >= 0 && !h.players[h.onAction].IsActive() {
		errs = append(errs, fmt.Errorf("seat %d is on action but cannot act", h.onAction))
	}

	if h.result != nil {
		paid := h.result.Discarded
		for _, a := range h.result.Awards {
			paid += a.Amount
		}
		if paid != h.pot {
			errs = append(errs, fmt.Errorf("paid out %d of pot %d", paid, h.pot))
		}
	}
	return errors.Join(errs...)
}

func cardStrings(cards []poker.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
