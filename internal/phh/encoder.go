// Package phh records hands in the Poker Hand History TOML format.
package phh

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lox/tablestakes/internal/game"
	"github.com/lox/tablestakes/poker"
)

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads one hand history.
func Decode(r io.Reader) (*HandHistory, error) {
	var hand HandHistory
	if _, err := toml.NewDecoder(r).Decode(&hand); err != nil {
		return nil, fmt.Errorf("phh: decode: %w", err)
	}
	return &hand, nil
}

// FormatAction converts an action to its PHH string. committed is the seat's
// total for the current round after the action, and highest the round's
// highest commitment. A raise that fell short of highest is recorded as a
// call.
func FormatAction(seat int, action game.Action, committed, highest int) string {
	player := fmt.Sprintf("p%d", seat+1)
	switch action {
	case game.Fold:
		return player + " f"
	case game.Check, game.Call:
		return player + " cc"
	case game.Raise:
		if committed < highest {
			return player + " cc"
		}
		return fmt.Sprintf("%s cbr %d", player, committed)
	default:
		return fmt.Sprintf("# %s %s %d", player, action, committed)
	}
}

// FormatCards joins cards without separators, e.g. "AsKd".
func FormatCards(cards []poker.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}
