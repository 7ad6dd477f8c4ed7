package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/tablestakes/internal/phh"
)

// HistoryCmd prints a hand history written by play or simulate.
type HistoryCmd struct {
	File string `arg:"" name:"file" type:"existingfile" help:"Path to a .phh file"`
}

func (cmd HistoryCmd) Run() error {
	f, err := os.Open(filepath.Clean(cmd.File))
	if err != nil {
		return err
	}
	defer f.Close()

	hand, err := phh.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", cmd.File, err)
	}
	renderHistory(os.Stdout, hand)
	return nil
}

func renderHistory(w io.Writer, hand *phh.HandHistory) {
	fmt.Fprintf(w, "Hand %s", hand.HandID)
	if hand.Table != "" {
		fmt.Fprintf(w, " at %s", hand.Table)
	}
	fmt.Fprintln(w)

	for i, name := range hand.Players {
		line := fmt.Sprintf("  p%d %-12s %4d", i+1, name, at(hand.StartingStacks, i))
		if i < len(hand.FinishingStacks) {
			net := hand.FinishingStacks[i] - at(hand.StartingStacks, i)
			line += fmt.Sprintf(" -> %4d (%+d)", hand.FinishingStacks[i], net)
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w, "Actions:")
	for _, a := range hand.Actions {
		fmt.Fprintf(w, "  %s\n", a)
	}
	if pot, ok := hand.Metadata["pot"]; ok {
		fmt.Fprintf(w, "Pot: %v\n", pot)
	}
	var won []string
	for i, amount := range hand.Winnings {
		if amount > 0 && i < len(hand.Players) {
			won = append(won, fmt.Sprintf("%s %d", hand.Players[i], amount))
		}
	}
	if len(won) > 0 {
		fmt.Fprintf(w, "Won: %s\n", strings.Join(won, ", "))
	}
}

func at(xs []int, i int) int {
	if i < len(xs) {
		return xs[i]
	}
	return 0
}
