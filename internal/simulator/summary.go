package simulator

import (
	"fmt"
	"io"
	"sort"

	"github.com/lox/tablestakes/internal/game"
	"github.com/lox/tablestakes/internal/statistics"
)

// PrintSummary writes a summary of simulation results.
func PrintSummary(w io.Writer, stats *statistics.Statistics) {
	fmt.Fprintf(w, "\n=== SIMULATION RESULTS ===\n")
	fmt.Fprintf(w, "Hands played: %d\n", stats.Hands)
	fmt.Fprintf(w, "Showdowns: %d, uncontested: %d\n", stats.Showdowns, stats.DefaultWins)
	if stats.Hands > 0 {
		fmt.Fprintf(w, "Average pot: %.1f chips, largest: %d\n", float64(stats.TotalPot)/float64(stats.Hands), stats.MaxPot)
	}
	fmt.Fprintf(w, "Odd chips discarded: %d\n", stats.Discarded)

	fmt.Fprintf(w, "\n=== HANDS ENDED BY ROUND ===\n")
	for _, r := range []game.Round{game.PreFlop, game.Flop, game.Turn, game.River, game.Showdown} {
		if n := stats.Rounds[r.String()]; n > 0 {
			fmt.Fprintf(w, "%-9s %d\n", r.String()+":", n)
		}
	}

	fmt.Fprintf(w, "\n=== PLAYERS ===\n")
	players := stats.Players()
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].NetChips > players[j].NetChips
	})
	for _, p := range players {
		low, high := p.Net.ConfidenceInterval95()
		fmt.Fprintf(w, "%s: net %+d chips, %.2f/hand (95%% CI [%.2f, %.2f]), won %d (%d showdown, %d uncontested)\n",
			p.Name, p.NetChips, p.Net.Mean(), low, high, p.Wins, p.ShowdownWins, p.DefaultWins)
	}
}
