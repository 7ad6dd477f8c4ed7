package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeries_Empty(t *testing.T) {
	t.Parallel()
	s := &Series{}

	assert.Zero(t, s.Mean())
	assert.Zero(t, s.Variance())
	assert.Zero(t, s.StdDev())
	assert.Zero(t, s.StdError())
	assert.Zero(t, s.Median())
	assert.Zero(t, s.Percentile(0.5))
}

func TestSeries_MultipleValues(t *testing.T) {
	t.Parallel()
	s := &Series{}
	for _, v := range []float64{1, -2, 3, 0, -1} {
		s.Add(v)
	}

	assert.Equal(t, 5, s.Hands)
	assert.InDelta(t, 0.2, s.Mean(), 1e-9)
	// sum of squares 15, n*mean^2 = 0.2, so (15-0.2)/4
	assert.InDelta(t, 3.7, s.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(3.7), s.StdDev(), 1e-9)
	assert.InDelta(t, 0.0, s.Median(), 1e-9)
	assert.InDelta(t, -2.0, s.Percentile(0), 1e-9)
	assert.InDelta(t, 3.0, s.Percentile(1), 1e-9)
	assert.InDelta(t, -1.0, s.Percentile(0.25), 1e-9)

	low, high := s.ConfidenceInterval95()
	assert.Less(t, low, s.Mean())
	assert.Greater(t, high, s.Mean())
}

func TestStatistics_Add(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}

	stats.Add(HandResult{
		Seed:         1,
		Pot:          60,
		DefaultWin:   true,
		RoundReached: "flop",
		Seats: []SeatOutcome{
			{Name: "alice", Position: 0, Net: 40, Won: true},
			{Name: "bob", Position: 1, Net: -20},
			{Name: "carol", Position: 2, Net: -20},
		},
	})
	stats.Add(HandResult{
		Seed:         2,
		Pot:          101,
		Discarded:    1,
		RoundReached: "showdown",
		Seats: []SeatOutcome{
			{Name: "bob", Position: 0, Net: 16, Won: true},
			{Name: "carol", Position: 1, Net: -33},
			{Name: "alice", Position: 2, Net: 16, Won: true},
		},
	})

	require.NoError(t, stats.Validate())
	assert.True(t, stats.IsLedgerBalanced())
	assert.Equal(t, 2, stats.Hands)
	assert.Equal(t, 1, stats.Showdowns)
	assert.Equal(t, 1, stats.DefaultWins)
	assert.Equal(t, 1, stats.Discarded)
	assert.Equal(t, 101, stats.MaxPot)
	assert.Equal(t, map[string]int{"flop": 1, "showdown": 1}, stats.Rounds)

	players := stats.Players()
	require.Len(t, players, 3)
	assert.Equal(t, "alice", players[0].Name)

	alice, ok := stats.Player("alice")
	require.True(t, ok)
	assert.Equal(t, 56, alice.NetChips)
	assert.Equal(t, 2, alice.Wins)
	assert.Equal(t, 1, alice.DefaultWins)
	assert.Equal(t, 1, alice.ShowdownWins)
	assert.InDelta(t, 28.0, alice.Net.Mean(), 1e-9)
	assert.InDelta(t, 40.0, alice.PositionMean(0), 1e-9)
	assert.InDelta(t, 16.0, alice.PositionMean(2), 1e-9)
	assert.Zero(t, alice.PositionMean(5))
}

func TestStatistics_Validate(t *testing.T) {
	t.Parallel()

	empty := &Statistics{}
	assert.Error(t, empty.Validate())

	unbalanced := &Statistics{}
	unbalanced.Add(HandResult{
		DefaultWin: true,
		Seats: []SeatOutcome{
			{Name: "alice", Net: 10, Won: true},
			{Name: "bob", Net: -5},
		},
	})
	assert.False(t, unbalanced.IsLedgerBalanced())
	err := unbalanced.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ledger mismatch")
}
