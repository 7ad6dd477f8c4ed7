// Package statistics aggregates simulated hand results.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// SeatOutcome is one player's result in a single hand.
type SeatOutcome struct {
	Name     string
	Position int // seat index the player sat in
	Net      int // chips won minus chips committed
	Won      bool
}

// HandResult represents the outcome of a single hand.
type HandResult struct {
	Seed         int64 // RNG seed for this hand (for replay)
	HandID       string
	Pot          int
	DefaultWin   bool // everyone else folded
	Discarded    int  // odd chips left unallocated
	RoundReached string
	Seats        []SeatOutcome
}

// Series tracks a stream of chip results.
type Series struct {
	Hands  int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation
}

// Add records one result.
func (s *Series) Add(v float64) {
	s.Hands++
	s.Sum += v
	s.Sum2 += v * v
	s.Values = append(s.Values, v)
}

// Mean returns the arithmetic mean of all results.
func (s *Series) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.Sum / float64(s.Hands)
}

// Variance returns the sample variance of all results.
func (s *Series) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation.
func (s *Series) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Series) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Series) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median value of all results.
func (s *Series) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0).
func (s *Series) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// PlayerStats tracks one player across hands.
type PlayerStats struct {
	Name         string
	Net          Series
	Wins         int
	ShowdownWins int
	DefaultWins  int
	NetChips     int
	Positions    map[int]*Series
}

// PositionMean returns the mean result from one seat index.
func (p *PlayerStats) PositionMean(position int) float64 {
	if s, ok := p.Positions[position]; ok {
		return s.Mean()
	}
	return 0
}

// Statistics tracks simulation statistics for every player.
type Statistics struct {
	Hands       int
	Showdowns   int
	DefaultWins int
	Discarded   int
	TotalPot    int
	MaxPot      int
	Rounds      map[string]int // hands that ended in each round

	players map[string]*PlayerStats
	order   []string
}

// Add incorporates a new hand result into the statistics.
func (s *Statistics) Add(result HandResult) {
	if s.players == nil {
		s.players = make(map[string]*PlayerStats)
		s.Rounds = make(map[string]int)
	}

	s.Hands++
	s.Discarded += result.Discarded
	s.TotalPot += result.Pot
	s.MaxPot = max(s.MaxPot, result.Pot)
	s.Rounds[result.RoundReached]++
	if result.DefaultWin {
		s.DefaultWins++
	} else {
		s.Showdowns++
	}

	for _, seat := range result.Seats {
		p := s.player(seat.Name)
		p.Net.Add(float64(seat.Net))
		p.NetChips += seat.Net

		pos := p.Positions[seat.Position]
		if pos == nil {
			pos = &Series{}
			p.Positions[seat.Position] = pos
		}
		pos.Add(float64(seat.Net))

		if seat.Won {
			p.Wins++
			if result.DefaultWin {
				p.DefaultWins++
			} else {
				p.ShowdownWins++
			}
		}
	}
}

func (s *Statistics) player(name string) *PlayerStats {
	p, ok := s.players[name]
	if !ok {
		p = &PlayerStats{Name: name, Positions: make(map[int]*Series)}
		s.players[name] = p
		s.order = append(s.order, name)
	}
	return p
}

// Player returns the stats for name.
func (s *Statistics) Player(name string) (*PlayerStats, bool) {
	p, ok := s.players[name]
	return p, ok
}

// Players returns every player's stats in first-seen order.
func (s *Statistics) Players() []*PlayerStats {
	out := make([]*PlayerStats, len(s.order))
	for i, name := range s.order {
		out[i] = s.players[name]
	}
	return out
}

// IsLedgerBalanced checks that chips were neither created nor destroyed:
// every player's net plus the discarded odd chips sums to zero.
func (s *Statistics) IsLedgerBalanced() bool {
	total := s.Discarded
	for _, p := range s.players {
		total += p.NetChips
	}
	return total == 0
}

// Validate performs comprehensive validation of statistics data.
func (s *Statistics) Validate() error {
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if !s.IsLedgerBalanced() {
		total := 0
		for _, p := range s.players {
			total += p.NetChips
		}
		return fmt.Errorf("ledger mismatch: net %d + discarded %d != 0", total, s.Discarded)
	}
	if s.Showdowns+s.DefaultWins != s.Hands {
		return fmt.Errorf("showdowns (%d) + default wins (%d) != hands (%d)", s.Showdowns, s.DefaultWins, s.Hands)
	}
	for _, p := range s.players {
		if p.Net.Hands != len(p.Net.Values) {
			return fmt.Errorf("%s: values (%d) do not match hands (%d)", p.Name, len(p.Net.Values), p.Net.Hands)
		}
		if p.Wins > p.Net.Hands {
			return fmt.Errorf("%s: wins (%d) exceed hands (%d)", p.Name, p.Wins, p.Net.Hands)
		}
		positionHands := 0
		for _, pos := range p.Positions {
			positionHands += pos.Hands
		}
		if positionHands != p.Net.Hands {
			return fmt.Errorf("%s: position hands (%d) do not match hands (%d)", p.Name, positionHands, p.Net.Hands)
		}
	}
	return nil
}
