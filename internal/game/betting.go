package game

// Round is a betting round of the hand. Rounds only move forward.
type Round int

const (
	PreFlop Round = iota
	Flop
	Turn
	River
	Showdown
)

func (r Round) String() string {
	switch r {
	case PreFlop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	default:
		return "unknown"
	}
}

// boardCards is how many community cards are revealed on entering a round.
func (r Round) boardCards() int {
	switch r {
	case Flop:
		return 3
	case Turn, River:
		return 1
	default:
		return 0
	}
}

// Action is what a seat does on its turn.
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
)

func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}

// Decision is an action choice, as produced by a DecisionPolicy or parsed
// from a human's input.
type Decision struct {
	Action    Action
	RaiseBy   int    // Raise only: chips on top of the amount to call
	Reasoning string // Human-readable explanation, carried on the action event
}

// bettingRound tracks what the current round requires.
type bettingRound struct {
	highest int // HighestCommitment
	actions int // actions taken since the round opened
}

func (br *bettingRound) reset() {
	br.highest = 0
	br.actions = 0
}

// closed reports whether no further action is owed this round: at least one
// action has happened and every seat is folded, all-in or matched.
func (br *bettingRound) closed(players []*Participant) bool {
	if br.actions == 0 {
		return false
	}
	for _, p := range players {
		if p.IsActive() && p.Committed != br.highest {
			return false
		}
	}
	return true
}
