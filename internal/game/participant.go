package game

import "github.com/lox/tablestakes/poker"

// SeatKind tells the hand who chooses a seat's actions.
type SeatKind int

const (
	Human SeatKind = iota
	Automated
)

func (k SeatKind) String() string {
	if k == Human {
		return "human"
	}
	return "automated"
}

// Seat configures one participant before the hand starts.
type Seat struct {
	Name  string
	Kind  SeatKind
	Stack int
	// Policy overrides the hand's default policy for this automated seat.
	Policy DecisionPolicy
}

// Participant is a seated player for the duration of one hand.
type Participant struct {
	Seat           int
	Name           string
	Kind           SeatKind
	StartingStack  int
	Stack          int
	HoleCards      []poker.Card
	Folded         bool
	AllIn          bool
	Committed      int // this round
	TotalCommitted int // this hand
	Won            int
}

// IsActive returns true if the participant can still act.
func (p *Participant) IsActive() bool {
	return !p.Folded && !p.AllIn
}

// ToCall returns what the participant needs to match highest.
func (p *Participant) ToCall(highest int) int {
	return max(highest-p.Committed, 0)
}

// commit moves up to amount chips from the stack into the pot and returns
// what was actually moved. Emptying the stack puts the participant all-in.
func (p *Participant) commit(amount int) int {
	amount = min(amount, p.Stack)
	p.Stack -= amount
	p.Committed += amount
	p.TotalCommitted += amount
	if p.Stack == 0 {
		p.AllIn = true
	}
	return amount
}

func (p *Participant) clone() Participant {
	c := *p
	c.HoleCards = append([]poker.Card(nil), p.HoleCards...)
	return c
}
