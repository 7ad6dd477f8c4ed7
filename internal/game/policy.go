package game

import "github.com/lox/tablestakes/poker"

// View is the read-only state a DecisionPolicy decides from.
type View struct {
	Self              Participant
	Board             []poker.Card
	HighestCommitment int
	Round             Round
	Pot               int
}

// ToCall returns the chips the acting seat needs to match the round.
func (v View) ToCall() int {
	return v.Self.ToCall(v.HighestCommitment)
}

// DecisionPolicy chooses actions for automated seats.
type DecisionPolicy interface {
	Decide(v View) Decision
}

// PolicyFunc adapts a function to DecisionPolicy.
type PolicyFunc func(v View) Decision

// Decide implements DecisionPolicy.
func (f PolicyFunc) Decide(v View) Decision {
	return f(v)
}
