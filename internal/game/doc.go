// Package game implements the betting state machine for a single hand of
// table-stakes hold'em.
//
// The main type is Hand, which owns everything that changes during a hand:
// participants, board, pot, the current round and the seat on action.
//
// # Basic Usage
//
// Create a hand with one human seat and two bots, then feed it the human's
// actions. Automated seats act inside each call until the human is on action
// again or the hand is over:
//
//	seats := []game.Seat{
//	    {Name: "You", Kind: game.Human, Stack: 100},
//	    {Name: "Bot 1", Kind: game.Automated, Stack: 100},
//	    {Name: "Bot 2", Kind: game.Automated, Stack: 100},
//	}
//	h, err := game.NewHand(rng, seats, game.WithPolicy(policy))
//	// ...
//	err = h.Raise(0, 10)
//	if h.IsComplete() {
//	    res := h.Result()
//	}
//
// # Deterministic Testing
//
// The RNG is required so that shuffles are explicit. For complete control
// pass a stacked deck:
//
//	deck := poker.NewStackedDeck(cards...)
//	h, err := game.NewHand(nil, seats, game.WithDeck(deck))
//
// # Architecture
//
// Hand delegates to narrow collaborators:
//   - poker.CardSource: deals the shuffled cards
//   - poker.Evaluator: ranks hands at showdown
//   - DecisionPolicy: picks actions for automated seats
//   - EventBus: receives structured events for rendering and history
//
// A Hand is not safe for concurrent use. Independent hands share nothing and
// can run in parallel.
package game
