package bot

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/tablestakes/internal/game"
)

// RandBot picks uniformly among the legal actions. Raises are always one
// raise unit. It is not safe for concurrent use.
type RandBot struct {
	rng     *rand.Rand
	logger  *log.Logger
	raiseBy int
}

// NewRandBot creates a new RandBot instance.
func NewRandBot(rng *rand.Rand, logger *log.Logger, raiseBy int) *RandBot {
	return &RandBot{rng: rng, logger: logger, raiseBy: raiseBy}
}

// Decide implements game.DecisionPolicy.
func (r *RandBot) Decide(v game.View) game.Decision {
	actions := []game.Action{game.Call, game.Raise}
	if v.ToCall() > 0 {
		actions = append(actions, game.Fold)
	}

	action := actions[r.rng.IntN(len(actions))]
	d := game.Decision{Action: action, Reasoning: "rand-bot random action"}
	if action == game.Raise {
		d.RaiseBy = r.raiseBy
	}
	r.logger.Debug("Bot decision", "player", v.Self.Name, "round", v.Round, "toCall", v.ToCall(), "action", d.Action, "raiseBy", d.RaiseBy)
	return d
}
