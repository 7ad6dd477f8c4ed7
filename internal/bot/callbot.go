package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/tablestakes/internal/game"
)

// CallBot checks or calls every decision, all-in for less if it must.
type CallBot struct {
	logger *log.Logger
}

// NewCallBot creates a new CallBot instance.
func NewCallBot(logger *log.Logger) *CallBot {
	return &CallBot{logger: logger}
}

// Decide implements game.DecisionPolicy.
func (c *CallBot) Decide(v game.View) game.Decision {
	d := game.Decision{Action: game.Call, Reasoning: "call-bot calling"}
	if v.ToCall() == 0 {
		d = game.Decision{Action: game.Check, Reasoning: "call-bot checking"}
	}
	c.logger.Debug("Bot decision", "player", v.Self.Name, "round", v.Round, "toCall", v.ToCall(), "action", d.Action)
	return d
}
