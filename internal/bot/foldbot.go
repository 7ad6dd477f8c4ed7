package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/tablestakes/internal/game"
)

// FoldBot checks when it can and folds to any bet.
type FoldBot struct {
	logger *log.Logger
}

// NewFoldBot creates a new FoldBot instance.
func NewFoldBot(logger *log.Logger) *FoldBot {
	return &FoldBot{logger: logger}
}

// Decide implements game.DecisionPolicy.
func (f *FoldBot) Decide(v game.View) game.Decision {
	d := game.Decision{Action: game.Fold, Reasoning: "fold-bot folding"}
	if v.ToCall() == 0 {
		d = game.Decision{Action: game.Check, Reasoning: "fold-bot checking"}
	}
	f.logger.Debug("Bot decision", "player", v.Self.Name, "round", v.Round, "toCall", v.ToCall(), "action", d.Action)
	return d
}
