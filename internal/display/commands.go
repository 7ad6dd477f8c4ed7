package display

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/tablestakes/internal/game"
)

// CommandKind identifies what a line of input asks for.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdAction
	CmdAllIn
	CmdHand
	CmdPot
	CmdPlayers
	CmdHelp
	CmdQuit
)

// Command is a parsed line of player input.
type Command struct {
	Kind     CommandKind
	Decision game.Decision
}

// ErrUnknownCommand is returned for input that matches no command.
var ErrUnknownCommand = errors.New("unknown command")

// ParseCommand parses one line such as "call", "r 20" or "fold".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{Kind: CmdNone}, nil
	}
	action, args := fields[0], fields[1:]

	switch action {
	case "call", "c":
		return Command{Kind: CmdAction, Decision: game.Decision{Action: game.Call}}, nil
	case "check", "ch", "k":
		return Command{Kind: CmdAction, Decision: game.Decision{Action: game.Check}}, nil
	case "fold", "f":
		return Command{Kind: CmdAction, Decision: game.Decision{Action: game.Fold}}, nil
	case "raise", "r", "bet", "b":
		if len(args) == 0 {
			return Command{}, fmt.Errorf("specify raise amount: 'raise <amount>'")
		}
		amount, err := strconv.Atoi(args[0])
		if err != nil || amount <= 0 {
			return Command{}, fmt.Errorf("invalid amount: %s", args[0])
		}
		return Command{Kind: CmdAction, Decision: game.Decision{Action: game.Raise, RaiseBy: amount}}, nil
	case "allin", "all", "a":
		return Command{Kind: CmdAllIn}, nil
	case "hand", "h", "cards":
		return Command{Kind: CmdHand}, nil
	case "pot", "p":
		return Command{Kind: CmdPot}, nil
	case "players", "pl":
		return Command{Kind: CmdPlayers}, nil
	case "help", "?":
		return Command{Kind: CmdHelp}, nil
	case "quit", "q", "exit":
		return Command{Kind: CmdQuit}, nil
	default:
		return Command{}, fmt.Errorf("%w: %s. Type 'help' for available commands", ErrUnknownCommand, action)
	}
}

var helpLines = []string{
	"Game actions:",
	"  call        - Call the current bet, or check if nothing is owed",
	"  check       - Check when no bet is owed",
	"  raise <amt> - Call and raise by <amt>",
	"  allin       - Put in your whole stack",
	"  fold        - Fold your hand",
	"Information:",
	"  hand        - Show your hole cards",
	"  pot         - Show pot information",
	"  players     - Show all player information",
	"Utility:",
	"  help        - Show this help",
	"  quit        - Quit the game",
}
