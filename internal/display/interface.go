package display

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/tablestakes/internal/game"
)

// ErrQuit is returned by Play when the player quits mid-hand.
var ErrQuit = errors.New("player quit")

// Interface prompts human seats for actions over a line-based terminal.
type Interface struct {
	in     *bufio.Scanner
	out    io.Writer
	styles *Styles
	logger *log.Logger
}

// NewInterface creates an interface reading commands from in.
func NewInterface(in io.Reader, out io.Writer, logger *log.Logger) *Interface {
	return &Interface{
		in:     bufio.NewScanner(in),
		out:    out,
		styles: NewStyles(out),
		logger: logger.WithPrefix("display"),
	}
}

// Play prompts whichever human is on action until the hand is complete.
func (ti *Interface) Play(h *game.Hand) error {
	for !h.IsComplete() {
		seat := h.OnAction()
		p, ok := h.Participant(seat)
		if !ok {
			return fmt.Errorf("no seat on action in round %s", h.Round())
		}
		if p.Kind != game.Human {
			return fmt.Errorf("seat %d is on action but is not human", seat)
		}

		cont, err := ti.PromptForAction(h, seat)
		if err != nil {
			return err
		}
		if !cont {
			return ErrQuit
		}
	}
	return nil
}

// PromptForAction reads commands until one is applied for seat. It returns
// false if the player quits or input ends.
func (ti *Interface) PromptForAction(h *game.Hand, seat int) (bool, error) {
	ti.showStatus(h, seat)

	for {
		fmt.Fprint(ti.out, ti.styles.Actions.Render("> "))
		if !ti.in.Scan() {
			if err := ti.in.Err(); err != nil {
				return false, fmt.Errorf("read input: %w", err)
			}
			ti.logger.Info("Input closed")
			return false, nil
		}

		cmd, err := ParseCommand(ti.in.Text())
		if err != nil {
			ti.errorf("%v", err)
			continue
		}
		ti.logger.Debug("Command received", "seat", seat, "kind", cmd.Kind, "action", cmd.Decision.Action)

		switch cmd.Kind {
		case CmdNone:
			continue
		case CmdQuit:
			return false, nil
		case CmdHelp:
			for _, line := range helpLines {
				fmt.Fprintln(ti.out, ti.styles.Info.Render(line))
			}
			continue
		case CmdHand:
			p, _ := h.Participant(seat)
			fmt.Fprintf(ti.out, "Your hole cards: %s\n", ti.styles.Cards(p.HoleCards))
			continue
		case CmdPot:
			fmt.Fprintf(ti.out, "Pot: $%d\nCurrent bet: $%d\n", h.Pot(), h.HighestCommitment())
			continue
		case CmdPlayers:
			ti.showPlayers(h)
			continue
		case CmdAllIn:
			p, _ := h.Participant(seat)
			cmd.Decision = game.Decision{Action: game.Raise, RaiseBy: p.Stack - p.ToCall(h.HighestCommitment())}
			if cmd.Decision.RaiseBy <= 0 {
				cmd.Decision = game.Decision{Action: game.Call}
			}
		}

		err = h.Apply(seat, cmd.Decision)
		if errors.Is(err, game.ErrInvalidAction) {
			ti.errorf("%v", err)
			continue
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}
}

func (ti *Interface) showStatus(h *game.Hand, seat int) {
	p, _ := h.Participant(seat)
	toCall := p.ToCall(h.HighestCommitment())

	status := fmt.Sprintf("%s • Board %s • Pot $%d\n%s: %s • Stack $%d",
		StreetName(h.Round()),
		ti.styles.Cards(h.Board()),
		h.Pot(),
		p.Name,
		ti.styles.Cards(p.HoleCards),
		p.Stack)
	if toCall > 0 {
		status += fmt.Sprintf(" • $%d to call", toCall)
	} else {
		status += " • nothing to call"
	}
	fmt.Fprintln(ti.out, ti.styles.Panel.Render(status))
}

func (ti *Interface) showPlayers(h *game.Hand) {
	fmt.Fprintln(ti.out, "Players:")
	for _, p := range h.Participants() {
		status := ""
		switch {
		case p.Folded:
			status = " (folded)"
		case p.AllIn:
			status = " (all-in)"
		}
		marker := ""
		if p.Seat == h.OnAction() {
			marker = " <"
		}
		fmt.Fprintf(ti.out, "  %s: $%d, $%d in this round%s%s\n", p.Name, p.Stack, p.Committed, status, marker)
	}
}

func (ti *Interface) errorf(format string, args ...any) {
	fmt.Fprintln(ti.out, ti.styles.Error.Render("Error: "+fmt.Sprintf(format, args...)))
}
