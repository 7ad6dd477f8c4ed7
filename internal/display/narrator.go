package display

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/lox/tablestakes/internal/game"
)

// Narrator writes a hand-history style log of hand events. Automated seats'
// hole cards stay hidden until showdown unless RevealAll is set.
type Narrator struct {
	RevealAll bool

	mu     sync.Mutex
	out    io.Writer
	styles *Styles
	names  map[int]string
}

// NewNarrator creates a narrator writing to out.
func NewNarrator(out io.Writer) *Narrator {
	return &Narrator{
		out:    out,
		styles: NewStyles(out),
		names:  make(map[int]string),
	}
}

// OnEvent implements game.EventSubscriber.
func (n *Narrator) OnEvent(event game.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, line := range n.lines(event) {
		fmt.Fprintln(n.out, line)
	}
}

func (n *Narrator) lines(event game.Event) []string {
	s := n.styles
	switch e := event.(type) {
	case game.HandStartedEvent:
		out := []string{s.Header.Render(fmt.Sprintf("Hand %s • %d players", e.HandID(), len(e.Seats)))}
		for _, seat := range e.Seats {
			n.names[seat.Seat] = seat.Name
			kind := "AI"
			if seat.Kind == game.Human {
				kind = "You"
			}
			out = append(out, fmt.Sprintf("Seat %d: %s (%s) - $%d", seat.Seat+1, seat.Name, kind, seat.Stack))
		}
		return out

	case game.HoleCardsDealtEvent:
		if e.Kind != game.Human && !n.RevealAll {
			return nil
		}
		return []string{s.HandInfo.Render("Dealt to "+e.Name+":") + " " + s.Cards(e.Cards)}

	case game.RoundChangedEvent:
		title := "*** " + StreetName(e.Round) + " ***"
		if len(e.Board) > 0 {
			title += " " + s.Cards(e.Board)
		}
		return []string{"", s.Street.Render(title)}

	case game.ActionEvent:
		return []string{s.Actions.Render(e.Name+":") + " " + DescribeAction(e)}

	case game.HandShownEvent:
		return []string{fmt.Sprintf("%s: shows %s (%s)", e.Name, s.Cards(e.Cards), e.Rank)}

	case game.PotAwardedEvent:
		if e.DefaultWin {
			return []string{s.Success.Render(fmt.Sprintf("%s wins $%d uncontested", e.Name, e.Amount))}
		}
		if e.Winners > 1 {
			return []string{s.Success.Render(fmt.Sprintf("%s splits the pot and collects $%d", e.Name, e.Amount))}
		}
		return []string{s.Success.Render(fmt.Sprintf("%s collected $%d from pot", e.Name, e.Amount))}

	case game.HandEndedEvent:
		var out []string
		if e.Result.Discarded > 0 {
			out = append(out, s.Warning.Render(fmt.Sprintf("$%d odd chip(s) left unallocated", e.Result.Discarded)))
		}
		stacks := make([]string, len(e.Stacks))
		for i, st := range e.Stacks {
			stacks[i] = fmt.Sprintf("%s $%d", n.name(i), st)
		}
		return append(out, s.Info.Render("Final stacks: "+strings.Join(stacks, ", ")))
	}
	return nil
}

func (n *Narrator) name(seat int) string {
	if name, ok := n.names[seat]; ok {
		return name
	}
	return fmt.Sprintf("Seat %d", seat+1)
}

// StreetName returns the banner name of a round.
func StreetName(r game.Round) string {
	switch r {
	case game.PreFlop:
		return "PRE-FLOP"
	case game.Flop:
		return "FLOP"
	case game.Turn:
		return "TURN"
	case game.River:
		return "RIVER"
	case game.Showdown:
		return "SHOWDOWN"
	default:
		return strings.ToUpper(r.String())
	}
}

// DescribeAction renders an action in hand-history wording.
func DescribeAction(e game.ActionEvent) string {
	var text string
	switch e.Action {
	case game.Fold:
		text = "folds"
	case game.Check:
		text = "checks"
	case game.Call:
		text = fmt.Sprintf("calls $%d", e.Amount)
	case game.Raise:
		if e.Committed < e.Highest {
			text = fmt.Sprintf("calls $%d", e.Amount)
		} else {
			text = fmt.Sprintf("raises to $%d", e.Committed)
		}
	default:
		text = e.Action.String()
	}
	if e.AllIn {
		text += " and is all-in"
	}
	return text
}
