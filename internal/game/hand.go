package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/tablestakes/internal/handid"
	"github.com/lox/tablestakes/poker"
)

// Hand is the state of one hand from the deal to the showdown.
type Hand struct {
	id        string
	players   []*Participant
	policies  []DecisionPolicy
	deck      poker.CardSource
	evaluator poker.Evaluator
	bus       EventBus
	clock     quartz.Clock
	logger    *log.Logger

	round    Round
	board    []poker.Card
	pot      int
	betting  bettingRound
	onAction int // -1 when nobody is on action
	result   *Result
}

// NewHand validates the seats, deals two hole cards to each and plays any
// automated seats up to the first human decision.
//
// rng shuffles a fresh deck and may be nil only when WithDeck is given.
func NewHand(rng *rand.Rand, seats []Seat, opts ...HandOption) (*Hand, error) {
	cfg := &handConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(seats) < 2 {
		return nil, misconfigured("at least 2 seats required, got %d", len(seats))
	}
	if len(seats) > MaxSeats {
		return nil, misconfigured("at most %d seats allowed, got %d", MaxSeats, len(seats))
	}

	h := &Hand{
		id:        cfg.handID,
		deck:      cfg.deck,
		evaluator: cfg.evaluator,
		bus:       cfg.bus,
		clock:     cfg.clock,
		logger:    cfg.logger,
		round:     PreFlop,
		onAction:  -1,
	}

	for i, s := range seats {
		if s.Stack <= 0 {
			return nil, misconfigured("seat %d: starting stack must be positive, got %d", i, s.Stack)
		}
		policy := s.Policy
		if policy == nil {
			policy = cfg.policy
		}
		if s.Kind == Automated && policy == nil {
			return nil, misconfigured("seat %d: automated seat has no decision policy", i)
		}
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("Seat %d", i+1)
		}
		h.players = append(h.players, &Participant{
			Seat:          i,
			Name:          name,
			Kind:          s.Kind,
			StartingStack: s.Stack,
			Stack:         s.Stack,
		})
		h.policies = append(h.policies, policy)
	}

	if h.deck == nil {
		if rng == nil {
			return nil, misconfigured("an rng or a deck is required")
		}
		h.deck = poker.NewDeck(rng)
	}
	if h.evaluator == nil {
		h.evaluator = poker.NewEvaluator()
	}
	if h.bus == nil {
		h.bus = NewEventBus()
	}
	if h.clock == nil {
		h.clock = quartz.NewReal()
	}
	if h.logger == nil {
		h.logger = log.New(io.Discard)
	}
	if h.id == "" {
		id, err := handid.New()
		if err != nil {
			return nil, err
		}
		h.id = id
	}
	h.logger = h.logger.WithPrefix("hand").With("hand", h.id)

	infos := make([]SeatInfo, len(h.players))
	for i, p := range h.players {
		infos[i] = SeatInfo{Seat: p.Seat, Name: p.Name, Kind: p.Kind, Stack: p.Stack}
	}
	h.publish(HandStartedEvent{eventMeta: h.meta(), Seats: infos})

	if err := h.dealHoleCards(); err != nil {
		return nil, err
	}

	h.onAction = h.nextActive(0)
	h.publish(RoundChangedEvent{eventMeta: h.meta(), Round: PreFlop, Pot: h.pot})
	h.logger.Info("Hand started", "seats", len(h.players))

	if err := h.runAutomated(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Hand) dealHoleCards() error {
	for range 2 {
		for _, p := range h.players {
			c, err := h.deck.DealOne()
			if err != nil {
				return fmt.Errorf("deal hole cards: %w", err)
			}
			p.HoleCards = append(p.HoleCards, c)
		}
	}
	for _, p := range h.players {
		h.publish(HoleCardsDealtEvent{
			eventMeta: h.meta(),
			Seat:      p.Seat,
			Name:      p.Name,
			Kind:      p.Kind,
			Cards:     append([]poker.Card(nil), p.HoleCards...),
		})
	}
	return nil
}

// Call matches the highest commitment, or checks when nothing is owed. A
// short stack calls all-in for less.
func (h *Hand) Call(seat int) error {
	return h.Apply(seat, Decision{Action: Call})
}

// Check passes when nothing is owed.
func (h *Hand) Check(seat int) error {
	return h.Apply(seat, Decision{Action: Check})
}

// Raise calls and then puts in raiseBy more. The total is capped at the
// seat's stack, which makes a short raise an all-in.
func (h *Hand) Raise(seat, raiseBy int) error {
	return h.Apply(seat, Decision{Action: Raise, RaiseBy: raiseBy})
}

// Fold gives up the hand. If at most one seat is left holding cards the hand
// goes straight to Showdown without dealing the rest of the board.
func (h *Hand) Fold(seat int) error {
	return h.Apply(seat, Decision{Action: Fold})
}

// Apply applies a decision for seat and then plays automated seats until a
// human is on action or the hand is over. A rejected decision returns an
// *InvalidActionError and leaves the hand untouched.
func (h *Hand) Apply(seat int, d Decision) error {
	if err := h.apply(seat, d); err != nil {
		return err
	}
	return h.runAutomated()
}

func (h *Hand) runAutomated() error {
	for h.round != Showdown && h.onAction >= 0 {
		p := h.players[h.onAction]
		if p.Kind != Automated {
			return nil
		}

		d := h.policies[p.Seat].Decide(h.view(p))
		err := h.apply(p.Seat, d)
		if errors.Is(err, ErrInvalidAction) {
			h.logger.Warn("Policy chose an invalid action, calling instead",
				"seat", p.Seat, "action", d.Action, "error", err)
			err = h.apply(p.Seat, Decision{Action: Call, Reasoning: "fallback after invalid " + d.Action.String()})
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (h *Hand) apply(seat int, d Decision) error {
	p, err := h.actor(seat, d.Action)
	if err != nil {
		return err
	}

	toCall := p.ToCall(h.betting.highest)
	action := d.Action
	amount := 0

	switch d.Action {
	case Check:
		if toCall > 0 {
			return invalid(seat, d.Action, "%d to call", toCall)
		}
	case Call:
		if toCall == 0 {
			action = Check
		}
		amount = p.commit(toCall)
	case Raise:
		if d.RaiseBy <= 0 {
			return invalid(seat, d.Action, "raise must be positive, got %d", d.RaiseBy)
		}
		// Only the stack can be put in, so cap before adding.
		amount = p.commit(toCall + min(d.RaiseBy, p.Stack))
		h.betting.highest = max(h.betting.highest, p.Committed)
	case Fold:
		p.Folded = true
	default:
		return invalid(seat, d.Action, "unknown action")
	}

	h.pot += amount
	h.betting.actions++

	h.logger.Debug("Action applied",
		"round", h.round,
		"seat", seat,
		"player", p.Name,
		"action", action,
		"amount", amount,
		"committed", p.Committed,
		"highest", h.betting.highest,
		"pot", h.pot,
		"allIn", p.AllIn)

	h.publish(ActionEvent{
		eventMeta: h.meta(),
		Seat:      seat,
		Name:      p.Name,
		Round:     h.round,
		Action:    action,
		Amount:    amount,
		RaiseBy:   d.RaiseBy,
		Committed: p.Committed,
		Highest:   h.betting.highest,
		Stack:     p.Stack,
		Pot:       h.pot,
		AllIn:     p.AllIn,
		Reasoning: d.Reasoning,
	})

	if action == Fold && h.contenders() <= 1 {
		h.logger.Debug("Everyone else folded", "seat", seat)
		return h.finish()
	}
	return h.advance()
}

// actor returns the participant for seat if it may act now.
func (h *Hand) actor(seat int, action Action) (*Participant, error) {
	if h.round == Showdown {
		return nil, invalid(seat, action, "hand is over")
	}
	if seat < 0 || seat >= len(h.players) {
		return nil, invalid(seat, action, "no such seat")
	}
	p := h.players[seat]
	switch {
	case p.Folded:
		return nil, invalid(seat, action, "already folded")
	case p.AllIn:
		return nil, invalid(seat, action, "already all-in")
	case seat != h.onAction:
		return nil, invalid(seat, action, "not on action, seat %d is", h.onAction)
	}
	return p, nil
}

// advance moves the cursor to the next seat that can act, or moves to the
// next round when nothing more is owed.
func (h *Hand) advance() error {
	if h.betting.closed(h.players) {
		return h.nextRound()
	}
	next := h.nextActive(h.onAction + 1)
	if next < 0 {
		return h.nextRound()
	}
	h.onAction = next
	return nil
}

// nextRound deals the next street. When fewer than two seats can still act
// there is nobody to bet against, so the board is run out to Showdown.
func (h *Hand) nextRound() error {
	for h.round < River {
		next := h.round + 1
		dealt := make([]poker.Card, 0, next.boardCards())
		for range next.boardCards() {
			c, err := h.deck.DealOne()
			if err != nil {
				return fmt.Errorf("deal %s: %w", next, err)
			}
			dealt = append(dealt, c)
		}

		h.board = append(h.board, dealt...)
		h.round = next
		for _, p := range h.players {
			p.Committed = 0
		}
		h.betting.reset()
		h.onAction = -1

		h.logger.Info("Round changed", "round", h.round, "board", poker.FormatCards(h.board), "pot", h.pot)
		h.publish(RoundChangedEvent{
			eventMeta: h.meta(),
			Round:     h.round,
			Dealt:     dealt,
			Board:     h.Board(),
			Pot:       h.pot,
		})

		if h.activeCount() >= 2 {
			h.onAction = h.nextActive(0)
			return nil
		}
	}
	return h.finish()
}

func (h *Hand) finish() error {
	h.round = Showdown
	h.onAction = -1
	h.publish(RoundChangedEvent{eventMeta: h.meta(), Round: Showdown, Board: h.Board(), Pot: h.pot})

	res, err := h.resolveShowdown()
	if err != nil {
		return fmt.Errorf("showdown: %w", err)
	}
	h.result = res

	for _, s := range res.Shown {
		h.publish(HandShownEvent{eventMeta: h.meta(), Seat: s.Seat, Name: s.Name, Cards: s.Cards, Rank: s.Rank})
	}
	for _, a := range res.Awards {
		h.logger.Info("Pot awarded", "seat", a.Seat, "player", a.Name, "amount", a.Amount, "defaultWin", res.DefaultWin)
		h.publish(PotAwardedEvent{
			eventMeta:  h.meta(),
			Seat:       a.Seat,
			Name:       a.Name,
			Amount:     a.Amount,
			Winners:    len(res.Awards),
			DefaultWin: res.DefaultWin,
		})
	}
	if res.Discarded > 0 {
		h.logger.Info("Odd chips left unallocated", "discarded", res.Discarded)
	}

	stacks := make([]int, len(h.players))
	for i, p := range h.players {
		stacks[i] = p.Stack
	}
	h.publish(HandEndedEvent{eventMeta: h.meta(), Result: res.clone(), Board: h.Board(), Stacks: stacks})
	return nil
}

func (h *Hand) nextActive(from int) int {
	n := len(h.players)
	for i := 0; i < n; i++ {
		pos := (from + i) % n
		if h.players[pos].IsActive() {
			return pos
		}
	}
	return -1
}

func (h *Hand) activeCount() int {
	n := 0
	for _, p := range h.players {
		if p.IsActive() {
			n++
		}
	}
	return n
}

// contenders counts seats still holding cards, all-in or not.
func (h *Hand) contenders() int {
	n := 0
	for _, p := range h.players {
		if !p.Folded {
			n++
		}
	}
	return n
}

func (h *Hand) view(p *Participant) View {
	return View{
		Self:              p.clone(),
		Board:             h.Board(),
		HighestCommitment: h.betting.highest,
		Round:             h.round,
		Pot:               h.pot,
	}
}

func (h *Hand) meta() eventMeta {
	return eventMeta{handID: h.id, timestamp: h.clock.Now()}
}

func (h *Hand) publish(e Event) {
	h.bus.Publish(e)
}

// ID returns the hand ID.
func (h *Hand) ID() string { return h.id }

// Round returns the current round.
func (h *Hand) Round() Round { return h.round }

// Pot returns every chip committed during the hand. It is not reduced when
// the pot is paid out; see Result.
func (h *Hand) Pot() int { return h.pot }

// HighestCommitment returns what active seats must match this round.
func (h *Hand) HighestCommitment() int { return h.betting.highest }

// OnAction returns the seat on action, or -1 if nobody is.
func (h *Hand) OnAction() int { return h.onAction }

// IsComplete returns true once the hand has reached Showdown.
func (h *Hand) IsComplete() bool { return h.round == Showdown }

// Board returns a copy of the community cards.
func (h *Hand) Board() []poker.Card {
	return append([]poker.Card(nil), h.board...)
}

// Participant returns a copy of the participant in seat.
func (h *Hand) Participant(seat int) (Participant, bool) {
	if seat < 0 || seat >= len(h.players) {
		return Participant{}, false
	}
	return h.players[seat].clone(), true
}

// Participants returns copies of every participant in seat order.
func (h *Hand) Participants() []Participant {
	out := make([]Participant, len(h.players))
	for i, p := range h.players {
		out[i] = p.clone()
	}
	return out
}

// View returns what the decision policy would see for seat.
func (h *Hand) View(seat int) (View, bool) {
	if seat < 0 || seat >= len(h.players) {
		return View{}, false
	}
	return h.view(h.players[seat]), true
}

// Result returns the showdown result, or nil before the hand is complete.
func (h *Hand) Result() *Result {
	if h.result == nil {
		return nil
	}
	r := h.result.clone()
	return &r
}
