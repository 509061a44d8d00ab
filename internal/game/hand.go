package game

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/lox/euchrebot/euchre"
)

// HandSize is the number of cards dealt to each seat.
const HandSize = 5

// KittySize is the number of undealt cards.
const KittySize = 4

// Result is the outcome of one completed hand.
type Result struct {
	Trump  euchre.Suit
	Caller int // seat that named trump
	Alone  bool
	Tricks [2]int // tricks won per team
	Points [2]int // points scored per team
}

// Hand runs one complete hand of euchre: deal, trump selection, dealer
// exchange, five tricks and scoring. The runner owns the authoritative
// state; agents only ever see read-only snapshots.
type Hand struct {
	rng    *rand.Rand
	logger *log.Logger
	agents [NumSeats]Agent
	dealer int

	hands    [NumSeats][]euchre.Card
	kitty    []euchre.Card
	upcard   *euchre.Card
	trump    euchre.Suit
	caller   int
	inactive int

	trick       *euchre.Trick
	played      []SeatCard
	voids       map[euchre.Suit][]int
	trickCounts [2]int
}

// NewHand deals a fresh hand with the supplied RNG. The logger is used
// for rule-violation diagnostics and may not be nil.
func NewHand(rng *rand.Rand, logger *log.Logger, dealer int, agents [NumSeats]Agent) *Hand {
	h := &Hand{
		rng:      rng,
		logger:   logger.WithPrefix("hand"),
		agents:   agents,
		dealer:   dealer,
		trump:    euchre.NoSuit,
		caller:   NoSeat,
		inactive: NoSeat,
		voids:    make(map[euchre.Suit][]int),
	}
	h.deal()
	return h
}

func (h *Hand) deal() {
	cards := euchre.ShuffledDeck(h.rng)
	for seat := 0; seat < NumSeats; seat++ {
		h.hands[seat] = append([]euchre.Card(nil), cards[seat*HandSize:(seat+1)*HandSize]...)
	}
	h.kitty = append([]euchre.Card(nil), cards[NumSeats*HandSize:]...)
	up := h.kitty[0]
	h.upcard = &up
}

// Run plays the hand to completion and returns the result. An error is
// returned only for internal inconsistencies, never for agent behavior
// (illegal agent choices are corrected and logged).
func (h *Hand) Run() (*Result, error) {
	h.selectTrump()

	leader := NextSeat(h.dealer)
	if leader == h.inactive {
		leader = NextSeat(leader)
	}
	for len(h.hands[0])+len(h.hands[1])+len(h.hands[2])+len(h.hands[3]) > h.remainingInactive() {
		winner, err := h.playTrick(leader)
		if err != nil {
			return nil, err
		}
		h.trickCounts[TeamOf(winner)]++
		leader = winner
	}

	return h.score(), nil
}

// remainingInactive is the card count that will never be played: the
// sitting-out partner keeps their dealt hand face down.
func (h *Hand) remainingInactive() int {
	if h.inactive == NoSeat {
		return 0
	}
	return len(h.hands[h.inactive])
}

// selectTrump runs the order-up round on the flipped kitty card and, if
// everyone passes, the open call round. If everyone passes again the
// dealer is stuck and must call.
func (h *Hand) selectTrump() {
	// Round 1: order up the flipped card
	for i := 1; i <= NumSeats; i++ {
		seat := (h.dealer + i) % NumSeats
		if h.agents[seat].ShouldAcceptTrump(h.snapshot(seat)) {
			h.trump = h.upcard.Suit
			h.caller = seat
			h.dealerExchange()
			h.maybeGoAlone()
			return
		}
	}

	turnedDown := h.upcard.Suit

	// Round 2: open call, turned-down suit excluded, dealer stuck
	for i := 1; i <= NumSeats; i++ {
		seat := (h.dealer + i) % NumSeats
		snap := h.snapshot(seat)
		snap.Excluded = turnedDown
		snap.MustCall = seat == h.dealer
		suit := h.agents[seat].ChooseTrumpSuit(snap)
		if suit == turnedDown {
			h.logger.Warn("agent called the turned-down suit, treating as pass",
				"seat", seat, "suit", suit.Name())
			suit = euchre.NoSuit
		}
		if suit == euchre.NoSuit && seat == h.dealer {
			suit = h.defaultTrump(seat, turnedDown)
			h.logger.Debug("dealer stuck, forced trump", "seat", seat, "suit", suit.Name())
		}
		if suit != euchre.NoSuit {
			h.trump = suit
			h.caller = seat
			h.foldUpcard()
			h.maybeGoAlone()
			return
		}
	}
}

// defaultTrump picks the seat's longest non-excluded suit, used when the
// stuck dealer's agent passes anyway.
func (h *Hand) defaultTrump(seat int, excluded euchre.Suit) euchre.Suit {
	counts := make(map[euchre.Suit]int)
	for _, c := range h.hands[seat] {
		counts[c.Suit]++
	}
	best := euchre.NoSuit
	bestCount := -1
	for _, suit := range euchre.Suits {
		if suit == excluded {
			continue
		}
		if counts[suit] > bestCount {
			best = suit
			bestCount = counts[suit]
		}
	}
	return best
}

// dealerExchange gives the dealer the upcard and buries their discard.
func (h *Hand) dealerExchange() {
	h.hands[h.dealer] = append(h.hands[h.dealer], *h.upcard)
	h.kitty = h.kitty[1:]
	h.upcard = nil

	discard := h.agents[h.dealer].ChooseDiscard(h.snapshot(h.dealer))
	if !h.removeCard(h.dealer, discard) {
		h.logger.Error("dealer discarded a card not in hand, burying last card",
			"seat", h.dealer, "card", discard)
		last := len(h.hands[h.dealer]) - 1
		discard = h.hands[h.dealer][last]
		h.hands[h.dealer] = h.hands[h.dealer][:last]
	}
	h.kitty = append(h.kitty, discard)
}

// foldUpcard turns the upcard back down into the kitty.
func (h *Hand) foldUpcard() {
	h.upcard = nil
}

func (h *Hand) maybeGoAlone() {
	if h.agents[h.caller].ShouldGoAlone(h.snapshot(h.caller)) {
		h.inactive = Partner(h.caller)
		h.logger.Debug("caller going alone", "seat", h.caller, "sitting_out", h.inactive)
	}
}

func (h *Hand) playTrick(leader int) (int, error) {
	h.trick = euchre.NewTrick(leader)

	for i := 0; i < NumSeats; i++ {
		seat := (leader + i) % NumSeats
		if seat == h.inactive {
			continue
		}
		if err := h.playCard(seat); err != nil {
			return euchre.NoWinner, err
		}
	}

	active := NumSeats
	if h.inactive != NoSeat {
		active--
	}
	if !h.trick.Complete(active) {
		return euchre.NoWinner, fmt.Errorf("game: trick has %d of %d cards", h.trick.Size(), active)
	}

	winner := h.trick.Winner(h.trump)
	if winner == euchre.NoWinner {
		return euchre.NoWinner, fmt.Errorf("game: trick completed with no winner: %+v", h.trick)
	}
	for i := 0; i < NumSeats; i++ {
		seat := (leader + i) % NumSeats
		if card, ok := h.trick.Cards[seat]; ok {
			h.played = append(h.played, SeatCard{Seat: seat, Card: card})
		}
	}
	h.trick = nil
	return winner, nil
}

func (h *Hand) playCard(seat int) error {
	legal, err := euchre.LegalMoves(h.hands[seat], h.trick.Lead, h.trump)
	if err != nil {
		return fmt.Errorf("game: seat %d has no cards on trick %d: %w",
			seat, len(h.played)/NumSeats+1, err)
	}

	card := h.agents[seat].SelectCardToPlay(h.snapshot(seat))
	if !containsCard(legal, card) {
		h.logger.Error("agent chose an illegal card, substituting",
			"seat", seat, "card", card, "legal", fmt.Sprint(legal))
		card = legal[0]
	}

	// A failure to follow the led suit marks the seat void in it for the
	// rest of the hand.
	if h.trick.Lead != euchre.NoSuit && euchre.EffectiveSuit(card, h.trump) != h.trick.Lead {
		h.markVoid(seat, h.trick.Lead)
	}

	h.removeCard(seat, card)
	return h.trick.Play(seat, card, h.trump)
}

func (h *Hand) markVoid(seat int, suit euchre.Suit) {
	for _, s := range h.voids[suit] {
		if s == seat {
			return
		}
	}
	h.voids[suit] = append(h.voids[suit], seat)
}

func (h *Hand) removeCard(seat int, card euchre.Card) bool {
	for i, c := range h.hands[seat] {
		if c == card {
			h.hands[seat] = append(h.hands[seat][:i], h.hands[seat][i+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) score() *Result {
	result := &Result{
		Trump:  h.trump,
		Caller: h.caller,
		Alone:  h.inactive != NoSeat,
		Tricks: h.trickCounts,
	}

	makers := TeamOf(h.caller)
	defenders := 1 - makers
	switch {
	case result.Tricks[makers] == 5 && result.Alone:
		result.Points[makers] = 4
	case result.Tricks[makers] == 5:
		result.Points[makers] = 2
	case result.Tricks[makers] >= 3:
		result.Points[makers] = 1
	default:
		result.Points[defenders] = 2 // euchred
	}
	return result
}

// snapshot builds the read-only view for a seat's next decision.
func (h *Hand) snapshot(seat int) *Snapshot {
	snap := &Snapshot{
		Seat:        seat,
		Hand:        append([]euchre.Card(nil), h.hands[seat]...),
		Trump:       h.trump,
		Lead:        euchre.NoSuit,
		Excluded:    euchre.NoSuit,
		Played:      append([]SeatCard(nil), h.played...),
		Kitty:       h.visibleKitty(),
		Inactive:    h.inactive,
		Caller:      h.caller,
		Dealer:      h.dealer,
		TrickCounts: h.trickCounts,
		Voids:       make(map[euchre.Suit][]int, len(h.voids)),
	}
	for suit, seats := range h.voids {
		snap.Voids[suit] = append([]int(nil), seats...)
	}
	if h.upcard != nil {
		up := *h.upcard
		snap.Upcard = &up
	}
	if h.trick != nil {
		snap.Lead = h.trick.Lead
		trick := euchre.NewTrick(h.trick.Leader)
		trick.Lead = h.trick.Lead
		for s, c := range h.trick.Cards {
			trick.Cards[s] = c
		}
		snap.Trick = trick
	}
	return snap
}

// visibleKitty is the out-of-play card list for snapshots. While the
// upcard is still face up it is exposed via Upcard, not here.
func (h *Hand) visibleKitty() []euchre.Card {
	if h.upcard != nil {
		return append([]euchre.Card(nil), h.kitty[1:]...)
	}
	return append([]euchre.Card(nil), h.kitty...)
}

func containsCard(cards []euchre.Card, card euchre.Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}
