package game

import (
	"fmt"

	"github.com/lox/euchrebot/euchre"
)

// SeatCard is a card tagged with the seat that played it.
type SeatCard struct {
	Seat int
	Card euchre.Card
}

// Snapshot is the read-only view of the hand given to a decider at a
// single decision point. It is assembled fresh by the orchestration
// layer for every decision; deciders must never mutate it.
type Snapshot struct {
	// Seat is the acting player's seat.
	Seat int

	// Hand is the acting player's current hand.
	Hand []euchre.Card

	// Trump is the trump suit, or NoSuit during bidding.
	Trump euchre.Suit

	// Lead is the effective suit led this trick, or NoSuit when leading.
	Lead euchre.Suit

	// Trick is the current partial trick, nil between tricks.
	Trick *euchre.Trick

	// Played holds every card from completed tricks this hand, tagged
	// with the seat that played it. Cards in the current partial trick
	// live in Trick, not here.
	Played []SeatCard

	// Kitty holds the cards out of play for the whole hand. After the
	// dealer exchange it contains the dealer's discard in place of the
	// picked-up card.
	Kitty []euchre.Card

	// Upcard is the flipped kitty card during the order-up round, nil
	// otherwise.
	Upcard *euchre.Card

	// Voids maps a suit to the seats inferred to be void in it. Seats
	// earn an entry by failing to follow that suit when it was led.
	Voids map[euchre.Suit][]int

	// Inactive is the seat sitting out when a player goes alone, or
	// NoSeat.
	Inactive int

	// Caller is the seat that named trump, or NoSeat during bidding.
	Caller int

	// Excluded is the turned-down suit during the open call round, not
	// available as trump. NoSuit otherwise.
	Excluded euchre.Suit

	// Dealer is the dealer's seat.
	Dealer int

	// MustCall forces a trump call (stick the dealer): passing is not an
	// option for this decision.
	MustCall bool

	// TrickCounts holds tricks won so far by team 0 and team 1.
	TrickCounts [2]int
}

// NewSnapshot returns a snapshot for a seat with every sentinel field
// initialised: no trump, no lead, no caller, nobody sitting out. The
// hand is copied. Callers fill in the rest.
func NewSnapshot(seat int, hand []euchre.Card) *Snapshot {
	return &Snapshot{
		Seat:     seat,
		Hand:     append([]euchre.Card(nil), hand...),
		Trump:    euchre.NoSuit,
		Lead:     euchre.NoSuit,
		Excluded: euchre.NoSuit,
		Inactive: NoSeat,
		Caller:   NoSeat,
		Voids:    make(map[euchre.Suit][]int),
	}
}

// Team returns the acting player's team.
func (s *Snapshot) Team() int {
	return TeamOf(s.Seat)
}

// Clone returns a deep copy. Simulation code copies the snapshot before
// doing anything destructive so the caller's view is never aliased.
func (s *Snapshot) Clone() *Snapshot {
	out := *s
	out.Hand = append([]euchre.Card(nil), s.Hand...)
	out.Played = append([]SeatCard(nil), s.Played...)
	out.Kitty = append([]euchre.Card(nil), s.Kitty...)
	if s.Upcard != nil {
		up := *s.Upcard
		out.Upcard = &up
	}
	if s.Trick != nil {
		trick := euchre.NewTrick(s.Trick.Leader)
		trick.Lead = s.Trick.Lead
		for seat, card := range s.Trick.Cards {
			trick.Cards[seat] = card
		}
		out.Trick = trick
	}
	if s.Voids != nil {
		out.Voids = make(map[euchre.Suit][]int, len(s.Voids))
		for suit, seats := range s.Voids {
			out.Voids[suit] = append([]int(nil), seats...)
		}
	}
	return &out
}

// VoidIn reports whether seat is known to be void in suit.
func (s *Snapshot) VoidIn(seat int, suit euchre.Suit) bool {
	for _, v := range s.Voids[suit] {
		if v == seat {
			return true
		}
	}
	return false
}

// PlayedCount returns how many cards seat has committed this hand,
// including a card in the current partial trick.
func (s *Snapshot) PlayedCount(seat int) int {
	n := 0
	for _, sc := range s.Played {
		if sc.Seat == seat {
			n++
		}
	}
	if s.Trick != nil {
		if _, ok := s.Trick.Cards[seat]; ok {
			n++
		}
	}
	return n
}

// KnownCards returns every card whose location the acting player can
// see: their own hand, all played cards, the kitty, the upcard and the
// current partial trick.
func (s *Snapshot) KnownCards() map[euchre.Card]bool {
	known := make(map[euchre.Card]bool, euchre.DeckSize)
	for _, c := range s.Hand {
		known[c] = true
	}
	for _, sc := range s.Played {
		known[sc.Card] = true
	}
	for _, c := range s.Kitty {
		known[c] = true
	}
	if s.Upcard != nil {
		known[*s.Upcard] = true
	}
	if s.Trick != nil {
		for _, c := range s.Trick.Cards {
			known[c] = true
		}
	}
	return known
}

// Validate performs basic consistency checks on a caller-assembled
// snapshot: no duplicate known cards and a plausible seat.
func (s *Snapshot) Validate() error {
	if s.Seat < 0 || s.Seat >= NumSeats {
		return fmt.Errorf("game: invalid seat %d", s.Seat)
	}
	seen := make(map[euchre.Card]string)
	check := func(c euchre.Card, where string) error {
		if prev, ok := seen[c]; ok {
			return fmt.Errorf("game: card %v appears in both %s and %s", c, prev, where)
		}
		seen[c] = where
		return nil
	}
	for _, c := range s.Hand {
		if err := check(c, "hand"); err != nil {
			return err
		}
	}
	for _, sc := range s.Played {
		if err := check(sc.Card, "played"); err != nil {
			return err
		}
	}
	for _, c := range s.Kitty {
		if err := check(c, "kitty"); err != nil {
			return err
		}
	}
	if s.Trick != nil {
		for _, c := range s.Trick.Cards {
			if err := check(c, "trick"); err != nil {
				return err
			}
		}
	}
	if s.Upcard != nil {
		if where, ok := seen[*s.Upcard]; ok && where != "kitty" {
			return fmt.Errorf("game: upcard %v also appears in %s", *s.Upcard, where)
		}
	}
	return nil
}
