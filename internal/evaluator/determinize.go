package evaluator

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/lox/euchrebot/euchre"
	"github.com/lox/euchrebot/internal/game"
)

// Deal is one fully-resolved hypothesis of the hidden cards: every seat
// holds a concrete hand consistent with everything the acting player
// knows. A Deal is scratch state for exactly one playout and never
// aliases the snapshot it came from.
type Deal struct {
	Hands       [game.NumSeats][]euchre.Card
	Kitty       []euchre.Card
	Played      []game.SeatCard
	Trick       *euchre.Trick
	Trump       euchre.Suit
	Inactive    int
	TrickCounts [2]int
}

// Determinize resolves the snapshot's hidden cards into a concrete Deal
// using the supplied RNG. Unknown cards are dealt uniformly at random to
// the other seats and the face-down kitty, honoring known suit voids
// where the remaining pool allows. Over-constrained voids are relaxed with a warning rather than
// failing: a stuck determinizer would deadlock the whole decision.
func Determinize(snap *game.Snapshot, rng *rand.Rand, logger *log.Logger) (*Deal, error) {
	deal := &Deal{
		Trump:       snap.Trump,
		Inactive:    snap.Inactive,
		TrickCounts: snap.TrickCounts,
		Played:      append([]game.SeatCard(nil), snap.Played...),
		Kitty:       append([]euchre.Card(nil), snap.Kitty...),
	}
	if snap.Upcard != nil && !cardIn(deal.Kitty, *snap.Upcard) {
		// The upcard is usually one of the kitty cards; only a snapshot
		// assembled without the full kitty needs it added separately.
		deal.Kitty = append(deal.Kitty, *snap.Upcard)
	}
	if snap.Trick != nil {
		trick := euchre.NewTrick(snap.Trick.Leader)
		trick.Lead = snap.Trick.Lead
		for seat, card := range snap.Trick.Cards {
			trick.Cards[seat] = card
		}
		deal.Trick = trick
	}
	deal.Hands[snap.Seat] = append([]euchre.Card(nil), snap.Hand...)

	// Everything not visible to the acting player, shuffled
	known := NewCardSet(nil)
	for card := range snap.KnownCards() {
		known.Add(card)
	}
	var unknown []euchre.Card
	for _, card := range euchre.Deck() {
		if !known.Contains(card) {
			unknown = append(unknown, card)
		}
	}
	euchre.Shuffle(unknown, rng)

	for i := 1; i < game.NumSeats; i++ {
		seat := (snap.Seat + i) % game.NumSeats
		needed := game.HandSize - snap.PlayedCount(seat)
		if needed < 0 || needed > len(unknown) {
			return nil, fmt.Errorf("evaluator: seat %d needs %d cards but pool has %d",
				seat, needed, len(unknown))
		}
		hand, rest := drawRespectingVoids(unknown, needed, seatVoids(snap, seat), snap.Trump)
		if hand == nil && needed > 0 {
			logger.Warn("void constraints unsatisfiable, relaxing",
				"seat", seat, "needed", needed, "pool", len(unknown))
			hand, rest = unknown[:needed], unknown[needed:]
		}
		deal.Hands[seat] = append([]euchre.Card(nil), hand...)
		unknown = rest
	}

	// Whatever remains is the face-down part of the kitty
	deal.Kitty = append(deal.Kitty, unknown...)
	if len(deal.Kitty) > game.KittySize {
		return nil, fmt.Errorf("evaluator: kitty has %d cards, want at most %d",
			len(deal.Kitty), game.KittySize)
	}
	if err := deal.Validate(); err != nil {
		return nil, err
	}
	return deal, nil
}

// seatVoids collects the suits a seat is known to be void in.
func seatVoids(snap *game.Snapshot, seat int) []euchre.Suit {
	var voids []euchre.Suit
	for _, suit := range euchre.Suits {
		if snap.VoidIn(seat, suit) {
			voids = append(voids, suit)
		}
	}
	return voids
}

// drawRespectingVoids takes n cards from the front of the pool, skipping
// cards whose effective suit the seat is void in, and returns the drawn
// cards plus the remaining pool. Returns nil if the pool cannot supply n
// conforming cards.
func drawRespectingVoids(pool []euchre.Card, n int, voids []euchre.Suit, trump euchre.Suit) ([]euchre.Card, []euchre.Card) {
	if len(voids) == 0 {
		if len(pool) < n {
			return nil, pool
		}
		return pool[:n], pool[n:]
	}

	drawn := make([]euchre.Card, 0, n)
	rest := make([]euchre.Card, 0, len(pool))
	for _, card := range pool {
		if len(drawn) < n && !suitIn(voids, euchre.EffectiveSuit(card, trump)) {
			drawn = append(drawn, card)
		} else {
			rest = append(rest, card)
		}
	}
	if len(drawn) < n {
		return nil, pool
	}
	return drawn, rest
}

func cardIn(cards []euchre.Card, card euchre.Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

func suitIn(suits []euchre.Suit, suit euchre.Suit) bool {
	for _, s := range suits {
		if s == suit {
			return true
		}
	}
	return false
}

// Validate checks the card-conservation invariant: hands, played cards,
// kitty and the current trick must partition the 24-card deck exactly.
// A violation is a correctness bug in determinization or its inputs.
func (d *Deal) Validate() error {
	seen := make(map[euchre.Card]bool, euchre.DeckSize)
	total := 0
	add := func(c euchre.Card) error {
		if seen[c] {
			return fmt.Errorf("evaluator: card %v assigned twice", c)
		}
		seen[c] = true
		total++
		return nil
	}

	for seat := 0; seat < game.NumSeats; seat++ {
		for _, c := range d.Hands[seat] {
			if err := add(c); err != nil {
				return err
			}
		}
	}
	for _, sc := range d.Played {
		if err := add(sc.Card); err != nil {
			return err
		}
	}
	for _, c := range d.Kitty {
		if err := add(c); err != nil {
			return err
		}
	}
	if d.Trick != nil {
		for _, c := range d.Trick.Cards {
			if err := add(c); err != nil {
				return err
			}
		}
	}

	if total != euchre.DeckSize {
		return fmt.Errorf("evaluator: deal accounts for %d cards, want %d", total, euchre.DeckSize)
	}
	return nil
}
