package euchre

import "fmt"

// NumSeats is the number of players at a euchre table.
const NumSeats = 4

// NoWinner is the sentinel returned by Winner when a trick holds no
// valid card. Callers must treat it as a fatal error, never as a seat.
const NoWinner = -1

// Trick is one round of play: up to one card per seat, with the lead
// suit fixed by the first card played and immutable for the rest of the
// trick.
type Trick struct {
	Cards  map[int]Card
	Lead   Suit
	Leader int
}

// NewTrick creates an empty trick led by the given seat.
func NewTrick(leader int) *Trick {
	return &Trick{
		Cards:  make(map[int]Card, NumSeats),
		Lead:   NoSuit,
		Leader: leader,
	}
}

// Play records seat's card. The first card played fixes the trick's lead
// suit to that card's effective suit under trump.
func (t *Trick) Play(seat int, c Card, trump Suit) error {
	if seat < 0 || seat >= NumSeats {
		return fmt.Errorf("euchre: invalid seat %d", seat)
	}
	if _, ok := t.Cards[seat]; ok {
		return fmt.Errorf("euchre: seat %d already played this trick", seat)
	}
	if t.Lead == NoSuit {
		t.Lead = EffectiveSuit(c, trump)
	}
	t.Cards[seat] = c
	return nil
}

// Size returns the number of cards played so far.
func (t *Trick) Size() int {
	return len(t.Cards)
}

// Complete reports whether all active seats have contributed a card.
func (t *Trick) Complete(activeSeats int) bool {
	return len(t.Cards) >= activeSeats
}

// Winner returns the seat holding the most powerful card, scanning seats
// in play order from the leader. The comparison is strict (a later card
// of equal power never displaces the running best) so the result does
// not depend on map iteration order. Returns NoWinner if the trick holds
// no cards.
func (t *Trick) Winner(trump Suit) int {
	winner := NoWinner
	best := -1
	for i := 0; i < NumSeats; i++ {
		seat := (t.Leader + i) % NumSeats
		card, ok := t.Cards[seat]
		if !ok {
			continue
		}
		if p := Power(card, trump, t.Lead); p > best {
			best = p
			winner = seat
		}
	}
	return winner
}
