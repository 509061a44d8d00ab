package game

import "github.com/lox/euchrebot/euchre"

// Agent represents any entity (scripted policy or search engine) that
// can make decisions for a seat. Agents receive immutable game state
// and return plain decisions - no state mutation allowed. Whether the
// decider behind a seat is a human or a bot never leaks into the hand
// runner.
type Agent interface {
	// ShouldAcceptTrump decides whether to order up the flipped kitty
	// card as trump. snapshot.Upcard is always set for this call.
	ShouldAcceptTrump(snapshot *Snapshot) bool

	// ChooseTrumpSuit names a trump suit in the open call round, or
	// NoSuit to pass. snapshot.Excluded is not callable. When
	// snapshot.MustCall is set passing is not an option; the runner
	// falls back to a default suit if the agent passes anyway.
	ChooseTrumpSuit(snapshot *Snapshot) euchre.Suit

	// ShouldGoAlone decides whether to play the hand without the
	// partner's cards in play. Called only for the seat that named
	// trump.
	ShouldGoAlone(snapshot *Snapshot) bool

	// ChooseDiscard picks the card the dealer buries after picking up
	// the upcard. The upcard is already in snapshot.Hand for this call.
	ChooseDiscard(snapshot *Snapshot) euchre.Card

	// SelectCardToPlay picks a card for the current trick. The card
	// must be one of the snapshot's legal moves; the runner substitutes
	// a legal card and logs if it is not.
	SelectCardToPlay(snapshot *Snapshot) euchre.Card
}
