package bot

import (
	"github.com/lox/euchrebot/euchre"
	"github.com/lox/euchrebot/internal/game"
)

// GreedyBot is a scripted baseline with no search: it calls trump on
// raw hand strength and plays the same greedy card policy the playout
// simulator uses. Useful as a benchmark opponent and as a floor the
// Monte Carlo bot must beat.
type GreedyBot struct {
	AcceptThreshold int
	CallThreshold   int
}

// NewGreedyBot creates a greedy baseline with default thresholds.
func NewGreedyBot() *GreedyBot {
	defaults := DefaultConfig()
	return &GreedyBot{
		AcceptThreshold: defaults.AcceptThreshold,
		CallThreshold:   defaults.CallThreshold,
	}
}

func (g *GreedyBot) ShouldAcceptTrump(snap *game.Snapshot) bool {
	if snap.Upcard == nil {
		return false
	}
	return EvaluateTrumpStrength(snap.Hand, snap.Upcard.Suit) >= g.AcceptThreshold
}

func (g *GreedyBot) ChooseTrumpSuit(snap *game.Snapshot) euchre.Suit {
	suit, score := bestTrumpSuit(snap.Hand, snap.Excluded)
	if snap.MustCall || score >= g.CallThreshold {
		return suit
	}
	return euchre.NoSuit
}

func (g *GreedyBot) ShouldGoAlone(snap *game.Snapshot) bool {
	return false
}

func (g *GreedyBot) ChooseDiscard(snap *game.Snapshot) euchre.Card {
	return lowestCard(snap.Hand, snap.Trump)
}

// SelectCardToPlay mirrors the playout policy: strongest lead, duck
// under a winning partner, otherwise win as cheaply as possible.
func (g *GreedyBot) SelectCardToPlay(snap *game.Snapshot) euchre.Card {
	legal, err := euchre.LegalMoves(snap.Hand, snap.Lead, snap.Trump)
	if err != nil {
		return euchre.Card{}
	}

	if snap.Trick == nil || snap.Trick.Size() == 0 {
		return strongestCard(legal, snap.Trump, euchre.NoSuit)
	}

	winningSeat := snap.Trick.Winner(snap.Trump)
	if winningSeat == game.Partner(snap.Seat) {
		return cheapestCard(legal, snap.Trump, snap.Lead)
	}

	bestPower := euchre.Power(snap.Trick.Cards[winningSeat], snap.Trump, snap.Lead)
	var winner *euchre.Card
	for i, c := range legal {
		p := euchre.Power(c, snap.Trump, snap.Lead)
		if p > bestPower && (winner == nil || p < euchre.Power(*winner, snap.Trump, snap.Lead)) {
			winner = &legal[i]
		}
	}
	if winner != nil {
		return *winner
	}
	return cheapestCard(legal, snap.Trump, snap.Lead)
}

func strongestCard(cards []euchre.Card, trump, lead euchre.Suit) euchre.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if euchre.Power(c, trump, lead) > euchre.Power(best, trump, lead) {
			best = c
		}
	}
	return best
}

func cheapestCard(cards []euchre.Card, trump, lead euchre.Suit) euchre.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if euchre.Power(c, trump, lead) < euchre.Power(best, trump, lead) {
			best = c
		}
	}
	return best
}
