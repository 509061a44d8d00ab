// Package bot implements the Monte Carlo euchre player: the decision
// entry points the orchestration layer calls once per turn, backed by
// the determinize-and-playout evaluator, plus the scripted greedy
// baseline used as a sparring partner.
package bot

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/lox/euchrebot/euchre"
	"github.com/lox/euchrebot/internal/evaluator"
	"github.com/lox/euchrebot/internal/game"
)

// Bot is the Monte Carlo decision engine. It satisfies game.Agent. The
// entry points never fail outward: on inconsistent input they fall back
// to a safe legal choice and log diagnostics. All simulation state is
// scoped to a single call, so one Bot can play any number of hands.
type Bot struct {
	rng    *rand.Rand
	logger *log.Logger
	config Config
	eval   *evaluator.Evaluator
}

// New creates a bot. The RNG is the engine's only randomness source and
// is consumed sequentially, so a seeded RNG makes every decision
// reproducible.
func New(rng *rand.Rand, logger *log.Logger, config Config) *Bot {
	botLogger := logger.WithPrefix("bot")

	options := []evaluator.Option{
		evaluator.WithTrials(config.Trials),
	}
	if config.Workers > 0 {
		options = append(options, evaluator.WithWorkers(config.Workers))
	}
	if config.Deadline() > 0 {
		options = append(options, evaluator.WithDeadline(config.Deadline()))
	}
	if config.Outcome == "winrate" {
		options = append(options, evaluator.WithOutcome(evaluator.WinRate))
	}
	if config.LeadTrumpPenalty > 0 {
		options = append(options, evaluator.WithModifiers(LeadTrumpPenalty(config.LeadTrumpPenalty)))
	}

	return &Bot{
		rng:    rng,
		logger: botLogger,
		config: config,
		eval:   evaluator.New(botLogger, options...),
	}
}

// SelectCardToPlay picks the card to play for the snapshot's trick by
// Monte Carlo evaluation of every legal candidate. A single legal move
// is returned immediately with zero simulation cost.
func (b *Bot) SelectCardToPlay(snap *game.Snapshot) euchre.Card {
	legal, err := euchre.LegalMoves(snap.Hand, snap.Lead, snap.Trump)
	if err != nil {
		// Caller bug: a move was requested with no cards to play
		b.logger.Error("no legal moves available", "seat", snap.Seat, "error", err)
		return euchre.Card{}
	}
	if len(legal) == 1 {
		return legal[0]
	}

	scores := b.eval.EvaluateMoves(snap, legal, b.rng)
	best, ok := evaluator.Best(scores)
	if !ok || best.Trials == 0 {
		// Simulation produced nothing usable: fall back to the weakest
		// legal card and let the orchestration layer carry on
		b.logger.Error("simulation failed for all candidates, falling back",
			"seat", snap.Seat, "candidates", len(legal))
		return lowestCard(legal, snap.Trump)
	}

	b.logger.Debug("selected card",
		"seat", snap.Seat,
		"card", best.Card,
		"score", best.Score,
		"trials", best.Trials,
		"candidates", len(legal))
	return best.Card
}

// ChooseTrumpSuit names trump in the open call round, or NoSuit to
// pass. With MustCall set (stuck dealer) the best available suit is
// called regardless of strength.
func (b *Bot) ChooseTrumpSuit(snap *game.Snapshot) euchre.Suit {
	suit, score := bestTrumpSuit(snap.Hand, snap.Excluded)
	if snap.MustCall {
		return suit
	}
	if ShouldCallTrump(score, b.config.CallThreshold) {
		return suit
	}
	return euchre.NoSuit
}

// ShouldAcceptTrump decides whether to order up the flipped kitty card.
// The dealer scores the hand as it would stand after the exchange.
func (b *Bot) ShouldAcceptTrump(snap *game.Snapshot) bool {
	if snap.Upcard == nil {
		b.logger.Error("order-up decision without an upcard", "seat", snap.Seat)
		return false
	}
	trump := snap.Upcard.Suit

	hand := snap.Hand
	if snap.Seat == snap.Dealer {
		hand = exchangeHand(hand, *snap.Upcard, trump)
	}
	return ShouldCallTrump(EvaluateTrumpStrength(hand, trump), b.config.AcceptThreshold)
}

// ShouldGoAlone plays alone when the hand is strong enough to take all
// five tricks without the partner.
func (b *Bot) ShouldGoAlone(snap *game.Snapshot) bool {
	return EvaluateTrumpStrength(snap.Hand, snap.Trump) >= b.config.AloneThreshold
}

// ChooseDiscard buries the dealer's weakest card after the pickup.
func (b *Bot) ChooseDiscard(snap *game.Snapshot) euchre.Card {
	if len(snap.Hand) == 0 {
		b.logger.Error("discard requested with empty hand", "seat", snap.Seat)
		return euchre.Card{}
	}
	return lowestCard(snap.Hand, snap.Trump)
}

// exchangeHand returns the hand as it stands after picking up the
// upcard and burying the weakest card.
func exchangeHand(hand []euchre.Card, upcard euchre.Card, trump euchre.Suit) []euchre.Card {
	out := append(append([]euchre.Card(nil), hand...), upcard)
	drop := lowestCard(out, trump)
	for i, c := range out {
		if c == drop {
			return append(out[:i], out[i+1:]...)
		}
	}
	return out
}
