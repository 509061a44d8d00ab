package bot

import (
	"github.com/lox/euchrebot/euchre"
)

// EvaluateTrumpStrength scores a hand under a candidate trump suit by
// summing each card's power with no lead suit. Bowers and trump cards
// dominate the total, so the score tracks how many tricks the hand can
// force. Used for the order-up, open-call and go-alone decisions.
func EvaluateTrumpStrength(hand []euchre.Card, trump euchre.Suit) int {
	score := 0
	for _, c := range hand {
		score += euchre.Power(c, trump, euchre.NoSuit)
	}
	return score
}

// ShouldCallTrump compares a hand strength score to a threshold.
func ShouldCallTrump(score, threshold int) bool {
	return score >= threshold
}

// bestTrumpSuit returns the strongest candidate trump for a hand along
// with its score, skipping the excluded suit. Ties break by suit
// enumeration order.
func bestTrumpSuit(hand []euchre.Card, excluded euchre.Suit) (euchre.Suit, int) {
	best := euchre.NoSuit
	bestScore := -1
	for _, suit := range euchre.Suits {
		if suit == excluded {
			continue
		}
		if score := EvaluateTrumpStrength(hand, suit); score > bestScore {
			best = suit
			bestScore = score
		}
	}
	return best, bestScore
}

// lowestCard returns the weakest card in a hand under the given trump.
// Used for the dealer exchange: bury the card least likely to take a
// trick.
func lowestCard(hand []euchre.Card, trump euchre.Suit) euchre.Card {
	lowest := hand[0]
	for _, c := range hand[1:] {
		if euchre.Power(c, trump, euchre.NoSuit) < euchre.Power(lowest, trump, euchre.NoSuit) {
			lowest = c
		}
	}
	return lowest
}

// holdsBothBowers reports whether the hand holds the right and left
// bower for the given trump.
func holdsBothBowers(hand []euchre.Card, trump euchre.Suit) bool {
	right, left := false, false
	for _, c := range hand {
		if euchre.IsRightBower(c, trump) {
			right = true
		}
		if euchre.IsLeftBower(c, trump) {
			left = true
		}
	}
	return right && left
}
