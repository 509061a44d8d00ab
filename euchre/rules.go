package euchre

import "errors"

// ErrEmptyHand is returned when a move is requested from an empty hand.
// Correct callers never trigger this; it indicates an upstream defect.
var ErrEmptyHand = errors.New("euchre: no cards in hand")

// LegalMoves returns the subset of hand that may legally be played given
// the suit led and trump. When leading (lead == NoSuit) every card is
// legal. Otherwise the player must follow the led suit (bower-aware); a
// player void in the led suit may play anything.
//
// The result is always non-empty for a non-empty hand, and preserves
// hand order so callers get a stable candidate enumeration.
func LegalMoves(hand []Card, lead, trump Suit) ([]Card, error) {
	if len(hand) == 0 {
		return nil, ErrEmptyHand
	}

	if lead == NoSuit {
		return append([]Card(nil), hand...), nil
	}

	var following []Card
	for _, c := range hand {
		if EffectiveSuit(c, trump) == lead {
			following = append(following, c)
		}
	}
	if len(following) == 0 {
		return append([]Card(nil), hand...), nil
	}
	return following, nil
}
