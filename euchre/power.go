package euchre

// Power tiers. A card's power is its tier plus its rank offset, so all
// trump cards outrank all lead-suit cards, which outrank everything else.
const (
	powerOffsuit = 0
	powerLead    = 20
	powerTrump   = 40
	powerLeft    = 60
	powerRight   = 61
)

// EffectiveSuit returns the suit a card counts as under the given trump:
// normally its own suit, except the Jack of trump (right bower) and the
// Jack of the same-color suit (left bower) both count as trump. With
// trump == NoSuit there is no substitution.
//
// Every follow-suit, trick-winning and void-inference decision in the
// engine goes through this one function.
func EffectiveSuit(c Card, trump Suit) Suit {
	if trump != NoSuit && c.Rank == Jack && c.Suit == trump.SameColor() {
		return trump
	}
	return c.Suit
}

// IsTrump returns true if the card's effective suit is trump.
func IsTrump(c Card, trump Suit) bool {
	return trump != NoSuit && EffectiveSuit(c, trump) == trump
}

// IsRightBower returns true for the Jack of the trump suit.
func IsRightBower(c Card, trump Suit) bool {
	return trump != NoSuit && c.Rank == Jack && c.Suit == trump
}

// IsLeftBower returns true for the Jack of the suit sharing trump's color.
func IsLeftBower(c Card, trump Suit) bool {
	return trump != NoSuit && c.Rank == Jack && c.Suit == trump.SameColor()
}

// Power returns the trick-taking strength of a card given the trump suit
// and the suit led. Higher is stronger. It is a pure total function:
// cards matching neither trump nor the led suit land in the lowest tier
// and can never win the trick they are in. With trump == NoSuit the
// ordering degrades to plain rank comparison with no bower effects.
func Power(c Card, trump, lead Suit) int {
	if IsRightBower(c, trump) {
		return powerRight
	}
	if IsLeftBower(c, trump) {
		return powerLeft
	}

	offset := int(c.Rank - Nine)
	switch EffectiveSuit(c, trump) {
	case trump:
		return powerTrump + offset
	case lead:
		return powerLead + offset
	default:
		return powerOffsuit + offset
	}
}
