package euchre

import (
	"math/rand"
)

// DeckSize is the number of cards in a euchre deck (4 suits x 6 ranks).
const DeckSize = 24

// Deck returns all 24 cards of a euchre deck in a fixed enumeration
// order (suit-major, rank ascending). Callers get a fresh slice each time.
func Deck() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return cards
}

// ShuffledDeck returns all 24 cards shuffled with a Fisher-Yates pass
// using the supplied RNG. The RNG is injected so callers control
// determinism; it must not be nil.
func ShuffledDeck(rng *rand.Rand) []Card {
	cards := Deck()
	Shuffle(cards, rng)
	return cards
}

// Shuffle shuffles cards in place using Fisher-Yates
func Shuffle(cards []Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
