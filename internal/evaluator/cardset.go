// Package evaluator implements the Monte Carlo decision core: it
// resolves the hidden portion of a euchre deal into concrete
// hypothetical states (determinization), plays those states to
// completion with a fixed greedy policy, and aggregates outcomes across
// trials to score candidate moves.
package evaluator

import "github.com/lox/euchrebot/euchre"

// CardSet represents a set of cards using a bitset for fast membership
// operations. Each of the 24 euchre cards maps to one bit.
type CardSet uint32

func cardIndex(card euchre.Card) int {
	return int(card.Suit)*len(euchre.Ranks) + int(card.Rank-euchre.Nine)
}

// Add adds a card to the set
func (cs *CardSet) Add(card euchre.Card) {
	*cs |= 1 << cardIndex(card)
}

// Remove removes a card from the set
func (cs *CardSet) Remove(card euchre.Card) {
	*cs &^= 1 << cardIndex(card)
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card euchre.Card) bool {
	return cs&(1<<cardIndex(card)) != 0
}

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards []euchre.Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}
