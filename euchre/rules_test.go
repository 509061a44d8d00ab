package euchre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) []Card {
	t.Helper()
	cards, err := ParseCards(s)
	require.NoError(t, err)
	return cards
}

func TestLegalMovesLeading(t *testing.T) {
	t.Parallel()

	hand := mustParse(t, "9sThAcKd")
	legal, err := LegalMoves(hand, NoSuit, Spades)
	require.NoError(t, err)
	assert.Equal(t, hand, legal)
}

func TestLegalMovesMustFollowSuit(t *testing.T) {
	t.Parallel()

	hand := mustParse(t, "9sThTsAc")
	legal, err := LegalMoves(hand, Spades, Hearts)
	require.NoError(t, err)
	assert.Equal(t, mustParse(t, "9sTs"), legal)
}

func TestLegalMovesVoidInLeadSuit(t *testing.T) {
	t.Parallel()

	hand := mustParse(t, "9hThAc")
	legal, err := LegalMoves(hand, Spades, Diamonds)
	require.NoError(t, err)
	assert.Equal(t, hand, legal)
}

func TestLegalMovesLeftBowerFollowsTrump(t *testing.T) {
	t.Parallel()

	// Jack of clubs is a spade when spades are trump, so it must follow
	// a spade lead and cannot follow a club lead.
	hand := mustParse(t, "JcAc9h")

	legal, err := LegalMoves(hand, Spades, Spades)
	require.NoError(t, err)
	assert.Equal(t, mustParse(t, "Jc"), legal)

	legal, err = LegalMoves(hand, Clubs, Spades)
	require.NoError(t, err)
	assert.Equal(t, mustParse(t, "Ac"), legal)
}

func TestLegalMovesEmptyHand(t *testing.T) {
	t.Parallel()

	_, err := LegalMoves(nil, Spades, Hearts)
	assert.ErrorIs(t, err, ErrEmptyHand)
}

func TestLegalMovesNeverEmpty(t *testing.T) {
	t.Parallel()

	// Exhaustive over every (lead, trump) pair for a fixed hand
	hand := mustParse(t, "9cTdJhQs")
	leads := []Suit{Clubs, Diamonds, Hearts, Spades, NoSuit}
	trumps := []Suit{Clubs, Diamonds, Hearts, Spades, NoSuit}
	for _, lead := range leads {
		for _, trump := range trumps {
			legal, err := LegalMoves(hand, lead, trump)
			require.NoError(t, err)
			assert.NotEmpty(t, legal, "lead=%v trump=%v", lead, trump)
			for _, c := range legal {
				assert.Contains(t, hand, c)
			}
		}
	}
}

func TestLegalMovesDoesNotAliasHand(t *testing.T) {
	t.Parallel()

	hand := mustParse(t, "9sTs")
	legal, err := LegalMoves(hand, NoSuit, NoSuit)
	require.NoError(t, err)
	legal[0] = NewCard(Hearts, Ace)
	assert.Equal(t, mustParse(t, "9sTs"), hand)
}
