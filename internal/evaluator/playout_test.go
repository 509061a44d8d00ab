package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/euchrebot/euchre"
	"github.com/lox/euchrebot/internal/game"
	"github.com/lox/euchrebot/internal/randutil"
)

func mustCards(t *testing.T, s string) []euchre.Card {
	t.Helper()
	cards, err := euchre.ParseCards(s)
	require.NoError(t, err)
	return cards
}

// freshDeal builds a complete deal from a seeded shuffle with seat 0 on
// lead.
func freshDeal(seed int64) *Deal {
	cards := euchre.ShuffledDeck(randutil.New(seed))
	deal := &Deal{
		Trump:    euchre.Spades,
		Inactive: game.NoSeat,
		Trick:    euchre.NewTrick(0),
		Kitty:    cards[20:24],
	}
	for seat := 0; seat < game.NumSeats; seat++ {
		deal.Hands[seat] = append([]euchre.Card(nil), cards[seat*5:seat*5+5]...)
	}
	return deal
}

func TestPlayoutPlaysAllTricks(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 20; seed++ {
		deal := freshDeal(seed)
		tricks, err := Playout(deal)
		require.NoError(t, err)
		assert.Equal(t, 5, tricks[0]+tricks[1], "seed %d", seed)

		for seat := 0; seat < game.NumSeats; seat++ {
			assert.Empty(t, deal.Hands[seat])
		}
	}
}

func TestPlayoutDeterministic(t *testing.T) {
	t.Parallel()

	first, err := Playout(freshDeal(42))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		tricks, err := Playout(freshDeal(42))
		require.NoError(t, err)
		assert.Equal(t, first, tricks)
	}
}

func TestPlayoutUnbeatableHandSweeps(t *testing.T) {
	t.Parallel()

	// Seat 0 leads holding the top five trumps: nobody can take a trick
	deal := &Deal{
		Trump:    euchre.Spades,
		Inactive: game.NoSeat,
		Trick:    euchre.NewTrick(0),
	}
	deal.Hands[0] = mustCards(t, "Js Jc As Ks Qs")

	var rest []euchre.Card
	held := NewCardSet(deal.Hands[0])
	for _, c := range euchre.Deck() {
		if !held.Contains(c) {
			rest = append(rest, c)
		}
	}
	for seat := 1; seat < game.NumSeats; seat++ {
		deal.Hands[seat] = rest[(seat-1)*5 : seat*5]
	}
	deal.Kitty = rest[15:]

	tricks, err := Playout(deal)
	require.NoError(t, err)
	assert.Equal(t, [2]int{5, 0}, tricks)
}

func TestPlayoutFinishesPartialTrick(t *testing.T) {
	t.Parallel()

	cards := euchre.ShuffledDeck(randutil.New(9))
	deal := &Deal{
		Trump:       euchre.Hearts,
		Inactive:    game.NoSeat,
		Trick:       euchre.NewTrick(2),
		Kitty:       cards[20:24],
		TrickCounts: [2]int{0, 0},
	}
	deal.Hands[0] = append([]euchre.Card(nil), cards[0:5]...)
	deal.Hands[1] = append([]euchre.Card(nil), cards[5:10]...)
	// Seats 2 and 3 have already committed a card to the open trick
	deal.Hands[2] = append([]euchre.Card(nil), cards[10:14]...)
	deal.Hands[3] = append([]euchre.Card(nil), cards[15:19]...)
	require.NoError(t, deal.Trick.Play(2, cards[14], deal.Trump))
	require.NoError(t, deal.Trick.Play(3, cards[19], deal.Trump))

	tricks, err := Playout(deal)
	require.NoError(t, err)
	assert.Equal(t, 5, tricks[0]+tricks[1])
}

func TestPlayoutSkipsInactiveSeat(t *testing.T) {
	t.Parallel()

	cards := euchre.ShuffledDeck(randutil.New(4))
	deal := &Deal{
		Trump:    euchre.Clubs,
		Inactive: 2,
		Trick:    euchre.NewTrick(0),
		Kitty:    cards[20:24],
	}
	deal.Hands[0] = append([]euchre.Card(nil), cards[0:5]...)
	deal.Hands[1] = append([]euchre.Card(nil), cards[5:10]...)
	deal.Hands[2] = append([]euchre.Card(nil), cards[10:15]...)
	deal.Hands[3] = append([]euchre.Card(nil), cards[15:20]...)

	tricks, err := Playout(deal)
	require.NoError(t, err)
	assert.Equal(t, 5, tricks[0]+tricks[1])
	// The sat-out partner never plays a card
	assert.Len(t, deal.Hands[2], 5)
}

func TestPlayoutRequiresTrick(t *testing.T) {
	t.Parallel()

	_, err := Playout(freshDealNoTrick())
	require.Error(t, err)
}

func freshDealNoTrick() *Deal {
	deal := freshDeal(0)
	deal.Trick = nil
	return deal
}

func TestGreedyChoiceDucksWhenPartnerWinning(t *testing.T) {
	t.Parallel()

	trump := euchre.Spades
	trick := euchre.NewTrick(0)
	require.NoError(t, trick.Play(0, mustCards(t, "As")[0], trump))
	require.NoError(t, trick.Play(1, mustCards(t, "9h")[0], trump))

	// Seat 2's partner (seat 0) is winning: throw the weakest legal card
	// even though the right bower could win
	legal := mustCards(t, "Js 9s")
	choice := greedyChoice(legal, trick, trump, 2)
	assert.Equal(t, mustCards(t, "9s")[0], choice)
}

func TestGreedyChoiceWinsCheaply(t *testing.T) {
	t.Parallel()

	trump := euchre.Spades
	trick := euchre.NewTrick(1)
	require.NoError(t, trick.Play(1, mustCards(t, "Kh")[0], trump))

	// Seat 2 is void in hearts and holds two trumps: ruff with the
	// cheapest one, not the bower
	legal := mustCards(t, "Js 9s Ad")
	choice := greedyChoice(legal, trick, trump, 2)
	assert.Equal(t, mustCards(t, "9s")[0], choice)
}

func TestGreedyChoiceDumpsWhenBeaten(t *testing.T) {
	t.Parallel()

	trump := euchre.Spades
	trick := euchre.NewTrick(1)
	require.NoError(t, trick.Play(1, mustCards(t, "Js")[0], trump))

	// Nothing beats the right bower: throw the weakest card
	legal := mustCards(t, "Ah Kd 9c")
	choice := greedyChoice(legal, trick, trump, 2)
	assert.Equal(t, mustCards(t, "9c")[0], choice)
}
