package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/euchrebot/euchre"
)

func TestNewSnapshotSentinels(t *testing.T) {
	t.Parallel()

	hand := mustCards(t, "AsKh")
	snap := NewSnapshot(1, hand)

	assert.Equal(t, euchre.NoSuit, snap.Trump)
	assert.Equal(t, euchre.NoSuit, snap.Lead)
	assert.Equal(t, euchre.NoSuit, snap.Excluded)
	assert.Equal(t, NoSeat, snap.Inactive)
	assert.Equal(t, NoSeat, snap.Caller)
	assert.NotNil(t, snap.Voids)

	// The hand is copied, not aliased
	hand[0] = mustCards(t, "9d")[0]
	assert.Equal(t, mustCards(t, "AsKh"), snap.Hand)
}

func TestSnapshotClone(t *testing.T) {
	t.Parallel()

	snap := NewSnapshot(0, mustCards(t, "AsKhQd9c9h"))
	snap.Trump = euchre.Spades
	snap.Kitty = mustCards(t, "TdThTc9d")
	snap.Voids[euchre.Hearts] = []int{2}
	up := mustCards(t, "Ts")[0]
	snap.Upcard = &up
	snap.Trick = euchre.NewTrick(3)
	require.NoError(t, snap.Trick.Play(3, mustCards(t, "Ad")[0], snap.Trump))

	clone := snap.Clone()
	require.Equal(t, snap, clone)

	clone.Hand[0] = mustCards(t, "9s")[0]
	clone.Kitty[0] = mustCards(t, "Qs")[0]
	clone.Voids[euchre.Hearts][0] = 3
	*clone.Upcard = mustCards(t, "Js")[0]
	require.NoError(t, clone.Trick.Play(0, mustCards(t, "Kd")[0], snap.Trump))

	assert.Equal(t, mustCards(t, "As")[0], snap.Hand[0])
	assert.Equal(t, mustCards(t, "Td")[0], snap.Kitty[0])
	assert.Equal(t, []int{2}, snap.Voids[euchre.Hearts])
	assert.Equal(t, up, *snap.Upcard)
	assert.Equal(t, 1, snap.Trick.Size())
}

func TestSnapshotPlayedCount(t *testing.T) {
	t.Parallel()

	snap := NewSnapshot(0, mustCards(t, "AsKh"))
	snap.Trump = euchre.Spades
	snap.Played = []SeatCard{
		{Seat: 1, Card: mustCards(t, "9d")[0]},
		{Seat: 1, Card: mustCards(t, "Td")[0]},
		{Seat: 2, Card: mustCards(t, "Jd")[0]},
	}
	snap.Trick = euchre.NewTrick(1)
	require.NoError(t, snap.Trick.Play(1, mustCards(t, "Qd")[0], snap.Trump))

	assert.Equal(t, 3, snap.PlayedCount(1), "current trick card counts")
	assert.Equal(t, 1, snap.PlayedCount(2))
	assert.Equal(t, 0, snap.PlayedCount(0))
}

func TestSnapshotKnownCards(t *testing.T) {
	t.Parallel()

	snap := NewSnapshot(0, mustCards(t, "AsKh"))
	snap.Kitty = mustCards(t, "9d")
	up := mustCards(t, "Ts")[0]
	snap.Upcard = &up
	snap.Played = []SeatCard{{Seat: 1, Card: mustCards(t, "Qc")[0]}}

	known := snap.KnownCards()
	assert.Len(t, known, 5)
	for _, c := range mustCards(t, "AsKh9dTsQc") {
		assert.True(t, known[c], "%v should be known", c)
	}
}

func TestSnapshotValidate(t *testing.T) {
	t.Parallel()

	snap := NewSnapshot(0, mustCards(t, "AsKh"))
	snap.Kitty = mustCards(t, "9d")
	require.NoError(t, snap.Validate())

	snap.Played = []SeatCard{{Seat: 1, Card: mustCards(t, "As")[0]}}
	err := snap.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hand")

	snap = NewSnapshot(5, nil)
	require.Error(t, snap.Validate())
}

func TestSnapshotVoidIn(t *testing.T) {
	t.Parallel()

	snap := NewSnapshot(0, nil)
	snap.Voids[euchre.Spades] = []int{1, 3}

	assert.True(t, snap.VoidIn(1, euchre.Spades))
	assert.True(t, snap.VoidIn(3, euchre.Spades))
	assert.False(t, snap.VoidIn(2, euchre.Spades))
	assert.False(t, snap.VoidIn(1, euchre.Hearts))
}
