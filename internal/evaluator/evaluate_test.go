package evaluator

import (
	"math"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/euchrebot/euchre"
	"github.com/lox/euchrebot/internal/game"
	"github.com/lox/euchrebot/internal/randutil"
)

func TestEvaluateMovesDeterministic(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{1, 4} {
		snap := dealtSnapshot(t, 5)
		e := New(testLogger(), WithTrials(32), WithWorkers(workers))

		first := e.EvaluateMoves(snap, snap.Hand, randutil.New(99))
		for i := 0; i < 5; i++ {
			again := e.EvaluateMoves(snap, snap.Hand, randutil.New(99))
			assert.Equal(t, first, again, "workers=%d", workers)
		}
	}
}

func TestEvaluateMovesScoresAllCandidates(t *testing.T) {
	t.Parallel()

	snap := dealtSnapshot(t, 8)
	e := New(testLogger(), WithTrials(24), WithWorkers(2))

	scores := e.EvaluateMoves(snap, snap.Hand, randutil.New(1))
	require.Len(t, scores, len(snap.Hand))
	for i, s := range scores {
		assert.Equal(t, snap.Hand[i], s.Card)
		assert.Equal(t, 24, s.Trials)
		assert.Zero(t, s.Failures)
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 5.0)
	}
}

func TestEvaluateMovesWinRateOutcome(t *testing.T) {
	t.Parallel()

	snap := dealtSnapshot(t, 8)
	e := New(testLogger(), WithTrials(24), WithWorkers(1), WithOutcome(WinRate))

	for _, s := range e.EvaluateMoves(snap, snap.Hand, randutil.New(1)) {
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 1.0)
	}
}

func TestEvaluateMovesDoesNotMutateSnapshot(t *testing.T) {
	t.Parallel()

	snap := dealtSnapshot(t, 13)
	original := snap.Clone()

	e := New(testLogger(), WithTrials(16), WithWorkers(4))
	e.EvaluateMoves(snap, snap.Hand, randutil.New(2))

	assert.Equal(t, original, snap)
}

func TestEvaluateMovesModifiers(t *testing.T) {
	t.Parallel()

	snap := dealtSnapshot(t, 5)
	target := snap.Hand[2]
	bonus := func(candidate euchre.Card, _ *game.Snapshot) float64 {
		if candidate == target {
			return 10
		}
		return 0
	}

	base := New(testLogger(), WithTrials(16), WithWorkers(1))
	adjusted := New(testLogger(), WithTrials(16), WithWorkers(1), WithModifiers(bonus))

	baseScores := base.EvaluateMoves(snap, snap.Hand, randutil.New(7))
	adjScores := adjusted.EvaluateMoves(snap, snap.Hand, randutil.New(7))
	require.Len(t, adjScores, len(baseScores))

	for i := range baseScores {
		want := baseScores[i].Score
		if baseScores[i].Card == target {
			want += 10
		}
		assert.InDelta(t, want, adjScores[i].Score, 1e-9)
	}
}

func TestEvaluateMovesAllTrialsFailed(t *testing.T) {
	t.Parallel()

	// An inconsistent snapshot makes every determinization fail: the
	// candidate gets the sentinel score instead of a fabricated one
	cards := euchre.Deck()
	snap := game.NewSnapshot(0, cards[:5])
	snap.Trump = euchre.Spades
	snap.Kitty = cards[20:24]
	snap.Played = []game.SeatCard{
		{Seat: 0, Card: cards[5]},
		{Seat: 0, Card: cards[6]},
	}

	e := New(testLogger(), WithTrials(8), WithWorkers(1))
	scores := e.EvaluateMoves(snap, snap.Hand[:1], randutil.New(0))
	require.Len(t, scores, 1)
	assert.True(t, math.IsInf(scores[0].Score, -1))
	assert.Zero(t, scores[0].Trials)
	assert.Equal(t, 8, scores[0].Failures)
}

func TestEvaluateMovesDeadlineWithMockClock(t *testing.T) {
	t.Parallel()

	// With an injected clock that never advances, the deadline timer
	// never fires and the full budget runs
	snap := dealtSnapshot(t, 3)
	e := New(testLogger(),
		WithTrials(16),
		WithWorkers(1),
		WithDeadline(50*time.Millisecond),
		WithClock(quartz.NewMock(t)),
	)

	scores := e.EvaluateMoves(snap, snap.Hand, randutil.New(5))
	for _, s := range scores {
		assert.Equal(t, 16, s.Trials)
	}
}

func TestRunTrialsStopsOnExpiredDeadline(t *testing.T) {
	t.Parallel()

	snap := dealtSnapshot(t, 3)
	e := New(testLogger(), WithWorkers(1))

	done := make(chan struct{})
	close(done)
	result := e.runTrials(snap, snap.Hand[0], randutil.New(0), 100, done)
	assert.Zero(t, result.trials)
	assert.Zero(t, result.failures)
}

func TestBest(t *testing.T) {
	t.Parallel()

	a := euchre.NewCard(euchre.Spades, euchre.Nine)
	b := euchre.NewCard(euchre.Hearts, euchre.Ace)
	c := euchre.NewCard(euchre.Clubs, euchre.King)

	best, ok := Best([]MoveScore{
		{Card: a, Score: 2.5},
		{Card: b, Score: 3.1},
		{Card: c, Score: 3.1},
	})
	require.True(t, ok)
	assert.Equal(t, b, best.Card, "ties break to the first candidate seen")

	_, ok = Best(nil)
	assert.False(t, ok)
}
