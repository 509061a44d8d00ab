package evaluator

import (
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/euchrebot/euchre"
	"github.com/lox/euchrebot/internal/game"
	"github.com/lox/euchrebot/internal/randutil"
)

// DefaultTrials is the simulation budget per candidate move.
const DefaultTrials = 200

// Outcome converts a playout's final trick counts into a scalar score
// from the given team's perspective. It must be a pure function.
type Outcome func(tricks [2]int, team int) float64

// TrickCount scores a playout by the number of tricks the team took.
func TrickCount(tricks [2]int, team int) float64 {
	return float64(tricks[team])
}

// WinRate scores a playout 1 if the team took the majority of tricks,
// else 0, so aggregated scores become win probabilities.
func WinRate(tricks [2]int, team int) float64 {
	if tricks[team] > tricks[1-team] {
		return 1
	}
	return 0
}

// Modifier is a deterministic scoring adjustment applied on top of the
// simulated mean for a candidate: tactical penalties and bonuses live
// here, never inside the playout loop.
type Modifier func(candidate euchre.Card, snap *game.Snapshot) float64

// MoveScore is the aggregated result for one candidate move.
type MoveScore struct {
	Card     euchre.Card
	Score    float64
	Trials   int // trials contributing to Score
	Failures int // trials discarded due to inconsistent deals
}

// Evaluator runs determinize-and-playout trials for candidate moves and
// aggregates them into per-move scores. It holds only configuration;
// all per-decision state is scoped to the EvaluateMoves call, so one
// Evaluator may be shared across decisions.
type Evaluator struct {
	logger    *log.Logger
	clock     quartz.Clock
	trials    int
	workers   int
	deadline  time.Duration
	outcome   Outcome
	modifiers []Modifier
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithTrials sets the simulation budget per candidate.
func WithTrials(trials int) Option {
	return func(e *Evaluator) {
		if trials > 0 {
			e.trials = trials
		}
	}
}

// WithWorkers sets the number of goroutines used per candidate. One
// worker means fully sequential evaluation.
func WithWorkers(workers int) Option {
	return func(e *Evaluator) {
		if workers > 0 {
			e.workers = workers
		}
	}
}

// WithDeadline bounds the wall-clock time for a whole EvaluateMoves
// call. Trials that completed before the deadline still count: the
// evaluator returns the best answer found so far rather than nothing.
func WithDeadline(d time.Duration) Option {
	return func(e *Evaluator) {
		if d > 0 {
			e.deadline = d
		}
	}
}

// WithClock injects the clock used for deadlines. Tests use a mock.
func WithClock(clock quartz.Clock) Option {
	return func(e *Evaluator) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithOutcome sets the outcome metric for playouts.
func WithOutcome(outcome Outcome) Option {
	return func(e *Evaluator) {
		if outcome != nil {
			e.outcome = outcome
		}
	}
}

// WithModifiers appends deterministic score adjustments.
func WithModifiers(modifiers ...Modifier) Option {
	return func(e *Evaluator) {
		e.modifiers = append(e.modifiers, modifiers...)
	}
}

// New creates an evaluator. Workers default to the CPU count, capped
// for diminishing returns the same way the trial loops shard work.
func New(logger *log.Logger, options ...Option) *Evaluator {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	e := &Evaluator{
		logger:  logger.WithPrefix("evaluator"),
		clock:   quartz.NewReal(),
		trials:  DefaultTrials,
		workers: workers,
		outcome: TrickCount,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// EvaluateMoves scores every candidate with the configured trial budget.
// Candidates are scored in the order given; trial seeds derive from the
// supplied RNG, so a fixed seed and budget reproduce identical scores.
// The snapshot is read-only throughout: every trial works on its own
// determinized copy.
func (e *Evaluator) EvaluateMoves(snap *game.Snapshot, candidates []euchre.Card, rng *rand.Rand) []MoveScore {
	var done chan struct{}
	if e.deadline > 0 {
		done = make(chan struct{})
		timer := e.clock.AfterFunc(e.deadline, func() { close(done) })
		defer timer.Stop()
	}

	scores := make([]MoveScore, 0, len(candidates))
	for _, candidate := range candidates {
		score := e.evaluateCandidate(snap, candidate, rng.Int63(), done)
		if score.Trials == 0 {
			// Never selected over a candidate with at least one valid trial
			score.Score = math.Inf(-1)
			e.logger.Error("all trials failed for candidate",
				"candidate", candidate, "failures", score.Failures)
		}
		scores = append(scores, score)
	}
	return scores
}

// Best returns the highest-scoring move, breaking ties by enumeration
// order (first seen wins). ok is false for an empty score list.
func Best(scores []MoveScore) (best MoveScore, ok bool) {
	for i, s := range scores {
		if i == 0 || s.Score > best.Score {
			best = s
		}
	}
	return best, len(scores) > 0
}

type trialSum struct {
	sum      float64
	trials   int
	failures int
}

func (e *Evaluator) evaluateCandidate(snap *game.Snapshot, candidate euchre.Card, seed int64, done <-chan struct{}) MoveScore {
	workers := e.workers
	if workers > e.trials {
		workers = e.trials
	}

	var total trialSum
	if workers <= 1 {
		total = e.runTrials(snap, candidate, randutil.New(seed), e.trials, done)
	} else {
		// Shard trials across workers, each with an independently seeded
		// RNG. Results merge in worker order so parallel evaluation is
		// bit-for-bit reproducible.
		results := make([]trialSum, workers)
		perWorker := e.trials / workers
		remainder := e.trials % workers

		var g errgroup.Group
		for w := 0; w < workers; w++ {
			trials := perWorker
			if w < remainder {
				trials++
			}
			workerRng := randutil.New(randutil.Derive(seed, w))
			g.Go(func() error {
				results[w] = e.runTrials(snap, candidate, workerRng, trials, done)
				return nil
			})
		}
		g.Wait()

		for _, r := range results {
			total.sum += r.sum
			total.trials += r.trials
			total.failures += r.failures
		}
	}

	score := MoveScore{Card: candidate, Trials: total.trials, Failures: total.failures}
	if total.trials > 0 {
		score.Score = total.sum / float64(total.trials)
		for _, modifier := range e.modifiers {
			score.Score += modifier(candidate, snap)
		}
	}
	return score
}

func (e *Evaluator) runTrials(snap *game.Snapshot, candidate euchre.Card, rng *rand.Rand, trials int, done <-chan struct{}) trialSum {
	var result trialSum
	for i := 0; i < trials; i++ {
		select {
		case <-done:
			return result
		default:
		}

		outcome, err := e.runTrial(snap, candidate, rng)
		if err != nil {
			result.failures++
			e.logger.Warn("discarding failed trial", "candidate", candidate, "error", err)
			continue
		}
		result.sum += outcome
		result.trials++
	}
	return result
}

// runTrial performs one determinize-apply-playout cycle.
func (e *Evaluator) runTrial(snap *game.Snapshot, candidate euchre.Card, rng *rand.Rand) (float64, error) {
	deal, err := Determinize(snap, rng, e.logger)
	if err != nil {
		return 0, err
	}

	if deal.Trick == nil {
		deal.Trick = euchre.NewTrick(snap.Seat)
	}
	removeCard(&deal.Hands[snap.Seat], candidate)
	if err := deal.Trick.Play(snap.Seat, candidate, deal.Trump); err != nil {
		return 0, err
	}

	tricks, err := Playout(deal)
	if err != nil {
		return 0, err
	}
	return e.outcome(tricks, snap.Team()), nil
}
