// Package simulator runs seeded self-play benchmarks: the Monte Carlo
// bot (seats 0 and 2) against greedy baseline opponents, aggregating
// net points across deals.
package simulator

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/euchrebot/internal/bot"
	"github.com/lox/euchrebot/internal/game"
	"github.com/lox/euchrebot/internal/randutil"
	"github.com/lox/euchrebot/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Deals   int
	Seed    int64
	Bot     bot.Config
	Timeout time.Duration
	Logger  *log.Logger
}

// Simulator plays hands of euchre between the search bot and baseline
// opponents.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run executes the simulation and returns aggregate statistics for the
// bot's team. The dealer rotates every deal to remove positional bias,
// and each deal gets an independent derived seed so runs are
// reproducible deal by deal.
func (s *Simulator) Run() (*statistics.Statistics, error) {
	stats := &statistics.Statistics{}

	for deal := 0; deal < s.config.Deals; deal++ {
		dealSeed := randutil.Derive(s.config.Seed, deal)
		dealer := deal % game.NumSeats

		result, err := s.playDeal(dealSeed, dealer)
		if err != nil {
			return nil, fmt.Errorf("deal %d (seed %d): %w", deal+1, dealSeed, err)
		}
		stats.Add(result)
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playDeal runs one hand with the bot's team in seats 0 and 2.
func (s *Simulator) playDeal(seed int64, dealer int) (statistics.DealResult, error) {
	rng := randutil.New(seed)

	searcher := bot.New(rng, s.config.Logger, s.config.Bot)
	baseline := bot.NewGreedyBot()
	agents := [game.NumSeats]game.Agent{searcher, baseline, searcher, baseline}

	hand := game.NewHand(rng, s.config.Logger, dealer, agents)

	type handOutcome struct {
		result *game.Result
		err    error
	}
	outcomeCh := make(chan handOutcome, 1)
	go func() {
		result, err := hand.Run()
		outcomeCh <- handOutcome{result, err}
	}()

	// A nil channel never fires, so a zero timeout means unbounded
	var timeout <-chan time.Time
	if s.config.Timeout > 0 {
		timeout = time.After(s.config.Timeout)
	}

	var result *game.Result
	select {
	case outcome := <-outcomeCh:
		if outcome.err != nil {
			return statistics.DealResult{}, outcome.err
		}
		result = outcome.result
	case <-timeout:
		return statistics.DealResult{}, fmt.Errorf("hand timed out after %v (seed: %d, dealer: %d)",
			s.config.Timeout, seed, dealer)
	}

	const team = 0 // bot's team
	called := game.TeamOf(result.Caller) == team
	return statistics.DealResult{
		Points:  float64(result.Points[team] - result.Points[1-team]),
		Tricks:  result.Tricks[team],
		Seed:    seed,
		Dealer:  dealer,
		Called:  called,
		Euchred: called && result.Points[1-team] > 0,
	}, nil
}

// RunSimulation is a convenience wrapper for one-shot use.
func RunSimulation(deals int, seed int64, botConfig bot.Config, timeout time.Duration, logger *log.Logger) (*statistics.Statistics, error) {
	return New(Config{
		Deals:   deals,
		Seed:    seed,
		Bot:     botConfig,
		Timeout: timeout,
		Logger:  logger,
	}).Run()
}
