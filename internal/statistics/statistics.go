// Package statistics aggregates self-play results into summary
// statistics with confidence intervals.
package statistics

import (
	"fmt"
	"math"
)

// DealResult represents the outcome of a single hand from the subject
// team's perspective.
type DealResult struct {
	Points  float64 // net points (team points minus opponent points)
	Tricks  int     // tricks taken by the subject team
	Seed    int64   // RNG seed for this hand (for replay)
	Dealer  int     // dealer seat for this hand
	Called  bool    // did the subject team name trump?
	Euchred bool    // did the subject team call and fail?
}

// Statistics tracks aggregate self-play performance.
type Statistics struct {
	Deals      int
	SumPoints  float64
	SumPoints2 float64 // sum of squares for variance calculation

	TricksTaken int
	Calls       int
	Euchres     int
	Wins        int // hands with positive net points
}

// Add incorporates a new deal result.
func (s *Statistics) Add(result DealResult) {
	s.Deals++
	s.SumPoints += result.Points
	s.SumPoints2 += result.Points * result.Points
	s.TricksTaken += result.Tricks
	if result.Called {
		s.Calls++
	}
	if result.Euchred {
		s.Euchres++
	}
	if result.Points > 0 {
		s.Wins++
	}
}

// Mean returns the average net points per deal.
func (s *Statistics) Mean() float64 {
	if s.Deals == 0 {
		return 0
	}
	return s.SumPoints / float64(s.Deals)
}

// Variance returns the sample variance of net points.
func (s *Statistics) Variance() float64 {
	if s.Deals < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumPoints2 - float64(s.Deals)*mean*mean) / float64(s.Deals-1)
}

// StdDev returns the sample standard deviation.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Deals == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Deals))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// WinRate returns the fraction of deals the subject team came out ahead.
func (s *Statistics) WinRate() float64 {
	if s.Deals == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Deals)
}

// AvgTricks returns the average tricks taken per deal.
func (s *Statistics) AvgTricks() float64 {
	if s.Deals == 0 {
		return 0
	}
	return float64(s.TricksTaken) / float64(s.Deals)
}

// Validate performs sanity checks before results are reported.
func (s *Statistics) Validate() error {
	if s.Deals < 0 {
		return fmt.Errorf("negative deal count %d", s.Deals)
	}
	if s.Calls > s.Deals {
		return fmt.Errorf("calls %d exceed deals %d", s.Calls, s.Deals)
	}
	if s.Euchres > s.Calls {
		return fmt.Errorf("euchres %d exceed calls %d", s.Euchres, s.Calls)
	}
	if s.TricksTaken > s.Deals*5 {
		return fmt.Errorf("tricks %d exceed maximum for %d deals", s.TricksTaken, s.Deals)
	}
	return nil
}
