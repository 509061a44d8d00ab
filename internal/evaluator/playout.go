package evaluator

import (
	"fmt"

	"github.com/lox/euchrebot/euchre"
	"github.com/lox/euchrebot/internal/game"
)

// Playout drives a determinized deal to completion and returns the
// final per-team trick counts. Every seat plays the fixed greedy policy,
// so for a given deal the playout is fully deterministic: all variance
// in the evaluator comes from determinization, never from here.
//
// An error means the deal was inconsistent (a seat had no card when one
// was required); callers discard that trial rather than crash.
func Playout(deal *Deal) ([2]int, error) {
	if deal.Trick == nil {
		return deal.TrickCounts, fmt.Errorf("evaluator: playout requires a current trick")
	}
	leader := deal.Trick.Leader
	active := game.NumSeats
	if deal.Inactive != game.NoSeat {
		active--
	}

	for {
		// Finish the current trick from wherever it stands
		for i := 0; i < game.NumSeats; i++ {
			seat := (leader + i) % game.NumSeats
			if seat == deal.Inactive {
				continue
			}
			if _, done := deal.Trick.Cards[seat]; done {
				continue
			}
			if err := playGreedy(deal, seat); err != nil {
				return deal.TrickCounts, err
			}
		}

		if !deal.Trick.Complete(active) {
			return deal.TrickCounts, fmt.Errorf("evaluator: trick has %d of %d cards",
				deal.Trick.Size(), active)
		}
		winner := deal.Trick.Winner(deal.Trump)
		if winner == euchre.NoWinner {
			return deal.TrickCounts, fmt.Errorf("evaluator: completed trick has no winner")
		}
		deal.TrickCounts[game.TeamOf(winner)]++
		leader = winner

		if len(deal.Hands[leader]) == 0 {
			// Winner has no card to lead: hand is over
			return deal.TrickCounts, nil
		}
		deal.Trick = euchre.NewTrick(leader)
	}
}

func playGreedy(deal *Deal, seat int) error {
	legal, err := euchre.LegalMoves(deal.Hands[seat], deal.Trick.Lead, deal.Trump)
	if err != nil {
		return fmt.Errorf("evaluator: seat %d: %w", seat, err)
	}

	card := greedyChoice(legal, deal.Trick, deal.Trump, seat)
	removeCard(&deal.Hands[seat], card)
	return deal.Trick.Play(seat, card, deal.Trump)
}

// greedyChoice implements the fixed opponent policy: lead your strongest
// card; if your partner is already winning the trick, throw your weakest
// legal card; if you can beat the current best card, do it as cheaply as
// possible; otherwise throw your weakest legal card. Ties in power break
// by enumeration order, so the choice is deterministic.
func greedyChoice(legal []euchre.Card, trick *euchre.Trick, trump euchre.Suit, seat int) euchre.Card {
	if trick.Size() == 0 {
		return strongest(legal, trump, euchre.NoSuit)
	}

	winningSeat := trick.Winner(trump)
	if winningSeat == game.Partner(seat) {
		return weakest(legal, trump, trick.Lead)
	}

	bestPower := euchre.Power(trick.Cards[winningSeat], trump, trick.Lead)
	var cheapestWinner *euchre.Card
	for i, c := range legal {
		if euchre.Power(c, trump, trick.Lead) > bestPower {
			if cheapestWinner == nil ||
				euchre.Power(c, trump, trick.Lead) < euchre.Power(*cheapestWinner, trump, trick.Lead) {
				cheapestWinner = &legal[i]
			}
		}
	}
	if cheapestWinner != nil {
		return *cheapestWinner
	}
	return weakest(legal, trump, trick.Lead)
}

func strongest(cards []euchre.Card, trump, lead euchre.Suit) euchre.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if euchre.Power(c, trump, lead) > euchre.Power(best, trump, lead) {
			best = c
		}
	}
	return best
}

func weakest(cards []euchre.Card, trump, lead euchre.Suit) euchre.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if euchre.Power(c, trump, lead) < euchre.Power(best, trump, lead) {
			best = c
		}
	}
	return best
}

func removeCard(hand *[]euchre.Card, card euchre.Card) {
	for i, c := range *hand {
		if c == card {
			*hand = append((*hand)[:i], (*hand)[i+1:]...)
			return
		}
	}
}
