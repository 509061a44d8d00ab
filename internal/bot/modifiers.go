package bot

import (
	"github.com/lox/euchrebot/euchre"
	"github.com/lox/euchrebot/internal/evaluator"
	"github.com/lox/euchrebot/internal/game"
)

// LeadTrumpPenalty discourages leading trump into the opponents' called
// trump. Pulling trump is the callers' job; doing it for them burns
// cards the defense needs for late tricks. Holding both bowers exempts
// the penalty since the lead then cannot lose.
//
// Like all modifiers it is a pure function of the candidate and static
// snapshot features: no randomness re-enters scoring here.
func LeadTrumpPenalty(penalty float64) evaluator.Modifier {
	return func(candidate euchre.Card, snap *game.Snapshot) float64 {
		if snap.Lead != euchre.NoSuit {
			return 0 // not leading
		}
		if snap.Caller == game.NoSeat || game.TeamOf(snap.Caller) == snap.Team() {
			return 0 // we called it, pulling trump is fine
		}
		if !euchre.IsTrump(candidate, snap.Trump) {
			return 0
		}
		if holdsBothBowers(snap.Hand, snap.Trump) {
			return 0
		}
		return -penalty
	}
}
