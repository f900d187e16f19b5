// Package hearts is the single import surface for the decision engine: a
// tagged-sum CardToPlayStrategy spanning the fast heuristics and the
// Monte Carlo search, plus the top-level ChooseCard, ChooseCardsToPass, and
// PointsForTricks entry points.
package hearts

import (
	"math/rand"

	"github.com/asselin/hearts/internal/cards"
	"github.com/asselin/hearts/internal/decision"
	"github.com/asselin/hearts/internal/montecarlo"
	"github.com/asselin/hearts/internal/policy"
	"github.com/asselin/hearts/internal/rules"
)

// CardToPlayStrategy is the full tagged sum of play strategies: the three
// non-recursive heuristics, plus a Monte Carlo variant of each naming the
// non-recursive strategy it rolls out with.
type CardToPlayStrategy interface {
	isCardToPlayStrategy()
}

// Random plays a uniformly chosen legal card.
type Random struct{}

func (Random) isCardToPlayStrategy() {}

// AvoidPoints plays the staged avoid-points heuristic.
type AvoidPoints struct{}

func (AvoidPoints) isCardToPlayStrategy() {}

// MixedRandomAvoidPoints plays Random with probability PRandom, else
// AvoidPoints.
type MixedRandomAvoidPoints struct {
	PRandom float64
}

func (MixedRandomAvoidPoints) isCardToPlayStrategy() {}

// MonteCarlo runs the search described in internal/montecarlo, driving
// rollouts with Rollout (which must be Random, AvoidPoints, or
// MixedRandomAvoidPoints).
type MonteCarlo struct {
	Params  montecarlo.Params
	Rollout CardToPlayStrategy
}

func (MonteCarlo) isCardToPlayStrategy() {}

func toNonRecursive(strategy CardToPlayStrategy) (policy.NonRecursive, bool) {
	switch s := strategy.(type) {
	case Random:
		return policy.Random{}, true
	case AvoidPoints:
		return policy.AvoidPoints{}, true
	case MixedRandomAvoidPoints:
		return policy.MixedRandomAvoidPoints{PRandom: s.PRandom}, true
	default:
		return nil, false
	}
}

// ChooseCard dispatches to the strategy named by strategy and returns a card
// guaranteed to be in LegalPlays(req).
func ChooseCard(req decision.CardToPlay, strategy CardToPlayStrategy, rng *rand.Rand) cards.Card {
	if nr, ok := toNonRecursive(strategy); ok {
		return policy.ChooseCardNonRecursive(req, nr, rng)
	}
	mc, ok := strategy.(MonteCarlo)
	if !ok {
		panic("hearts: unknown CardToPlayStrategy")
	}
	rollout, ok := toNonRecursive(mc.Rollout)
	if !ok {
		panic("hearts: Monte Carlo rollout strategy must be non-recursive")
	}
	return montecarlo.ChooseCard(req, mc.Params, rollout, rng)
}

// ChooseCardsToPass selects req.NumCards cards from req.Hand to pass, using
// the danger-score heuristic.
func ChooseCardsToPass(req *decision.CardsToPassRequest) []cards.Card {
	return policy.ChooseCardsToPass(req)
}

// PointsForTricks returns the per-player point totals for a completed round,
// including any moon-shoot and jack-of-diamonds adjustments rs specifies.
func PointsForTricks(tricks []rules.Trick, rs rules.RuleSet) []int {
	return rules.PointsForTricks(tricks, rs)
}
