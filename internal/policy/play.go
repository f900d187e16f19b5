// Package policy implements the fast, non-recursive play and pass heuristics:
// random selection, the avoid-points staged heuristic, a probabilistic mix
// of the two, and the danger-score passing heuristic. These are the
// strategies the Monte Carlo engine is allowed to drive rollouts with.
package policy

import (
	"math/rand"

	"github.com/asselin/hearts/internal/cards"
	"github.com/asselin/hearts/internal/decision"
	"github.com/asselin/hearts/internal/rules"
)

// NonRecursive is the tagged sum of strategies safe to use inside a Monte
// Carlo rollout: they never themselves sample hidden hands or recurse, so
// driving a full round to completion with one always terminates.
type NonRecursive interface {
	isNonRecursive()
}

// Random plays a uniformly chosen legal card.
type Random struct{}

func (Random) isNonRecursive() {}

// AvoidPoints plays the staged heuristic described in ChooseCardAvoidPoints.
type AvoidPoints struct{}

func (AvoidPoints) isNonRecursive() {}

// MixedRandomAvoidPoints plays Random with probability PRandom, else
// AvoidPoints.
type MixedRandomAvoidPoints struct {
	PRandom float64
}

func (MixedRandomAvoidPoints) isNonRecursive() {}

// ChooseCardNonRecursive dispatches to the concrete heuristic named by
// strategy.
func ChooseCardNonRecursive(req decision.CardToPlay, strategy NonRecursive, rng *rand.Rand) cards.Card {
	switch s := strategy.(type) {
	case Random:
		return ChooseCardRandom(req, rng)
	case AvoidPoints:
		return ChooseCardAvoidPoints(req, rng)
	case MixedRandomAvoidPoints:
		if rng.Float64() < s.PRandom {
			return ChooseCardRandom(req, rng)
		}
		return ChooseCardAvoidPoints(req, rng)
	default:
		panic("policy: unknown non-recursive strategy")
	}
}

// ChooseCardRandom picks uniformly among the legal plays.
func ChooseCardRandom(req decision.CardToPlay, rng *rand.Rand) cards.Card {
	legal := req.LegalPlays()
	return legal[rng.Intn(len(legal))]
}

func maxByRank(cs []cards.Card) cards.Card {
	best := cs[0]
	for _, c := range cs[1:] {
		if c.Rank > best.Rank {
			best = c
		}
	}
	return best
}

func minByRank(cs []cards.Card) cards.Card {
	best := cs[0]
	for _, c := range cs[1:] {
		if c.Rank < best.Rank {
			best = c
		}
	}
	return best
}

func excludingQueenOfSpades(cs []cards.Card) []cards.Card {
	var out []cards.Card
	for _, c := range cs {
		if c != rules.QueenOfSpades {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return cs
	}
	return out
}

func highestBelow(cs []cards.Card, rank cards.Rank) (cards.Card, bool) {
	var best cards.Card
	found := false
	for _, c := range cs {
		if c.Rank < rank && (!found || c.Rank > best.Rank) {
			best = c
			found = true
		}
	}
	return best, found
}

func containsSuit(cs []cards.Card, suit cards.Suit) bool {
	for _, c := range cs {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

func randomSuit(suits map[cards.Suit]bool, rng *rand.Rand) cards.Suit {
	n := rng.Intn(len(suits))
	i := 0
	for s := range suits {
		if i == n {
			return s
		}
		i++
	}
	panic("policy: randomSuit called with no suits")
}

// ChooseCardAvoidPoints is a staged heuristic that leads low and discharges
// point cards (hearts, the queen of spades) when following or discarding.
func ChooseCardAvoidPoints(req decision.CardToPlay, rng *rand.Rand) cards.Card {
	legal := req.LegalPlays()
	if len(legal) == 1 {
		return legal[0]
	}
	rs := req.RuleSet()

	legalSuits := make(map[cards.Suit]bool)
	for _, c := range legal {
		legalSuits[c.Suit] = true
	}

	trick := req.CurrentTrick()
	if len(trick.Cards) == 0 {
		// Leading: play the lowest card of a uniformly random legal suit.
		suit := randomSuit(legalSuits, rng)
		ranks := cards.RanksForSuit(legal, suit)
		lowest := ranks[len(ranks)-1]
		return cards.New(lowest, suit)
	}

	trickSuit := trick.Cards[0].Suit
	isFollowingSuit := legalSuits[trickSuit]
	hasQS := cards.ContainsCard(legal, rules.QueenOfSpades)
	hasJD := rs.JDMinus10 && cards.ContainsCard(legal, rules.JackOfDiamonds)

	if isFollowingSuit {
		// Play high on the first trick when points are disallowed.
		if len(req.PrevTricks()) == 0 && !rs.PointsOnFirstTrick {
			return maxByRank(excludingQueenOfSpades(legal))
		}
		high := rules.HighestInTrick(trick.Cards)
		if hasQS && high.Rank > cards.Queen {
			return rules.QueenOfSpades
		}
		isLastPlay := len(trick.Cards) == rs.NumPlayers-1
		if isLastPlay {
			trickPoints := rules.PointsForCards(trick.Cards, rs)
			if hasJD && trickPoints < 10 && high.Rank < cards.Jack {
				return rules.JackOfDiamonds
			}
			if trickPoints <= 0 {
				return maxByRank(excludingQueenOfSpades(legal))
			}
			if nonwinner, ok := highestBelow(legal, high.Rank); ok {
				return nonwinner
			}
			return maxByRank(excludingQueenOfSpades(legal))
		}
		if nonwinner, ok := highestBelow(legal, high.Rank); ok {
			return nonwinner
		}
		return minByRank(excludingQueenOfSpades(legal))
	}

	// Discarding: dump the queen of spades, else the highest heart, else the
	// highest remaining card.
	if hasQS {
		return rules.QueenOfSpades
	}
	if containsSuit(legal, cards.Hearts) {
		return maxByRank(cardsOfSuit(legal, cards.Hearts))
	}
	return maxByRank(legal)
}

func cardsOfSuit(cs []cards.Card, suit cards.Suit) []cards.Card {
	var out []cards.Card
	for _, c := range cs {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}
