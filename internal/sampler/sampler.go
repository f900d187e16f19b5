// Package sampler implements the constrained hidden-hand sampler: given an
// unassigned pool of cards and per-player constraints (hand size, voided
// suits, fixed cards), it produces a random but consistent assignment.
package sampler

import (
	"math/rand"

	"github.com/asselin/hearts/internal/cards"
)

// PlayerConstraint describes what a single player's hidden hand may contain.
type PlayerConstraint struct {
	NumCards    int
	VoidedSuits map[cards.Suit]bool
	FixedCards  map[cards.Card]bool
}

// NewPlayerConstraint returns an empty constraint requiring numCards cards.
func NewPlayerConstraint(numCards int) PlayerConstraint {
	return PlayerConstraint{
		NumCards:    numCards,
		VoidedSuits: make(map[cards.Suit]bool),
		FixedCards:  make(map[cards.Card]bool),
	}
}

// DistributionRequest is the input to PossibleCardDistribution: the pool of
// cards to assign, and one constraint per player. A fixed card belonging to
// player i is excluded from every other player's legal pool, so it can only
// ever end up in i's output; referencing a fixed card that is not present in
// Cards is legal and simply has no effect (it does not appear in any
// player's output).
type DistributionRequest struct {
	Cards       []cards.Card
	Constraints []PlayerConstraint
}

// UnsatisfiableError reports that no card distribution could be found
// satisfying the given constraints within the retry budget.
type UnsatisfiableError struct {
	Reason string
}

func (e *UnsatisfiableError) Error() string {
	return "sampler: unsatisfiable: " + e.Reason
}

// legalPools computes, for each player, the subset of req.Cards whose suit is
// not voided for that player, minus every other player's fixed cards.
func legalPools(req *DistributionRequest) []map[cards.Card]bool {
	n := len(req.Constraints)
	pools := make([]map[cards.Card]bool, n)
	for i, cs := range req.Constraints {
		pool := make(map[cards.Card]bool)
		for _, c := range req.Cards {
			if !cs.VoidedSuits[c.Suit] {
				pool[c] = true
			}
		}
		for j, other := range req.Constraints {
			if j == i {
				continue
			}
			for fc := range other.FixedCards {
				delete(pool, fc)
			}
		}
		pools[i] = pool
	}
	return pools
}

func randomFromSet(pool map[cards.Card]bool, rng *rand.Rand) cards.Card {
	n := rng.Intn(len(pool))
	i := 0
	for c := range pool {
		if i == n {
			return c
		}
		i++
	}
	panic("sampler: randomFromSet called on an empty pool")
}

// possibleCardDistributionAttempt is a single attempt at satisfying req; it
// may fail if the constraints turn out to be unsatisfiable given the random
// choices made along the way, in which case the caller should retry.
func possibleCardDistributionAttempt(req *DistributionRequest, rng *rand.Rand) ([][]cards.Card, error) {
	n := len(req.Constraints)
	result := make([][]cards.Card, n)
	pools := legalPools(req)

	for {
		tookAll := false
		for i := 0; i < n; i++ {
			numToFill := req.Constraints[i].NumCards - len(result[i])
			if numToFill <= 0 {
				continue
			}
			numLegal := len(pools[i])
			if numToFill > numLegal {
				return nil, &UnsatisfiableError{Reason: "a player's constraint needs more cards than remain legal for them"}
			}
			if numToFill == numLegal {
				taken := make([]cards.Card, 0, numLegal)
				for c := range pools[i] {
					taken = append(taken, c)
				}
				result[i] = append(result[i], taken...)
				for _, c := range taken {
					for j := 0; j < n; j++ {
						delete(pools[j], c)
					}
				}
				tookAll = true
				break
			}
		}
		if tookAll {
			continue
		}

		choseCard := false
		for i := 0; i < n; i++ {
			numToFill := req.Constraints[i].NumCards - len(result[i])
			if numToFill <= 0 {
				continue
			}
			c := randomFromSet(pools[i], rng)
			result[i] = append(result[i], c)
			for j := 0; j < n; j++ {
				delete(pools[j], c)
			}
			choseCard = true
			break
		}
		if !choseCard {
			break
		}
	}

	return result, nil
}

// PossibleCardDistribution retries possibleCardDistributionAttempt up to
// 10,000 times with the provided randomness and returns the first success.
// Returns UnsatisfiableError after the retry budget is exhausted.
func PossibleCardDistribution(req *DistributionRequest, rng *rand.Rand) ([][]cards.Card, error) {
	for i := 0; i < 10000; i++ {
		result, err := possibleCardDistributionAttempt(req, rng)
		if err == nil {
			return result, nil
		}
	}
	return nil, &UnsatisfiableError{Reason: "no satisfying assignment found after 10000 attempts"}
}
