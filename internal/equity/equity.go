// Package equity converts a cumulative score vector into an estimate of a
// player's probability of finishing the match with the lowest score.
package equity

// MatchEquityForScores estimates playerIndex's probability of winning the
// match outright, given the cumulative scores and the ruleset's point limit.
//
// If any player has already reached the limit, the match is decided: the
// lowest score (or scores, if tied) wins, so equity is 1/k for a k-way tie
// for lowest and 0 otherwise. Mid-match, equity is approximated by each
// player's distance from the limit as a share of the total distance — lower
// scores are better, so being farther from the limit means a larger share.
func MatchEquityForScores(scores []int, pointLimit int, playerIndex int) float64 {
	matchOver := false
	for _, s := range scores {
		if s >= pointLimit {
			matchOver = true
			break
		}
	}

	if matchOver {
		lowest := scores[0]
		for _, s := range scores[1:] {
			if s < lowest {
				lowest = s
			}
		}
		if scores[playerIndex] != lowest {
			return 0
		}
		ties := 0
		for _, s := range scores {
			if s == lowest {
				ties++
			}
		}
		return 1.0 / float64(ties)
	}

	total := 0
	for _, s := range scores {
		total += pointLimit - s
	}
	return float64(pointLimit-scores[playerIndex]) / float64(total)
}
