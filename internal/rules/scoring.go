package rules

import "github.com/asselin/hearts/internal/cards"

// PointsForCard returns a card's point contribution: 1 per heart, 13 for the
// queen of spades, -10 for the jack of diamonds when JDMinus10 is enabled,
// else 0.
func PointsForCard(c cards.Card, rs RuleSet) int {
	switch {
	case c.Suit == cards.Hearts:
		return 1
	case c == QueenOfSpades:
		return 13
	case rs.JDMinus10 && c == JackOfDiamonds:
		return -10
	default:
		return 0
	}
}

// PointsForCards sums PointsForCard over cs.
func PointsForCards(cs []cards.Card, rs RuleSet) int {
	total := 0
	for _, c := range cs {
		total += PointsForCard(c, rs)
	}
	return total
}

// PointsForTricks sums each trick's point contribution to its winner, then
// applies moon-shooting: unless rs.MoonShooting is Disabled, a player who
// captured all 26 points of hearts and the queen of spades has 26 subtracted
// from their total and 26 added to every other player's.
func PointsForTricks(tricks []Trick, rs RuleSet) []int {
	points := make([]int, rs.NumPlayers)
	for _, t := range tricks {
		points[t.Winner] += PointsForCards(t.Cards, rs)
	}
	if rs.MoonShooting != Disabled {
		if shooter, ok := moonShooter(tricks, points, rs); ok {
			for p := 0; p < rs.NumPlayers; p++ {
				if p == shooter {
					points[p] -= 26
				} else {
					points[p] += 26
				}
			}
		}
	}
	return points
}

// moonShooter returns the index of the player who captured all 26 point
// cards in the round, if any. Under JDMinus10, the -10 adjustment is undone
// before checking for a 26-point total, since the raw total would otherwise
// be ambiguous between a shoot and a non-shoot hand that also took the jack
// of diamonds.
func moonShooter(tricks []Trick, points []int, rs RuleSet) (int, bool) {
	findShooter := func(pts []int) (int, bool) {
		for p, v := range pts {
			if v == 26 {
				return p, true
			}
		}
		return 0, false
	}

	if !rs.JDMinus10 {
		return findShooter(points)
	}

	withoutJD := append([]int(nil), points...)
	for _, t := range tricks {
		if cards.ContainsCard(t.Cards, JackOfDiamonds) {
			withoutJD[t.Winner] += 10
			break
		}
	}
	return findShooter(withoutJD)
}
