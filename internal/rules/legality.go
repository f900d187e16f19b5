package rules

import "github.com/asselin/hearts/internal/cards"

func filterCards(cs []cards.Card, keep func(cards.Card) bool) []cards.Card {
	var out []cards.Card
	for _, c := range cs {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func cardsOfSuit(cs []cards.Card, suit cards.Suit) []cards.Card {
	return filterCards(cs, func(c cards.Card) bool { return c.Suit == suit })
}

// LegalPlays returns the exact subset of hand the current player may legally
// play, given the trick in progress, the completed tricks so far, and the
// active RuleSet.
//
// The first-trick-no-points filter intentionally uses PointsForCard(c, rs) <=
// 0, which lets the jack of diamonds through under JDMinus10 despite it being
// a scoring card; this mirrors the reference implementation's observed
// behavior rather than excluding any card with a nonzero point value.
func LegalPlays(hand []cards.Card, current TrickInProgress, prevTricks []Trick, rs RuleSet) []cards.Card {
	if len(prevTricks) == 0 {
		if len(current.Cards) == 0 {
			if cards.ContainsCard(hand, TwoOfClubs) {
				return []cards.Card{TwoOfClubs}
			}
			return nil
		}
		lead := current.Cards[0].Suit
		matches := cardsOfSuit(hand, lead)
		if len(matches) > 0 {
			return matches
		}
		if !rs.PointsOnFirstTrick {
			nonPoints := filterCards(hand, func(c cards.Card) bool {
				return PointsForCard(c, rs) <= 0
			})
			if len(nonPoints) > 0 {
				return nonPoints
			}
		}
		return append([]cards.Card(nil), hand...)
	}

	if len(current.Cards) == 0 {
		if !AreHeartsBroken(current, prevTricks, rs) {
			nonHearts := filterCards(hand, func(c cards.Card) bool { return c.Suit != cards.Hearts })
			if len(nonHearts) > 0 {
				return nonHearts
			}
		}
		return append([]cards.Card(nil), hand...)
	}

	lead := current.Cards[0].Suit
	matches := cardsOfSuit(hand, lead)
	if len(matches) == 0 {
		return append([]cards.Card(nil), hand...)
	}
	return matches
}
