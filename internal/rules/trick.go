package rules

import "github.com/asselin/hearts/internal/cards"

// TrickInProgress is the trick currently being played: its leader and the
// cards played so far, in turn order starting with the leader.
type TrickInProgress struct {
	Leader int
	Cards  []cards.Card
}

// NewTrickInProgress starts an empty trick led by the given player.
func NewTrickInProgress(leader int) TrickInProgress {
	return TrickInProgress{Leader: leader}
}

// Trick is a completed trick: its leader, its cards in turn order, and the
// seat index of the player who won it.
type Trick struct {
	Leader int
	Cards  []cards.Card
	Winner int
}

// TrickWinnerIndex returns the index within cards of the highest-ranked card
// matching the led suit (cards[0]'s suit).
func TrickWinnerIndex(trick []cards.Card) int {
	bestIndex := 0
	bestRank := trick[0].Rank
	leadSuit := trick[0].Suit
	for i := 1; i < len(trick); i++ {
		if trick[i].Suit == leadSuit && trick[i].Rank > bestRank {
			bestIndex = i
			bestRank = trick[i].Rank
		}
	}
	return bestIndex
}

// HighestInTrick returns the highest-ranked card of the trick's led suit.
func HighestInTrick(trick []cards.Card) cards.Card {
	return trick[TrickWinnerIndex(trick)]
}

// AreHeartsBroken reports whether a heart (or, under QueenBreaksHearts, the
// queen of spades) has appeared in any completed or in-progress trick.
func AreHeartsBroken(current TrickInProgress, prevTricks []Trick, rs RuleSet) bool {
	breaks := func(c cards.Card) bool {
		return c.Suit == cards.Hearts || (rs.QueenBreaksHearts && c == QueenOfSpades)
	}
	for _, t := range prevTricks {
		for _, c := range t.Cards {
			if breaks(c) {
				return true
			}
		}
	}
	for _, c := range current.Cards {
		if breaks(c) {
			return true
		}
	}
	return false
}
