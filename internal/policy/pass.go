package policy

import (
	"sort"

	"github.com/asselin/hearts/internal/cards"
	"github.com/asselin/hearts/internal/decision"
	"github.com/asselin/hearts/internal/rules"
)

// ChooseCardsToPassRandom returns the first NumCards cards of the hand,
// unchanged in order. This is the fallback / baseline pass selection.
func ChooseCardsToPassRandom(req *decision.CardsToPassRequest) []cards.Card {
	return append([]cards.Card(nil), req.Hand[:req.NumCards]...)
}

// ChooseCardsToPass scores every card in the hand by danger (how much it is
// worth passing away) and returns the NumCards highest-danger cards, in
// descending danger order, ties broken by original hand order.
func ChooseCardsToPass(req *decision.CardsToPassRequest) []cards.Card {
	hand := req.Hand
	passingRight := req.Direction == req.Rules.NumPlayers-1
	dangers := make([]int, len(hand))
	for i, c := range hand {
		dangers[i] = cardDanger(c, hand, passingRight)
	}

	order := make([]int, len(hand))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return dangers[order[a]] > dangers[order[b]]
	})

	n := req.NumCards
	if n > len(hand) {
		n = len(hand)
	}
	out := make([]cards.Card, n)
	for i := 0; i < n; i++ {
		out[i] = hand[order[i]]
	}
	return out
}

func cardDanger(c cards.Card, hand []cards.Card, passingRight bool) int {
	switch c.Suit {
	case cards.Spades:
		return spadeDanger(c, hand, passingRight)
	case cards.Hearts, cards.Diamonds:
		lowest := lowestRankInSuit(hand, c.Suit)
		return int(c.Rank) + int(lowest)
	case cards.Clubs:
		return clubDanger(c, hand)
	default:
		return 0
	}
}

func spadeDanger(c cards.Card, hand []cards.Card, passingRight bool) int {
	if c.Rank < cards.Queen {
		return 0
	}
	if countSuit(hand, cards.Spades) >= 4 {
		return 0
	}
	if c == rules.QueenOfSpades {
		return 100
	}
	// Only the ace and king of spades can reach this point.
	if c.Rank == cards.Ace || c.Rank == cards.King {
		holdsQS := cards.ContainsCard(hand, rules.QueenOfSpades)
		hasLowSpade := hasSpadeBelow(hand, cards.Queen)
		if passingRight && holdsQS && hasLowSpade {
			return int(c.Rank) - 5
		}
	}
	return 100
}

func clubDanger(c cards.Card, hand []cards.Card) int {
	clubs := cardsOfSuit(hand, cards.Clubs)
	lowest := lowestRankInSuit(hand, cards.Clubs)

	adjRank := int(c.Rank) - 1
	if c.Rank == cards.Two {
		adjRank = 14
	}

	if lowest == cards.Two {
		if len(clubs) >= 2 {
			second := secondLowestRank(clubs)
			return adjRank + int(second)
		}
		return 50
	}
	return adjRank + int(lowest) - 1
}

func countSuit(cs []cards.Card, suit cards.Suit) int {
	n := 0
	for _, c := range cs {
		if c.Suit == suit {
			n++
		}
	}
	return n
}

func hasSpadeBelow(hand []cards.Card, rank cards.Rank) bool {
	for _, c := range hand {
		if c.Suit == cards.Spades && c.Rank < rank {
			return true
		}
	}
	return false
}

func lowestRankInSuit(hand []cards.Card, suit cards.Suit) cards.Rank {
	ranks := cards.RanksForSuit(hand, suit)
	return ranks[len(ranks)-1]
}

func secondLowestRank(cs []cards.Card) cards.Rank {
	ranks := make([]cards.Rank, len(cs))
	for i, c := range cs {
		ranks[i] = c.Rank
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
	return ranks[1]
}
