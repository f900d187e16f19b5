// Package round implements the Hearts round state machine: dealing, passing,
// and trick play, built on the legality and scoring rules in internal/rules.
package round

import "github.com/asselin/hearts/internal/cards"

// Player holds one seat's hand plus the cards they chose to pass out and the
// cards they received in return.
type Player struct {
	Hand          []cards.Card
	PassedCards   []cards.Card
	ReceivedCards []cards.Card
}

// NewPlayer seats a player with the given starting hand.
func NewPlayer(hand []cards.Card) Player {
	return Player{Hand: append([]cards.Card(nil), hand...)}
}

func (p Player) clone() Player {
	return Player{
		Hand:          append([]cards.Card(nil), p.Hand...),
		PassedCards:   append([]cards.Card(nil), p.PassedCards...),
		ReceivedCards: append([]cards.Card(nil), p.ReceivedCards...),
	}
}
