// Package rules implements the Hearts legality and scoring engine: pure,
// stateless functions over a hand, the trick in progress, completed tricks,
// and a RuleSet.
package rules

import "github.com/asselin/hearts/internal/cards"

// MoonShooting selects how a shot-the-moon round is scored.
type MoonShooting int

const (
	// Disabled leaves moon-shooting scoring off; points_for_tricks never
	// adjusts for it.
	Disabled MoonShooting = iota
	// OpponentsPlus26 adds 26 points to every player but the shooter, and
	// subtracts 26 from the shooter.
	OpponentsPlus26
)

// RuleSet is an immutable bundle of per-round rule choices. Use Default for
// the canonical defaults.
type RuleSet struct {
	NumPlayers         int
	RemovedCards       []cards.Card
	PointLimit         int
	PointsOnFirstTrick bool
	QueenBreaksHearts  bool
	JDMinus10          bool
	MoonShooting       MoonShooting
}

// Default returns the canonical 4-player RuleSet.
func Default() RuleSet {
	return RuleSet{
		NumPlayers:         4,
		RemovedCards:       nil,
		PointLimit:         100,
		PointsOnFirstTrick: false,
		QueenBreaksHearts:  false,
		JDMinus10:          false,
		MoonShooting:       OpponentsPlus26,
	}
}

// QueenOfSpades is the 13-point card.
var QueenOfSpades = cards.New(cards.Queen, cards.Spades)

// TwoOfClubs is the conventional opening lead.
var TwoOfClubs = cards.New(cards.Two, cards.Clubs)

// JackOfDiamonds is the card worth -10 under the jd_minus_10 variant.
var JackOfDiamonds = cards.New(cards.Jack, cards.Diamonds)
