// Package decision defines the request shapes the heuristic policies and the
// Monte Carlo engine decide over, plus the capability interface that lets
// either a plain value request or a live Round serve as that input without
// forcing a copy.
package decision

import (
	"github.com/asselin/hearts/internal/cards"
	"github.com/asselin/hearts/internal/round"
	"github.com/asselin/hearts/internal/rules"
)

// CardToPlay is everything needed to choose a card to play: the decision
// context as of the current player's turn. Both CardToPlayRequest (a plain
// value) and RoundView (a thin wrapper over a live *round.Round) implement
// it.
type CardToPlay interface {
	RuleSet() rules.RuleSet
	Scores() []int
	Hand() []cards.Card
	PrevTricks() []rules.Trick
	CurrentTrick() rules.TrickInProgress
	PassDirection() int
	PassedCards() []cards.Card
	ReceivedCards() []cards.Card
	CurrentPlayerIndex() int
	LegalPlays() []cards.Card
}

// CardToPlayRequest is a self-contained, copyable decision context, mirroring
// the data an out-of-process adapter would hand the engine.
type CardToPlayRequest struct {
	Rules             rules.RuleSet
	ScoresBeforeRound []int
	Hand_             []cards.Card
	PrevTricks_       []rules.Trick
	CurrentTrick_     rules.TrickInProgress
	PassDirection_    int
	PassedCards_      []cards.Card
	ReceivedCards_    []cards.Card
}

func (r *CardToPlayRequest) RuleSet() rules.RuleSet             { return r.Rules }
func (r *CardToPlayRequest) Scores() []int                      { return r.ScoresBeforeRound }
func (r *CardToPlayRequest) Hand() []cards.Card                 { return r.Hand_ }
func (r *CardToPlayRequest) PrevTricks() []rules.Trick          { return r.PrevTricks_ }
func (r *CardToPlayRequest) CurrentTrick() rules.TrickInProgress { return r.CurrentTrick_ }
func (r *CardToPlayRequest) PassDirection() int                 { return r.PassDirection_ }
func (r *CardToPlayRequest) PassedCards() []cards.Card          { return r.PassedCards_ }
func (r *CardToPlayRequest) ReceivedCards() []cards.Card        { return r.ReceivedCards_ }

// CurrentPlayerIndex derives the seat to move from the trick in progress.
func (r *CardToPlayRequest) CurrentPlayerIndex() int {
	return (r.CurrentTrick_.Leader + len(r.CurrentTrick_.Cards)) % r.Rules.NumPlayers
}

// LegalPlays delegates to the rules engine.
func (r *CardToPlayRequest) LegalPlays() []cards.Card {
	return rules.LegalPlays(r.Hand_, r.CurrentTrick_, r.PrevTricks_, r.Rules)
}

// FromRound snapshots the current decision context of a live round into a
// standalone, copyable CardToPlayRequest.
func FromRound(r *round.Round, scoresBeforeRound []int) *CardToPlayRequest {
	p := r.CurrentPlayer()
	return &CardToPlayRequest{
		Rules:             r.Rules,
		ScoresBeforeRound: scoresBeforeRound,
		Hand_:             append([]cards.Card(nil), p.Hand...),
		PrevTricks_:       append([]rules.Trick(nil), r.PrevTricks...),
		CurrentTrick_:     r.CurrentTrick,
		PassDirection_:    r.PassDirection,
		PassedCards_:      append([]cards.Card(nil), p.PassedCards...),
		ReceivedCards_:    append([]cards.Card(nil), p.ReceivedCards...),
	}
}

// RoundView adapts a live *round.Round to the CardToPlay interface without
// copying its state, so callers driving an in-memory game need not snapshot
// it just to ask for a decision.
type RoundView struct {
	Round             *round.Round
	ScoresBeforeRound []int
}

func (v *RoundView) RuleSet() rules.RuleSet             { return v.Round.Rules }
func (v *RoundView) Scores() []int                      { return v.ScoresBeforeRound }
func (v *RoundView) Hand() []cards.Card                 { return v.Round.CurrentPlayer().Hand }
func (v *RoundView) PrevTricks() []rules.Trick          { return v.Round.PrevTricks }
func (v *RoundView) CurrentTrick() rules.TrickInProgress { return v.Round.CurrentTrick }
func (v *RoundView) PassDirection() int                 { return v.Round.PassDirection }
func (v *RoundView) PassedCards() []cards.Card          { return v.Round.CurrentPlayer().PassedCards }
func (v *RoundView) ReceivedCards() []cards.Card        { return v.Round.CurrentPlayer().ReceivedCards }
func (v *RoundView) CurrentPlayerIndex() int            { return v.Round.CurrentPlayerIndex() }
func (v *RoundView) LegalPlays() []cards.Card           { return v.Round.LegalPlays() }

// CardsToPassRequest is the decision context for choosing a pass: the rules,
// the scores at the start of the round, the player's hand, the pass
// direction, and how many cards must be passed.
type CardsToPassRequest struct {
	Rules             rules.RuleSet
	ScoresBeforeRound []int
	Hand              []cards.Card
	Direction         int
	NumCards          int
}
