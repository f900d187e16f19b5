package round

import (
	"github.com/asselin/hearts/internal/cards"
	"github.com/asselin/hearts/internal/rules"
)

// Status is the round's current phase.
type Status int

const (
	Passing Status = iota
	Playing
)

// IllegalPlayError reports that PlayCard was asked to play a card not in
// the current player's hand. Callers are expected to have already consulted
// LegalPlays; this is a programming error, not a rule violation.
type IllegalPlayError struct {
	Card cards.Card
}

func (e *IllegalPlayError) Error() string {
	return "round: illegal play: " + e.Card.String() + " is not in the current player's hand"
}

// Round is the full mutable state of one dealt hand of Hearts, from deal
// through the final trick.
type Round struct {
	Rules           rules.RuleSet
	Players         []Player
	InitialScores   []int
	PassDirection   int
	NumPassedCards  int
	Status          Status
	CurrentTrick    rules.TrickInProgress
	PrevTricks      []rules.Trick
}

// lowestClubHolder returns the index of the player holding the lowest club
// remaining in play (2♣ unless it was removed from the deck).
func lowestClubHolder(players []Player, removed []cards.Card) int {
	for rank := cards.Two; rank <= cards.Ace; rank++ {
		target := cards.New(rank, cards.Clubs)
		if cards.ContainsCard(removed, target) {
			continue
		}
		for i, p := range players {
			if cards.ContainsCard(p.Hand, target) {
				return i
			}
		}
	}
	panic("round: no club in play to lead the first trick")
}

// Deal partitions deck into rs.NumPlayers contiguous, equal-size hands and
// starts a new Round. Status begins as Passing unless passDirection is 0.
func Deal(deck cards.Deck, rs rules.RuleSet, scores []int, passDirection int) Round {
	all := deck.Cards()
	n := rs.NumPlayers
	handSize := len(all) / n
	players := make([]Player, n)
	for i := 0; i < n; i++ {
		start := handSize * i
		end := handSize * (i + 1)
		players[i] = NewPlayer(all[start:end])
	}

	status := Playing
	if passDirection != 0 {
		status = Passing
	}

	leader := lowestClubHolder(players, rs.RemovedCards)
	return Round{
		Rules:          rs,
		Players:        players,
		InitialScores:  append([]int(nil), scores...),
		PassDirection:  passDirection,
		NumPassedCards: 3,
		Status:         status,
		CurrentTrick:   rules.NewTrickInProgress(leader),
	}
}

// Clone returns a deep copy of the round, suitable for an independent
// hypothetical rollout.
func (r Round) Clone() Round {
	players := make([]Player, len(r.Players))
	for i, p := range r.Players {
		players[i] = p.clone()
	}
	return Round{
		Rules:          r.Rules,
		Players:        players,
		InitialScores:  append([]int(nil), r.InitialScores...),
		PassDirection:  r.PassDirection,
		NumPassedCards: r.NumPassedCards,
		Status:         r.Status,
		CurrentTrick: rules.TrickInProgress{
			Leader: r.CurrentTrick.Leader,
			Cards:  append([]cards.Card(nil), r.CurrentTrick.Cards...),
		},
		PrevTricks: append([]rules.Trick(nil), r.PrevTricks...),
	}
}

// IsOver reports whether every player's hand is empty.
func (r Round) IsOver() bool {
	for _, p := range r.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}

// PointsTaken returns the per-player point totals accrued so far via
// completed tricks.
func (r Round) PointsTaken() []int {
	return rules.PointsForTricks(r.PrevTricks, r.Rules)
}

// CurrentPlayerIndex returns the seat whose turn it is to play.
func (r Round) CurrentPlayerIndex() int {
	return (r.CurrentTrick.Leader + len(r.CurrentTrick.Cards)) % r.Rules.NumPlayers
}

// CurrentPlayer returns the player whose turn it is to play.
func (r Round) CurrentPlayer() Player {
	return r.Players[r.CurrentPlayerIndex()]
}

// LegalPlays returns the legal plays for the current player.
func (r Round) LegalPlays() []cards.Card {
	return rules.LegalPlays(r.CurrentPlayer().Hand, r.CurrentTrick, r.PrevTricks, r.Rules)
}

// AreHeartsBroken reports whether hearts have been broken so far this round.
func (r Round) AreHeartsBroken() bool {
	return rules.AreHeartsBroken(r.CurrentTrick, r.PrevTricks, r.Rules)
}

// CanPassCards reports whether cs is a valid pass selection for player p:
// exactly NumPassedCards cards, all currently in p's hand.
func (r Round) CanPassCards(p int, cs []cards.Card) bool {
	if len(cs) != r.NumPassedCards {
		return false
	}
	seen := make(map[cards.Card]bool, len(cs))
	for _, c := range cs {
		seen[c] = true
	}
	for c := range seen {
		if !cards.ContainsCard(r.Players[p].Hand, c) {
			return false
		}
	}
	return true
}

// SetPassedCardsForPlayer records player p's pass selection, overwriting any
// prior selection. Requires Status == Passing and CanPassCards(p, cs).
func (r *Round) SetPassedCardsForPlayer(p int, cs []cards.Card) {
	if r.Status != Passing {
		panic("round: SetPassedCardsForPlayer called outside the passing phase")
	}
	if !r.CanPassCards(p, cs) {
		panic("round: SetPassedCardsForPlayer given an invalid selection")
	}
	r.Players[p].PassedCards = append([]cards.Card(nil), cs...)
}

// ReadyToPassCards reports whether every player has selected NumPassedCards
// cards to pass.
func (r Round) ReadyToPassCards() bool {
	if r.Status != Passing {
		return false
	}
	for _, p := range r.Players {
		if len(p.PassedCards) != r.NumPassedCards {
			return false
		}
	}
	return true
}

// PassCards performs the pass: every player's selection rotates
// PassDirection seats forward, hands are rebuilt, and the round transitions
// to Playing with the new holder of the lowest club leading.
func (r *Round) PassCards() {
	if !r.ReadyToPassCards() {
		panic("round: PassCards called before every player had selected cards")
	}
	n := r.Rules.NumPlayers
	for i := 0; i < n; i++ {
		dest := (i + r.PassDirection) % n
		r.Players[dest].ReceivedCards = append([]cards.Card(nil), r.Players[i].PassedCards...)
	}
	for i := 0; i < n; i++ {
		p := &r.Players[i]
		newHand := append([]cards.Card(nil), p.ReceivedCards...)
		for _, c := range p.Hand {
			if !cards.ContainsCard(p.PassedCards, c) {
				newHand = append(newHand, c)
			}
		}
		p.Hand = newHand
	}
	r.CurrentTrick.Leader = lowestClubHolder(r.Players, r.Rules.RemovedCards)
	r.Status = Playing
}

// PlayCard plays card for the current player. If the trick is now complete,
// it is resolved and a new trick begins led by the winner. Returns
// IllegalPlayError if card is not in the current player's hand.
func (r *Round) PlayCard(card cards.Card) error {
	idx := r.CurrentPlayerIndex()
	hand := r.Players[idx].Hand
	pos := -1
	for i, c := range hand {
		if c == card {
			pos = i
			break
		}
	}
	if pos < 0 {
		return &IllegalPlayError{Card: card}
	}
	r.Players[idx].Hand = append(append([]cards.Card(nil), hand[:pos]...), hand[pos+1:]...)
	r.CurrentTrick.Cards = append(r.CurrentTrick.Cards, card)

	if len(r.CurrentTrick.Cards) == len(r.Players) {
		winnerOffset := rules.TrickWinnerIndex(r.CurrentTrick.Cards)
		winner := (r.CurrentTrick.Leader + winnerOffset) % len(r.Players)
		r.PrevTricks = append(r.PrevTricks, rules.Trick{
			Leader: r.CurrentTrick.Leader,
			Cards:  append([]cards.Card(nil), r.CurrentTrick.Cards...),
			Winner: winner,
		})
		r.CurrentTrick = rules.NewTrickInProgress(winner)
	}
	return nil
}
