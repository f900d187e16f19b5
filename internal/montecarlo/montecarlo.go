// Package montecarlo implements the hidden-information card-selection
// search: infer void-suit and fixed-card constraints from what has been
// played, sample hypothetical deals consistent with them, roll each
// candidate play out to the end of the round under a fast heuristic, and
// score each by the resulting match equity.
package montecarlo

import (
	"math/rand"

	"github.com/asselin/hearts/internal/cards"
	"github.com/asselin/hearts/internal/decision"
	"github.com/asselin/hearts/internal/equity"
	"github.com/asselin/hearts/internal/policy"
	"github.com/asselin/hearts/internal/round"
	"github.com/asselin/hearts/internal/rules"
	"github.com/asselin/hearts/internal/sampler"
)

// Params controls the width (NumHands) and depth (RolloutsPerHand) of the
// search: NumHands hidden deals are sampled, and each candidate play is
// rolled out RolloutsPerHand times per sampled deal.
type Params struct {
	NumHands        int
	RolloutsPerHand int
}

// makeDistributionRequest derives, from everything played so far, which
// suits each other player is known to be void in and which cards are
// already spoken for, leaving only the genuinely unseen cards to sample.
func makeDistributionRequest(req decision.CardToPlay) *sampler.DistributionRequest {
	rs := req.RuleSet()
	numPlayers := rs.NumPlayers

	seen := make(map[cards.Card]bool)
	for _, c := range req.Hand() {
		seen[c] = true
	}

	voidedSuits := make([]map[cards.Suit]bool, numPlayers)
	for i := range voidedSuits {
		voidedSuits[i] = make(map[cards.Suit]bool)
	}
	heartsBroken := false

	processTrick := func(trickCards []cards.Card, leader int) {
		trickSuit := trickCards[0].Suit
		if !heartsBroken && trickSuit == cards.Hearts {
			// The leader led hearts before they were broken, so they must
			// have held nothing else.
			heartsBroken = true
			voidedSuits[leader][cards.Spades] = true
			voidedSuits[leader][cards.Diamonds] = true
			voidedSuits[leader][cards.Clubs] = true
		}
		seen[trickCards[0]] = true
		if rs.QueenBreaksHearts && trickCards[0] == rules.QueenOfSpades {
			heartsBroken = true
		}
		for i := 1; i < len(trickCards); i++ {
			c := trickCards[i]
			seen[c] = true
			if c.Suit != trickSuit {
				voidedSuits[(leader+i)%numPlayers][trickSuit] = true
			}
			if c.Suit == cards.Hearts || (rs.QueenBreaksHearts && c == rules.QueenOfSpades) {
				heartsBroken = true
			}
		}
	}

	for _, t := range req.PrevTricks() {
		processTrick(t.Cards, t.Leader)
	}
	current := req.CurrentTrick()
	if len(current.Cards) > 0 {
		processTrick(current.Cards, current.Leader)
	}

	removed := make(map[cards.Card]bool, len(rs.RemovedCards))
	for _, c := range rs.RemovedCards {
		removed[c] = true
	}
	var toAssign []cards.Card
	for _, c := range cards.AllCards() {
		if !removed[c] && !seen[c] {
			toAssign = append(toAssign, c)
		}
	}

	counts := make([]int, numPlayers)
	base := 13 - len(req.PrevTricks())
	for i := range counts {
		counts[i] = base
	}
	for i := range current.Cards {
		pi := (current.Leader + i) % numPlayers
		counts[pi]--
	}
	curPlayer := req.CurrentPlayerIndex()
	counts[curPlayer] = 0

	constraints := make([]sampler.PlayerConstraint, numPlayers)
	for i := range constraints {
		constraints[i] = sampler.PlayerConstraint{
			NumCards:    counts[i],
			VoidedSuits: voidedSuits[i],
			FixedCards:  make(map[cards.Card]bool),
		}
	}

	if passed := req.PassedCards(); len(passed) > 0 {
		passedTo := (curPlayer + req.PassDirection()) % numPlayers
		for _, c := range passed {
			constraints[passedTo].FixedCards[c] = true
		}
	}

	return &sampler.DistributionRequest{Cards: toAssign, Constraints: constraints}
}

// possibleRound samples one hidden deal satisfying distReq and assembles a
// full Round around it: the deciding player keeps their real hand, and
// every other seat gets its sampled hand.
func possibleRound(req decision.CardToPlay, distReq *sampler.DistributionRequest, rng *rand.Rand) (*round.Round, error) {
	dist, err := sampler.PossibleCardDistribution(distReq, rng)
	if err != nil {
		return nil, err
	}
	rs := req.RuleSet()
	curPlayer := req.CurrentPlayerIndex()
	players := make([]round.Player, rs.NumPlayers)
	for i := range players {
		hand := dist[i]
		if i == curPlayer {
			hand = req.Hand()
		}
		players[i] = round.NewPlayer(hand)
	}
	return &round.Round{
		Rules:        rs,
		Players:      players,
		CurrentTrick: req.CurrentTrick(),
		PrevTricks:   append([]rules.Trick(nil), req.PrevTricks()...),
		Status:       round.Playing,
	}, nil
}

// doRollout drives r to completion, choosing every remaining play with
// strategy.
func doRollout(r *round.Round, strategy policy.NonRecursive, rng *rand.Rand) {
	for !r.IsOver() {
		view := &decision.RoundView{Round: r}
		card := policy.ChooseCardNonRecursive(view, strategy, rng)
		if err := r.PlayCard(card); err != nil {
			panic(err)
		}
	}
}

// ChooseCard runs the search described in the package doc and returns the
// legal play with the greatest accumulated match equity for the deciding
// player, breaking ties toward the first maximal index. If a sampled hand
// fails entirely, it falls back to policy.ChooseCardAvoidPoints.
func ChooseCard(req decision.CardToPlay, params Params, rolloutStrategy policy.NonRecursive, rng *rand.Rand) cards.Card {
	legal := req.LegalPlays()
	if len(legal) == 1 {
		return legal[0]
	}

	rs := req.RuleSet()
	pnum := req.CurrentPlayerIndex()
	scoresBeforeRound := req.Scores()
	totalEquity := make([]float64, len(legal))
	distReq := makeDistributionRequest(req)

	for s := 0; s < params.NumHands; s++ {
		hypoRound, err := possibleRound(req, distReq, rng)
		if err != nil {
			return policy.ChooseCardAvoidPoints(req, rng)
		}
		for ci, play := range legal {
			hypoCopy := hypoRound.Clone()
			if err := hypoCopy.PlayCard(play); err != nil {
				panic(err)
			}
			for r := 0; r < params.RolloutsPerHand; r++ {
				rh := hypoCopy.Clone()
				doRollout(&rh, rolloutStrategy, rng)
				roundPoints := rh.PointsTaken()
				terminal := make([]int, len(scoresBeforeRound))
				for i := range terminal {
					terminal[i] = scoresBeforeRound[i] + roundPoints[i]
				}
				totalEquity[ci] += equity.MatchEquityForScores(terminal, rs.PointLimit, pnum)
			}
		}
	}

	best := 0
	for i := 1; i < len(totalEquity); i++ {
		if totalEquity[i] > totalEquity[best] {
			best = i
		}
	}
	return legal[best]
}
