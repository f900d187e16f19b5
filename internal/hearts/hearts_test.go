package hearts

import (
	"math/rand"
	"testing"

	"github.com/asselin/hearts/internal/cards"
	"github.com/asselin/hearts/internal/decision"
	"github.com/asselin/hearts/internal/montecarlo"
	"github.com/asselin/hearts/internal/rules"
)

func cv(t *testing.T, s string) []cards.Card {
	t.Helper()
	cs, err := cards.ParseCards(s)
	if err != nil {
		t.Fatalf("ParseCards(%q): %v", s, err)
	}
	return cs
}

func TestChooseCardRandomIsLegal(t *testing.T) {
	req := &decision.CardToPlayRequest{
		Rules:         rules.Default(),
		Hand_:         cv(t, "2C 5C 9C"),
		CurrentTrick_: rules.NewTrickInProgress(0),
	}
	rng := rand.New(rand.NewSource(1))
	got := ChooseCard(req, Random{}, rng)
	if got != cards.New(cards.Two, cards.Clubs) {
		t.Errorf("got %v, want 2C (only legal play leading the first trick)", got)
	}
}

func TestChooseCardMonteCarloDispatchesAndIsLegal(t *testing.T) {
	req := &decision.CardToPlayRequest{
		Rules:             rules.Default(),
		ScoresBeforeRound: []int{0, 0, 0, 0},
		Hand_:             cv(t, "2C"),
		CurrentTrick_:     rules.NewTrickInProgress(0),
	}
	rng := rand.New(rand.NewSource(1))
	strategy := MonteCarlo{
		Params:  montecarlo.Params{NumHands: 1, RolloutsPerHand: 1},
		Rollout: AvoidPoints{},
	}
	got := ChooseCard(req, strategy, rng)
	if got != cards.New(cards.Two, cards.Clubs) {
		t.Errorf("got %v, want 2C", got)
	}
}

func TestPointsForTricksMatchesRules(t *testing.T) {
	tricks := []rules.Trick{
		{Leader: 0, Cards: cv(t, "2C AC KC QC"), Winner: 1},
		{Leader: 1, Cards: cv(t, "3D 6D QS 5D"), Winner: 2},
		{Leader: 2, Cards: cv(t, "4D JD AH KD"), Winner: 1},
	}
	rs := rules.Default()
	got := PointsForTricks(tricks, rs)
	want := rules.PointsForTricks(tricks, rs)
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("PointsForTricks[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestChooseCardsToPassDelegatesToPolicy(t *testing.T) {
	req := &decision.CardsToPassRequest{
		Rules:     rules.Default(),
		Hand:      cv(t, "AS QS JS AH 8H 2H 6D 5D 4D 3D 6C 5C 4C"),
		Direction: 1,
		NumCards:  3,
	}
	got := ChooseCardsToPass(req)
	want := cv(t, "AS QS AH")
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
