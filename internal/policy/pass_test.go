package policy

import (
	"testing"

	"github.com/asselin/hearts/internal/cards"
	"github.com/asselin/hearts/internal/decision"
	"github.com/asselin/hearts/internal/rules"
)

func sameCards(t *testing.T, got, want []cards.Card) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestChooseCardsToPassLeft(t *testing.T) {
	req := &decision.CardsToPassRequest{
		Rules:     rules.Default(),
		Hand:      cv(t, "AS QS JS AH 8H 2H 6D 5D 4D 3D 6C 5C 4C"),
		Direction: 1,
		NumCards:  3,
	}
	got := ChooseCardsToPass(req)
	sameCards(t, got, cv(t, "AS QS AH"))
}

func TestChooseCardsToPassRight(t *testing.T) {
	req := &decision.CardsToPassRequest{
		Rules:     rules.Default(),
		Hand:      cv(t, "AS QS JS AH 8H 2H 6D 5D 4D 3D 6C 5C 4C"),
		Direction: 3,
		NumCards:  3,
	}
	got := ChooseCardsToPass(req)
	sameCards(t, got, cv(t, "QS AH 8H"))
}

func TestChooseCardsToPassRandomTakesHandPrefix(t *testing.T) {
	hand := cv(t, "AS QS JS AH 8H 2H 6D 5D 4D 3D 6C 5C 4C")
	req := &decision.CardsToPassRequest{
		Rules:     rules.Default(),
		Hand:      hand,
		Direction: 1,
		NumCards:  3,
	}
	got := ChooseCardsToPassRandom(req)
	sameCards(t, got, hand[:3])
}

func TestChooseCardsToPassSpadesSafeWithFourOrMore(t *testing.T) {
	req := &decision.CardsToPassRequest{
		Rules:     rules.Default(),
		Hand:      cv(t, "AS KS QS 9S 2D 3D 4D 5D 6D 7D 8D 9D TD"),
		Direction: 1,
		NumCards:  1,
	}
	got := ChooseCardsToPass(req)
	if got[0].Suit == cards.Spades {
		t.Errorf("got %v, want a non-spade (holding 4+ spades makes all of them safe)", got[0])
	}
}

func TestChooseCardsToPassClubsOnlyTwoOfClubs(t *testing.T) {
	req := &decision.CardsToPassRequest{
		Rules:     rules.Default(),
		Hand:      cv(t, "2C 3D 4D 5D 6D 7D 8D 9D TD JD QD 2S 3S"),
		Direction: 1,
		NumCards:  1,
	}
	got := ChooseCardsToPass(req)
	if got[0] != c(t, "2C") {
		t.Errorf("got %v, want 2C (holding it alone scores a flat 50 danger)", got[0])
	}
}
