package policy

import (
	"math/rand"
	"testing"

	"github.com/asselin/hearts/internal/cards"
	"github.com/asselin/hearts/internal/decision"
	"github.com/asselin/hearts/internal/rules"
)

func c(t *testing.T, tok string) cards.Card {
	t.Helper()
	card, err := cards.ParseCard(tok)
	if err != nil {
		t.Fatalf("ParseCard(%q): %v", tok, err)
	}
	return card
}

func cv(t *testing.T, s string) []cards.Card {
	t.Helper()
	cs, err := cards.ParseCards(s)
	if err != nil {
		t.Fatalf("ParseCards(%q): %v", s, err)
	}
	return cs
}

func baseRequest(t *testing.T, hand string, prevTricks []rules.Trick, trick rules.TrickInProgress) *decision.CardToPlayRequest {
	return &decision.CardToPlayRequest{
		Rules:         rules.Default(),
		Hand_:         cv(t, hand),
		PrevTricks_:   prevTricks,
		CurrentTrick_: trick,
	}
}

func TestChooseCardAvoidPointsSingleLegalPlay(t *testing.T) {
	req := baseRequest(t, "2C", nil, rules.NewTrickInProgress(0))
	rng := rand.New(rand.NewSource(1))
	got := ChooseCardAvoidPoints(req, rng)
	if got != c(t, "2C") {
		t.Errorf("got %v, want 2C", got)
	}
}

func TestChooseCardAvoidPointsLeadPlaysLowestOfSuit(t *testing.T) {
	prev := []rules.Trick{{Leader: 0, Cards: cv(t, "2D 3D 4D 5D"), Winner: 3}}
	req := baseRequest(t, "4C 9C KC", prev, rules.NewTrickInProgress(3))
	rng := rand.New(rand.NewSource(7))
	got := ChooseCardAvoidPoints(req, rng)
	if got != c(t, "4C") {
		t.Errorf("got %v, want 4C (lowest of the only legal suit)", got)
	}
}

func TestChooseCardAvoidPointsFirstTrickNoPointsPlaysHigh(t *testing.T) {
	trick := rules.TrickInProgress{Leader: 0, Cards: cv(t, "2C")}
	req := baseRequest(t, "4C 9C KC", nil, trick)
	rng := rand.New(rand.NewSource(3))
	got := ChooseCardAvoidPoints(req, rng)
	if got != c(t, "KC") {
		t.Errorf("got %v, want KC (highest, first trick disallows points)", got)
	}
}

func TestChooseCardAvoidPointsDumpsQueenWhenTrickAlreadyHigh(t *testing.T) {
	prev := []rules.Trick{{Leader: 0, Cards: cv(t, "2C 3C 4C 5C"), Winner: 3}}
	trick := rules.TrickInProgress{Leader: 1, Cards: cv(t, "KS")}
	req := baseRequest(t, "QS 2S", prev, trick)
	rng := rand.New(rand.NewSource(3))
	got := ChooseCardAvoidPoints(req, rng)
	if got != rules.QueenOfSpades {
		t.Errorf("got %v, want QS dumped on a trick already won by a higher spade", got)
	}
}

func TestChooseCardAvoidPointsLastPlayPointlessTrickPlaysHighest(t *testing.T) {
	prev := []rules.Trick{{Leader: 0, Cards: cv(t, "2H 3H 4H 5H"), Winner: 3}}
	trick := rules.TrickInProgress{Leader: 1, Cards: cv(t, "2C 3C 4C")}
	req := baseRequest(t, "5C 9C", prev, trick)
	rng := rand.New(rand.NewSource(3))
	got := ChooseCardAvoidPoints(req, rng)
	if got != c(t, "9C") {
		t.Errorf("got %v, want 9C (last play, trick carries no points, play highest)", got)
	}
}

func TestChooseCardAvoidPointsLastPlayTakesLowUnderWinner(t *testing.T) {
	prev := []rules.Trick{{Leader: 0, Cards: cv(t, "2C 3C 4C 5C"), Winner: 3}}
	trick := rules.TrickInProgress{Leader: 1, Cards: cv(t, "9H QH JH")}
	req := baseRequest(t, "4H TH", prev, trick)
	rng := rand.New(rand.NewSource(3))
	got := ChooseCardAvoidPoints(req, rng)
	if got != c(t, "TH") {
		t.Errorf("got %v, want TH (highest card still below the winning QH)", got)
	}
}

func TestChooseCardAvoidPointsDiscardDumpsQueenOfSpades(t *testing.T) {
	prev := []rules.Trick{{Leader: 0, Cards: cv(t, "2C 3C 4C 5C"), Winner: 3}}
	trick := rules.TrickInProgress{Leader: 0, Cards: cv(t, "2D")}
	req := baseRequest(t, "QS 4C", prev, trick)
	rng := rand.New(rand.NewSource(3))
	got := ChooseCardAvoidPoints(req, rng)
	if got != rules.QueenOfSpades {
		t.Errorf("got %v, want QS dumped when void in the led suit", got)
	}
}

func TestChooseCardAvoidPointsDiscardPlaysHighestHeart(t *testing.T) {
	prev := []rules.Trick{{Leader: 0, Cards: cv(t, "2C 3C 4C 5C"), Winner: 3}}
	trick := rules.TrickInProgress{Leader: 0, Cards: cv(t, "2D")}
	req := baseRequest(t, "4H 9H 4C", prev, trick)
	rng := rand.New(rand.NewSource(3))
	got := ChooseCardAvoidPoints(req, rng)
	if got != c(t, "9H") {
		t.Errorf("got %v, want 9H (highest heart discarded first)", got)
	}
}

func TestChooseCardAvoidPointsDiscardPlaysHighestWhenNoHeartsOrQueen(t *testing.T) {
	prev := []rules.Trick{{Leader: 0, Cards: cv(t, "2C 3C 4C 5C"), Winner: 3}}
	trick := rules.TrickInProgress{Leader: 0, Cards: cv(t, "2D")}
	req := baseRequest(t, "4C 9C", prev, trick)
	rng := rand.New(rand.NewSource(3))
	got := ChooseCardAvoidPoints(req, rng)
	if got != c(t, "9C") {
		t.Errorf("got %v, want 9C (highest remaining card)", got)
	}
}

func TestChooseCardRandomReturnsLegalCard(t *testing.T) {
	prev := []rules.Trick{{Leader: 0, Cards: cv(t, "2D 3D 4D 5D"), Winner: 3}}
	req := baseRequest(t, "4C 9C KC", prev, rules.NewTrickInProgress(3))
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		got := ChooseCardRandom(req, rng)
		if !cards.ContainsCard(req.Hand_, got) {
			t.Fatalf("ChooseCardRandom returned %v, not in hand", got)
		}
	}
}

func TestChooseCardNonRecursiveDispatch(t *testing.T) {
	req := baseRequest(t, "2C", nil, rules.NewTrickInProgress(0))
	rng := rand.New(rand.NewSource(1))
	if got := ChooseCardNonRecursive(req, Random{}, rng); got != c(t, "2C") {
		t.Errorf("Random: got %v, want 2C", got)
	}
	if got := ChooseCardNonRecursive(req, AvoidPoints{}, rng); got != c(t, "2C") {
		t.Errorf("AvoidPoints: got %v, want 2C", got)
	}
	if got := ChooseCardNonRecursive(req, MixedRandomAvoidPoints{PRandom: 1}, rng); got != c(t, "2C") {
		t.Errorf("MixedRandomAvoidPoints: got %v, want 2C", got)
	}
}
