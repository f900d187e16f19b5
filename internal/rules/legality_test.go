package rules

import (
	"testing"

	"github.com/asselin/hearts/internal/cards"
)

func c(t *testing.T, s string) []cards.Card {
	t.Helper()
	cs, err := cards.ParseCards(s)
	if err != nil {
		t.Fatalf("ParseCards(%q): %v", s, err)
	}
	return cs
}

func makeTrick(leader int, cardStr string, winner int, t *testing.T) Trick {
	return Trick{Leader: leader, Cards: c(t, cardStr), Winner: winner}
}

func sameCards(a, b []cards.Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLegalPlaysPossibleLeads(t *testing.T) {
	rs := Default()
	hand := c(t, "AS QH 4C")
	cur := NewTrickInProgress(0)

	noHearts := []Trick{makeTrick(0, "8S 7S 6S 5S", 0, t)}
	got := LegalPlays(hand, cur, noHearts, rs)
	if want := c(t, "AS 4C"); !sameCards(got, want) {
		t.Errorf("LegalPlays (no hearts broken) = %v, want %v", got, want)
	}

	withHearts := []Trick{makeTrick(0, "8S 7S KH 5S", 0, t)}
	got = LegalPlays(hand, cur, withHearts, rs)
	if want := c(t, "AS QH 4C"); !sameCards(got, want) {
		t.Errorf("LegalPlays (hearts broken) = %v, want %v", got, want)
	}
}

func TestLegalPlaysPossibleFollows(t *testing.T) {
	rs := Default()
	hand := c(t, "AS 2S QH 4C")
	prev := []Trick{{Leader: 0, Cards: c(t, "2C JC QC KC"), Winner: 3}}

	spadeLead := TrickInProgress{Leader: 0, Cards: c(t, "3S KH")}
	if got, want := LegalPlays(hand, spadeLead, prev, rs), c(t, "AS 2S"); !sameCards(got, want) {
		t.Errorf("LegalPlays (follow spades) = %v, want %v", got, want)
	}

	diamondLead := TrickInProgress{Leader: 0, Cards: c(t, "3D KH")}
	if got, want := LegalPlays(hand, diamondLead, prev, rs), c(t, "AS 2S QH 4C"); !sameCards(got, want) {
		t.Errorf("LegalPlays (void in lead suit) = %v, want %v", got, want)
	}
}

func TestLegalPlaysFirstTrick2CLead(t *testing.T) {
	rs := Default()
	hand := c(t, "AS 2S QH 3C 2C")
	cur := NewTrickInProgress(0)
	if got, want := LegalPlays(hand, cur, nil, rs), c(t, "2C"); !sameCards(got, want) {
		t.Errorf("LegalPlays (first play) = %v, want %v", got, want)
	}
}

func TestLegalPlaysFirstTrickFollow(t *testing.T) {
	rs := Default()
	hand := c(t, "AS 2S AC QH 3C")
	cur := TrickInProgress{Leader: 0, Cards: c(t, "2C JC")}
	if got, want := LegalPlays(hand, cur, nil, rs), c(t, "AC 3C"); !sameCards(got, want) {
		t.Errorf("LegalPlays (first trick follow) = %v, want %v", got, want)
	}
}

func TestLegalPlaysFirstTrickNoPoints(t *testing.T) {
	rs := Default()
	hand := c(t, "AS QS 7S 7H 7D")
	cur := TrickInProgress{Leader: 0, Cards: c(t, "2C JC")}

	if got, want := LegalPlays(hand, cur, nil, rs), c(t, "AS 7S 7D"); !sameCards(got, want) {
		t.Errorf("LegalPlays (no points) = %v, want %v", got, want)
	}

	rs.PointsOnFirstTrick = true
	if got, want := LegalPlays(hand, cur, nil, rs), c(t, "AS QS 7S 7H 7D"); !sameCards(got, want) {
		t.Errorf("LegalPlays (points allowed) = %v, want %v", got, want)
	}
}

func TestLegalPlaysFirstTrickOnlyPoints(t *testing.T) {
	rs := Default()
	hand := c(t, "AH TH QS 7H")
	cur := TrickInProgress{Leader: 0, Cards: c(t, "2C JC")}
	if got, want := LegalPlays(hand, cur, nil, rs), c(t, "AH TH QS 7H"); !sameCards(got, want) {
		t.Errorf("LegalPlays (only points) = %v, want %v", got, want)
	}
}

func TestLegalPlaysFirstTrickAllowsJackOfDiamonds(t *testing.T) {
	// Observed-behavior edge case: under jd_minus_10, JD has nonzero (negative)
	// point value but still passes the <= 0 filter on the first trick.
	rs := Default()
	rs.JDMinus10 = true
	hand := c(t, "AS JD 7H")
	cur := TrickInProgress{Leader: 0, Cards: c(t, "2C 3C")}
	got := LegalPlays(hand, cur, nil, rs)
	want := c(t, "AS JD")
	if !sameCards(got, want) {
		t.Errorf("LegalPlays (jd_minus_10 first trick) = %v, want %v", got, want)
	}
}

func TestTrickWinnerIndex(t *testing.T) {
	tests := []struct {
		cards string
		want  int
	}{
		{"9D 8D 7D 6D", 0},
		{"9D TD JD QD", 3},
		{"9D TD JD QS", 2},
		{"9D TD JC QS", 1},
		{"9D TH JC QS", 0},
	}
	for _, tt := range tests {
		if got := TrickWinnerIndex(c(t, tt.cards)); got != tt.want {
			t.Errorf("TrickWinnerIndex(%q) = %d, want %d", tt.cards, got, tt.want)
		}
	}
}

func TestPointsForTricks(t *testing.T) {
	rs := Default()
	tricks := []Trick{
		makeTrick(0, "2C AC KC QC", 1, t),
		makeTrick(1, "3D 6D QS 5D", 2, t),
		makeTrick(2, "4D JD AH KD", 1, t),
	}
	got := PointsForTricks(tricks, rs)
	want := []int{0, 1, 13, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PointsForTricks()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	rs.JDMinus10 = true
	got = PointsForTricks(tricks, rs)
	want = []int{0, -9, 13, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PointsForTricks(jd_minus_10)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestPointsForTricksShootingTheMoon(t *testing.T) {
	rs := Default()
	tricks := []Trick{
		makeTrick(0, "2C AC KC QC", 1, t),
		makeTrick(1, "AD QS JD JH", 1, t),
		makeTrick(1, "AH 2H 3H 4H", 1, t),
		makeTrick(1, "KH 5H 6H 7H", 1, t),
		makeTrick(1, "QH 8H 9H TH", 1, t),
	}
	got := PointsForTricks(tricks, rs)
	want := []int{26, 0, 26, 26}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PointsForTricks (shoot)[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	rs.JDMinus10 = true
	got = PointsForTricks(tricks, rs)
	want = []int{26, -10, 26, 26}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PointsForTricks (shoot, jd_minus_10)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
