package equity

import "testing"

func TestMatchEquityMatchOverUniqueLowest(t *testing.T) {
	scores := []int{50, 60, 100, 60}
	if got := MatchEquityForScores(scores, 100, 0); got != 1.0 {
		t.Errorf("player 0 equity = %v, want 1.0", got)
	}
	if got := MatchEquityForScores(scores, 100, 1); got != 0.0 {
		t.Errorf("player 1 equity = %v, want 0.0", got)
	}
}

func TestMatchEquityMatchOverTied(t *testing.T) {
	scores := []int{50, 60, 100, 50}
	if got := MatchEquityForScores(scores, 100, 0); got != 0.5 {
		t.Errorf("player 0 equity = %v, want 0.5", got)
	}
	if got := MatchEquityForScores(scores, 100, 3); got != 0.5 {
		t.Errorf("player 3 equity = %v, want 0.5", got)
	}
	if got := MatchEquityForScores(scores, 100, 1); got != 0.0 {
		t.Errorf("player 1 equity = %v, want 0.0", got)
	}
}

func TestMatchEquityMidMatch(t *testing.T) {
	scores := []int{0, 0, 0, 0}
	for i := range scores {
		got := MatchEquityForScores(scores, 100, i)
		if got != 0.25 {
			t.Errorf("player %d equity = %v, want 0.25 with all scores equal", i, got)
		}
	}
}

func TestMatchEquityMonotoneInOwnScore(t *testing.T) {
	base := []int{40, 50, 60, 70}
	before := MatchEquityForScores(base, 100, 0)
	lower := []int{20, 50, 60, 70}
	after := MatchEquityForScores(lower, 100, 0)
	if after <= before {
		t.Errorf("lowering own score should increase equity: before=%v after=%v", before, after)
	}
}

func TestMatchEquityStrictlyBetweenZeroAndOneMidMatch(t *testing.T) {
	scores := []int{10, 20, 30, 40}
	got := MatchEquityForScores(scores, 100, 1)
	if got <= 0 || got >= 1 {
		t.Errorf("mid-match equity %v should be strictly between 0 and 1", got)
	}
}
