package variants_test

import (
	"testing"

	"github.com/asselin/hearts/internal/variants"
	_ "github.com/asselin/hearts/internal/variants/omnibus"
	_ "github.com/asselin/hearts/internal/variants/standard"
)

func TestStandardAndOmnibusSelfRegister(t *testing.T) {
	names := variants.List()
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	if !seen["standard"] {
		t.Errorf("standard variant did not self-register, got %v", names)
	}
	if !seen["omnibus"] {
		t.Errorf("omnibus variant did not self-register, got %v", names)
	}
}

func TestOmnibusEnablesBothRules(t *testing.T) {
	v, ok := variants.Get("omnibus")
	if !ok {
		t.Fatal("omnibus not registered")
	}
	rs := v.RuleSet()
	if !rs.JDMinus10 {
		t.Errorf("omnibus RuleSet.JDMinus10 = false, want true")
	}
	if !rs.QueenBreaksHearts {
		t.Errorf("omnibus RuleSet.QueenBreaksHearts = false, want true")
	}
}

func TestStandardDefaultsMatchRulesDefault(t *testing.T) {
	v, ok := variants.Get("standard")
	if !ok {
		t.Fatal("standard not registered")
	}
	rs := v.RuleSet()
	if rs.JDMinus10 || rs.QueenBreaksHearts || rs.PointsOnFirstTrick {
		t.Errorf("standard RuleSet should have every optional rule disabled by default, got %+v", rs)
	}
	if rs.PointLimit != 100 {
		t.Errorf("standard RuleSet.PointLimit = %d, want 100", rs.PointLimit)
	}
}

func TestSetOptionChangesPointLimit(t *testing.T) {
	v, ok := variants.Get("standard")
	if !ok {
		t.Fatal("standard not registered")
	}
	if err := v.SetOption("point_limit", 50); err != nil {
		t.Fatalf("SetOption: %v", err)
	}
	if got := v.RuleSet().PointLimit; got != 50 {
		t.Errorf("PointLimit after SetOption = %d, want 50", got)
	}
	// Restore default so other tests in this process observe the original.
	v.SetOption("point_limit", 100)
}
