// Package standard implements the default Hearts ruleset: 4 players, a
// 100-point limit, no first-trick points, hearts broken only by a heart
// being played, and shoot-the-moon scored as 26 to every opponent.
package standard

import (
	"github.com/asselin/hearts/internal/rules"
	"github.com/asselin/hearts/internal/variants"
)

// Standard is the default Hearts variant.
type Standard struct {
	variants.BaseVariant
}

// New creates the standard Hearts variant with its default options.
func New() *Standard {
	s := &Standard{
		BaseVariant: variants.NewBaseVariant(),
	}
	s.SetOption("point_limit", 100)
	s.SetOption("jd_minus_10", false)
	s.SetOption("queen_breaks_hearts", false)
	s.SetOption("points_on_first_trick", false)
	return s
}

// Name returns the variant name.
func (s *Standard) Name() string {
	return "standard"
}

// Description returns a description of the variant.
func (s *Standard) Description() string {
	return "Standard 4-player Hearts to 100 points. The queen of spades and every heart cost points; shoot the moon to dump 26 on everyone else."
}

// RuleSet builds the RuleSet for the variant's current option values.
func (s *Standard) RuleSet() rules.RuleSet {
	rs := rules.Default()
	rs.PointLimit = s.GetIntOption("point_limit", 100)
	rs.JDMinus10 = s.GetBoolOption("jd_minus_10", false)
	rs.QueenBreaksHearts = s.GetBoolOption("queen_breaks_hearts", false)
	rs.PointsOnFirstTrick = s.GetBoolOption("points_on_first_trick", false)
	return rs
}

// Options returns all configurable options.
func (s *Standard) Options() []variants.RuleOption {
	return []variants.RuleOption{
		{
			Key:         "point_limit",
			Name:        "Point Limit",
			Description: "Cumulative score at which the match ends",
			Type:        variants.OptionInt,
			Default:     100,
		},
		{
			Key:         "jd_minus_10",
			Name:        "Jack of Diamonds (-10)",
			Description: "The jack of diamonds subtracts 10 points from whoever takes it",
			Type:        variants.OptionBool,
			Default:     false,
		},
		{
			Key:         "queen_breaks_hearts",
			Name:        "Queen Breaks Hearts",
			Description: "Playing the queen of spades also breaks hearts",
			Type:        variants.OptionBool,
			Default:     false,
		},
		{
			Key:         "points_on_first_trick",
			Name:        "Points on First Trick",
			Description: "Allow point cards to be played on the first trick",
			Type:        variants.OptionBool,
			Default:     false,
		},
	}
}

func init() {
	variants.Register(New())
}
