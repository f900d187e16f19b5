// Package omnibus implements the "Omnibus Hearts" variant: the standard
// game plus the jack of diamonds (-10) and queen-breaks-hearts rules, a
// well-known published combination.
package omnibus

import (
	"github.com/asselin/hearts/internal/rules"
	"github.com/asselin/hearts/internal/variants"
)

// Omnibus is Hearts with the jack of diamonds and queen-breaks-hearts
// rules both enabled.
type Omnibus struct {
	variants.BaseVariant
}

// New creates the Omnibus Hearts variant with its default options.
func New() *Omnibus {
	o := &Omnibus{
		BaseVariant: variants.NewBaseVariant(),
	}
	o.SetOption("point_limit", 100)
	o.SetOption("points_on_first_trick", false)
	return o
}

// Name returns the variant name.
func (o *Omnibus) Name() string {
	return "omnibus"
}

// Description returns a description of the variant.
func (o *Omnibus) Description() string {
	return "Omnibus Hearts: standard scoring plus the jack of diamonds (-10) and queen-breaks-hearts rules."
}

// RuleSet builds the RuleSet for the variant's current option values.
func (o *Omnibus) RuleSet() rules.RuleSet {
	rs := rules.Default()
	rs.PointLimit = o.GetIntOption("point_limit", 100)
	rs.JDMinus10 = true
	rs.QueenBreaksHearts = true
	rs.PointsOnFirstTrick = o.GetBoolOption("points_on_first_trick", false)
	return rs
}

// Options returns all configurable options.
func (o *Omnibus) Options() []variants.RuleOption {
	return []variants.RuleOption{
		{
			Key:         "point_limit",
			Name:        "Point Limit",
			Description: "Cumulative score at which the match ends",
			Type:        variants.OptionInt,
			Default:     100,
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
