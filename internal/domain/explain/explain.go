// Package explain derives human-readable reasons for match scores.
package explain

import (
	"github.com/okian/hoodmatch/internal/domain/model"
)

// Default tier thresholds applied to the overall score.
const (
	defaultExcellentMin = 80.0
	defaultGoodMin      = 60.0
	defaultDecentMin    = 40.0
)

// Default highlight thresholds checked against raw attributes.
const (
	defaultWalkabilityMin = 70.0
	defaultSchoolMin      = 8.0
	defaultCrimeMax       = 20.0
	defaultTransitMin     = 70.0
	defaultRestaurantsMin = 20
	defaultParksMin       = 5
)

// Tier statements, exactly one of which opens every explanation.
const (
	tierExcellent = "Excellent overall match for your lifestyle"
	tierGood      = "Good match with some great features"
	tierDecent    = "Decent match with room for compromise"
	tierLimited   = "Limited match - consider adjusting preferences"
)

// Highlight statements appended when their threshold check passes.
const (
	highlightWalkability = "High walkability score - easy to get around on foot"
	highlightSchools     = "Excellent schools in the area"
	highlightSafety      = "Very safe neighborhood with low crime rates"
	highlightTransit     = "Great public transportation access"
	highlightRestaurants = "Lots of dining options nearby"
	highlightParks       = "Plenty of parks and green spaces"
)

// Generator produces ordered explanation strings. It is deterministic and
// never returns an empty list: the tier statement is always present.
type Generator struct {
	excellentMin float64
	goodMin      float64
	decentMin    float64

	walkabilityMin float64
	schoolMin      float64
	crimeMax       float64
	transitMin     float64
	restaurantsMin int
	parksMin       int
}

// New creates a Generator with default thresholds, adjusted by options.
func New(opts ...Option) *Generator {
	g := &Generator{
		excellentMin:   defaultExcellentMin,
		goodMin:        defaultGoodMin,
		decentMin:      defaultDecentMin,
		walkabilityMin: defaultWalkabilityMin,
		schoolMin:      defaultSchoolMin,
		crimeMax:       defaultCrimeMax,
		transitMin:     defaultTransitMin,
		restaurantsMin: defaultRestaurantsMin,
		parksMin:       defaultParksMin,
	}

	// Apply all options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Explain returns the tier statement for score followed by every highlight
// the neighborhood's raw attributes earn. Highlights are independent,
// order-stable checks and are not limited to the profile's priorities.
// Absent attributes simply fail their check.
func (g *Generator) Explain(_ model.Preferences, n model.Neighborhood, score float64) []string {
	reasons := []string{g.tier(score)}

	if l := n.Lifestyle.Walkability; l != nil && *l >= g.walkabilityMin {
		reasons = append(reasons, highlightWalkability)
	}
	if l := n.Lifestyle.SchoolRating; l != nil && *l >= g.schoolMin {
		reasons = append(reasons, highlightSchools)
	}
	if l := n.Lifestyle.CrimeRate; l != nil && *l <= g.crimeMax {
		reasons = append(reasons, highlightSafety)
	}
	if l := n.Lifestyle.Transit; l != nil && *l >= g.transitMin {
		reasons = append(reasons, highlightTransit)
	}
	if n.Amenities.Restaurants >= g.restaurantsMin {
		reasons = append(reasons, highlightRestaurants)
	}
	if n.Amenities.Parks >= g.parksMin {
		reasons = append(reasons, highlightParks)
	}

	return reasons
}

// tier selects exactly one coarse-grained statement for the score band.
func (g *Generator) tier(score float64) string {
	switch {
	case score >= g.excellentMin:
		return tierExcellent
	case score >= g.goodMin:
		return tierGood
	case score >= g.decentMin:
		return tierDecent
	default:
		return tierLimited
	}
}
