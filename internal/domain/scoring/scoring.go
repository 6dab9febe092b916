// Package scoring computes bounded compatibility scores between a
// requester's preferences and a neighborhood's attributes.
package scoring

import (
	"math"

	"github.com/okian/hoodmatch/internal/domain/model"
)

// Default scoring configuration constants.
const (
	defaultFallbackWeight   = 0.1
	defaultNeutralCrimeRate = 50.0
	defaultBudgetBonus      = 20.0
	defaultBudgetPenaltyCap = 30.0
	maxScoreValue           = 100.0
	maxSchoolRating         = 10.0
)

// DefaultWeights returns the weight table for the known priority keys.
// The weights sum to 1.0 across the full key set.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		model.PriorityWalkability: 0.2,
		model.PrioritySchools:     0.15,
		model.PrioritySafety:      0.2,
		model.PriorityNightlife:   0.1,
		model.PriorityParks:       0.1,
		model.PriorityTransit:     0.15,
		model.PriorityShopping:    0.05,
		model.PriorityRestaurants: 0.05,
	}
}

// Engine is a deterministic, side-effect-free scorer. It never fails:
// absent attributes fall back to pessimistic defaults and out-of-bound
// values are clamped before entering the math.
type Engine struct {
	weights          map[string]float64
	fallbackWeight   float64
	neutralCrimeRate float64
	budgetBonus      float64
	budgetPenaltyCap float64
}

// New creates an Engine with the default weight table and constants,
// adjusted by the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		weights:          DefaultWeights(),
		fallbackWeight:   defaultFallbackWeight,
		neutralCrimeRate: defaultNeutralCrimeRate,
		budgetBonus:      defaultBudgetBonus,
		budgetPenaltyCap: defaultBudgetPenaltyCap,
	}

	// Apply all options
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Weight returns the weight applied to a priority key, falling back for
// keys outside the configured table.
func (e *Engine) Weight(key string) float64 {
	if w, ok := e.weights[key]; ok {
		return w
	}
	return e.fallbackWeight
}

// Score maps (preferences, neighborhood) to a score in [0,100].
//
// Each deduped priority contributes weight*factorScore to the weighted sum
// and weight*100 to the weight ceiling. When a budget is declared the sum
// gains a flat bonus for affordable rent or loses a capped overage penalty;
// the ceiling grows by the bonus in both paths. The penalty is deliberately
// asymmetric: it reduces only the numerator, which can drive the ratio
// negative before the clamp.
func (e *Engine) Score(prefs model.Preferences, n model.Neighborhood) float64 {
	var weightedSum, weightCeiling float64

	for _, key := range prefs.DedupedPriorities() {
		weight := e.Weight(key)
		weightedSum += weight * e.FactorScore(key, n)
		weightCeiling += weight * maxScoreValue
	}

	if prefs.Budget.Max > 0 {
		rent := clampMin(deref(n.Housing.MedianRent, 0), 0)
		if rent <= prefs.Budget.Max {
			weightedSum += e.budgetBonus
		} else {
			overagePct := (rent - prefs.Budget.Max) / prefs.Budget.Max * 100
			weightedSum -= math.Min(e.budgetPenaltyCap, overagePct)
		}
		weightCeiling += e.budgetBonus
	}

	if weightCeiling <= 0 {
		return 0
	}
	return clamp(weightedSum/weightCeiling*maxScoreValue, 0, maxScoreValue)
}

// FactorScore returns the 0-100 factor score a single priority key earns
// from the neighborhood's attributes, before weighting. Unrecognized keys
// score zero.
//
// The multiplicative caps are a deliberate saturation policy: no amenity
// density can push a factor past 100, which keeps scores comparable across
// candidates.
func (e *Engine) FactorScore(key string, n model.Neighborhood) float64 {
	switch key {
	case model.PriorityWalkability:
		return clamp(deref(n.Lifestyle.Walkability, 0), 0, maxScoreValue)
	case model.PrioritySchools:
		return clamp(deref(n.Lifestyle.SchoolRating, 0), 0, maxSchoolRating) * 10
	case model.PrioritySafety:
		crime := clampMin(deref(n.Lifestyle.CrimeRate, e.neutralCrimeRate), 0)
		return math.Max(0, maxScoreValue-crime)
	case model.PriorityNightlife:
		return math.Min(maxScoreValue, float64(clampCount(n.Amenities.Nightlife))*10)
	case model.PriorityParks:
		return math.Min(maxScoreValue, float64(clampCount(n.Amenities.Parks))*5)
	case model.PriorityTransit:
		return clamp(deref(n.Lifestyle.Transit, 0), 0, maxScoreValue)
	case model.PriorityShopping:
		return math.Min(maxScoreValue, float64(clampCount(n.Amenities.Shopping))*5)
	case model.PriorityRestaurants:
		return math.Min(maxScoreValue, float64(clampCount(n.Amenities.Restaurants))*2)
	default:
		return 0
	}
}

// Breakdown reports the factor score and weight for each of the profile's
// deduped priorities without aggregation.
func (e *Engine) Breakdown(prefs model.Preferences, n model.Neighborhood) []model.Factor {
	keys := prefs.DedupedPriorities()
	out := make([]model.Factor, len(keys))
	for i, key := range keys {
		out[i] = model.Factor{
			Key:    key,
			Weight: e.Weight(key),
			Score:  e.FactorScore(key, n),
		}
	}
	return out
}

// deref returns *p, or def when p is nil.
func deref(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampMin(v, lo float64) float64 {
	return math.Max(lo, v)
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
