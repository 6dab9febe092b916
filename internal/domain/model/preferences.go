package model

import "fmt"

// Known priority keys understood by the scoring formula.
const (
	PriorityWalkability = "walkability"
	PrioritySchools     = "schools"
	PrioritySafety      = "safety"
	PriorityNightlife   = "nightlife"
	PriorityParks       = "parks"
	PriorityTransit     = "transit"
	PriorityShopping    = "shopping"
	PriorityRestaurants = "restaurants"
)

// KnownPriorities lists every priority key the weight table covers.
func KnownPriorities() []string {
	return []string{
		PriorityWalkability,
		PrioritySchools,
		PrioritySafety,
		PriorityNightlife,
		PriorityParks,
		PriorityTransit,
		PriorityShopping,
		PriorityRestaurants,
	}
}

// Budget is a requester's acceptable rent range. A zero Max means no budget
// was declared and the budget adjustment does not apply.
type Budget struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Preferences is a requester's stated priorities and constraints. The
// scoring core consumes Priorities and Budget; the remaining fields are
// opaque pass-through data owned by other collaborators.
type Preferences struct {
	Priorities   []string     `json:"priorities"`
	Budget       Budget       `json:"budget"`
	Lifestyle    string       `json:"lifestyle,omitempty"`
	FamilySize   int          `json:"family_size,omitempty"`
	HasChildren  bool         `json:"has_children,omitempty"`
	WorkLocation *Coordinates `json:"work_location,omitempty"`
}

// Validate rejects profiles the ranking operation must not score: an empty
// priority set or an inverted budget range.
func (p Preferences) Validate() error {
	if len(p.Priorities) == 0 {
		return fmt.Errorf("%w: no priorities set", ErrInvalidProfile)
	}
	if p.Budget.Min < 0 || p.Budget.Max < 0 {
		return fmt.Errorf("%w: budget must be non-negative", ErrInvalidProfile)
	}
	if p.Budget.Max > 0 && p.Budget.Min > p.Budget.Max {
		return fmt.Errorf("%w: budget min exceeds max", ErrInvalidProfile)
	}
	return nil
}

// DedupedPriorities returns the priority keys with duplicates removed,
// preserving first-seen order.
func (p Preferences) DedupedPriorities() []string {
	seen := make(map[string]struct{}, len(p.Priorities))
	out := make([]string, 0, len(p.Priorities))
	for _, key := range p.Priorities {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// UnknownPriorities returns the deduped keys outside the known enumeration.
// Unknown keys are not an error; they score with a fallback weight.
func (p Preferences) UnknownPriorities() []string {
	known := make(map[string]struct{})
	for _, key := range KnownPriorities() {
		known[key] = struct{}{}
	}
	var out []string
	for _, key := range p.DedupedPriorities() {
		if _, ok := known[key]; !ok {
			out = append(out, key)
		}
	}
	return out
}
