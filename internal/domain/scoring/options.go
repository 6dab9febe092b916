package scoring

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithWeights replaces the priority weight table. Non-positive weights are
// dropped so a bad config entry cannot zero out a factor silently.
func WithWeights(weights map[string]float64) Option {
	return func(e *Engine) {
		if len(weights) == 0 {
			return
		}
		e.weights = make(map[string]float64, len(weights))
		for key, w := range weights {
			if w > 0 {
				e.weights[key] = w
			}
		}
	}
}

// WithFallbackWeight sets the weight applied to unrecognized priority keys.
func WithFallbackWeight(weight float64) Option {
	return func(e *Engine) {
		if weight > 0 {
			e.fallbackWeight = weight
		}
	}
}

// WithNeutralCrimeRate sets the crime rate assumed when a neighborhood has
// no crime data.
func WithNeutralCrimeRate(rate float64) Option {
	return func(e *Engine) {
		if rate >= 0 {
			e.neutralCrimeRate = rate
		}
	}
}

// WithBudgetBonus sets the flat bonus for rent within budget. The same
// value grows the weight ceiling whenever a budget is declared.
func WithBudgetBonus(bonus float64) Option {
	return func(e *Engine) {
		if bonus > 0 {
			e.budgetBonus = bonus
		}
	}
}

// WithBudgetPenaltyCap sets the floor of the overage penalty.
func WithBudgetPenaltyCap(cap float64) Option {
	return func(e *Engine) {
		if cap > 0 {
			e.budgetPenaltyCap = cap
		}
	}
}
