package explain

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithTierThresholds sets the score bands for the tier statement. The
// thresholds must be strictly descending to keep band selection well
// defined; invalid combinations are ignored.
func WithTierThresholds(excellentMin, goodMin, decentMin float64) Option {
	return func(g *Generator) {
		if excellentMin > goodMin && goodMin > decentMin && decentMin >= 0 {
			g.excellentMin = excellentMin
			g.goodMin = goodMin
			g.decentMin = decentMin
		}
	}
}

// WithWalkabilityHighlightMin sets the walkability highlight threshold.
func WithWalkabilityHighlightMin(v float64) Option {
	return func(g *Generator) {
		if v > 0 {
			g.walkabilityMin = v
		}
	}
}

// WithSchoolHighlightMin sets the school rating highlight threshold.
func WithSchoolHighlightMin(v float64) Option {
	return func(g *Generator) {
		if v > 0 {
			g.schoolMin = v
		}
	}
}

// WithCrimeHighlightMax sets the crime rate highlight ceiling.
func WithCrimeHighlightMax(v float64) Option {
	return func(g *Generator) {
		if v >= 0 {
			g.crimeMax = v
		}
	}
}

// WithTransitHighlightMin sets the transit highlight threshold.
func WithTransitHighlightMin(v float64) Option {
	return func(g *Generator) {
		if v > 0 {
			g.transitMin = v
		}
	}
}

// WithRestaurantsHighlightMin sets the restaurant count highlight threshold.
func WithRestaurantsHighlightMin(v int) Option {
	return func(g *Generator) {
		if v > 0 {
			g.restaurantsMin = v
		}
	}
}

// WithParksHighlightMin sets the park count highlight threshold.
func WithParksHighlightMin(v int) Option {
	return func(g *Generator) {
		if v > 0 {
			g.parksMin = v
		}
	}
}
