// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SeedDemoData loads the bundled sample neighborhoods at startup.
	SeedDemoData bool `koanf:"seed_demo_data"`

	// DefaultMatchLimit applies when a match request leaves limit unset.
	DefaultMatchLimit int `koanf:"default_match_limit"`

	// MaxMatchLimit caps GET /matches?limit.
	MaxMatchLimit int `koanf:"max_match_limit"`

	// HistoryEmitCap bounds history entries emitted per ranking operation.
	HistoryEmitCap int `koanf:"history_emit_cap"`

	// ParallelThreshold is the candidate count at which per-candidate
	// scoring fans out across workers.
	ParallelThreshold int `koanf:"parallel_threshold"`

	// MaxScoringWorkers bounds the scoring worker group.
	MaxScoringWorkers int `koanf:"max_scoring_workers"`

	// PriorityWeights maps priority keys to their scoring weights.
	PriorityWeights map[string]float64 `koanf:"priority_weights"`

	// DefaultPriorityWeight is used for unknown priority keys.
	DefaultPriorityWeight float64 `koanf:"default_priority_weight"`

	// NeutralCrimeRate is assumed when crime data is absent.
	NeutralCrimeRate float64 `koanf:"neutral_crime_rate"`

	// BudgetBonus and BudgetPenaltyCap tune the affordability adjustment.
	BudgetBonus      float64 `koanf:"budget_bonus"`
	BudgetPenaltyCap float64 `koanf:"budget_penalty_cap"`

	// Tier thresholds for the explanation bands.
	TierExcellentMin float64 `koanf:"tier_excellent_min"`
	TierGoodMin      float64 `koanf:"tier_good_min"`
	TierDecentMin    float64 `koanf:"tier_decent_min"`
}

// New creates a Config with default values.
func New() *Config {
	c := &Config{
		LogLevel:              "info",
		Addr:                  ":9080",
		SeedDemoData:          true,
		DefaultMatchLimit:     10,
		MaxMatchLimit:         100,
		HistoryEmitCap:        5,
		ParallelThreshold:     32,
		MaxScoringWorkers:     runtime.NumCPU(),
		PriorityWeights:       nil, // engine falls back to its built-in table
		DefaultPriorityWeight: 0.1,
		NeutralCrimeRate:      50,
		BudgetBonus:           20,
		BudgetPenaltyCap:      30,
		TierExcellentMin:      80,
		TierGoodMin:           60,
		TierDecentMin:         40,
	}
	return c
}
