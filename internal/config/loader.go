package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if HOODMATCH_CONFIG is set
//  3. env (prefix HOODMATCH_)
func Load(_ context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("HOODMATCH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: HOODMATCH_ADDR, HOODMATCH_MAX_MATCH_LIMIT, ...
	// Map env keys like HOODMATCH_MAX_MATCH_LIMIT -> max_match_limit and
	// preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("HOODMATCH_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "hoodmatch_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the service cannot start with.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DefaultMatchLimit < 1:
		return fmt.Errorf("%w: default_match_limit must be positive", ErrInvalidConfig)
	case c.MaxMatchLimit < c.DefaultMatchLimit:
		return fmt.Errorf("%w: max_match_limit below default_match_limit", ErrInvalidConfig)
	case c.HistoryEmitCap < 1:
		return fmt.Errorf("%w: history_emit_cap must be positive", ErrInvalidConfig)
	case c.DefaultPriorityWeight <= 0:
		return fmt.Errorf("%w: default_priority_weight must be positive", ErrInvalidConfig)
	case c.NeutralCrimeRate < 0:
		return fmt.Errorf("%w: neutral_crime_rate must be non-negative", ErrInvalidConfig)
	case c.TierExcellentMin <= c.TierGoodMin || c.TierGoodMin <= c.TierDecentMin:
		return fmt.Errorf("%w: tier thresholds must be strictly descending", ErrInvalidConfig)
	}
	for key, w := range c.PriorityWeights {
		if w <= 0 {
			return fmt.Errorf("%w: priority weight %q must be positive", ErrInvalidConfig, key)
		}
	}
	return nil
}
