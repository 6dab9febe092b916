package service

import (
	"github.com/okian/hoodmatch/internal/adapters/history"
	"github.com/okian/hoodmatch/internal/adapters/repository"
	"github.com/okian/hoodmatch/internal/config"
	"github.com/okian/hoodmatch/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithConfig applies process configuration to the service. Zero values
// leave the corresponding defaults untouched.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg == nil {
			return
		}
		if cfg.DefaultMatchLimit > 0 {
			s.defaultMatchLimit = cfg.DefaultMatchLimit
		}
		if cfg.MaxMatchLimit > 0 {
			s.maxMatchLimit = cfg.MaxMatchLimit
		}
		if cfg.HistoryEmitCap > 0 {
			s.historyEmitCap = cfg.HistoryEmitCap
		}
		if cfg.ParallelThreshold > 0 {
			s.parallelThreshold = cfg.ParallelThreshold
		}
		if cfg.MaxScoringWorkers > 0 {
			s.maxWorkers = cfg.MaxScoringWorkers
		}
		s.priorityWeights = cfg.PriorityWeights
		s.fallbackWeight = cfg.DefaultPriorityWeight
		s.neutralCrimeRate = cfg.NeutralCrimeRate
		s.budgetBonus = cfg.BudgetBonus
		s.budgetPenaltyCap = cfg.BudgetPenaltyCap
		s.tierExcellentMin = cfg.TierExcellentMin
		s.tierGoodMin = cfg.TierGoodMin
		s.tierDecentMin = cfg.TierDecentMin
		s.seedDemoData = cfg.SeedDemoData
	}
}

// WithStore sets the neighborhood store. Intended for tests and for
// swapping in an external persistence adapter.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithRecorder sets the history recorder.
func WithRecorder(recorder history.Recorder) Option {
	return func(s *Service) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

// WithSeedDemoData toggles loading the bundled sample neighborhoods at
// startup.
func WithSeedDemoData(enabled bool) Option {
	return func(s *Service) {
		s.seedDemoData = enabled
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
