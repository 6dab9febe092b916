// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/okian/hoodmatch/internal/adapters/history"
	"github.com/okian/hoodmatch/internal/adapters/repository"
	"github.com/okian/hoodmatch/internal/domain/explain"
	"github.com/okian/hoodmatch/internal/domain/model"
	"github.com/okian/hoodmatch/internal/domain/scoring"
	"github.com/okian/hoodmatch/internal/matching"
	"github.com/okian/hoodmatch/internal/seed"
	"github.com/okian/hoodmatch/pkg/logger"
	"github.com/okian/hoodmatch/pkg/metrics"
)

// Default configuration constants.
const (
	defaultMatchLimit     = 10
	defaultMaxMatchLimit  = 100
	defaultHistoryCap     = 5
	defaultParallelThresh = 32
)

// Service wires the neighborhood store, the ranking core and the history
// recorder behind the narrow surface the HTTP API consumes.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	recorder history.Recorder
	matcher  *matching.Service

	// Configuration
	defaultMatchLimit int
	maxMatchLimit     int
	historyEmitCap    int
	parallelThreshold int
	maxWorkers        int
	priorityWeights   map[string]float64
	fallbackWeight    float64
	neutralCrimeRate  float64
	budgetBonus       float64
	budgetPenaltyCap  float64
	tierExcellentMin  float64
	tierGoodMin       float64
	tierDecentMin     float64
	seedDemoData      bool

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultMatchLimit: defaultMatchLimit,
		maxMatchLimit:     defaultMaxMatchLimit,
		historyEmitCap:    defaultHistoryCap,
		parallelThreshold: defaultParallelThresh,
		maxWorkers:        runtime.NumCPU(),
		priorityWeights:   nil, // scoring engine falls back to its built-in table
		fallbackWeight:    0,
		neutralCrimeRate:  0,
		budgetBonus:       0,
		budgetPenaltyCap:  0,
		tierExcellentMin:  0,
		tierGoodMin:       0,
		tierDecentMin:     0,
		seedDemoData:      false,
		logger:            nil, // replaced when the service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting matching service...")

	if s.store == nil {
		s.store = repository.NewMemStore()
	}
	if s.recorder == nil {
		s.recorder = history.NewMemRecorder(
			history.WithMaxBatch(s.historyEmitCap),
		)
	}

	engine := scoring.New(s.scoringOptions()...)
	generator := explain.New(s.explainOptions()...)
	s.matcher = matching.New(engine, generator, s.recorder,
		matching.WithDefaultLimit(s.defaultMatchLimit),
		matching.WithHistoryEmitCap(s.historyEmitCap),
		matching.WithParallelThreshold(s.parallelThreshold),
		matching.WithMaxWorkers(s.maxWorkers),
		matching.WithLogger(s.logger),
	)

	if s.seedDemoData {
		if err := seed.Load(ctx, s.store); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	s.started = true
	s.logger.Info(ctx, "matching service started",
		logger.Int("neighborhoods", s.store.Count(ctx)),
		logger.Int("defaultMatchLimit", s.defaultMatchLimit),
		logger.Int("historyEmitCap", s.historyEmitCap),
		logger.Int("maxWorkers", s.maxWorkers),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping matching service...")

	if closer, ok := s.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	s.started = false
	s.logger.Info(context.Background(), "matching service stopped")
}

// Match ranks stored neighborhoods against the given preferences. The
// candidate set may be narrowed by city and state before scoring. Limits
// above the configured maximum are clamped rather than rejected.
func (s *Service) Match(ctx context.Context, requesterID string, prefs model.Preferences, limit int, f repository.Filter) ([]model.Match, error) {
	if limit > s.maxMatchLimit {
		s.logger.Debug(ctx, "clamping match limit",
			logger.Int("requested", limit),
			logger.Int("max", s.maxMatchLimit),
		)
		limit = s.maxMatchLimit
	}

	candidates, err := s.candidates(ctx, f)
	if err != nil {
		return nil, err
	}

	return s.matcher.Rank(ctx, requesterID, prefs, candidates, limit)
}

// Analyze scores a single stored neighborhood against the preferences and
// returns the full picture with the per-priority breakdown.
func (s *Service) Analyze(ctx context.Context, prefs model.Preferences, neighborhoodID string) (model.Analysis, error) {
	n, err := s.store.Get(ctx, neighborhoodID)
	if err != nil {
		return model.Analysis{}, err
	}
	return s.matcher.Analyze(ctx, prefs, n)
}

// Neighborhoods returns a filtered, name-sorted page of neighborhoods.
func (s *Service) Neighborhoods(ctx context.Context, f repository.Filter) (repository.Page, error) {
	return s.store.List(ctx, f)
}

// Neighborhood returns a single neighborhood by ID.
func (s *Service) Neighborhood(ctx context.Context, id string) (model.Neighborhood, error) {
	return s.store.Get(ctx, id)
}

// SearchNeighborhoods runs a case-insensitive text search over stored
// neighborhoods.
func (s *Service) SearchNeighborhoods(ctx context.Context, query string, limit int) ([]model.Neighborhood, error) {
	return s.store.Search(ctx, query, limit)
}

// NearbyNeighborhoods returns neighborhoods within radiusMiles of the
// point, closest first.
func (s *Service) NearbyNeighborhoods(ctx context.Context, lat, lng, radiusMiles float64, limit int) ([]model.Neighborhood, error) {
	return s.store.Nearby(ctx, lat, lng, radiusMiles, limit)
}

// History returns the requester's most recent match history entries,
// newest first.
func (s *Service) History(ctx context.Context, requesterID string, n int) ([]model.HistoryEntry, error) {
	return s.recorder.Recent(ctx, requesterID, n)
}

// AddNeighborhood inserts or replaces a neighborhood record.
func (s *Service) AddNeighborhood(ctx context.Context, n model.Neighborhood) error {
	return s.store.Put(ctx, n)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":           s.started,
		"defaultMatchLimit": s.defaultMatchLimit,
		"maxMatchLimit":     s.maxMatchLimit,
		"historyEmitCap":    s.historyEmitCap,
		"maxWorkers":        s.maxWorkers,
	}

	if s.started {
		total := s.store.Count(ctx)
		stats["neighborhoods"] = total
		metrics.UpdateNeighborhoodsTotal(total)
	}

	return stats
}

// candidates loads every stored neighborhood matching the filter, ignoring
// pagination. Ranking always considers the whole filtered set.
func (s *Service) candidates(ctx context.Context, f repository.Filter) ([]model.Neighborhood, error) {
	total := s.store.Count(ctx)
	if total == 0 {
		return nil, nil
	}

	page, err := s.store.List(ctx, repository.Filter{
		City:  f.City,
		State: f.State,
		Page:  1,
		Limit: total,
	})
	if err != nil {
		return nil, err
	}
	return page.Neighborhoods, nil
}

func (s *Service) scoringOptions() []scoring.Option {
	var opts []scoring.Option
	if len(s.priorityWeights) > 0 {
		opts = append(opts, scoring.WithWeights(s.priorityWeights))
	}
	if s.fallbackWeight > 0 {
		opts = append(opts, scoring.WithFallbackWeight(s.fallbackWeight))
	}
	if s.neutralCrimeRate > 0 {
		opts = append(opts, scoring.WithNeutralCrimeRate(s.neutralCrimeRate))
	}
	if s.budgetBonus > 0 {
		opts = append(opts, scoring.WithBudgetBonus(s.budgetBonus))
	}
	if s.budgetPenaltyCap > 0 {
		opts = append(opts, scoring.WithBudgetPenaltyCap(s.budgetPenaltyCap))
	}
	return opts
}

func (s *Service) explainOptions() []explain.Option {
	var opts []explain.Option
	if s.tierExcellentMin > 0 || s.tierGoodMin > 0 || s.tierDecentMin > 0 {
		opts = append(opts, explain.WithTierThresholds(s.tierExcellentMin, s.tierGoodMin, s.tierDecentMin))
	}
	return opts
}
