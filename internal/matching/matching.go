// Package matching orchestrates scoring and explanation over a candidate
// set and produces ranked, explained, truncated match lists.
package matching

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/okian/hoodmatch/internal/domain/model"
	"github.com/okian/hoodmatch/pkg/logger"
	"github.com/okian/hoodmatch/pkg/metrics"
)

// Default ranking configuration constants.
const (
	defaultLimit = 10
	// historyEmitCap bounds how many entries one ranking operation may hand
	// to the history recorder, regardless of the requested limit.
	defaultHistoryEmitCap = 5
	// Candidate sets below this size are scored inline; larger sets fan out
	// across a bounded worker group.
	defaultParallelThreshold = 32
)

// Scorer computes a bounded score and per-priority breakdown for one
// candidate. Implementations must be pure and safe for concurrent use.
type Scorer interface {
	Score(prefs model.Preferences, n model.Neighborhood) float64
	Breakdown(prefs model.Preferences, n model.Neighborhood) []model.Factor
}

// Explainer derives ordered, non-empty explanation strings.
type Explainer interface {
	Explain(prefs model.Preferences, n model.Neighborhood, score float64) []string
}

// Recorder is the narrow history capability the ranking flow depends on.
// Appends must be serialized per requester by the implementation.
type Recorder interface {
	Record(ctx context.Context, requesterID string, entries []model.HistoryEntry) error
}

// Service ranks candidates for a requester.
type Service struct {
	scorer    Scorer
	explainer Explainer
	recorder  Recorder

	defaultLimit      int
	historyEmitCap    int
	parallelThreshold int
	maxWorkers        int

	logger logger.Logger
}

// New constructs a ranking service around the given collaborators.
func New(scorer Scorer, explainer Explainer, recorder Recorder, opts ...Option) *Service {
	s := &Service{
		scorer:            scorer,
		explainer:         explainer,
		recorder:          recorder,
		defaultLimit:      defaultLimit,
		historyEmitCap:    defaultHistoryEmitCap,
		parallelThreshold: defaultParallelThreshold,
		maxWorkers:        runtime.NumCPU(),
		logger:            nil, // resolved lazily so tests can run without Init
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Rank scores every candidate, sorts by score descending with neighborhood
// ID ascending as the tie-break, truncates to limit and hands the top
// entries to the history recorder. A limit of zero means "unset" and falls
// back to the default; negative limits are rejected. The response is
// all-or-nothing: a history failure aborts the request.
func (s *Service) Rank(ctx context.Context, requesterID string, prefs model.Preferences, candidates []model.Neighborhood, limit int) ([]model.Match, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRankingLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	if err := prefs.Validate(); err != nil {
		metrics.RecordInvalidProfile()
		return nil, err
	}
	switch {
	case limit == 0:
		limit = s.defaultLimit
	case limit < 0:
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	if unknown := prefs.UnknownPriorities(); len(unknown) > 0 {
		for range unknown {
			metrics.RecordUnknownPriority()
		}
		s.log().Warn(ctx, "unknown priority keys scored with fallback weight",
			logger.Any("keys", unknown),
		)
	}

	matches, err := s.scoreAll(ctx, prefs, candidates)
	if err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Neighborhood.ID < matches[j].Neighborhood.ID
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	if err := s.recordTopResults(ctx, requesterID, matches); err != nil {
		return nil, err
	}

	metrics.RecordMatchRequest()
	return matches, nil
}

// Analyze scores a single candidate and returns the full picture: overall
// score, explanations and the per-priority factor breakdown.
func (s *Service) Analyze(ctx context.Context, prefs model.Preferences, n model.Neighborhood) (model.Analysis, error) {
	if err := prefs.Validate(); err != nil {
		metrics.RecordInvalidProfile()
		return model.Analysis{}, err
	}
	if err := ctx.Err(); err != nil {
		return model.Analysis{}, fmt.Errorf("analysis aborted: %w", err)
	}

	score := s.scorer.Score(prefs, n)
	analysis := model.Analysis{
		Neighborhood: n,
		Score:        int(math.Round(score)),
		Reasons:      s.explainer.Explain(prefs, n, score),
		Breakdown:    s.scorer.Breakdown(prefs, n),
	}
	metrics.RecordAnalysisRequest()
	return analysis, nil
}

// scoreAll evaluates every candidate, fanning out across a bounded worker
// group for large sets. Each evaluation is independent; the caller's
// cancellation propagates to in-flight work.
func (s *Service) scoreAll(ctx context.Context, prefs model.Preferences, candidates []model.Neighborhood) ([]model.Match, error) {
	out := make([]model.Match, len(candidates))

	if len(candidates) < s.parallelThreshold || s.maxWorkers <= 1 {
		for i, n := range candidates {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("ranking aborted: %w", err)
			}
			out[i] = s.scoreOne(prefs, n)
		}
		return out, nil
	}

	workers := min(s.maxWorkers, len(candidates))
	indexes := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				out[i] = s.scoreOne(prefs, candidates[i])
			}
		}()
	}

feed:
	for i := range candidates {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ranking aborted: %w", err)
	}
	return out, nil
}

// scoreOne evaluates a single candidate.
func (s *Service) scoreOne(prefs model.Preferences, n model.Neighborhood) model.Match {
	start := time.Now()
	score := s.scorer.Score(prefs, n)
	metrics.RecordScoringLatency(float64(time.Since(start).Microseconds()) / 1000)
	metrics.RecordCandidateScored()

	return model.Match{
		Neighborhood: n,
		Score:        int(math.Round(score)),
		Reasons:      s.explainer.Explain(prefs, n, score),
	}
}

// recordTopResults emits at most historyEmitCap entries to the recorder.
// Timestamps are assigned by the recorder, not here.
func (s *Service) recordTopResults(ctx context.Context, requesterID string, matches []model.Match) error {
	if s.recorder == nil {
		return nil
	}
	emit := min(s.historyEmitCap, len(matches))
	if emit == 0 {
		return nil
	}

	entries := make([]model.HistoryEntry, emit)
	for i := 0; i < emit; i++ {
		entries[i] = model.HistoryEntry{
			NeighborhoodID: matches[i].Neighborhood.ID,
			Score:          matches[i].Score,
		}
	}
	if err := s.recorder.Record(ctx, requesterID, entries); err != nil {
		metrics.RecordHistoryError()
		return fmt.Errorf("%w: match history append: %w", ErrUnavailable, err)
	}
	metrics.RecordHistoryAppend(emit)
	return nil
}

func (s *Service) log() logger.Logger {
	if s.logger != nil {
		return s.logger
	}
	return logger.Get().Named("matching")
}
