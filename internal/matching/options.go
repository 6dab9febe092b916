package matching

import "github.com/okian/hoodmatch/pkg/logger"

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDefaultLimit sets the result count used when the caller leaves the
// limit unset.
func WithDefaultLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.defaultLimit = limit
		}
	}
}

// WithHistoryEmitCap bounds how many entries a single ranking operation
// may hand to the history recorder.
func WithHistoryEmitCap(cap int) Option {
	return func(s *Service) {
		if cap > 0 {
			s.historyEmitCap = cap
		}
	}
}

// WithParallelThreshold sets the candidate count at which scoring fans out
// across workers instead of running inline.
func WithParallelThreshold(threshold int) Option {
	return func(s *Service) {
		if threshold > 0 {
			s.parallelThreshold = threshold
		}
	}
}

// WithMaxWorkers bounds the scoring worker group.
func WithMaxWorkers(workers int) Option {
	return func(s *Service) {
		if workers > 0 {
			s.maxWorkers = workers
		}
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
