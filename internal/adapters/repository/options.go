package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithDefaultQueryLimit sets the fallback limit for Search and Nearby when
// the caller leaves it unset.
func WithDefaultQueryLimit(limit int) Option {
	return func(s *MemStore) {
		if limit > 0 {
			s.limit = limit
		}
	}
}
