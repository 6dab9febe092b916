package history

import "time"

// Option applies a configuration option to the MemRecorder.
type Option func(*MemRecorder)

// WithMaxBatch sets the largest batch accepted per Record call.
func WithMaxBatch(n int) Option {
	return func(r *MemRecorder) {
		if n > 0 {
			r.maxBatch = n
		}
	}
}

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(r *MemRecorder) {
		if now != nil {
			r.now = now
		}
	}
}
