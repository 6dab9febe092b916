// Package history records bounded per-requester match history. Retention
// and trimming belong to the backing store; this layer guarantees the
// append is atomic from the caller's perspective and serialized per
// requester.
package history

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/hoodmatch/internal/domain/model"
)

// defaultMaxBatch mirrors the ranking layer's emission cap. A caller that
// hands over more entries per call is violating the bounded-emission
// contract and is rejected.
const defaultMaxBatch = 5

// Recorder appends match history entries and reads them back.
type Recorder interface {
	// Record appends entries for a requester, stamping each with the
	// recorder's clock. Appends for the same requester never interleave.
	Record(ctx context.Context, requesterID string, entries []model.HistoryEntry) error

	// Recent returns the newest n entries for a requester, newest first.
	Recent(ctx context.Context, requesterID string, n int) ([]model.HistoryEntry, error)

	// Count returns the number of entries held for a requester.
	Count(ctx context.Context, requesterID string) int
}

// requesterLog serializes appends for one requester.
type requesterLog struct {
	mu      sync.Mutex
	entries []model.HistoryEntry
}

// MemRecorder is an in-memory Recorder.
type MemRecorder struct {
	mu       sync.RWMutex
	logs     map[string]*requesterLog
	maxBatch int
	now      func() time.Time
}

// NewMemRecorder creates an in-memory recorder.
func NewMemRecorder(opts ...Option) *MemRecorder {
	r := &MemRecorder{
		logs:     make(map[string]*requesterLog),
		maxBatch: defaultMaxBatch,
		now:      time.Now,
	}

	// Apply all options
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Record appends entries for a requester with recorder-assigned timestamps.
func (r *MemRecorder) Record(_ context.Context, requesterID string, entries []model.HistoryEntry) error {
	if requesterID == "" {
		return fmt.Errorf("%w: empty requester id", ErrInvalidRequester)
	}
	if len(entries) == 0 {
		return nil
	}
	if len(entries) > r.maxBatch {
		return fmt.Errorf("%w: %d entries exceeds cap of %d", ErrBatchTooLarge, len(entries), r.maxBatch)
	}

	log := r.logFor(requesterID)
	ts := r.now()

	log.mu.Lock()
	defer log.mu.Unlock()
	for _, e := range entries {
		e.Timestamp = ts
		log.entries = append(log.entries, e)
	}
	return nil
}

// Recent returns the newest n entries, newest first.
func (r *MemRecorder) Recent(_ context.Context, requesterID string, n int) ([]model.HistoryEntry, error) {
	if requesterID == "" {
		return nil, fmt.Errorf("%w: empty requester id", ErrInvalidRequester)
	}
	if n <= 0 {
		n = r.maxBatch
	}

	log := r.logFor(requesterID)
	log.mu.Lock()
	defer log.mu.Unlock()

	total := len(log.entries)
	if n > total {
		n = total
	}
	out := make([]model.HistoryEntry, n)
	for i := 0; i < n; i++ {
		out[i] = log.entries[total-1-i]
	}
	return out, nil
}

// Count returns the number of entries held for a requester.
func (r *MemRecorder) Count(_ context.Context, requesterID string) int {
	r.mu.RLock()
	log, ok := r.logs[requesterID]
	r.mu.RUnlock()
	if !ok {
		return 0
	}
	log.mu.Lock()
	defer log.mu.Unlock()
	return len(log.entries)
}

// logFor returns the requester's log, creating it on first use.
func (r *MemRecorder) logFor(requesterID string) *requesterLog {
	r.mu.RLock()
	log, ok := r.logs[requesterID]
	r.mu.RUnlock()
	if ok {
		return log
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if log, ok = r.logs[requesterID]; ok {
		return log
	}
	log = &requesterLog{}
	r.logs[requesterID] = log
	return log
}
