package matchtest

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// retrieveHistories fetches the match history for every requester
// concurrently. The returned slice is indexed like the input profiles;
// failed retrievals leave a zero HistoryResult.
func retrieveHistories(ctx context.Context, config *Config, profiles []Profile, stats *Stats) ([]HistoryResult, error) {
	log.Printf("retrieving history for %d requesters with %d workers...", len(profiles), config.Workers)

	client := newHTTPClient(config.Timeout)

	histories := make([]HistoryResult, len(profiles))
	var (
		retrieved int64
		failed    int64
		entries   int64
	)

	// Progress reporting
	var lastReport time.Time
	reportInterval := 1 * time.Second

	// Create worker pool over profile indices
	profileChan := make(chan int, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func(_ int) {
			defer wg.Done()

			for index := range profileChan {
				select {
				case <-ctx.Done():
					return
				default:
					result, err := retrieveSingleHistory(ctx, client, config.BaseURL, profiles[index].RequesterID)

					if err != nil {
						atomic.AddInt64(&failed, 1)
						if config.Verbose {
							log.Printf("failed to get history for %s: %v", profiles[index].RequesterID, err)
						}
					} else {
						histories[index] = result
						atomic.AddInt64(&retrieved, 1)
						atomic.AddInt64(&entries, int64(result.Total))
					}

					// Progress reporting
					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						total := atomic.LoadInt64(&retrieved) + atomic.LoadInt64(&failed)
						ret := atomic.LoadInt64(&retrieved)
						fail := atomic.LoadInt64(&failed)

						log.Printf("history progress: %d/%d retrieved (success: %d, failed: %d)",
							total, len(profiles), ret, fail)
					}
				}
			}
		}(i)
	}

	// Send profile indices to workers
	go func() {
		defer close(profileChan)
		for i := range profiles {
			select {
			case <-ctx.Done():
				return
			case profileChan <- i:
			}
		}
	}()

	// Wait for all workers to complete
	wg.Wait()

	// Update stats
	stats.HistoriesRetrieved = int(atomic.LoadInt64(&retrieved))
	stats.HistoryEntries = int(atomic.LoadInt64(&entries))

	log.Printf(`history retrieval completed:
   Retrieved: %d
   Failed: %d
   Entries: %d
`, stats.HistoriesRetrieved, int(atomic.LoadInt64(&failed)), stats.HistoryEntries)

	return histories, nil
}

// retrieveSingleHistory fetches the history for a single requester.
func retrieveSingleHistory(ctx context.Context, client *HTTPClient, baseURL, requesterID string) (HistoryResult, error) {
	url := baseURL + "/history"

	resp, err := client.Get(ctx, url, requesterID)
	if err != nil {
		return HistoryResult{}, fmt.Errorf("request failed: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return HistoryResult{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != StatusOK {
		return HistoryResult{}, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	var result HistoryResult
	if err := json.Unmarshal(body, &result); err != nil {
		return HistoryResult{}, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}
