package matchtest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// requesterHeader identifies the caller for history attribution.
const requesterHeader = "X-Requester-ID"

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request with the requester header when set
func (c *HTTPClient) Get(ctx context.Context, url, requesterID string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if requesterID != "" {
		req.Header.Set(requesterHeader, requesterID)
	}
	return c.client.Do(req)
}

// Post performs a POST request with JSON body and the requester header
func (c *HTTPClient) Post(ctx context.Context, url, requesterID string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if requesterID != "" {
		req.Header.Set(requesterHeader, requesterID)
	}
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// submitMatches submits match requests concurrently using worker pools.
// The returned slice holds the response for each profile, indexed like the
// input; failed requests leave a zero MatchResult.
func submitMatches(ctx context.Context, config *Config, profiles []Profile, stats *Stats) ([]MatchResult, error) {
	log.Printf("submitting %d match requests with %d workers...", len(profiles), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/matches"

	results := make([]MatchResult, len(profiles))

	// Counters for statistics
	var (
		successful int64
		failed     int64
		submitted  int64
		matches    int64
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
					result, err := submitSingleMatch(ctx, client, url, config.Limit, profiles[index])

					atomic.AddInt64(&submitted, 1)
					if err != nil {
						atomic.AddInt64(&failed, 1)
						if config.Verbose {
							log.Printf("match request for %s failed: %v", profiles[index].RequesterID, err)
						}
					} else {
						results[index] = result
						atomic.AddInt64(&successful, 1)
						atomic.AddInt64(&matches, int64(result.Total))
					}

					// Progress reporting
					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						total := atomic.LoadInt64(&submitted)
						succ := atomic.LoadInt64(&successful)
						fail := atomic.LoadInt64(&failed)

						if config.Verbose {
							log.Printf("progress: %d/%d submitted (success: %d, failed: %d)",
								total, len(profiles), succ, fail)
						} else {
							fmt.Printf("\rsubmitted: %d/%d (success: %d, failed: %d)",
								total, len(profiles), succ, fail)
						}
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

	// Final progress report
	if !config.Verbose {
		fmt.Println() // New line after progress indicator
	}

	// Update stats
	stats.RequestsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.RequestsSuccessful = int(atomic.LoadInt64(&successful))
	stats.RequestsFailed = int(atomic.LoadInt64(&failed))
	stats.MatchesReturned = int(atomic.LoadInt64(&matches))

	log.Printf(`match submission completed:
   Successful: %d
   Failed: %d
   Matches returned: %d
`, stats.RequestsSuccessful, stats.RequestsFailed, stats.MatchesReturned)

	return results, nil
}

// submitSingleMatch submits one match request and parses the response.
func submitSingleMatch(ctx context.Context, client *HTTPClient, url string, limit int, profile Profile) (MatchResult, error) {
	req := matchRequest{
		Priorities: profile.Priorities,
		Budget:     profile.Budget,
		Limit:      limit,
	}

	resp, err := client.Post(ctx, url, profile.RequesterID, req)
	if err != nil {
		return MatchResult{}, fmt.Errorf("request failed: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return MatchResult{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != StatusOK {
		return MatchResult{}, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	var result MatchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return MatchResult{}, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}
