package matchtest

import "time"

// Config holds configuration for the match load test
type Config struct {
	BaseURL     string        // Base URL of the service
	NumProfiles int           // Number of preference profiles to generate
	Limit       int           // Match limit per request
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	OutputFile  string        // Output file for profiles
	LogFile     string        // Log file for test output
	Verbose     bool          // Enable verbose logging
}

// Budget mirrors the wire shape of a rent budget
type Budget struct {
	Min float64 `json:"min,omitempty"`
	Max float64 `json:"max,omitempty"`
}

// Profile is one generated preference profile plus its requester identity
type Profile struct {
	RequesterID string   `json:"requester_id"`
	Priorities  []string `json:"priorities"`
	Budget      *Budget  `json:"budget,omitempty"`
}

// matchRequest mirrors the POST /matches request schema
type matchRequest struct {
	Priorities []string `json:"priorities"`
	Budget     *Budget  `json:"budget,omitempty"`
	Limit      int      `json:"limit,omitempty"`
}

// MatchEntry is one scored neighborhood in a match response
type MatchEntry struct {
	Neighborhood struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"neighborhood"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// MatchResult is the response from POST /matches
type MatchResult struct {
	Matches []MatchEntry `json:"matches"`
	Total   int          `json:"total"`
}

// HistoryEntry is one recorded past match
type HistoryEntry struct {
	NeighborhoodID string `json:"neighborhood_id"`
	Score          int    `json:"score"`
	Timestamp      string `json:"timestamp"`
}

// HistoryResult is the response from GET /history
type HistoryResult struct {
	Entries []HistoryEntry `json:"entries"`
	Total   int            `json:"total"`
}

// Stats holds test statistics
type Stats struct {
	ProfilesGenerated  int
	RequestsSubmitted  int
	RequestsSuccessful int
	RequestsFailed     int
	MatchesReturned    int
	HistoriesRetrieved int
	HistoryEntries     int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
