package model

import "time"

// Match is one scored candidate in a ranking result. Score is rounded to
// the nearest integer for display; Reasons always starts with an overall
// tier statement.
type Match struct {
	Neighborhood Neighborhood `json:"neighborhood"`
	Score        int          `json:"score"`
	Reasons      []string     `json:"reasons"`
}

// Factor is a single priority dimension's raw contribution before
// weighting, reported by the analysis entry point.
type Factor struct {
	Key    string  `json:"factor"`
	Weight float64 `json:"weight"`
	Score  float64 `json:"score"`
}

// Analysis is the detailed result for a single candidate: the overall
// score, the explanation strings and the per-priority factor breakdown.
type Analysis struct {
	Neighborhood Neighborhood `json:"neighborhood"`
	Score        int          `json:"overall_score"`
	Reasons      []string     `json:"reasons"`
	Breakdown    []Factor     `json:"breakdown"`
}

// HistoryEntry records one past ranking result for a requester.
// A requester's history is an append-only, time-ordered sequence.
type HistoryEntry struct {
	NeighborhoodID string    `json:"neighborhood_id"`
	Score          int       `json:"score"`
	Timestamp      time.Time `json:"timestamp"`
}
