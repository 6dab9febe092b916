// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/hoodmatch/internal/adapters/repository"
	"github.com/okian/hoodmatch/internal/domain/model"
	"github.com/okian/hoodmatch/internal/matching"
)

// MatchDependencies defines the interface for match operations.
type MatchDependencies interface {
	Match(ctx context.Context, requesterID string, prefs model.Preferences, limit int, f repository.Filter) ([]model.Match, error)
}

// MatchesHandler handles match requests.
type MatchesHandler struct {
	deps MatchDependencies
}

// NewMatchesHandler creates a new matches handler.
func NewMatchesHandler(deps MatchDependencies) *MatchesHandler {
	return &MatchesHandler{deps: deps}
}

// matchRequest mirrors the request schema for POST /matches.
type matchRequest struct {
	preferencesRequest
	Limit int    `json:"limit,omitempty"`
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
}

type matchResponse struct {
	Matches []model.Match `json:"matches"`
	Total   int           `json:"total"`
}

// HandlePostMatches handles POST /matches requests. The body carries the
// preference profile; limit, city and state may come from the body or the
// query string, with the query string winning.
func (h *MatchesHandler) HandlePostMatches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	id := requesterID(r)
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing_requester", ErrMissingRequester)
		return
	}

	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	limit, err := queryInt(r, "limit", req.Limit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	filter := repository.Filter{City: req.City, State: req.State}
	if city := r.URL.Query().Get("city"); city != "" {
		filter.City = city
	}
	if state := r.URL.Query().Get("state"); state != "" {
		filter.State = state
	}

	matches, err := h.deps.Match(r.Context(), id, req.toModel(), limit, filter)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidProfile), errors.Is(err, matching.ErrInvalidLimit):
			writeError(w, http.StatusBadRequest, "bad_request", err)
		case errors.Is(err, matching.ErrUnavailable):
			writeError(w, http.StatusServiceUnavailable, "unavailable", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, matchResponse{Matches: matches, Total: len(matches)})
}
