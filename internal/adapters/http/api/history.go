// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/okian/hoodmatch/internal/adapters/history"
	"github.com/okian/hoodmatch/internal/domain/model"
)

// HistoryDependencies defines the interface for history reads.
type HistoryDependencies interface {
	History(ctx context.Context, requesterID string, n int) ([]model.HistoryEntry, error)
}

// HistoryHandler handles match-history requests.
type HistoryHandler struct {
	deps HistoryDependencies
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(deps HistoryDependencies) *HistoryHandler {
	return &HistoryHandler{deps: deps}
}

type historyResponse struct {
	Entries []model.HistoryEntry `json:"entries"`
	Total   int                  `json:"total"`
}

// HandleGetHistory handles GET /history?limit=N requests for the requester
// identified by the header or the `requester` query parameter.
func (h *HistoryHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	id := requesterID(r)
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing_requester", ErrMissingRequester)
		return
	}

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	entries, err := h.deps.History(r.Context(), id, limit)
	if err != nil {
		if errors.Is(err, history.ErrInvalidRequester) {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	writeJSON(w, http.StatusOK, historyResponse{Entries: entries, Total: len(entries)})
}
