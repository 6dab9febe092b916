// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/hoodmatch/internal/adapters/repository"
	"github.com/okian/hoodmatch/internal/domain/model"
)

// NeighborhoodDependencies defines the interface for neighborhood reads
// and writes.
type NeighborhoodDependencies interface {
	Neighborhoods(ctx context.Context, f repository.Filter) (repository.Page, error)
	Neighborhood(ctx context.Context, id string) (model.Neighborhood, error)
	SearchNeighborhoods(ctx context.Context, query string, limit int) ([]model.Neighborhood, error)
	NearbyNeighborhoods(ctx context.Context, lat, lng, radiusMiles float64, limit int) ([]model.Neighborhood, error)
	AddNeighborhood(ctx context.Context, n model.Neighborhood) error
}

// NeighborhoodsHandler handles neighborhood catalog requests.
type NeighborhoodsHandler struct {
	deps NeighborhoodDependencies
}

// NewNeighborhoodsHandler creates a new neighborhoods handler.
func NewNeighborhoodsHandler(deps NeighborhoodDependencies) *NeighborhoodsHandler {
	return &NeighborhoodsHandler{deps: deps}
}

type neighborhoodPage struct {
	Neighborhoods []model.Neighborhood `json:"neighborhoods"`
	Total         int                  `json:"total"`
	TotalPages    int                  `json:"total_pages"`
	CurrentPage   int                  `json:"current_page"`
}

type neighborhoodList struct {
	Neighborhoods []model.Neighborhood `json:"neighborhoods"`
	Total         int                  `json:"total"`
}

// HandleNeighborhoods handles GET and POST /neighborhoods requests.
func (h *NeighborhoodsHandler) HandleNeighborhoods(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handlePut(w, r)
	default:
		http.NotFound(w, r)
	}
}

// HandleNeighborhoodSubpath dispatches /neighborhoods/search,
// /neighborhoods/nearby and /neighborhoods/{id} requests.
func (h *NeighborhoodsHandler) HandleNeighborhoodSubpath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/neighborhoods/")
	switch {
	case rest == "search":
		h.handleSearch(w, r)
	case rest == "nearby":
		h.handleNearby(w, r)
	case rest == "" || strings.Contains(rest, "/"):
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
	default:
		h.handleGet(w, r, rest)
	}
}

func (h *NeighborhoodsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	result, err := h.deps.Neighborhoods(r.Context(), repository.Filter{
		City:  r.URL.Query().Get("city"),
		State: r.URL.Query().Get("state"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	writeJSON(w, http.StatusOK, neighborhoodPage{
		Neighborhoods: result.Neighborhoods,
		Total:         result.Total,
		TotalPages:    result.TotalPages,
		CurrentPage:   result.CurrentPage,
	})
}

func (h *NeighborhoodsHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	n, err := h.deps.Neighborhood(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *NeighborhoodsHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	hits, err := h.deps.SearchNeighborhoods(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidQuery) {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, neighborhoodList{Neighborhoods: hits, Total: len(hits)})
}

func (h *NeighborhoodsHandler) handleNearby(w http.ResponseWriter, r *http.Request) {
	lat, err := queryFloat(r, "lat")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	lng, err := queryFloat(r, "lng")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	radius, err := queryFloat(r, "radius")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	hits, err := h.deps.NearbyNeighborhoods(r.Context(), lat, lng, radius, limit)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidQuery) {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, neighborhoodList{Neighborhoods: hits, Total: len(hits)})
}

func (h *NeighborhoodsHandler) handlePut(w http.ResponseWriter, r *http.Request) {
	var n model.Neighborhood
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := h.deps.AddNeighborhood(r.Context(), n); err != nil {
		if errors.Is(err, repository.ErrInvalidQuery) {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}
