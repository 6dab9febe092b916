// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/hoodmatch/internal/adapters/repository"
	"github.com/okian/hoodmatch/internal/domain/model"
)

// RequesterHeader identifies the caller for history attribution.
const RequesterHeader = "X-Requester-ID"

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Match ranks stored neighborhoods against the preferences.
	Match(ctx context.Context, requesterID string, prefs model.Preferences, limit int, f repository.Filter) ([]model.Match, error)

	// Analyze scores a single stored neighborhood.
	Analyze(ctx context.Context, prefs model.Preferences, neighborhoodID string) (model.Analysis, error)

	// Read operations expose neighborhood data.
	Neighborhoods(ctx context.Context, f repository.Filter) (repository.Page, error)
	Neighborhood(ctx context.Context, id string) (model.Neighborhood, error)
	SearchNeighborhoods(ctx context.Context, query string, limit int) ([]model.Neighborhood, error)
	NearbyNeighborhoods(ctx context.Context, lat, lng, radiusMiles float64, limit int) ([]model.Neighborhood, error)

	// AddNeighborhood inserts or replaces a neighborhood record.
	AddNeighborhood(ctx context.Context, n model.Neighborhood) error

	// History returns the requester's recent match history, newest first.
	History(ctx context.Context, requesterID string, n int) ([]model.HistoryEntry, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler        *HealthHandler
	statsHandler         *StatsHandler
	matchesHandler       *MatchesHandler
	analyzeHandler       *AnalyzeHandler
	neighborhoodsHandler *NeighborhoodsHandler
	historyHandler       *HistoryHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:        NewHealthHandler(),
		statsHandler:         NewStatsHandler(statsProvider),
		matchesHandler:       NewMatchesHandler(deps),
		analyzeHandler:       NewAnalyzeHandler(deps),
		neighborhoodsHandler: NewNeighborhoodsHandler(deps),
		historyHandler:       NewHistoryHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/matches", MetricsMiddleware(s.matchesHandler.HandlePostMatches, "matches"))
	mux.HandleFunc("/analyze/", MetricsMiddleware(s.analyzeHandler.HandlePostAnalyze, "analyze"))
	mux.HandleFunc("/neighborhoods", MetricsMiddleware(s.neighborhoodsHandler.HandleNeighborhoods, "neighborhoods"))
	mux.HandleFunc("/neighborhoods/", MetricsMiddleware(s.neighborhoodsHandler.HandleNeighborhoodSubpath, "neighborhoods"))
	mux.HandleFunc("/history", MetricsMiddleware(s.historyHandler.HandleGetHistory, "history"))
}

// preferencesRequest mirrors the request schema for match and analyze calls.
type preferencesRequest struct {
	Priorities   []string           `json:"priorities"`
	Budget       *budgetRequest     `json:"budget,omitempty"`
	Lifestyle    string             `json:"lifestyle,omitempty"`
	FamilySize   int                `json:"family_size,omitempty"`
	HasChildren  bool               `json:"has_children,omitempty"`
	WorkLocation *model.Coordinates `json:"work_location,omitempty"`
}

type budgetRequest struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (p preferencesRequest) toModel() model.Preferences {
	prefs := model.Preferences{
		Priorities:   p.Priorities,
		Lifestyle:    p.Lifestyle,
		FamilySize:   p.FamilySize,
		HasChildren:  p.HasChildren,
		WorkLocation: p.WorkLocation,
	}
	if p.Budget != nil {
		prefs.Budget = model.Budget{Min: p.Budget.Min, Max: p.Budget.Max}
	}
	return prefs
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// requesterID extracts the caller identity from the header or the
// `requester` query parameter. Empty means the caller is unidentified.
func requesterID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(RequesterHeader)); id != "" {
		return id
	}
	return strings.TrimSpace(r.URL.Query().Get("requester"))
}

// queryInt parses an optional integer query parameter. A missing or empty
// parameter yields the fallback; a malformed one yields an error.
func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid " + key + " parameter")
	}
	return v, nil
}

// queryFloat parses a required float query parameter.
func queryFloat(r *http.Request, key string) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, errors.New("missing " + key + " parameter")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New("invalid " + key + " parameter")
	}
	return v, nil
}
