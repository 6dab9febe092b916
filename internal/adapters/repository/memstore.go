package repository

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/okian/hoodmatch/internal/domain/model"
	"github.com/okian/hoodmatch/pkg/metrics"
)

// Default paging and search constants.
const (
	defaultPageLimit   = 20
	defaultSearchLimit = 20
	// metersPerMile converts the radius parameter for the haversine check.
	metersPerMile = 1609.34
	earthRadiusM  = 6371000.0
)

// MemStore is an in-memory Store keyed by neighborhood ID. Listing is
// name-sorted for deterministic pages.
type MemStore struct {
	mu    sync.RWMutex
	byID  map[string]model.Neighborhood
	limit int
}

// NewMemStore creates an empty in-memory store.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		byID:  make(map[string]model.Neighborhood),
		limit: defaultSearchLimit,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Put inserts or replaces a neighborhood record.
func (s *MemStore) Put(_ context.Context, n model.Neighborhood) error {
	if n.ID == "" {
		return fmt.Errorf("%w: missing neighborhood id", ErrInvalidQuery)
	}
	s.mu.Lock()
	s.byID[n.ID] = n
	total := len(s.byID)
	s.mu.Unlock()

	metrics.UpdateNeighborhoodsTotal(total)
	return nil
}

// Get returns one neighborhood by ID.
func (s *MemStore) Get(_ context.Context, id string) (model.Neighborhood, error) {
	defer s.observe(time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.byID[id]
	if !ok {
		return model.Neighborhood{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return n, nil
}

// List returns a name-sorted page of neighborhoods matching the filter.
func (s *MemStore) List(_ context.Context, f Filter) (Page, error) {
	defer s.observe(time.Now())

	if f.Limit <= 0 {
		f.Limit = defaultPageLimit
	}
	if f.Page <= 0 {
		f.Page = 1
	}

	s.mu.RLock()
	all := make([]model.Neighborhood, 0, len(s.byID))
	for _, n := range s.byID {
		if f.City != "" && !strings.EqualFold(n.City, f.City) {
			continue
		}
		if f.State != "" && !strings.EqualFold(n.State, f.State) {
			continue
		}
		all = append(all, n)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].ID < all[j].ID
	})

	total := len(all)
	totalPages := (total + f.Limit - 1) / f.Limit
	start := (f.Page - 1) * f.Limit
	if start > total {
		start = total
	}
	end := min(start+f.Limit, total)

	return Page{
		Neighborhoods: all[start:end],
		Total:         total,
		TotalPages:    totalPages,
		CurrentPage:   f.Page,
	}, nil
}

// Search matches the query against name, city, tags and description,
// case-insensitively.
func (s *MemStore) Search(_ context.Context, query string, limit int) ([]model.Neighborhood, error) {
	defer s.observe(time.Now())

	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", ErrInvalidQuery)
	}
	if limit <= 0 {
		limit = s.limit
	}

	s.mu.RLock()
	var hits []model.Neighborhood
	for _, n := range s.byID {
		if matchesQuery(n, query) {
			hits = append(hits, n)
		}
	}
	s.mu.RUnlock()

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Name != hits[j].Name {
			return hits[i].Name < hits[j].Name
		}
		return hits[i].ID < hits[j].ID
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// Nearby returns neighborhoods within radiusMiles of the point, closest
// first.
func (s *MemStore) Nearby(_ context.Context, lat, lng, radiusMiles float64, limit int) ([]model.Neighborhood, error) {
	defer s.observe(time.Now())

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrInvalidQuery)
	}
	if radiusMiles <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive", ErrInvalidQuery)
	}
	if limit <= 0 {
		limit = s.limit
	}
	radiusM := radiusMiles * metersPerMile

	type hit struct {
		n model.Neighborhood
		d float64
	}

	s.mu.RLock()
	var hits []hit
	for _, n := range s.byID {
		d := haversineMeters(lat, lng, n.Coordinates.Lat, n.Coordinates.Lng)
		if d <= radiusM {
			hits = append(hits, hit{n: n, d: d})
		}
	}
	s.mu.RUnlock()

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].d != hits[j].d {
			return hits[i].d < hits[j].d
		}
		return hits[i].n.ID < hits[j].n.ID
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]model.Neighborhood, len(hits))
	for i, h := range hits {
		out[i] = h.n
	}
	return out, nil
}

// Count returns the number of stored neighborhoods.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func (s *MemStore) observe(start time.Time) {
	metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Microseconds()) / 1000)
}

func matchesQuery(n model.Neighborhood, query string) bool {
	if strings.Contains(strings.ToLower(n.Name), query) ||
		strings.Contains(strings.ToLower(n.City), query) ||
		strings.Contains(strings.ToLower(n.Description), query) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// haversineMeters computes the great-circle distance between two points.
func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	const degToRad = math.Pi / 180
	phi1 := lat1 * degToRad
	phi2 := lat2 * degToRad
	dPhi := (lat2 - lat1) * degToRad
	dLambda := (lng2 - lng1) * degToRad

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * earthRadiusM * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
