// Package repository defines the neighborhood data-access contract and an
// in-memory implementation. Real persistence is an external collaborator;
// the ranking core only depends on this narrow read surface.
package repository

import (
	"context"

	"github.com/okian/hoodmatch/internal/domain/model"
)

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	City  string
	State string
	Page  int
	Limit int
}

// Page is one page of neighborhoods plus paging metadata.
type Page struct {
	Neighborhoods []model.Neighborhood
	Total         int
	TotalPages    int
	CurrentPage   int
}

// Store provides read/write access to neighborhood records.
type Store interface {
	// Put inserts or replaces a neighborhood record.
	Put(ctx context.Context, n model.Neighborhood) error

	// Get returns one neighborhood by ID.
	// Returns ErrNotFound for unknown IDs.
	Get(ctx context.Context, id string) (model.Neighborhood, error)

	// List returns a name-sorted page of neighborhoods matching the filter.
	List(ctx context.Context, f Filter) (Page, error)

	// Search returns up to limit neighborhoods whose name, city, tags or
	// description match the query, case-insensitively.
	Search(ctx context.Context, query string, limit int) ([]model.Neighborhood, error)

	// Nearby returns up to limit neighborhoods within radiusMiles of the
	// given point, closest first.
	Nearby(ctx context.Context, lat, lng, radiusMiles float64, limit int) ([]model.Neighborhood, error)

	// Count returns the number of stored neighborhoods.
	Count(ctx context.Context) int
}
