// Package seed provides realistic sample neighborhoods and a synthetic
// generator for development and load testing.
package seed

import (
	"context"
	"fmt"

	"github.com/okian/hoodmatch/internal/adapters/repository"
	"github.com/okian/hoodmatch/pkg/logger"
)

// Load inserts the curated samples into the store. Existing records with
// the same IDs are replaced, so calling it twice is harmless.
func Load(ctx context.Context, store repository.Store) error {
	samples := Samples()
	for _, n := range samples {
		if err := store.Put(ctx, n); err != nil {
			return fmt.Errorf("failed to seed neighborhood %s: %w", n.ID, err)
		}
	}
	logger.Get().Info(ctx, "seeded sample neighborhoods", logger.Int("count", len(samples)))
	return nil
}
