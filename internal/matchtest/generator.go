package matchtest

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"

	"github.com/okian/hoodmatch/internal/domain/model"
	"github.com/okian/hoodmatch/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	budgetCaseDivisor  = 4
)

// Constants for generated budget ranges.
const (
	tightBudgetMin      = 800.0
	tightBudgetRange    = 700.0
	moderateBudgetMin   = 1500.0
	moderateBudgetRange = 1500.0
	generousBudgetMin   = 3000.0
	generousBudgetRange = 3000.0
)

// Budget profile cases.
const (
	caseNoBudget       = 0
	caseTightBudget    = 1
	caseModerateBudget = 2
	caseGenerousBudget = 3
)

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// getRandomInt returns a random int in [0, max) using crypto/rand.
func getRandomInt(max int64) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(max))
	return int(n.Int64())
}

// generateProfiles creates the specified number of preference profiles with
// unique requester IDs.
func generateProfiles(ctx context.Context, config *Config, stats *Stats) ([]Profile, error) {
	logger.Get().Info(ctx, "generating profiles with unique requester IDs", logger.Int("numProfiles", config.NumProfiles))

	profiles := make([]Profile, config.NumProfiles)
	for i := range profiles {
		profiles[i] = generateSingleProfile()
	}

	stats.ProfilesGenerated = len(profiles)
	logger.Get().Info(ctx, "generated profiles successfully", logger.Int("count", len(profiles)))

	return profiles, nil
}

// generateSingleProfile creates one profile with a random priority subset
// and a varied budget distribution.
func generateSingleProfile() Profile {
	known := model.KnownPriorities()

	// Pick 1 to 4 distinct priorities
	count := 1 + getRandomInt(4)
	picked := make([]string, 0, count)
	seen := make(map[int]bool, count)
	for len(picked) < count {
		idx := getRandomInt(int64(len(known)))
		if seen[idx] {
			continue
		}
		seen[idx] = true
		picked = append(picked, known[idx])
	}

	return Profile{
		RequesterID: uuid.New().String(),
		Priorities:  picked,
		Budget:      generateVariedBudget(),
	}
}

// generateVariedBudget creates a budget with varied distribution. A nil
// budget exercises the no-adjustment scoring path.
func generateVariedBudget() *Budget {
	switch int64(getRandomInt(budgetCaseDivisor)) {
	case caseNoBudget:
		return nil
	case caseTightBudget:
		// Tight budgets (800 - 1500) exercise the penalty path
		return &Budget{Max: tightBudgetMin + getRandomFloat()*tightBudgetRange}
	case caseModerateBudget:
		// Moderate budgets (1500 - 3000)
		return &Budget{Max: moderateBudgetMin + getRandomFloat()*moderateBudgetRange}
	default:
		// Generous budgets (3000 - 6000) mostly land the bonus
		return &Budget{Max: generousBudgetMin + getRandomFloat()*generousBudgetRange}
	}
}
