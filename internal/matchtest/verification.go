package matchtest

import (
	"fmt"
	"log"
)

// verifyResults checks the invariants every match response must hold:
// scores bounded to 0-100, ordering best first, the limit honored, every
// match explained, and history capped per request.
func verifyResults(config *Config, results []MatchResult, histories []HistoryResult) error {
	log.Println("verifying results...")

	var violations int
	for i, result := range results {
		if result.Total == 0 && len(result.Matches) == 0 {
			continue // failed or empty response, counted elsewhere
		}
		if err := verifySingleResult(config.Limit, result); err != nil {
			violations++
			if config.Verbose {
				log.Printf("response %d violates invariants: %v", i, err)
			}
		}
	}

	for i, history := range histories {
		if len(history.Entries) > historyEmitCap {
			violations++
			if config.Verbose {
				log.Printf("history %d exceeds the emission cap: %d entries", i, len(history.Entries))
			}
		}
	}

	if violations > 0 {
		return fmt.Errorf("%d responses violated ranking invariants", violations)
	}

	log.Println("result verification completed")
	return nil
}

// verifySingleResult checks one match response.
func verifySingleResult(limit int, result MatchResult) error {
	if limit > 0 && len(result.Matches) > limit {
		return fmt.Errorf("got %d matches for limit %d", len(result.Matches), limit)
	}

	for i, m := range result.Matches {
		if m.Score < 0 || m.Score > 100 {
			return fmt.Errorf("match %d has out-of-bounds score %d", i, m.Score)
		}
		if len(m.Reasons) == 0 {
			return fmt.Errorf("match %d has no explanation", i)
		}
		if i > 0 && m.Score > result.Matches[i-1].Score {
			return fmt.Errorf("matches not sorted: entry %d outranks entry %d", i, i-1)
		}
	}

	return nil
}

// displayTopMatches shows the best-scoring neighborhoods across all
// responses.
func displayTopMatches(results []MatchResult, verbose bool) {
	best := make(map[string]int)
	names := make(map[string]string)
	for _, result := range results {
		for _, m := range result.Matches {
			if m.Score > best[m.Neighborhood.ID] {
				best[m.Neighborhood.ID] = m.Score
				names[m.Neighborhood.ID] = m.Neighborhood.Name
			}
		}
	}

	log.Printf("neighborhoods seen across %d responses: %d", len(results), len(best))
	if !verbose {
		return
	}

	for id, score := range best {
		log.Printf("   %s (%s) - best score: %d", names[id], id, score)
	}
}
