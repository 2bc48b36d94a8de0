package match

import (
	"fmt"
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"regguard/internal/sanctions/models"
	"regguard/pkg/platform/sentinel"
)

// Search scans every entry's candidate names (primary name first, then
// aliases) and returns at most one candidate per entry: the best-scoring
// qualifying name. Results are ordered by descending score; the sort is
// stable, so ties keep dataset encounter order.
func Search(ds *models.Dataset, query string, mode models.Mode, threshold int) ([]models.Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", sentinel.ErrInvalidInput)
	}
	queryLower := strings.ToLower(query)

	var results []models.Candidate
	for i := range ds.Entries {
		entry := &ds.Entries[i]
		var candidate models.Candidate
		var ok bool
		if mode == models.ModeFuzzy {
			candidate, ok = matchFuzzy(entry, queryLower, threshold)
		} else {
			candidate, ok = matchExact(entry, queryLower)
		}
		if ok {
			results = append(results, candidate)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

type candidateName struct {
	value string
	alias bool
}

func candidateNames(entry *models.Entry) []candidateName {
	names := make([]candidateName, 0, len(entry.Aliases)+1)
	if entry.PrimaryName != "" {
		names = append(names, candidateName{value: entry.PrimaryName})
	}
	for _, alias := range entry.Aliases {
		names = append(names, candidateName{value: alias, alias: true})
	}
	return names
}

// matchExact stops at the first name containing the query.
func matchExact(entry *models.Entry, queryLower string) (models.Candidate, bool) {
	for _, name := range candidateNames(entry) {
		if strings.Contains(strings.ToLower(name.value), queryLower) {
			return models.Candidate{
				Entry:       entry,
				Score:       100,
				MatchedName: name.value,
				AliasMatch:  name.alias,
			}, true
		}
	}
	return models.Candidate{}, false
}

// matchFuzzy keeps the best-scoring name at or above the threshold.
func matchFuzzy(entry *models.Entry, queryLower string, threshold int) (models.Candidate, bool) {
	best := models.Candidate{Entry: entry}
	found := false
	for _, name := range candidateNames(entry) {
		score := similarity(queryLower, strings.ToLower(name.value))
		if score >= threshold && score > best.Score {
			best.Score = score
			best.MatchedName = name.value
			best.AliasMatch = name.alias
			found = true
		}
	}
	return best, found
}

// similarity is the max of a token-order-insensitive whole-name ratio and the
// best single-word ratio, so "Jong Un Kim" scores like an in-order match and a
// bare surname still lands on a multi-word name.
func similarity(queryLower, nameLower string) int {
	score := fuzzy.TokenSortRatio(queryLower, nameLower)
	for _, word := range strings.Fields(nameLower) {
		if wordScore := fuzzy.Ratio(queryLower, word); wordScore > score {
			score = wordScore
		}
	}
	return score
}
