// Package search implements the fuzzy query matcher. Edit-distance scoring
// is CPU-bound, so every match runs on a bounded worker pool instead of the
// request path: a slow comparison occupies a pool slot, not a connection.
package search

import (
	"context"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/sync/semaphore"
)

// SimilarityThreshold is the minimum normalized edit-distance similarity for
// a fuzzy match.
const SimilarityThreshold = 0.90

// Candidate is the searchable surface of one mod record
type Candidate struct {
	Name        string
	Description string
	Keywords    []string
}

// Matcher evaluates query tokens against candidates on a bounded pool
type Matcher struct {
	workers *semaphore.Weighted
}

// NewMatcher creates a matcher with the given worker limit
func NewMatcher(workers int) *Matcher {
	if workers < 1 {
		workers = 1
	}
	return &Matcher{workers: semaphore.NewWeighted(int64(workers))}
}

// Match reports whether any whitespace-separated token of the query matches
// any permitted field of the candidate. An empty query matches everything.
// The comparison itself is dispatched to the pool; Match blocks the calling
// goroutine, not its peers.
func (m *Matcher) Match(ctx context.Context, query string, c Candidate, namesOnly, keywordsOnly bool) (bool, error) {
	if query == "" {
		return true, nil
	}

	if err := m.workers.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer m.workers.Release(1)

	for _, token := range strings.Fields(query) {
		if !namesOnly {
			if !keywordsOnly {
				for _, word := range strings.Fields(c.Description) {
					if tokenMatches(token, word) {
						return true, nil
					}
				}
			}
			for _, keyword := range c.Keywords {
				if tokenMatches(token, keyword) {
					return true, nil
				}
			}
		}
		if !keywordsOnly {
			if tokenMatches(token, c.Name) {
				return true, nil
			}
		}
	}

	return false, nil
}

// tokenMatches applies the two-armed rule: substring containment or
// normalized levenshtein similarity above the threshold. Both arms fold
// case, so "phys" matches a mod named "PhysicsEngine".
func tokenMatches(token, field string) bool {
	token = strings.ToLower(token)
	field = strings.ToLower(field)
	if strings.Contains(field, token) {
		return true
	}
	return Similarity(token, field) > SimilarityThreshold
}

// Similarity returns 1 - distance/maxLen, the normalized edit-distance
// similarity of two strings. Two empty strings are identical.
func Similarity(a, b string) float64 {
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1.0
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(distance)/float64(longest)
}
