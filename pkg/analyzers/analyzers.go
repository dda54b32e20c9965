// Package analyzers scores an extracted page across four independent
// categories (readability, structure, entities, sources), aggregates them
// into one weighted overall score, and derives ranked insights.
//
// Every analyzer is a pure function of the extraction: no I/O, no failure
// mode. Degenerate input lands in the lowest threshold bucket of the
// affected factor instead of propagating an error. Analyzers read the
// shared parsed document but never mutate it, so they are safe to run
// concurrently against the same extraction.
package analyzers

import (
	"math"
	"regexp"

	"github.com/geokit/geokit/models"
)

const maxScore = 100

// newDetail assembles a ScoreDetail from a raw score and its factors.
func newDetail(score int, description string, factors []models.ScoreFactor) models.ScoreDetail {
	percentage := int(math.Round(float64(score) / float64(maxScore) * 100))
	return models.ScoreDetail{
		Score:       score,
		MaxScore:    maxScore,
		Percentage:  percentage,
		Label:       models.GetScoreLabel(percentage),
		Description: description,
		Factors:     factors,
	}
}

// countMatches sums non-overlapping matches of every pattern in text.
func countMatches(patterns []*regexp.Regexp, text string) int {
	total := 0
	for _, p := range patterns {
		total += len(p.FindAllStringIndex(text, -1))
	}
	return total
}

// anyMatch reports whether at least one pattern matches text.
func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
