package analyzers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/geokit/geokit/models"
	"github.com/geokit/geokit/pkg/extractor"
)

var (
	questionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)what is`),
		regexp.MustCompile(`(?i)how to`),
		regexp.MustCompile(`(?i)how do`),
		regexp.MustCompile(`(?i)why is`),
		regexp.MustCompile(`(?i)when should`),
		regexp.MustCompile(`(?i)where can`),
		regexp.MustCompile(`(?i)who is`),
		regexp.MustCompile(`(?i)which is`),
		regexp.MustCompile(`(?i)can you`),
		regexp.MustCompile(`(?i)does it`),
	}

	factRes = []*regexp.Regexp{
		regexp.MustCompile(`\d+%`),
		regexp.MustCompile(`\$[\d,]+`),
		regexp.MustCompile(`\d{4}`),
		regexp.MustCompile(`(?i)\d+ (million|billion|thousand)`),
		regexp.MustCompile(`(?i)according to`),
		regexp.MustCompile(`(?i)research shows`),
		regexp.MustCompile(`(?i)studies indicate`),
		regexp.MustCompile(`(?i)data suggests`),
	}

	definitionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)is defined as`),
		regexp.MustCompile(`(?i)refers to`),
		regexp.MustCompile(`(?i)means that`),
		regexp.MustCompile(`(?i)is a type of`),
		regexp.MustCompile(`(?i)is known as`),
		regexp.MustCompile(`(?i)is characterized by`),
	}

	comparisonRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)better than`),
		regexp.MustCompile(`(?i)compared to`),
		regexp.MustCompile(`(?i)versus`),
		regexp.MustCompile(`(?i)vs\.`),
		regexp.MustCompile(`(?i)alternative to`),
		regexp.MustCompile(`(?i)similar to`),
		regexp.MustCompile(`(?i)unlike`),
		regexp.MustCompile(`(?i)difference between`),
	}

	capitalizedPhraseRe = regexp.MustCompile(`[A-Z][a-z]+(?:\s[A-Z][a-z]+)*`)
)

// demonstratives are capitalized words excluded from entity counting.
var demonstratives = map[string]struct{}{
	"The": {}, "This": {}, "That": {}, "These": {}, "Those": {},
}

// AnalyzeEntities scores how clearly the content presents its topic:
// topic definition (25), question coverage (25), factual density (25),
// named entities (15), and comparative language (10).
func AnalyzeEntities(extraction *extractor.ExtractionResult) models.ScoreDetail {
	text := extraction.Content.Text
	var factors []models.ScoreFactor
	score := 0

	// Topic definition: a definitional phrase in the first paragraph
	// plus the title echoed in the body.
	firstParagraph := strings.SplitN(text, "\n\n", 2)[0]
	hasDefinition := anyMatch(definitionRes, firstParagraph)
	titleInContent := titleEchoed(extraction.Title, text)

	switch {
	case hasDefinition && titleInContent:
		score += 25
		factors = append(factors, models.ScoreFactor{
			Name: "Topic Definition", Value: "Clear and explicit", Impact: models.ImpactPositive,
		})
	case hasDefinition || titleInContent:
		score += 18
		factors = append(factors, models.ScoreFactor{
			Name: "Topic Definition", Value: "Present", Impact: models.ImpactNeutral,
			Suggestion: "Add a clear definition of your topic in the first paragraph",
		})
	default:
		score += 8
		factors = append(factors, models.ScoreFactor{
			Name: "Topic Definition", Value: "Unclear", Impact: models.ImpactNegative,
			Suggestion: "Start with a clear definition: 'X is...' or 'X refers to...'",
		})
	}

	// Question coverage.
	questionsAnswered := countMatches(questionRes, text)
	questionValue := fmt.Sprintf("%d question patterns", questionsAnswered)
	switch {
	case questionsAnswered >= 5:
		score += 25
		factors = append(factors, models.ScoreFactor{
			Name: "Questions Addressed", Value: questionValue, Impact: models.ImpactPositive,
		})
	case questionsAnswered >= 2:
		score += 15
		factors = append(factors, models.ScoreFactor{
			Name: "Questions Addressed", Value: questionValue, Impact: models.ImpactNeutral,
			Suggestion: "Add more 'What is', 'How to', 'Why' sections for AI Q&A",
		})
	default:
		score += 5
		factors = append(factors, models.ScoreFactor{
			Name: "Questions Addressed", Value: questionValue, Impact: models.ImpactNegative,
			Suggestion: "Structure content around common questions (What, How, Why)",
		})
	}

	// Factual density.
	factsCount := countMatches(factRes, text)
	factValue := fmt.Sprintf("%d data points", factsCount)
	switch {
	case factsCount >= 5:
		score += 25
		factors = append(factors, models.ScoreFactor{
			Name: "Facts & Statistics", Value: factValue, Impact: models.ImpactPositive,
		})
	case factsCount >= 2:
		score += 15
		factors = append(factors, models.ScoreFactor{
			Name: "Facts & Statistics", Value: factValue, Impact: models.ImpactNeutral,
			Suggestion: "Add more specific numbers, statistics, and citations",
		})
	default:
		score += 5
		factors = append(factors, models.ScoreFactor{
			Name: "Facts & Statistics", Value: factValue, Impact: models.ImpactNegative,
			Suggestion: "Include statistics, percentages, and specific data - AI loves citing facts",
		})
	}

	// Named entities: distinct capitalized phrases longer than 3 chars.
	entityCount := countNamedEntities(text)
	switch {
	case entityCount >= 10:
		score += 15
		factors = append(factors, models.ScoreFactor{
			Name:   "Named Entities",
			Value:  fmt.Sprintf("%d unique entities", entityCount),
			Impact: models.ImpactPositive,
		})
	case entityCount >= 5:
		score += 10
		factors = append(factors, models.ScoreFactor{
			Name:   "Named Entities",
			Value:  fmt.Sprintf("%d unique entities", entityCount),
			Impact: models.ImpactNeutral,
		})
	default:
		score += 5
		factors = append(factors, models.ScoreFactor{
			Name:       "Named Entities",
			Value:      fmt.Sprintf("%d entities", entityCount),
			Impact:     models.ImpactNegative,
			Suggestion: "Reference specific tools, companies, or concepts by name",
		})
	}

	// Comparative language.
	comparisons := countMatches(comparisonRes, text)
	switch {
	case comparisons >= 3:
		score += 10
		factors = append(factors, models.ScoreFactor{
			Name:   "Comparisons",
			Value:  fmt.Sprintf("%d comparison phrases", comparisons),
			Impact: models.ImpactPositive,
		})
	case comparisons >= 1:
		score += 6
		factors = append(factors, models.ScoreFactor{
			Name:       "Comparisons",
			Value:      fmt.Sprintf("%d comparison phrases", comparisons),
			Impact:     models.ImpactNeutral,
			Suggestion: "Add comparisons (X vs Y, better than, compared to)",
		})
	default:
		score += 2
		factors = append(factors, models.ScoreFactor{
			Name:       "Comparisons",
			Value:      "None found",
			Impact:     models.ImpactNegative,
			Suggestion: "Include comparisons to help AI understand context",
		})
	}

	return newDetail(score, "How clearly your content presents facts and answers questions", factors)
}

// titleEchoed reports whether the first 20 characters of the title appear
// anywhere in the body text (case-insensitive).
func titleEchoed(title, text string) bool {
	if title == "" {
		return false
	}
	prefix := []rune(strings.ToLower(title))
	if len(prefix) > 20 {
		prefix = prefix[:20]
	}
	return strings.Contains(strings.ToLower(text), string(prefix))
}

// countNamedEntities counts distinct capitalized phrases longer than
// three characters, excluding bare demonstratives.
func countNamedEntities(text string) int {
	seen := make(map[string]struct{})
	for _, match := range capitalizedPhraseRe.FindAllString(text, -1) {
		if len(match) <= 3 {
			continue
		}
		if _, skip := demonstratives[match]; skip {
			continue
		}
		seen[match] = struct{}{}
	}
	return len(seen)
}
