package analyzers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/geokit/geokit/models"
	"github.com/geokit/geokit/pkg/extractor"
)

var (
	sentenceSplitRe  = regexp.MustCompile(`[.!?]+`)
	paragraphSplitRe = regexp.MustCompile(`\n\n+`)
	lowerWordRe      = regexp.MustCompile(`\b[a-z]+\b`)
	syllableSuffixRe = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	syllableLeadYRe  = regexp.MustCompile(`^y`)
	vowelGroupRe     = regexp.MustCompile(`[aeiouy]{1,2}`)

	// Passive-auxiliary indicators are counted independently, so
	// "has been" contributes to both the "been" and "has been" tallies.
	passiveRes = compilePhrases([]string{
		"was", "were", "been", "being", "is being", "are being",
		"has been", "have been", "had been", "will be",
	})
)

func compilePhrases(phrases []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(phrases))
	for i, phrase := range phrases {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
	}
	return res
}

// AnalyzeReadability scores how easily machine readers can parse the
// extracted text: length, sentence and paragraph structure, lexical
// complexity, and voice. Each factor holds a fixed 20-point budget.
func AnalyzeReadability(extraction *extractor.ExtractionResult) models.ScoreDetail {
	text := extraction.Content.Text
	var factors []models.ScoreFactor
	score := 0

	// Content length.
	wordCount := extraction.Content.WordCount
	lengthValue := fmt.Sprintf("%d words", wordCount)
	switch {
	case wordCount >= 1500:
		score += 20
		factors = append(factors, models.ScoreFactor{
			Name: "Content Length", Value: lengthValue, Impact: models.ImpactPositive,
		})
	case wordCount >= 800:
		score += 15
		factors = append(factors, models.ScoreFactor{
			Name: "Content Length", Value: lengthValue, Impact: models.ImpactNeutral,
			Suggestion: "Consider adding more comprehensive content (1500+ words)",
		})
	case wordCount >= 300:
		score += 10
		factors = append(factors, models.ScoreFactor{
			Name: "Content Length", Value: lengthValue, Impact: models.ImpactNegative,
			Suggestion: "Content is thin. AI engines prefer comprehensive coverage.",
		})
	default:
		factors = append(factors, models.ScoreFactor{
			Name: "Content Length", Value: lengthValue, Impact: models.ImpactNegative,
			Suggestion: "Very short content. Add substantial information for better AI visibility.",
		})
	}

	// Sentence structure.
	sentences := splitSentences(text)
	avgSentenceLength := 0.0
	if len(sentences) > 0 {
		avgSentenceLength = float64(len(strings.Fields(text))) / float64(len(sentences))
	}
	sentenceValue := fmt.Sprintf("%.1f words/sentence", avgSentenceLength)
	switch {
	case avgSentenceLength >= 10 && avgSentenceLength <= 20:
		score += 20
		factors = append(factors, models.ScoreFactor{
			Name: "Sentence Length", Value: sentenceValue, Impact: models.ImpactPositive,
		})
	case avgSentenceLength >= 8 && avgSentenceLength <= 25:
		score += 15
		factors = append(factors, models.ScoreFactor{
			Name: "Sentence Length", Value: sentenceValue, Impact: models.ImpactNeutral,
		})
	case avgSentenceLength > 25:
		score += 8
		factors = append(factors, models.ScoreFactor{
			Name: "Sentence Length", Value: sentenceValue, Impact: models.ImpactNegative,
			Suggestion: "Sentences are too long. Break them up for better readability.",
		})
	default:
		// Very short sentences outscore very long ones. Intentional,
		// if surprising: the curve is not monotonic.
		score += 10
		factors = append(factors, models.ScoreFactor{
			Name: "Sentence Length", Value: sentenceValue, Impact: models.ImpactNegative,
			Suggestion: "Sentences are very short. Add more detail and context.",
		})
	}

	// Paragraph structure.
	paragraphCount := 0
	for _, p := range paragraphSplitRe.Split(text, -1) {
		if len(strings.TrimSpace(p)) > 50 {
			paragraphCount++
		}
	}
	paragraphValue := fmt.Sprintf("%d paragraphs", paragraphCount)
	switch {
	case paragraphCount >= 5:
		score += 20
		factors = append(factors, models.ScoreFactor{
			Name: "Paragraph Structure", Value: paragraphValue, Impact: models.ImpactPositive,
		})
	case paragraphCount >= 3:
		score += 15
		factors = append(factors, models.ScoreFactor{
			Name: "Paragraph Structure", Value: paragraphValue, Impact: models.ImpactNeutral,
			Suggestion: "Add more paragraphs to break up content",
		})
	default:
		score += 5
		factors = append(factors, models.ScoreFactor{
			Name: "Paragraph Structure", Value: paragraphValue, Impact: models.ImpactNegative,
			Suggestion: "Content needs better paragraph organization",
		})
	}

	// Lexical complexity via an approximate syllable count.
	words := lowerWordRe.FindAllString(strings.ToLower(text), -1)
	complexWords := 0
	for _, word := range words {
		if countSyllables(word) >= 3 {
			complexWords++
		}
	}
	complexityRatio := 0.0
	if len(words) > 0 {
		complexityRatio = float64(complexWords) / float64(len(words))
	}
	switch {
	case complexityRatio <= 0.2:
		score += 20
		factors = append(factors, models.ScoreFactor{
			Name: "Reading Complexity", Value: "Easy to read", Impact: models.ImpactPositive,
		})
	case complexityRatio <= 0.3:
		score += 15
		factors = append(factors, models.ScoreFactor{
			Name: "Reading Complexity", Value: "Moderate", Impact: models.ImpactNeutral,
		})
	default:
		score += 8
		factors = append(factors, models.ScoreFactor{
			Name: "Reading Complexity", Value: "Complex", Impact: models.ImpactNegative,
			Suggestion: "Simplify language for broader accessibility",
		})
	}

	// Active voice.
	passiveCount := countMatches(passiveRes, text)
	passiveRatio := 0.0
	if len(sentences) > 0 {
		passiveRatio = float64(passiveCount) / float64(len(sentences))
	}
	switch {
	case passiveRatio <= 0.1:
		score += 20
		factors = append(factors, models.ScoreFactor{
			Name: "Active Voice", Value: "Strong", Impact: models.ImpactPositive,
		})
	case passiveRatio <= 0.2:
		score += 15
		factors = append(factors, models.ScoreFactor{
			Name: "Active Voice", Value: "Good", Impact: models.ImpactNeutral,
		})
	default:
		score += 8
		factors = append(factors, models.ScoreFactor{
			Name: "Active Voice", Value: "Needs improvement", Impact: models.ImpactNegative,
			Suggestion: "Use more active voice for clearer communication",
		})
	}

	return newDetail(score, "How easily AI engines can parse and understand your content", factors)
}

// splitSentences splits text on runs of sentence-ending punctuation and
// drops empty segments.
func splitSentences(text string) []string {
	var sentences []string
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// countSyllables approximates the syllable count of a lowercase word:
// strip common silent suffixes, drop a leading y, then count vowel-group
// clusters. Words of three letters or fewer count as one syllable.
func countSyllables(word string) int {
	if len(word) <= 3 {
		return 1
	}
	word = syllableSuffixRe.ReplaceAllString(word, "")
	word = syllableLeadYRe.ReplaceAllString(word, "")
	groups := vowelGroupRe.FindAllString(word, -1)
	if len(groups) == 0 {
		return 1
	}
	return len(groups)
}
