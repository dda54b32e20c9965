package analyzers

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/geokit/geokit/models"
	"github.com/geokit/geokit/pkg/extractor"
)

// maxInsights caps the ranked insight list. Truncation happens after the
// full ordering pass, never before, so the highest-ranked insights are
// always the ones kept.
const maxInsights = 10

// categoryWeights combine the four category percentages into the overall
// score. They sum to 1.0.
var categoryWeights = map[string]float64{
	"readability": 0.30,
	"structure":   0.25,
	"entities":    0.25,
	"sources":     0.20,
}

var categoryLabels = map[string]string{
	"readability": "Readability",
	"structure":   "Structure",
	"entities":    "Entity Clarity",
	"sources":     "Source Credibility",
}

// highImpactFactors escalate an improvement to high impact when their
// category scores below 60%.
var highImpactFactors = map[string]struct{}{
	"Schema Markup":     {},
	"Topic Definition":  {},
	"Author Info":       {},
	"Heading Structure": {},
}

var mediumImpactFactors = map[string]struct{}{
	"Lists":               {},
	"Questions Addressed": {},
	"Citations & Sources": {},
	"Meta Description":    {},
}

// factorActions maps factor names to concrete next steps. Factors without
// an entry yield insights with no action.
var factorActions = map[string]string{
	"Schema Markup":       "Add JSON-LD structured data",
	"Heading Structure":   "Reorganize headings hierarchy",
	"Author Info":         "Add author byline with credentials",
	"Topic Definition":    "Add clear definition in first paragraph",
	"Lists":               "Convert key points to bullet lists",
	"Questions Addressed": "Add FAQ section",
	"Meta Description":    "Write compelling meta description",
	"Citations & Sources": "Add external reference links",
	"Date Information":    "Add publication and update dates",
	"Content Length":      "Expand content with more detail",
	"Images":              "Add descriptive alt text",
	"Trust Signals":       "Add contact and about pages",
	"Expertise Signals":   "Highlight credentials and experience",
	"Facts & Statistics":  "Include specific data and numbers",
	"Named Entities":      "Reference specific tools and concepts",
	"Comparisons":         "Add comparison sections",
	"Reading Complexity":  "Simplify complex sentences",
	"Active Voice":        "Rewrite passive sentences",
}

// OverallScore combines the four category percentages into the weighted
// 0-100 AI visibility score.
func OverallScore(scores models.CategoryScores) int {
	sum := float64(scores.Readability.Percentage)*categoryWeights["readability"] +
		float64(scores.Structure.Percentage)*categoryWeights["structure"] +
		float64(scores.Entities.Percentage)*categoryWeights["entities"] +
		float64(scores.Sources.Percentage)*categoryWeights["sources"]
	return int(math.Round(sum))
}

// GenerateInsights derives a ranked, capped list of actionable insights
// from the category scores and the extraction. Deterministic for a given
// input: categories are walked in fixed order and the sort is stable.
func GenerateInsights(scores models.CategoryScores, extraction *extractor.ExtractionResult) []models.Insight {
	var insights []models.Insight

	categories := []struct {
		key    string
		detail models.ScoreDetail
	}{
		{"readability", scores.Readability},
		{"structure", scores.Structure},
		{"entities", scores.Entities},
		{"sources", scores.Sources},
	}

	for _, category := range categories {
		for _, factor := range category.detail.Factors {
			if factor.Impact == models.ImpactNegative && factor.Suggestion != "" {
				insights = append(insights, models.Insight{
					Type:        models.InsightImprovement,
					Category:    category.key,
					Title:       "Improve " + factor.Name,
					Description: factor.Suggestion,
					Impact:      determineImpact(factor.Name, category.detail.Percentage),
					Action:      factorActions[factor.Name],
				})
			}
		}

		if category.detail.Percentage >= 80 {
			if first, ok := firstPositiveFactor(category.detail); ok {
				label := categoryLabels[category.key]
				insights = append(insights, models.Insight{
					Type:     models.InsightSuccess,
					Category: category.key,
					Title:    "Strong " + label,
					Description: fmt.Sprintf("Your %s is excellent. %s is particularly strong.",
						strings.ToLower(label), first.Name),
					Impact: models.ImpactLow,
				})
			}
		}

		if category.detail.Percentage >= 40 && category.detail.Percentage < 60 {
			label := categoryLabels[category.key]
			insights = append(insights, models.Insight{
				Type:     models.InsightWarning,
				Category: category.key,
				Title:    label + " needs attention",
				Description: fmt.Sprintf("Your %s score is borderline. Small improvements can have big impact.",
					strings.ToLower(label)),
				Impact: models.ImpactMedium,
			})
		}
	}

	insights = addContentSpecificInsights(insights, extraction)

	typeOrder := map[string]int{
		models.InsightImprovement: 0,
		models.InsightWarning:     1,
		models.InsightSuccess:     2,
	}
	impactOrder := map[string]int{
		models.ImpactHigh:   0,
		models.ImpactMedium: 1,
		models.ImpactLow:    2,
	}
	sort.SliceStable(insights, func(i, j int) bool {
		if typeOrder[insights[i].Type] != typeOrder[insights[j].Type] {
			return typeOrder[insights[i].Type] < typeOrder[insights[j].Type]
		}
		return impactOrder[insights[i].Impact] < impactOrder[insights[j].Impact]
	})

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

func determineImpact(factorName string, categoryPercentage int) string {
	if _, ok := highImpactFactors[factorName]; ok && categoryPercentage < 60 {
		return models.ImpactHigh
	}
	if _, ok := mediumImpactFactors[factorName]; ok {
		return models.ImpactMedium
	}
	return models.ImpactLow
}

func firstPositiveFactor(detail models.ScoreDetail) (models.ScoreFactor, bool) {
	for _, factor := range detail.Factors {
		if factor.Impact == models.ImpactPositive {
			return factor, true
		}
	}
	return models.ScoreFactor{}, false
}

// addContentSpecificInsights prepends high-impact recommendations for the
// worst offenders: no schema markup, thin content, missing author. Each
// is added only when no equivalent insight already exists.
func addContentSpecificInsights(insights []models.Insight, extraction *extractor.ExtractionResult) []models.Insight {
	if !extraction.Metadata.HasSchema && !hasInsightTitled(insights, "Schema") {
		insights = prepend(insights, models.Insight{
			Type:     models.InsightImprovement,
			Category: "structure",
			Title:    "Add Schema Markup",
			Description: "Schema.org structured data is critical for AI search engines. " +
				"Add FAQ, Article, or HowTo schema.",
			Impact: models.ImpactHigh,
			Action: "Implement JSON-LD structured data",
		})
	}

	if extraction.Content.WordCount < 500 {
		insights = prepend(insights, models.Insight{
			Type:     models.InsightImprovement,
			Category: "readability",
			Title:    "Expand Content",
			Description: fmt.Sprintf("At %d words, your content may be too thin. "+
				"AI engines prefer comprehensive coverage of topics.", extraction.Content.WordCount),
			Impact: models.ImpactHigh,
			Action: "Add more detailed information (target 1500+ words)",
		})
	}

	if extraction.Metadata.Author == "" && !hasInsightTitled(insights, "Author") {
		insights = prepend(insights, models.Insight{
			Type:     models.InsightImprovement,
			Category: "sources",
			Title:    "Add Author Attribution",
			Description: "Author information is a key E-E-A-T signal. " +
				"AI engines trust content with clear authorship.",
			Impact: models.ImpactHigh,
			Action: "Add author name, bio, and credentials",
		})
	}

	return insights
}

func hasInsightTitled(insights []models.Insight, fragment string) bool {
	for _, insight := range insights {
		if strings.Contains(insight.Title, fragment) {
			return true
		}
	}
	return false
}

func prepend(insights []models.Insight, insight models.Insight) []models.Insight {
	return append([]models.Insight{insight}, insights...)
}
