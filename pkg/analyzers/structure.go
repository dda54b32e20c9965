package analyzers

import (
	"fmt"
	"strings"

	"github.com/geokit/geokit/models"
	"github.com/geokit/geokit/pkg/extractor"
)

// AnalyzeStructure scores how well-organized the markup is for machine
// parsing: heading hierarchy (25), lists (20), schema markup (25),
// images (15), and the meta description (15).
func AnalyzeStructure(extraction *extractor.ExtractionResult) models.ScoreDetail {
	var factors []models.ScoreFactor
	score := 0

	// Heading hierarchy.
	headings := extractor.Headings(extraction.Doc)
	var h1Count, h2Count, h3Count int
	for _, h := range headings {
		switch h.Level {
		case 1:
			h1Count++
		case 2:
			h2Count++
		case 3:
			h3Count++
		}
	}

	switch {
	case h1Count == 1 && h2Count >= 2:
		score += 25
		factors = append(factors, models.ScoreFactor{
			Name:   "Heading Structure",
			Value:  fmt.Sprintf("1 H1, %d H2s, %d H3s", h2Count, h3Count),
			Impact: models.ImpactPositive,
		})
	case h1Count == 1 && h2Count >= 1:
		score += 18
		factors = append(factors, models.ScoreFactor{
			Name:       "Heading Structure",
			Value:      fmt.Sprintf("1 H1, %d H2s", h2Count),
			Impact:     models.ImpactNeutral,
			Suggestion: "Add more H2 subheadings to organize content",
		})
	case h1Count == 0:
		score += 5
		factors = append(factors, models.ScoreFactor{
			Name:       "Heading Structure",
			Value:      "Missing H1",
			Impact:     models.ImpactNegative,
			Suggestion: "Add a clear H1 heading to define the page topic",
		})
	case h1Count > 1:
		score += 10
		factors = append(factors, models.ScoreFactor{
			Name:       "Heading Structure",
			Value:      fmt.Sprintf("%d H1s (should be 1)", h1Count),
			Impact:     models.ImpactNegative,
			Suggestion: "Use only one H1 per page",
		})
	default:
		score += 12
		factors = append(factors, models.ScoreFactor{
			Name:       "Heading Structure",
			Value:      fmt.Sprintf("%d H1, %d H2s", h1Count, h2Count),
			Impact:     models.ImpactNeutral,
			Suggestion: "Add subheadings to improve content hierarchy",
		})
	}

	// Lists.
	lists := extractor.Lists(extraction.Doc)
	listCount := lists.Ordered + lists.Unordered
	switch {
	case lists.TotalItems >= 10:
		score += 20
		factors = append(factors, models.ScoreFactor{
			Name:   "Lists",
			Value:  fmt.Sprintf("%d lists, %d items", listCount, lists.TotalItems),
			Impact: models.ImpactPositive,
		})
	case lists.TotalItems >= 3:
		score += 15
		factors = append(factors, models.ScoreFactor{
			Name:       "Lists",
			Value:      fmt.Sprintf("%d lists, %d items", listCount, lists.TotalItems),
			Impact:     models.ImpactNeutral,
			Suggestion: "AI engines love structured lists. Consider adding more.",
		})
	case lists.TotalItems > 0:
		score += 8
		factors = append(factors, models.ScoreFactor{
			Name:       "Lists",
			Value:      fmt.Sprintf("%d items", lists.TotalItems),
			Impact:     models.ImpactNeutral,
			Suggestion: "Add bullet points or numbered lists for key information",
		})
	default:
		factors = append(factors, models.ScoreFactor{
			Name:       "Lists",
			Value:      "None",
			Impact:     models.ImpactNegative,
			Suggestion: "Add lists to highlight key points - AI engines extract these easily",
		})
	}

	// Schema.org markup.
	metadata := extraction.Metadata
	switch {
	case metadata.HasSchema && len(metadata.SchemaTypes) >= 2:
		score += 25
		factors = append(factors, models.ScoreFactor{
			Name:   "Schema Markup",
			Value:  strings.Join(metadata.SchemaTypes, ", "),
			Impact: models.ImpactPositive,
		})
	case metadata.HasSchema:
		value := strings.Join(metadata.SchemaTypes, ", ")
		if value == "" {
			value = "Present"
		}
		score += 18
		factors = append(factors, models.ScoreFactor{
			Name:       "Schema Markup",
			Value:      value,
			Impact:     models.ImpactNeutral,
			Suggestion: "Add more schema types (FAQ, HowTo, Article) for richer AI understanding",
		})
	default:
		factors = append(factors, models.ScoreFactor{
			Name:       "Schema Markup",
			Value:      "None",
			Impact:     models.ImpactNegative,
			Suggestion: "Add JSON-LD schema markup - critical for AI visibility",
		})
	}

	// Images with alt text.
	images := extractor.Images(extraction.Doc)
	switch {
	case images.Total == 0:
		score += 8
		factors = append(factors, models.ScoreFactor{
			Name:       "Images",
			Value:      "No images",
			Impact:     models.ImpactNeutral,
			Suggestion: "Consider adding relevant images with descriptive alt text",
		})
	case images.WithoutAlt == 0 && images.Total >= 2:
		score += 15
		factors = append(factors, models.ScoreFactor{
			Name:   "Images",
			Value:  fmt.Sprintf("%d images, all with alt text", images.Total),
			Impact: models.ImpactPositive,
		})
	case images.WithAlt > images.WithoutAlt:
		score += 10
		factors = append(factors, models.ScoreFactor{
			Name:       "Images",
			Value:      fmt.Sprintf("%d/%d have alt text", images.WithAlt, images.Total),
			Impact:     models.ImpactNeutral,
			Suggestion: fmt.Sprintf("Add alt text to %d images", images.WithoutAlt),
		})
	default:
		score += 5
		factors = append(factors, models.ScoreFactor{
			Name:       "Images",
			Value:      fmt.Sprintf("%d/%d missing alt text", images.WithoutAlt, images.Total),
			Impact:     models.ImpactNegative,
			Suggestion: "Add descriptive alt text to all images",
		})
	}

	// Meta description.
	description := extraction.Description
	switch {
	case len(description) >= 120:
		score += 15
		factors = append(factors, models.ScoreFactor{
			Name:   "Meta Description",
			Value:  fmt.Sprintf("%d chars", len(description)),
			Impact: models.ImpactPositive,
		})
	case len(description) >= 50:
		score += 10
		factors = append(factors, models.ScoreFactor{
			Name:       "Meta Description",
			Value:      fmt.Sprintf("%d chars", len(description)),
			Impact:     models.ImpactNeutral,
			Suggestion: "Expand meta description to 120-160 characters",
		})
	case description != "":
		score += 5
		factors = append(factors, models.ScoreFactor{
			Name:       "Meta Description",
			Value:      "Too short",
			Impact:     models.ImpactNegative,
			Suggestion: "Write a compelling meta description (120-160 chars)",
		})
	default:
		factors = append(factors, models.ScoreFactor{
			Name:       "Meta Description",
			Value:      "Missing",
			Impact:     models.ImpactNegative,
			Suggestion: "Add a meta description summarizing the page content",
		})
	}

	return newDetail(score, "How well-organized your content is for AI parsing", factors)
}
