package analyzers

import (
	"fmt"
	"regexp"

	"github.com/geokit/geokit/models"
	"github.com/geokit/geokit/pkg/extractor"
)

var (
	// The "by Name" pattern is deliberately case-sensitive; the rest
	// are not.
	authorBioRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)author`),
		regexp.MustCompile(`(?i)written by`),
		regexp.MustCompile(`by\s+[A-Z][a-z]+`),
		regexp.MustCompile(`(?i)expert`),
		regexp.MustCompile(`(?i)specialist`),
	}

	citationRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)according to`),
		regexp.MustCompile(`(?i)research by`),
		regexp.MustCompile(`(?i)study by`),
		regexp.MustCompile(`(?i)source:`),
		regexp.MustCompile(`\[\d+\]`),
		regexp.MustCompile(`\(\d{4}\)`),
	}

	contactRe = regexp.MustCompile(`(?i)contact|email|phone|address`)
	privacyRe = regexp.MustCompile(`(?i)privacy`)
	aboutRe   = regexp.MustCompile(`(?i)about`)

	expertiseRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)years of experience`),
		regexp.MustCompile(`(?i)certified`),
		regexp.MustCompile(`(?i)licensed`),
		regexp.MustCompile(`(?i)expert`),
		regexp.MustCompile(`(?i)professional`),
		regexp.MustCompile(`(?i)specialist`),
		regexp.MustCompile(`(?i)PhD|Ph\.D\.|doctorate`),
		regexp.MustCompile(`(?i)MD|M\.D\.`),
		regexp.MustCompile(`(?i)award`),
		regexp.MustCompile(`(?i)recognized`),
	}
)

// authorContextWindow bounds how much of the raw HTML head is searched
// for byline context.
const authorContextWindow = 5000

// AnalyzeSources scores E-E-A-T-style credibility signals: author info
// (25), date completeness (20), citations (25), trust signals (15), and
// expertise indicators (15).
func AnalyzeSources(extraction *extractor.ExtractionResult) models.ScoreDetail {
	metadata := extraction.Metadata
	text := extraction.Content.Text
	var factors []models.ScoreFactor
	score := 0

	// Author information, with byline context searched near the top of
	// the raw markup.
	if metadata.Author != "" {
		head := extraction.RawHTML
		if len(head) > authorContextWindow {
			head = head[:authorContextWindow]
		}
		if anyMatch(authorBioRes, head) {
			score += 25
			factors = append(factors, models.ScoreFactor{
				Name: "Author Info", Value: metadata.Author, Impact: models.ImpactPositive,
			})
		} else {
			score += 18
			factors = append(factors, models.ScoreFactor{
				Name: "Author Info", Value: metadata.Author, Impact: models.ImpactNeutral,
				Suggestion: "Add author bio/credentials to boost credibility",
			})
		}
	} else {
		factors = append(factors, models.ScoreFactor{
			Name: "Author Info", Value: "Missing", Impact: models.ImpactNegative,
			Suggestion: "Add author name and credentials - critical for E-E-A-T",
		})
	}

	// Publication and update dates.
	hasPublish := metadata.PublishDate != ""
	hasModified := metadata.ModifiedDate != ""
	switch {
	case hasPublish && hasModified:
		score += 20
		factors = append(factors, models.ScoreFactor{
			Name: "Date Information", Value: "Published & Updated dates", Impact: models.ImpactPositive,
		})
	case hasPublish || hasModified:
		value := "Published date only"
		if !hasPublish {
			value = "Updated date only"
		}
		score += 12
		factors = append(factors, models.ScoreFactor{
			Name: "Date Information", Value: value, Impact: models.ImpactNeutral,
			Suggestion: "Add both publication and last-updated dates",
		})
	default:
		factors = append(factors, models.ScoreFactor{
			Name: "Date Information", Value: "Missing", Impact: models.ImpactNegative,
			Suggestion: "Add visible publication and update dates",
		})
	}

	// External references and citation phrases.
	links := extractor.Links(extraction.Doc, extraction.URL)
	citationCount := countMatches(citationRes, text)
	switch {
	case links.External >= 5 && citationCount >= 2:
		score += 25
		factors = append(factors, models.ScoreFactor{
			Name:   "Citations & Sources",
			Value:  fmt.Sprintf("%d external links, %d citations", links.External, citationCount),
			Impact: models.ImpactPositive,
		})
	case links.External >= 2 || citationCount >= 1:
		score += 15
		factors = append(factors, models.ScoreFactor{
			Name:       "Citations & Sources",
			Value:      fmt.Sprintf("%d links, %d citations", links.External, citationCount),
			Impact:     models.ImpactNeutral,
			Suggestion: "Add more external references to authoritative sources",
		})
	default:
		score += 5
		factors = append(factors, models.ScoreFactor{
			Name: "Citations & Sources", Value: "Minimal", Impact: models.ImpactNegative,
			Suggestion: "Link to authoritative sources - AI engines verify claims",
		})
	}

	// Trust signals: HTTPS (a given, the fetch succeeded), contact
	// info, a privacy link, and an about link.
	anchorText := extraction.Doc.Find("a").Text()
	trustScore := 1
	if contactRe.MatchString(extraction.RawHTML) || extraction.Doc.Find(`a[href^="mailto:"]`).Length() > 0 {
		trustScore++
	}
	if privacyRe.MatchString(anchorText) || extraction.Doc.Find(`a[href*="privacy"]`).Length() > 0 {
		trustScore++
	}
	if aboutRe.MatchString(anchorText) || extraction.Doc.Find(`a[href*="about"]`).Length() > 0 {
		trustScore++
	}

	switch {
	case trustScore >= 3:
		score += 15
		factors = append(factors, models.ScoreFactor{
			Name:   "Trust Signals",
			Value:  fmt.Sprintf("%d/4 signals present", trustScore),
			Impact: models.ImpactPositive,
		})
	case trustScore >= 2:
		score += 10
		factors = append(factors, models.ScoreFactor{
			Name:       "Trust Signals",
			Value:      fmt.Sprintf("%d/4 signals", trustScore),
			Impact:     models.ImpactNeutral,
			Suggestion: "Add contact info, about page, and privacy policy links",
		})
	default:
		score += 5
		factors = append(factors, models.ScoreFactor{
			Name:       "Trust Signals",
			Value:      fmt.Sprintf("%d/4 signals", trustScore),
			Impact:     models.ImpactNegative,
			Suggestion: "Add trust indicators: contact info, about page, privacy policy",
		})
	}

	// Expertise indicators.
	expertiseCount := countMatches(expertiseRes, text)
	switch {
	case expertiseCount >= 3:
		score += 15
		factors = append(factors, models.ScoreFactor{
			Name:   "Expertise Signals",
			Value:  fmt.Sprintf("%d credentials mentioned", expertiseCount),
			Impact: models.ImpactPositive,
		})
	case expertiseCount >= 1:
		score += 10
		factors = append(factors, models.ScoreFactor{
			Name:       "Expertise Signals",
			Value:      fmt.Sprintf("%d credentials", expertiseCount),
			Impact:     models.ImpactNeutral,
			Suggestion: "Highlight author credentials and experience",
		})
	default:
		score += 3
		factors = append(factors, models.ScoreFactor{
			Name:       "Expertise Signals",
			Value:      "None detected",
			Impact:     models.ImpactNegative,
			Suggestion: "Demonstrate expertise: certifications, experience, credentials",
		})
	}

	return newDetail(score, "Credibility signals that make AI trust your content", factors)
}
