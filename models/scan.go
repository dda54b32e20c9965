// Package models defines the data structures shared across the scan
// pipeline: fetched pages, extraction output, category scores, insights,
// and the final scan result.
package models

import "time"

// FetchedPage is the raw HTTP result of a single page fetch.
// Produced once per scan and consumed only by the extractor.
//
// Headers holds the response headers with lowercased names; wire order
// is not preserved (net/http surfaces headers as a map) and nothing
// downstream depends on it.
type FetchedPage struct {
	URL           string            `json:"url" yaml:"url"`
	HTML          string            `json:"html" yaml:"html"`
	StatusCode    int               `json:"status_code" yaml:"status_code"`
	Headers       map[string]string `json:"headers" yaml:"headers"`
	RedirectedURL string            `json:"redirected_url,omitempty" yaml:"redirected_url,omitempty"`
}

// ExtractedContent holds the de-boilerplated main content of a page.
type ExtractedContent struct {
	Text        string `json:"text" yaml:"text"`
	HTML        string `json:"html" yaml:"html"`
	WordCount   int    `json:"word_count" yaml:"word_count"`
	ReadingTime int    `json:"reading_time" yaml:"reading_time"` // minutes at 200 wpm
}

// PageMetadata carries document-level metadata queried from the full DOM.
type PageMetadata struct {
	Favicon      string   `json:"favicon,omitempty" yaml:"favicon,omitempty"`
	OGImage      string   `json:"og_image,omitempty" yaml:"og_image,omitempty"`
	Author       string   `json:"author,omitempty" yaml:"author,omitempty"`
	PublishDate  string   `json:"publish_date,omitempty" yaml:"publish_date,omitempty"`
	ModifiedDate string   `json:"modified_date,omitempty" yaml:"modified_date,omitempty"`
	Language     string   `json:"language,omitempty" yaml:"language,omitempty"`
	// LanguageConfidence is only set when the language was detected from
	// the text rather than declared in the markup.
	LanguageConfidence float64  `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
	HasSchema          bool     `json:"has_schema" yaml:"has_schema"`
	SchemaTypes        []string `json:"schema_types,omitempty" yaml:"schema_types,omitempty"`
}

// Impact classifies how a factor or insight affects the score.
const (
	ImpactPositive = "positive"
	ImpactNeutral  = "neutral"
	ImpactNegative = "negative"
)

// ScoreFactor is one named sub-criterion inside a category score.
type ScoreFactor struct {
	Name       string `json:"name" yaml:"name"`
	Value      string `json:"value" yaml:"value"`
	Impact     string `json:"impact" yaml:"impact"` // positive, neutral, negative
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// ScoreDetail is the full breakdown of one scoring category.
type ScoreDetail struct {
	Score       int           `json:"score" yaml:"score"`
	MaxScore    int           `json:"max_score" yaml:"max_score"`
	Percentage  int           `json:"percentage" yaml:"percentage"`
	Label       string        `json:"label" yaml:"label"`
	Description string        `json:"description" yaml:"description"`
	Factors     []ScoreFactor `json:"factors" yaml:"factors"`
}

// CategoryScores groups the four analyzer results.
type CategoryScores struct {
	Readability ScoreDetail `json:"readability" yaml:"readability"`
	Structure   ScoreDetail `json:"structure" yaml:"structure"`
	Entities    ScoreDetail `json:"entities" yaml:"entities"`
	Sources     ScoreDetail `json:"sources" yaml:"sources"`
}

// Insight types, ordered by display priority.
const (
	InsightImprovement = "improvement"
	InsightWarning     = "warning"
	InsightSuccess     = "success"
)

// Insight impact levels.
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// Insight is one ranked, actionable recommendation derived from a scan.
type Insight struct {
	Type        string `json:"type" yaml:"type"`         // improvement, warning, success
	Category    string `json:"category" yaml:"category"` // readability, structure, entities, sources
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Impact      string `json:"impact" yaml:"impact"` // high, medium, low
	Action      string `json:"action,omitempty" yaml:"action,omitempty"`
}

// ScanResult is the complete outcome of scanning a single URL. It is the
// only artifact the core hands to persistence and reporting.
type ScanResult struct {
	URL          string           `json:"url" yaml:"url"`
	Title        string           `json:"title" yaml:"title"`
	Description  string           `json:"description,omitempty" yaml:"description,omitempty"`
	Content      ExtractedContent `json:"content" yaml:"content"`
	Scores       CategoryScores   `json:"scores" yaml:"scores"`
	OverallScore int              `json:"overall_score" yaml:"overall_score"`
	Insights     []Insight        `json:"insights" yaml:"insights"`
	Metadata     PageMetadata     `json:"metadata" yaml:"metadata"`
	TopKeywords  []string         `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
	ScannedAt    time.Time        `json:"scanned_at" yaml:"scanned_at"`
}
