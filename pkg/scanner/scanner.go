// Package scanner composes the scan pipeline: fetch, extract, four
// concurrent analyzers, score aggregation, and insight generation.
package scanner

import (
	"context"
	"sync"
	"time"

	"github.com/geokit/geokit/models"
	"github.com/geokit/geokit/pkg/analytics"
	"github.com/geokit/geokit/pkg/analyzers"
	"github.com/geokit/geokit/pkg/extractor"
	"github.com/geokit/geokit/pkg/fetcher"
)

// topKeywordCount is how many ranked keywords a scan result carries.
const topKeywordCount = 10

// Fetcher is the page-retrieval dependency of a Scanner.
type Fetcher interface {
	FetchPage(ctx context.Context, url string) (*models.FetchedPage, error)
}

// Scanner runs complete scans of single URLs. Scans of different URLs
// are independent and may run concurrently; the Scanner itself holds no
// mutable state.
type Scanner struct {
	fetcher Fetcher
	now     func() time.Time
}

// New returns a Scanner backed by the default fetcher.
func New() *Scanner {
	return NewWithFetcher(fetcher.NewFetcher())
}

// NewWithFetcher returns a Scanner using the given fetcher.
func NewWithFetcher(f Fetcher) *Scanner {
	return &Scanner{
		fetcher: f,
		now:     time.Now,
	}
}

// Scan normalizes inputURL, fetches it, and runs the full analysis
// pipeline. It fails only on fetch errors (*fetcher.FetchError); once the
// HTML is retrieved the remaining stages always complete.
func (s *Scanner) Scan(ctx context.Context, inputURL string) (*models.ScanResult, error) {
	url, err := fetcher.NormalizeURL(inputURL)
	if err != nil {
		return nil, &fetcher.FetchError{Message: err.Error(), URL: inputURL}
	}

	page, err := s.fetcher.FetchPage(ctx, url)
	if err != nil {
		return nil, err
	}

	finalURL := url
	if page.RedirectedURL != "" {
		finalURL = page.RedirectedURL
	}

	extraction := extractor.Extract(page.HTML, finalURL)

	// The analyzers are pure functions of the extraction and only read
	// the shared document, so they run concurrently without locks.
	// Sequential execution would be equally correct.
	var scores models.CategoryScores
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		scores.Readability = analyzers.AnalyzeReadability(extraction)
	}()
	go func() {
		defer wg.Done()
		scores.Structure = analyzers.AnalyzeStructure(extraction)
	}()
	go func() {
		defer wg.Done()
		scores.Entities = analyzers.AnalyzeEntities(extraction)
	}()
	go func() {
		defer wg.Done()
		scores.Sources = analyzers.AnalyzeSources(extraction)
	}()
	wg.Wait()

	return &models.ScanResult{
		URL:          finalURL,
		Title:        extraction.Title,
		Description:  extraction.Description,
		Content:      extraction.Content,
		Scores:       scores,
		OverallScore: analyzers.OverallScore(scores),
		Insights:     analyzers.GenerateInsights(scores, extraction),
		Metadata:     extraction.Metadata,
		TopKeywords:  analytics.TopKeywords(extraction.Content.Text, topKeywordCount),
		ScannedAt:    s.now(),
	}, nil
}
