// Package extractor parses raw HTML into a structured representation:
// title, description, de-boilerplated main content, and page metadata.
// Extraction never fails; every step degrades to a safe default so a scan
// always completes once the fetch succeeded.
package extractor

import (
	"bufio"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	readability "github.com/go-shiori/go-readability"

	"github.com/geokit/geokit/models"
)

// readingSpeed is the words-per-minute rate used for reading time.
const readingSpeed = 200

// ExtractionResult bundles everything the analyzers need. Doc is the
// parsed document shared read-only across analyzers; it must not be
// mutated after Extract returns.
type ExtractionResult struct {
	URL         string
	Title       string
	Description string
	Content     models.ExtractedContent
	Metadata    models.PageMetadata
	RawHTML     string
	Doc         *goquery.Document
}

// Extract parses html fetched from pageURL. It always returns a usable
// result: missing pieces fall back to "Untitled", empty strings, and the
// raw document body.
func Extract(html, pageURL string) *ExtractionResult {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// The net/html parser accepts almost anything; an empty
		// document keeps the query helpers total.
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}

	title := normalizeText(doc.Find("title").First().Text())
	if title == "" {
		title, _ = doc.Find(`meta[property="og:title"]`).Attr("content")
		title = strings.TrimSpace(title)
	}
	if title == "" {
		title = normalizeText(doc.Find("h1").First().Text())
	}
	if title == "" {
		title = "Untitled"
	}

	description, _ := doc.Find(`meta[name="description"]`).Attr("content")
	if description == "" {
		description, _ = doc.Find(`meta[property="og:description"]`).Attr("content")
	}
	description = strings.TrimSpace(description)

	textContent, htmlContent := mainContent(html, pageURL, doc)

	words := strings.Fields(textContent)
	wordCount := len(words)
	readingTime := (wordCount + readingSpeed - 1) / readingSpeed

	content := models.ExtractedContent{
		Text:        strings.TrimSpace(textContent),
		HTML:        htmlContent,
		WordCount:   wordCount,
		ReadingTime: readingTime,
	}

	metadata := extractMetadata(doc, pageURL)
	if metadata.Language == "" {
		if code, confidence, ok := detectLanguage(content.Text); ok {
			metadata.Language = code
			metadata.LanguageConfidence = confidence
		}
	}

	return &ExtractionResult{
		URL:         pageURL,
		Title:       title,
		Description: description,
		Content:     content,
		Metadata:    metadata,
		RawHTML:     html,
		Doc:         doc,
	}
}

// mainContent runs a readability pass over the page and falls back to the
// document body when it yields no usable text.
func mainContent(html, pageURL string, doc *goquery.Document) (text, markup string) {
	parsedURL, err := url.Parse(pageURL)
	if err == nil {
		parser := readability.NewParser()
		article, parseErr := parser.Parse(strings.NewReader(html), parsedURL)
		if parseErr == nil && strings.TrimSpace(article.TextContent) != "" {
			return article.TextContent, article.Content
		}
	}

	body := doc.Find("body")
	text = body.Text()
	markup, _ = body.Html()
	return text, markup
}

func extractMetadata(doc *goquery.Document, pageURL string) models.PageMetadata {
	meta := models.PageMetadata{}

	favicon, _ := doc.Find(`link[rel="icon"]`).Attr("href")
	if favicon == "" {
		favicon, _ = doc.Find(`link[rel="shortcut icon"]`).Attr("href")
	}
	if favicon == "" {
		favicon, _ = doc.Find(`link[rel="apple-touch-icon"]`).Attr("href")
	}
	meta.Favicon = resolveURL(favicon, pageURL)

	ogImage, _ := doc.Find(`meta[property="og:image"]`).Attr("content")
	meta.OGImage = resolveURL(ogImage, pageURL)

	author, _ := doc.Find(`meta[name="author"]`).Attr("content")
	if author == "" {
		author, _ = doc.Find(`meta[property="article:author"]`).Attr("content")
	}
	if author == "" {
		author = normalizeText(doc.Find(`[rel="author"]`).First().Text())
	}
	meta.Author = strings.TrimSpace(author)

	publishDate, _ := doc.Find(`meta[property="article:published_time"]`).Attr("content")
	if publishDate == "" {
		publishDate, _ = doc.Find(`meta[name="publish-date"]`).Attr("content")
	}
	if publishDate == "" {
		publishDate, _ = doc.Find("time[datetime]").Attr("datetime")
	}
	meta.PublishDate = normalizeDate(publishDate)

	modifiedDate, _ := doc.Find(`meta[property="article:modified_time"]`).Attr("content")
	if modifiedDate == "" {
		modifiedDate, _ = doc.Find(`meta[name="last-modified"]`).Attr("content")
	}
	meta.ModifiedDate = normalizeDate(modifiedDate)

	language, _ := doc.Find("html").Attr("lang")
	if language == "" {
		language, _ = doc.Find(`meta[http-equiv="content-language"]`).Attr("content")
	}
	meta.Language = strings.TrimSpace(language)

	meta.SchemaTypes = extractSchemaTypes(doc)
	meta.HasSchema = len(meta.SchemaTypes) > 0

	return meta
}

// extractSchemaTypes collects every @type value across all JSON-LD blocks.
// Malformed blocks are skipped, not fatal. The returned slice is
// deduplicated in first-seen order.
func extractSchemaTypes(doc *goquery.Document) []string {
	var types []string
	seen := make(map[string]struct{})

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var parsed interface{}
		if err := json.Unmarshal([]byte(s.Text()), &parsed); err != nil {
			return
		}

		docs, ok := parsed.([]interface{})
		if !ok {
			docs = []interface{}{parsed}
		}

		for _, entry := range docs {
			obj, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			for _, typ := range schemaTypeValues(obj["@type"]) {
				if _, dup := seen[typ]; dup {
					continue
				}
				seen[typ] = struct{}{}
				types = append(types, typ)
			}
		}
	})

	return types
}

// schemaTypeValues flattens an @type value, which may be a string or an
// array of strings.
func schemaTypeValues(value interface{}) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []interface{}:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// resolveURL resolves ref against base when ref is relative. An
// unresolvable reference yields an empty string.
func resolveURL(ref, base string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return baseURL.ResolveReference(refURL).String()
}

// normalizeDate reparses a raw date string into RFC 3339. Unparsable
// values pass through untouched so no metadata is lost.
func normalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	parsed, err := dateparse.ParseAny(raw)
	if err != nil {
		return raw
	}
	return parsed.Format("2006-01-02T15:04:05Z07:00")
}

// normalizeText collapses a multi-line string into single-space-separated
// trimmed text.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
