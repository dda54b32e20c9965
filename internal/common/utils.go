package common

import (
	"regexp"
	"strings"

	"github.com/geokit/geokit/pkg/fetcher"
)

var markdownLinkRe = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// SanitizeURL cleans up common copy-paste artifacts around a URL:
// surrounding whitespace, markdown link syntax, and stray punctuation.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	// "[text](https://example.com)" -> "https://example.com"
	if m := markdownLinkRe.FindStringSubmatch(cleaned); len(m) > 1 {
		cleaned = m[1]
	}

	for _, ch := range []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"} {
		cleaned = strings.TrimSuffix(cleaned, ch)
	}
	for _, ch := range []string{"(", "[", "<", "\"", "'"} {
		cleaned = strings.TrimPrefix(cleaned, ch)
	}

	return strings.TrimSpace(cleaned)
}

// SanitizeAndValidateURLs sanitizes each input URL and splits the batch into
// scannable URLs and rejects. A scheme is optional on input; validation is
// delegated to the fetcher so the CLI accepts exactly what Scan accepts.
func SanitizeAndValidateURLs(urls []string) (valid []string, invalid []string) {
	valid = make([]string, 0, len(urls))

	for _, rawURL := range urls {
		cleaned := SanitizeURL(rawURL)
		if cleaned == "" || strings.Contains(cleaned, " ") {
			invalid = append(invalid, rawURL)
			continue
		}
		if !fetcher.IsValidURL(cleaned) {
			invalid = append(invalid, rawURL)
			continue
		}
		valid = append(valid, cleaned)
	}

	return valid, invalid
}
