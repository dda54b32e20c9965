package extractor

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Heading is one h1-h6 element with non-empty text, in document order.
type Heading struct {
	Level int
	Text  string
}

// Headings returns every heading in the document, tagged with its level.
func Headings(doc *goquery.Document) []Heading {
	var headings []Heading
	doc.Find("h1,h2,h3,h4,h5,h6").Each(func(_ int, s *goquery.Selection) {
		text := normalizeText(s.Text())
		if text == "" {
			return
		}
		tag := goquery.NodeName(s)
		headings = append(headings, Heading{
			Level: int(tag[1] - '0'),
			Text:  text,
		})
	})
	return headings
}

// ListStats counts list elements and their items.
type ListStats struct {
	Ordered    int
	Unordered  int
	TotalItems int
}

// Lists counts ol/ul elements and li items in the document.
func Lists(doc *goquery.Document) ListStats {
	return ListStats{
		Ordered:    doc.Find("ol").Length(),
		Unordered:  doc.Find("ul").Length(),
		TotalItems: doc.Find("li").Length(),
	}
}

// LinkStats classifies anchors as internal or external relative to the
// page host.
type LinkStats struct {
	Internal int
	External int
	Total    int
}

// Links classifies every a[href] in the document against baseURL.
// Fragment-only and javascript: hrefs are skipped; malformed hrefs count
// as internal.
func Links(doc *goquery.Document, baseURL string) LinkStats {
	stats := LinkStats{}

	base, err := url.Parse(baseURL)
	if err != nil || base.Hostname() == "" {
		return stats
	}
	baseHost := base.Hostname()

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			stats.Internal++
			return
		}
		resolved := base.ResolveReference(ref)
		if resolved.Hostname() == baseHost {
			stats.Internal++
		} else {
			stats.External++
		}
	})

	stats.Total = stats.Internal + stats.External
	return stats
}

// ImageStats counts images by alt-text presence.
type ImageStats struct {
	Total      int
	WithAlt    int
	WithoutAlt int
}

// Images counts img elements with and without non-empty alt text.
func Images(doc *goquery.Document) ImageStats {
	stats := ImageStats{}
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		alt, _ := s.Attr("alt")
		if strings.TrimSpace(alt) != "" {
			stats.WithAlt++
		} else {
			stats.WithoutAlt++
		}
	})
	stats.Total = stats.WithAlt + stats.WithoutAlt
	return stats
}
