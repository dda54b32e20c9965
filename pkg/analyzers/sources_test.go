package analyzers

import (
	"testing"

	"github.com/geokit/geokit/models"
	"github.com/geokit/geokit/pkg/extractor"
)

const credibleArticleHTML = `<html><head>
	<title>Widget Security Review</title>
	<meta name="author" content="Jane Smith">
	<meta property="article:published_time" content="2024-01-15T10:00:00Z">
	<meta property="article:modified_time" content="2024-03-01T09:00:00Z">
</head><body>
	<p>Written by Jane Smith, security specialist.</p>
	<p>According to the vendor advisory, the flaw is severe.
	According to independent researchers, exploitation is rare.</p>
	<a href="https://nvd.nist.gov/vuln">NVD</a>
	<a href="https://owasp.org/top10">OWASP</a>
	<a href="https://cve.mitre.org">MITRE</a>
	<a href="https://security.example.org/advisory">Advisory</a>
	<a href="https://research.example.net/paper">Paper</a>
</body></html>`

func TestAnalyzeSources_CredibleArticle(t *testing.T) {
	extraction := extractor.Extract(credibleArticleHTML, "https://example.com/review")
	detail := AnalyzeSources(extraction)

	author := factorByName(t, detail, "Author Info")
	if author.Impact != models.ImpactPositive {
		t.Errorf("author impact = %q, want positive (byline context present)", author.Impact)
	}
	if author.Value != "Jane Smith" {
		t.Errorf("author value = %q", author.Value)
	}

	dates := factorByName(t, detail, "Date Information")
	if dates.Value != "Published & Updated dates" {
		t.Errorf("dates value = %q", dates.Value)
	}

	citations := factorByName(t, detail, "Citations & Sources")
	if citations.Impact != models.ImpactPositive {
		t.Errorf("citations impact = %q, want positive for 5 external links and 2 citations", citations.Impact)
	}

	// Author (25) + dates (20) + citations (25) alone clear 70.
	if detail.Score < 70 {
		t.Errorf("Score = %d, want >= 70; factors %+v", detail.Score, detail.Factors)
	}
}

func TestAnalyzeSources_AuthorWithoutBylineContext(t *testing.T) {
	// Metadata carries a name but the markup has no byline wording
	// near the top, so the factor drops to the neutral bucket.
	extraction := extractor.Extract(`<html><head><title>Page</title></head><body><p>text</p></body></html>`, "https://example.com")
	extraction.Metadata.Author = "Jane Smith"

	detail := AnalyzeSources(extraction)
	author := factorByName(t, detail, "Author Info")
	if author.Impact != models.ImpactNeutral {
		t.Errorf("author impact = %q, want neutral", author.Impact)
	}
}

func TestAnalyzeSources_BylinePatternIsCaseSensitive(t *testing.T) {
	// "by jane" in otherwise bare markup does not count as byline
	// context; "by Jane" does.
	lower := extractor.Extract(`<html><body><p>posted by jane</p></body></html>`, "https://example.com")
	lower.Metadata.Author = "Jane"
	upper := extractor.Extract(`<html><body><p>posted by Jane</p></body></html>`, "https://example.com")
	upper.Metadata.Author = "Jane"

	lowerImpact := factorByName(t, AnalyzeSources(lower), "Author Info").Impact
	upperImpact := factorByName(t, AnalyzeSources(upper), "Author Info").Impact

	if lowerImpact != models.ImpactNeutral {
		t.Errorf("lowercase byline impact = %q, want neutral", lowerImpact)
	}
	if upperImpact != models.ImpactPositive {
		t.Errorf("capitalized byline impact = %q, want positive", upperImpact)
	}
}

func TestAnalyzeSources_DateBuckets(t *testing.T) {
	tests := []struct {
		name      string
		head      string
		wantValue string
	}{
		{
			name:      "publish only",
			head:      `<meta property="article:published_time" content="2024-01-15T10:00:00Z">`,
			wantValue: "Published date only",
		},
		{
			name:      "modified only",
			head:      `<meta property="article:modified_time" content="2024-01-15T10:00:00Z">`,
			wantValue: "Updated date only",
		},
		{
			name:      "no dates",
			head:      ``,
			wantValue: "Missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := "<html><head>" + tt.head + "</head><body><p>x</p></body></html>"
			detail := AnalyzeSources(extractor.Extract(html, "https://example.com"))
			factor := factorByName(t, detail, "Date Information")
			if factor.Value != tt.wantValue {
				t.Errorf("dates value = %q, want %q", factor.Value, tt.wantValue)
			}
		})
	}
}

func TestAnalyzeSources_TrustSignals(t *testing.T) {
	html := `<html><body>
		<a href="mailto:team@example.com">Email us</a>
		<a href="/privacy">Privacy Policy</a>
		<a href="/about">About</a>
	</body></html>`

	detail := AnalyzeSources(extractor.Extract(html, "https://example.com"))
	factor := factorByName(t, detail, "Trust Signals")
	if factor.Value != "4/4 signals present" {
		t.Errorf("trust value = %q, want 4/4 signals present", factor.Value)
	}
	if factor.Impact != models.ImpactPositive {
		t.Errorf("trust impact = %q, want positive", factor.Impact)
	}
}
