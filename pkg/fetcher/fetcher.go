// Package fetcher retrieves raw HTML for a URL with timeout, header,
// and redirect handling. A failed fetch is terminal: there are no retries.
package fetcher

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/geokit/geokit/models"
)

const (
	userAgent = "Mozilla/5.0 (compatible; GeoKitBot/1.0; +https://geokit.dev/bot)"

	// DefaultTimeout is the wall-clock budget for a single fetch,
	// measured from request start. The in-flight request is cancelled
	// when it elapses.
	DefaultTimeout = 10 * time.Second
)

// FetchError is the single structured error surfaced for any fetch
// failure: bad status, non-HTML content, timeout, or transport error.
// StatusCode is zero when no HTTP response was received.
type FetchError struct {
	Message    string
	StatusCode int
	URL        string
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Message, e.StatusCode, e.URL)
	}
	return fmt.Sprintf("%s: %s", e.Message, e.URL)
}

// Fetcher performs single-shot page fetches with a shared HTTP client.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// NewFetcher returns a Fetcher with the default 10s timeout.
func NewFetcher() *Fetcher {
	return NewFetcherWithTimeout(DefaultTimeout)
}

// NewFetcherWithTimeout returns a Fetcher with a custom timeout.
// Redirects are followed automatically by the underlying client.
func NewFetcherWithTimeout(timeout time.Duration) *Fetcher {
	return &Fetcher{
		timeout: timeout,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchPage performs one GET against rawURL and returns the raw page.
// It fails with *FetchError on non-2xx status, non-HTML content type,
// timeout, and transport errors.
func (f *Fetcher) FetchPage(ctx context.Context, rawURL string) (*models.FetchedPage, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{Message: fmt.Sprintf("invalid request: %v", err), URL: rawURL}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Accept-Encoding", "gzip, deflate")

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &FetchError{Message: "request timed out", URL: rawURL}
		}
		return nil, &FetchError{Message: fmt.Sprintf("failed to fetch: %v", err), URL: rawURL}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			Message:    fmt.Sprintf("failed to fetch page: %s", resp.Status),
			StatusCode: resp.StatusCode,
			URL:        rawURL,
		}
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "text/html") && !strings.Contains(contentType, "application/xhtml+xml") {
		return nil, &FetchError{
			Message:    "URL does not return HTML content",
			StatusCode: resp.StatusCode,
			URL:        rawURL,
		}
	}

	// Setting Accept-Encoding ourselves turns off the transport's
	// transparent decompression, so the body arrives as sent.
	reader, err := decodeBody(resp.Body, resp.Header.Get("Content-Encoding"))
	if err != nil {
		return nil, &FetchError{Message: fmt.Sprintf("failed to decompress response body: %v", err), URL: rawURL}
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		if isTimeout(err) {
			return nil, &FetchError{Message: "request timed out", URL: rawURL}
		}
		return nil, &FetchError{Message: fmt.Sprintf("failed to read response body: %v", err), URL: rawURL}
	}

	headers := make(map[string]string, len(resp.Header))
	for key := range resp.Header {
		headers[strings.ToLower(key)] = resp.Header.Get(key)
	}

	page := &models.FetchedPage{
		URL:        rawURL,
		HTML:       string(body),
		StatusCode: resp.StatusCode,
		Headers:    headers,
	}

	// resp.Request belongs to the final hop of the redirect chain.
	if finalURL := resp.Request.URL.String(); finalURL != rawURL {
		page.RedirectedURL = finalURL
	}

	return page, nil
}

// decodeBody wraps body according to the response Content-Encoding.
func decodeBody(body io.ReadCloser, encoding string) (io.ReadCloser, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "gzip":
		gz, err := gzip.NewReader(body)
		if err != nil {
			return nil, err
		}
		return gz, nil
	case "deflate":
		return flate.NewReader(body), nil
	default:
		return body, nil
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// NormalizeURL prepends https:// when no scheme is present and strips a
// bare trailing slash. It fails when the result is not an absolute URL.
func NormalizeURL(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	lower := strings.ToLower(trimmed)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", input, err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return "", fmt.Errorf("invalid URL %q: not an absolute URL", input)
	}

	normalized := parsed.String()
	if parsed.Path == "/" && parsed.RawQuery == "" && parsed.Fragment == "" {
		normalized = strings.TrimSuffix(normalized, "/")
	}
	return normalized, nil
}

// IsValidURL reports whether input normalizes to a URL whose host looks
// like a real domain (contains a dot).
func IsValidURL(input string) bool {
	normalized, err := NormalizeURL(input)
	if err != nil {
		return false
	}
	parsed, err := url.Parse(normalized)
	if err != nil {
		return false
	}
	return strings.Contains(parsed.Hostname(), ".")
}
