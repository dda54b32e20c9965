package fetcher

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchPage_Success(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body><h1>Hello</h1></body></html>"))
	}))
	defer server.Close()

	f := NewFetcher()
	page, err := f.FetchPage(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}

	if page.StatusCode != 200 {
		t.Errorf("StatusCode = %d, want 200", page.StatusCode)
	}
	if page.HTML == "" {
		t.Error("HTML is empty")
	}
	if page.RedirectedURL != "" {
		t.Errorf("RedirectedURL = %q, want empty for direct response", page.RedirectedURL)
	}
	if page.Headers["content-type"] != "text/html; charset=utf-8" {
		t.Errorf("headers not lowercased: %v", page.Headers)
	}
	if gotUA != userAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, userAgent)
	}
}

func TestFetchPage_GzipResponse(t *testing.T) {
	const doc = "<html><head><title>Compressed</title></head><body><p>hello</p></body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		gz.Write([]byte(doc))
		gz.Close()
	}))
	defer server.Close()

	f := NewFetcher()
	page, err := f.FetchPage(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}
	if page.HTML != doc {
		t.Errorf("HTML = %q, want the decompressed document", page.HTML)
	}
}

func TestFetchPage_DeflateResponse(t *testing.T) {
	const doc = "<html><body><p>deflated</p></body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Header().Set("Content-Encoding", "deflate")
		fw, _ := flate.NewWriter(w, flate.DefaultCompression)
		fw.Write([]byte(doc))
		fw.Close()
	}))
	defer server.Close()

	f := NewFetcher()
	page, err := f.FetchPage(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}
	if page.HTML != doc {
		t.Errorf("HTML = %q, want the decompressed document", page.HTML)
	}
}

func TestFetchPage_CorruptGzip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Header().Set("Content-Encoding", "gzip")
		w.Write([]byte("not gzip data"))
	}))
	defer server.Close()

	f := NewFetcher()
	_, err := f.FetchPage(context.Background(), server.URL)

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error = %v, want *FetchError for a corrupt compressed body", err)
	}
}

func TestFetchPage_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	f := NewFetcher()
	_, err := f.FetchPage(context.Background(), server.URL)
	if err == nil {
		t.Fatal("FetchPage() succeeded, want error for 404")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error type = %T, want *FetchError", err)
	}
	if fetchErr.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", fetchErr.StatusCode)
	}
	if fetchErr.URL != server.URL {
		t.Errorf("URL = %q, want %q", fetchErr.URL, server.URL)
	}
}

func TestFetchPage_NonHTMLContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"not": "html"}`))
	}))
	defer server.Close()

	f := NewFetcher()
	_, err := f.FetchPage(context.Background(), server.URL)

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error = %v, want *FetchError for non-HTML content type", err)
	}
	if fetchErr.StatusCode != 200 {
		t.Errorf("StatusCode = %d, want 200 (response was received)", fetchErr.StatusCode)
	}
}

func TestFetchPage_RecordsRedirect(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body>moved</body></html>"))
	})

	f := NewFetcher()
	page, err := f.FetchPage(context.Background(), server.URL+"/old")
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}

	if page.URL != server.URL+"/old" {
		t.Errorf("URL = %q, want requested URL", page.URL)
	}
	if page.RedirectedURL != server.URL+"/new" {
		t.Errorf("RedirectedURL = %q, want %q", page.RedirectedURL, server.URL+"/new")
	}
}

func TestFetchPage_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	f := NewFetcherWithTimeout(50 * time.Millisecond)
	_, err := f.FetchPage(context.Background(), server.URL)

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error = %v, want *FetchError for timeout", err)
	}
	if fetchErr.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0 (no response received)", fetchErr.StatusCode)
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare domain gets https scheme",
			input: "example.com",
			want:  "https://example.com",
		},
		{
			name:  "existing scheme preserved",
			input: "http://example.com/page",
			want:  "http://example.com/page",
		},
		{
			name:  "bare trailing slash stripped",
			input: "https://example.com/",
			want:  "https://example.com",
		},
		{
			name:  "path trailing slash kept",
			input: "https://example.com/docs/",
			want:  "https://example.com/docs/",
		},
		{
			name:  "query string preserved",
			input: "example.com/search?q=go",
			want:  "https://example.com/search?q=go",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  example.com  ",
			want:  "https://example.com",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "scheme only",
			input:   "https://",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"example.com", true},
		{"https://example.com/page", true},
		{"sub.domain.example.com", true},
		{"localhost", false},
		{"", false},
		{"https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidURL(tt.input); got != tt.want {
				t.Errorf("IsValidURL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
