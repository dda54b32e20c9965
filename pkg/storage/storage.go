// Package storage writes scan reports to disk, one file per scanned URL.
package storage

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Storage writes report files under a base directory.
type Storage struct {
	BaseDir string
}

// WriteReport saves data to name inside the base directory, creating
// intermediate directories as needed.
func (s *Storage) WriteReport(name string, data []byte) (string, error) {
	path := filepath.Join(s.BaseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// ReportFilename derives a filesystem-friendly, date-stamped filename
// from a scanned URL. ext is the extension without the dot.
func ReportFilename(rawURL, ext string) string {
	today := time.Now().Format("2006-01-02")

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		safe := strings.NewReplacer("https://", "", "http://", "", "/", "_").Replace(rawURL)
		return fmt.Sprintf("%s-%s.%s", safe, today, ext)
	}

	host := strings.ReplaceAll(parsed.Host, ".", "_")

	// Path segments keep same-host scans from colliding.
	path := strings.Trim(parsed.Path, "/")
	path = strings.ReplaceAll(path, "/", "-")
	path = strings.ReplaceAll(path, ".", "_")

	base := host
	if path != "" {
		base = fmt.Sprintf("%s-%s", host, path)
	}
	return fmt.Sprintf("%s-%s.%s", base, today, ext)
}
