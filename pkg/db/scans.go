package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/geokit/geokit/models"
)

// ErrScanNotFound is returned when no stored scan matches the lookup.
var ErrScanNotFound = errors.New("scan not found")

// ScanRecord is one persisted scan row.
type ScanRecord struct {
	ScanID       int64
	ShareToken   string
	URL          string
	Title        string
	OverallScore int
	UserID       string
	Site         string
	CreatedAt    time.Time
	Result       *models.ScanResult
}

// ScanSummary is the listing view of a stored scan, without the full
// result blob.
type ScanSummary struct {
	ScanID       int64
	ShareToken   string
	URL          string
	Title        string
	OverallScore int
	WordCount    int
	CreatedAt    time.Time
}

// InsertScan stores a completed scan and returns its opaque share token.
// userID and site are optional identifiers supplied by the caller.
func (db *DB) InsertScan(result *models.ScanResult, userID, site string) (string, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal scan result: %w", err)
	}

	token := uuid.NewString()
	_, err = db.Exec(`
		INSERT INTO scans (
			share_token, url, title, overall_score,
			readability_pct, structure_pct, entities_pct, sources_pct,
			word_count, user_id, site, result_json, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		token,
		result.URL,
		result.Title,
		result.OverallScore,
		result.Scores.Readability.Percentage,
		result.Scores.Structure.Percentage,
		result.Scores.Entities.Percentage,
		result.Scores.Sources.Percentage,
		result.Content.WordCount,
		nullable(userID),
		nullable(site),
		string(resultJSON),
		result.ScannedAt.UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert scan: %w", err)
	}
	return token, nil
}

// GetScanByToken loads a stored scan by its share token.
func (db *DB) GetScanByToken(token string) (*ScanRecord, error) {
	row := db.QueryRow(`
		SELECT scan_id, share_token, url, title, overall_score,
		       COALESCE(user_id, ''), COALESCE(site, ''), created_at, result_json
		FROM scans WHERE share_token = ?`, token)

	var record ScanRecord
	var resultJSON string
	err := row.Scan(
		&record.ScanID, &record.ShareToken, &record.URL, &record.Title,
		&record.OverallScore, &record.UserID, &record.Site,
		&record.CreatedAt, &resultJSON,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load scan: %w", err)
	}

	var result models.ScanResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scan result: %w", err)
	}
	record.Result = &result
	return &record, nil
}

// ListRecentScans returns up to limit most recent scans, newest first.
// userID filters to one user when non-empty.
func (db *DB) ListRecentScans(userID string, limit int) ([]ScanSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT scan_id, share_token, url, COALESCE(title, ''),
		       overall_score, word_count, created_at
		FROM scans`
	args := []interface{}{}
	if userID != "" {
		query += " WHERE user_id = ?"
		args = append(args, userID)
	}
	query += " ORDER BY created_at DESC, scan_id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var summaries []ScanSummary
	for rows.Next() {
		var s ScanSummary
		if err := rows.Scan(&s.ScanID, &s.ShareToken, &s.URL, &s.Title,
			&s.OverallScore, &s.WordCount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
