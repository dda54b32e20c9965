package db

import (
	"fmt"
	"time"
)

// FreeTierDailyScans is the fixed per-user scan allowance per rolling
// 24-hour window.
const FreeTierDailyScans = 25

// QuotaStatus answers whether a user may start another scan.
type QuotaStatus struct {
	Allowed   bool
	Used      int
	Limit     int
	Remaining int
}

// CountScansSince counts a user's scans created after the given time.
func (db *DB) CountScansSince(userID string, since time.Time) (int, error) {
	var count int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM scans WHERE user_id = ? AND created_at >= ?",
		userID, since.UTC(),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count scans: %w", err)
	}
	return count, nil
}

// CheckQuota reports whether userID may initiate a scan under the free
// tier allowance. Callers run this before invoking the scan pipeline.
func (db *DB) CheckQuota(userID string) (*QuotaStatus, error) {
	used, err := db.CountScansSince(userID, time.Now().Add(-24*time.Hour))
	if err != nil {
		return nil, err
	}

	remaining := FreeTierDailyScans - used
	if remaining < 0 {
		remaining = 0
	}
	return &QuotaStatus{
		Allowed:   used < FreeTierDailyScans,
		Used:      used,
		Limit:     FreeTierDailyScans,
		Remaining: remaining,
	}, nil
}
