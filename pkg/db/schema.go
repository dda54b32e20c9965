package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Scans: one row per completed scan, keyed by an opaque share token.
-- Summary columns support listing and quota queries; the full result is
-- stored as a JSON blob.
CREATE TABLE IF NOT EXISTS scans (
    scan_id INTEGER PRIMARY KEY AUTOINCREMENT,
    share_token TEXT NOT NULL UNIQUE,
    url TEXT NOT NULL,
    title TEXT,
    overall_score INTEGER NOT NULL,
    readability_pct INTEGER NOT NULL,
    structure_pct INTEGER NOT NULL,
    entities_pct INTEGER NOT NULL,
    sources_pct INTEGER NOT NULL,
    word_count INTEGER DEFAULT 0,
    user_id TEXT,
    site TEXT,
    result_json TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_scans_url ON scans(url);
CREATE INDEX IF NOT EXISTS idx_scans_user ON scans(user_id);
CREATE INDEX IF NOT EXISTS idx_scans_site ON scans(site);
CREATE INDEX IF NOT EXISTS idx_scans_created ON scans(created_at DESC);
`
