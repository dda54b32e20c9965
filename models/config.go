package models

// ScanConfig holds runtime configuration for scan operations.
// All values come from CLI flags, not external config files.
type ScanConfig struct {
	URLs        []string
	WorkerCount int
	UserID      string
	Site        string
	OutputDir   string
	Format      string // "json" or "yaml"; applies to stdout and report files
}
