package scan

import (
	"github.com/geokit/geokit/models"
)

type Job struct {
	URL string
}

// Result holds the outcome of a processed job.
type Result struct {
	URL        string
	ShareToken string
	FilePath   string
	Scan       *models.ScanResult
	Error      error
	ErrorType  string
	StatusCode int
}

// ResultOutput is the structured output for a single URL.
type ResultOutput struct {
	URL          string             `json:"url" yaml:"url"`
	Status       string             `json:"status" yaml:"status"`
	OverallScore int                `json:"overall_score,omitempty" yaml:"overall_score,omitempty"`
	Label        string             `json:"label,omitempty" yaml:"label,omitempty"`
	ShareToken   string             `json:"share_token,omitempty" yaml:"share_token,omitempty"`
	FilePath     string             `json:"file_path,omitempty" yaml:"file_path,omitempty"`
	Error        string             `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType    string             `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	Result       *models.ScanResult `json:"result,omitempty" yaml:"result,omitempty"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalURLs        int     `json:"total_urls" yaml:"total_urls"`
	Successful       int     `json:"successful" yaml:"successful"`
	Failed           int     `json:"failed" yaml:"failed"`
	AverageScore     float64 `json:"average_score,omitempty" yaml:"average_score,omitempty"`
	TotalTimeSeconds float64 `json:"total_time_seconds" yaml:"total_time_seconds"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string         `json:"status" yaml:"status"`
	Results []ResultOutput `json:"results" yaml:"results"`
	Stats   Stats          `json:"stats" yaml:"stats"`
}
