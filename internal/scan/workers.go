package scan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/geokit/geokit/models"
	"github.com/geokit/geokit/pkg/db"
	"github.com/geokit/geokit/pkg/fetcher"
	"github.com/geokit/geokit/pkg/scanner"
	"github.com/geokit/geokit/pkg/storage"
	"gopkg.in/yaml.v3"
)

func run(ctx context.Context, logger *slog.Logger, config *models.ScanConfig, s *scanner.Scanner, database *db.DB, store *storage.Storage) ([]Result, error) {
	logger.Info("Starting concurrent scan phase", "url_count", len(config.URLs), "workers", config.WorkerCount)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(config.URLs))
	results := make(chan Result, len(config.URLs))

	for w := 1; w <= config.WorkerCount; w++ {
		wg.Add(1)
		go worker(ctx, w, logger, s, database, store, config, &wg, jobs, results)
	}

	for _, rawURL := range config.URLs {
		jobs <- Job{URL: rawURL}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All scan workers finished")

	allResults := make([]Result, 0, len(config.URLs))
	var runErr error
	for result := range results {
		allResults = append(allResults, result)
		if result.Error != nil {
			runErr = fmt.Errorf("one or more scans failed")
		}
	}

	return allResults, runErr
}

func worker(ctx context.Context, id int, logger *slog.Logger, s *scanner.Scanner, database *db.DB, store *storage.Storage, config *models.ScanConfig, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker scanning URL", "worker_id", id, "url", job.URL)
		results <- processURL(ctx, id, logger, s, database, store, config, job.URL)
	}
}

func processURL(ctx context.Context, id int, logger *slog.Logger, s *scanner.Scanner, database *db.DB, store *storage.Storage, config *models.ScanConfig, rawURL string) Result {
	result := Result{URL: rawURL}

	scanResult, err := s.Scan(ctx, rawURL)
	if err != nil {
		result.Error = err
		result.ErrorType = classifyError(err, &result)
		logger.Error("Error scanning URL", "worker_id", id, "url", rawURL, "error", err, "error_type", result.ErrorType)
		return result
	}
	result.Scan = scanResult

	if database != nil {
		token, insertErr := database.InsertScan(scanResult, config.UserID, config.Site)
		if insertErr != nil {
			logger.Warn("Failed to persist scan", "url", rawURL, "error", insertErr)
		} else {
			result.ShareToken = token
		}
	}

	if store != nil {
		data, ext, marshalErr := encodeReport(scanResult, config.Format)
		if marshalErr != nil {
			logger.Warn("Failed to marshal report", "url", rawURL, "error", marshalErr)
		} else {
			name := storage.ReportFilename(scanResult.URL, ext)
			path, writeErr := store.WriteReport(name, data)
			if writeErr != nil {
				logger.Warn("Failed to write report file", "url", rawURL, "error", writeErr)
			} else {
				result.FilePath = path
			}
		}
	}

	logger.Info("Scan complete", "worker_id", id, "url", scanResult.URL, "overall_score", scanResult.OverallScore)
	return result
}

// encodeReport marshals a scan result in the run's output format and
// returns the matching file extension. YAML output gets yaml files,
// everything else json.
func encodeReport(result *models.ScanResult, format string) ([]byte, string, error) {
	if format == "yaml" {
		data, err := yaml.Marshal(result)
		return data, "yaml", err
	}
	data, err := json.MarshalIndent(result, "", "  ")
	return data, "json", err
}

// classifyError buckets a scan error for output and records the HTTP status
// code when one is available.
func classifyError(err error, result *Result) string {
	var fetchErr *fetcher.FetchError
	if errors.As(err, &fetchErr) {
		result.StatusCode = fetchErr.StatusCode
		switch {
		case fetchErr.StatusCode > 0:
			return "http_error"
		default:
			return "fetch_error"
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	return "scan_error"
}
