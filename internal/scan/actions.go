package scan

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/geokit/geokit/internal/common"
	"github.com/geokit/geokit/models"
	"github.com/geokit/geokit/pkg/db"
	"github.com/geokit/geokit/pkg/scanner"
	"github.com/geokit/geokit/pkg/storage"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func ScanAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config := &models.ScanConfig{
		URLs:        []string{},
		WorkerCount: c.Int("workers"),
		UserID:      c.String("user"),
		Site:        c.String("site"),
		OutputDir:   c.String("output-dir"),
		Format:      strings.ToLower(c.String("format")),
	}

	if c.IsSet("urls") {
		config.URLs = strings.Split(c.String("urls"), ",")
	}
	config.URLs = append(config.URLs, c.Args().Slice()...)

	if len(config.URLs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No URLs provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  geokit scan https://example.com`)
		fmt.Fprintln(os.Stderr, `  geokit scan --urls "https://example.com,https://example.org"`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: geokit scan --help")
		os.Exit(1)
	}

	// Sanitize and validate all URLs before processing (fail fast)
	sanitizedURLs, invalidURLs := common.SanitizeAndValidateURLs(config.URLs)
	if len(invalidURLs) > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d URL(s) are malformed (even after cleanup):\n", len(invalidURLs))
		for _, badURL := range invalidURLs {
			fmt.Fprintf(os.Stderr, "  - %s\n", badURL)
		}
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Note: URLs are auto-cleaned (whitespace trimmed, trailing punctuation removed, markdown links extracted)")
		os.Exit(1)
	}
	config.URLs = sanitizedURLs

	var database *db.DB
	if !c.Bool("no-store") {
		var err error
		database, err = db.Open()
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(2)
		}
		defer database.Close()
	}

	// Enforce the daily quota up front when scanning on behalf of a user.
	if database != nil && config.UserID != "" {
		quota, err := database.CheckQuota(config.UserID)
		if err != nil {
			logger.Error("failed to check quota", "error", err, "user", config.UserID)
			os.Exit(2)
		}
		logger.Info("Quota checked", "user", config.UserID, "used", quota.Used, "limit", quota.Limit)
		if quota.Remaining < len(config.URLs) {
			fmt.Fprintf(os.Stderr, "Error: scan quota exceeded for user %s (%d of %d scans used in the last 24h, %d requested)\n",
				config.UserID, quota.Used, quota.Limit, len(config.URLs))
			os.Exit(1)
		}
	}

	var store *storage.Storage
	if config.OutputDir != "" {
		store = &storage.Storage{BaseDir: config.OutputDir}
	}

	s := scanner.New()
	allResults, runErr := run(c.Context, logger, config, s, database, store)

	finalOutput := buildFinalOutput(config, allResults, time.Since(startTime), c.Bool("full"))

	switch config.Format {
	case "yaml":
		data, err := yaml.Marshal(finalOutput)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml output: %w", err)
		}
		fmt.Print(string(data))
	default:
		data, err := json.MarshalIndent(finalOutput, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json output: %w", err)
		}
		fmt.Println(string(data))
	}

	if runErr != nil {
		os.Exit(1)
	}
	return nil
}

func buildFinalOutput(config *models.ScanConfig, allResults []Result, elapsed time.Duration, full bool) *FinalOutput {
	outputs := make([]ResultOutput, 0, len(allResults))
	var successful, failed, scoreSum int

	for _, r := range allResults {
		out := ResultOutput{URL: r.URL}
		if r.Error != nil {
			failed++
			out.Status = "failed"
			out.Error = r.Error.Error()
			out.ErrorType = r.ErrorType
		} else {
			successful++
			out.Status = "success"
			out.URL = r.Scan.URL
			out.OverallScore = r.Scan.OverallScore
			out.Label = models.GetScoreLabel(r.Scan.OverallScore)
			out.ShareToken = r.ShareToken
			out.FilePath = r.FilePath
			if full {
				out.Result = r.Scan
			}
			scoreSum += r.Scan.OverallScore
		}
		outputs = append(outputs, out)
	}

	stats := Stats{
		TotalURLs:        len(config.URLs),
		Successful:       successful,
		Failed:           failed,
		TotalTimeSeconds: elapsed.Seconds(),
	}
	if successful > 0 {
		stats.AverageScore = math.Round(float64(scoreSum)/float64(successful)*10) / 10
	}

	status := "success"
	if failed > 0 {
		status = "partial_failure"
		if successful == 0 {
			status = "failed"
		}
	}

	return &FinalOutput{Status: status, Results: outputs, Stats: stats}
}
