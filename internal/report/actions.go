// Package report implements the read-side CLI commands: fetching a stored
// scan by its share token and listing recent scan history.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/geokit/geokit/models"
	"github.com/geokit/geokit/pkg/db"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// HistoryEntry is one row of the history listing.
type HistoryEntry struct {
	ShareToken   string `json:"share_token" yaml:"share_token"`
	URL          string `json:"url" yaml:"url"`
	Title        string `json:"title,omitempty" yaml:"title,omitempty"`
	OverallScore int    `json:"overall_score" yaml:"overall_score"`
	Label        string `json:"label" yaml:"label"`
	WordCount    int    `json:"word_count,omitempty" yaml:"word_count,omitempty"`
	ScannedAt    string `json:"scanned_at" yaml:"scanned_at"`
}

func ReportAction(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	token := c.Args().First()
	if token == "" {
		token = c.String("token")
	}
	if token == "" {
		fmt.Fprintln(os.Stderr, "Error: No share token provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  geokit report <share-token>`)
		os.Exit(1)
	}

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	record, err := database.GetScanByToken(token)
	if err != nil {
		if errors.Is(err, db.ErrScanNotFound) {
			fmt.Fprintf(os.Stderr, "Error: no scan found for token %s\n", token)
			os.Exit(1)
		}
		logger.Error("failed to load scan", "error", err, "token", token)
		os.Exit(2)
	}

	return printResult(c, record.Result)
}

func HistoryAction(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	summaries, err := database.ListRecentScans(c.String("user"), c.Int("limit"))
	if err != nil {
		logger.Error("failed to list scans", "error", err)
		os.Exit(2)
	}

	entries := make([]HistoryEntry, 0, len(summaries))
	for _, s := range summaries {
		entries = append(entries, HistoryEntry{
			ShareToken:   s.ShareToken,
			URL:          s.URL,
			Title:        s.Title,
			OverallScore: s.OverallScore,
			Label:        models.GetScoreLabel(s.OverallScore),
			WordCount:    s.WordCount,
			ScannedAt:    s.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return printResult(c, entries)
}

func printResult(c *cli.Context, v interface{}) error {
	switch strings.ToLower(c.String("format")) {
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml output: %w", err)
		}
		fmt.Print(string(data))
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json output: %w", err)
		}
		fmt.Println(string(data))
	}
	return nil
}
