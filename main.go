package main

import (
	"log"
	"os"
	"runtime"

	"github.com/geokit/geokit/internal/report"
	"github.com/geokit/geokit/internal/scan"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "geokit",
		Usage: "Score web pages for AI search visibility",
		Commands: []*cli.Command{
			{
				Name:      "scan",
				Usage:     "Fetch, analyze, and score one or more URLs",
				ArgsUsage: "[url ...]",
				Action:    scan.ScanAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "urls",
						Usage: "Comma-separated list of URLs to scan",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent scan workers",
						Value: runtime.NumCPU(),
					},
					&cli.StringFlag{
						Name:  "user",
						Usage: "User identifier for quota tracking and scan history",
					},
					&cli.StringFlag{
						Name:  "site",
						Usage: "Site label to group stored scans under",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: json or yaml",
						Value: "json",
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "Directory to write per-URL report files into",
					},
					&cli.BoolFlag{
						Name:  "full",
						Usage: "Include the full scan result for each URL in the output",
					},
					&cli.BoolFlag{
						Name:  "no-store",
						Usage: "Skip persisting results to the local database",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
			{
				Name:      "report",
				Usage:     "Print a stored scan result by its share token",
				ArgsUsage: "<share-token>",
				Action:    report.ReportAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "token",
						Usage: "Share token of the stored scan",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: json or yaml",
						Value: "json",
					},
				},
			},
			{
				Name:   "history",
				Usage:  "List recently stored scans",
				Action: report.HistoryAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "user",
						Usage: "Only list scans stored for this user",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of scans to list",
						Value: 20,
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: json or yaml",
						Value: "json",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
