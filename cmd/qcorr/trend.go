package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qcorr/internal/trend"
)

var (
	trendAnalyzer string
	trendDBPath   string
	trendFormat   string
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the latest recorded signals and their movement",
	Long: `Read the trend database the analyzers write after each run and show
the latest snapshot for one analyzer, with per-signal deltas against the
previous run when one exists.

Examples:
  qcorr trend --analyzer structure-scan
  qcorr trend --analyzer test-metrics --db .qcorr/trend.db --format=human`,
	Run: runTrend,
}

func init() {
	trendCmd.Flags().StringVar(&trendAnalyzer, "analyzer", "", "Analyzer name (required)")
	trendCmd.Flags().StringVar(&trendDBPath, "db", "", "Trend database path (default from config)")
	trendCmd.Flags().StringVar(&trendFormat, "format", "json", "Output format (json, human)")
	_ = trendCmd.MarkFlagRequired("analyzer")
	rootCmd.AddCommand(trendCmd)
}

func runTrend(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()

	path := trendDBPath
	if path == "" {
		path = cfg.Trend.DatabasePath
	}

	store, err := trend.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening trend database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	latest, err := store.LatestSnapshot(trendAnalyzer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading snapshot: %v\n", err)
		os.Exit(1)
	}

	resp := &TrendResponseCLI{Analyzer: trendAnalyzer, Latest: latest}
	if latest != nil {
		resp.Delta, err = store.Delta(trendAnalyzer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing delta: %v\n", err)
			os.Exit(1)
		}
	}

	output, err := FormatResponse(resp, OutputFormat(trendFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)
}

// TrendResponseCLI contains trend results for CLI output
type TrendResponseCLI struct {
	Analyzer string             `json:"analyzer"`
	Latest   *trend.Snapshot    `json:"latest"`
	Delta    map[string]float64 `json:"delta,omitempty"`
}
