package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"qcorr/internal/adapter"
	"qcorr/internal/correlate"
	"qcorr/internal/trend"
	"qcorr/internal/wisdom"
)

var (
	correlateStructural string
	correlateMetrics    string
	correlateThreshold  float64
	correlateTrendDB    string
	correlateFormat     string
)

var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Detect cross-signal quality patterns from two analyzer reports",
	Long: `Correlate a structural analyzer report with a test-metrics report and
detect systemic patterns neither analyzer can see on its own.

Reports may be JSON, YAML, or TOML, optionally gzip-compressed.

Examples:
  qcorr correlate --structural structure.json --metrics metrics.json
  qcorr correlate --structural s.yaml --metrics m.toml --threshold 0.7
  qcorr correlate --structural s.json.gz --metrics m.json --trend-db .qcorr/trend.db
  qcorr correlate --structural s.json --metrics m.json --format=human`,
	Run: runCorrelate,
}

func init() {
	correlateCmd.Flags().StringVar(&correlateStructural, "structural", "", "Structural analyzer report path (required)")
	correlateCmd.Flags().StringVar(&correlateMetrics, "metrics", "", "Test-metrics analyzer report path (required)")
	correlateCmd.Flags().Float64Var(&correlateThreshold, "threshold", 0, "Confidence threshold override (0 uses config)")
	correlateCmd.Flags().StringVar(&correlateTrendDB, "trend-db", "", "Trend database path for per-signal deltas")
	correlateCmd.Flags().StringVar(&correlateFormat, "format", "json", "Output format (json, human)")
	_ = correlateCmd.MarkFlagRequired("structural")
	_ = correlateCmd.MarkFlagRequired("metrics")
	rootCmd.AddCommand(correlateCmd)
}

func runCorrelate(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := mustLoadConfig()
	logger := newLogger(cfg)

	structuralReport, err := adapter.LoadReport(correlateStructural)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading structural report: %v\n", err)
		os.Exit(1)
	}
	metricsReport, err := adapter.LoadReport(correlateMetrics)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading metrics report: %v\n", err)
		os.Exit(1)
	}

	threshold := correlateThreshold
	if threshold == 0 {
		threshold = cfg.Correlation.ConfidenceThreshold
	}

	engine := correlate.NewDefaultEngine(threshold, logger)
	matches := engine.DetectPatterns(
		correlate.Signals(structuralReport.SignalMap()),
		correlate.Signals(metricsReport.SignalMap()),
	)
	teachings := wisdom.Prioritize(matches, cfg.Correlation.CallerImpact)

	resp := &CorrelateResponseCLI{
		Threshold: threshold,
		Teachings: teachings,
	}

	if correlateTrendDB != "" {
		resp.Trend, err = loadTrendDeltas(correlateTrendDB, structuralReport.Analyzer, metricsReport.Analyzer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading trend database: %v\n", err)
			os.Exit(1)
		}
	}

	output, err := FormatResponse(resp, OutputFormat(correlateFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)

	logger.Debug("Correlation completed", map[string]interface{}{
		"patterns": len(teachings),
		"duration": time.Since(start).Milliseconds(),
	})
}

// CorrelateResponseCLI contains correlation results for CLI output
type CorrelateResponseCLI struct {
	Threshold float64                       `json:"threshold"`
	Teachings []wisdom.Teaching             `json:"teachings"`
	Trend     map[string]map[string]float64 `json:"trend,omitempty"`
}

// loadTrendDeltas reads latest-vs-previous deltas for each analyzer that
// has at least two recorded runs.
func loadTrendDeltas(path string, analyzers ...string) (map[string]map[string]float64, error) {
	store, err := trend.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	deltas := make(map[string]map[string]float64)
	for _, analyzer := range analyzers {
		if analyzer == "" {
			continue
		}
		delta, err := store.Delta(analyzer)
		if err != nil {
			return nil, err
		}
		if delta != nil {
			deltas[analyzer] = delta
		}
	}
	return deltas, nil
}
