package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"qcorr/internal/adapter"
	"qcorr/internal/finding"
	"qcorr/internal/logging"
	"qcorr/internal/resolve"
)

var (
	resolveReport      string
	resolveMinSeverity string
	resolveCategories  []string
	resolveDryRun      bool
	resolveFormat      string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Automatically resolve the findings of an analyzer report",
	Long: `Parse an analyzer report and dispatch each finding to the matching
resolver. Findings with no resolver are skipped, not failed. With
--dry-run the planned actions are reported and nothing on disk changes.

Examples:
  qcorr resolve --report structure.json --dry-run
  qcorr resolve --report structure.json --min-severity HIGH
  qcorr resolve --report structure.json --category scattered_documents
  qcorr resolve --report structure.json --format=human`,
	Run: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveReport, "report", "", "Analyzer report path (required)")
	resolveCmd.Flags().StringVar(&resolveMinSeverity, "min-severity", "", "Only resolve findings at or above this severity (CRITICAL, HIGH, MEDIUM, LOW)")
	resolveCmd.Flags().StringSliceVar(&resolveCategories, "category", nil, "Only resolve findings in these categories")
	resolveCmd.Flags().BoolVar(&resolveDryRun, "dry-run", false, "Plan actions without touching the filesystem")
	resolveCmd.Flags().StringVar(&resolveFormat, "format", "json", "Output format (json, human)")
	_ = resolveCmd.MarkFlagRequired("report")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) {
	start := time.Now()
	cfg := mustLoadConfig()
	logger := newLogger(cfg)

	report, err := adapter.LoadReport(resolveReport)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading report: %v\n", err)
		os.Exit(1)
	}

	var minSeverity finding.Severity
	if resolveMinSeverity != "" {
		minSeverity, err = finding.ParseSeverity(resolveMinSeverity)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	registry := resolve.NewDefaultRegistry(resolve.DefaultOptions{
		DocsDir:        cfg.Resolution.DocsDir,
		ArchiveDir:     cfg.Resolution.ArchiveDir,
		ProtectedPaths: cfg.Resolution.ProtectedPaths,
	}, logger)

	batch, err := registry.ProcessReport(report, adapterFor(report.Analyzer, logger), resolve.ProcessOptions{
		MinSeverity: minSeverity,
		Categories:  resolveCategories,
		DryRun:      resolveDryRun,
		ModulePath:  moduleFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error processing report: %v\n", err)
		os.Exit(1)
	}

	output, err := FormatResponse(&ResolveResponseCLI{Batch: batch}, OutputFormat(resolveFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)

	logger.Debug("Resolution completed", map[string]interface{}{
		"total":    batch.Total,
		"resolved": batch.Resolved,
		"duration": time.Since(start).Milliseconds(),
	})

	if batch.Failed > 0 {
		os.Exit(1)
	}
}

// adapterFor picks the adapter matching the report's declared analyzer,
// defaulting to the structural one. An analyzer name neither adapter
// claims is logged so the fallback never happens silently.
func adapterFor(analyzer string, logger *logging.Logger) *adapter.Adapter {
	switch analyzer {
	case adapter.SourceMetrics:
		return adapter.NewMetricsAdapter()
	case adapter.SourceStructural, "":
		return adapter.NewStructuralAdapter()
	}
	if logger != nil {
		logger.Warn("unknown analyzer, using structural adapter", map[string]interface{}{
			"analyzer": analyzer,
		})
	}
	return adapter.NewStructuralAdapter()
}

// ResolveResponseCLI contains resolution results for CLI output
type ResolveResponseCLI struct {
	Batch resolve.BatchResult `json:"batch"`
}
