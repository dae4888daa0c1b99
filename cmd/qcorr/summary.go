package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"qcorr/internal/adapter"
	"qcorr/internal/finding"
)

var (
	summaryReport string
	summaryFormat string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize an analyzer report by severity and category",
	Long: `Parse an analyzer report and print finding counts by severity and
category, without resolving anything.

Examples:
  qcorr summary --report structure.json
  qcorr summary --report metrics.yaml --format=human`,
	Run: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryReport, "report", "", "Analyzer report path (required)")
	summaryCmd.Flags().StringVar(&summaryFormat, "format", "json", "Output format (json, human)")
	_ = summaryCmd.MarkFlagRequired("report")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) {
	report, err := adapter.LoadReport(summaryReport)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading report: %v\n", err)
		os.Exit(1)
	}

	findings, err := adapterFor(report.Analyzer, nil).Parse(report, adapter.ParseOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing report: %v\n", err)
		os.Exit(1)
	}

	resp := &SummaryResponseCLI{
		Analyzer:   report.Analyzer,
		Total:      len(findings),
		BySeverity: finding.Summary(findings),
	}
	for category, group := range finding.GroupByCategory(findings) {
		resp.Categories = append(resp.Categories, CategoryCountCLI{
			Category: category,
			Count:    len(group),
		})
	}
	sort.Slice(resp.Categories, func(i, j int) bool {
		return resp.Categories[i].Category < resp.Categories[j].Category
	})

	output, err := FormatResponse(resp, OutputFormat(summaryFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)
}

// SummaryResponseCLI contains report summary results for CLI output
type SummaryResponseCLI struct {
	Analyzer   string                   `json:"analyzer"`
	Total      int                      `json:"total"`
	BySeverity map[finding.Severity]int `json:"bySeverity"`
	Categories []CategoryCountCLI       `json:"categories"`
}

type CategoryCountCLI struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
