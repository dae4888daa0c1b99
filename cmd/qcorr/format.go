package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"qcorr/internal/finding"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatJSON formats the response as JSON
func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatHuman formats the response in human-readable format
func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *CorrelateResponseCLI:
		return formatCorrelateHuman(v)
	case *ResolveResponseCLI:
		return formatResolveHuman(v)
	case *SummaryResponseCLI:
		return formatSummaryHuman(v)
	case *TrendResponseCLI:
		return formatTrendHuman(v)
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func formatCorrelateHuman(resp *CorrelateResponseCLI) (string, error) {
	var b strings.Builder

	b.WriteString("Cross-Signal Correlation\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("Confidence threshold: %.2f\n", resp.Threshold))
	b.WriteString(fmt.Sprintf("Patterns detected: %d\n\n", len(resp.Teachings)))

	for _, t := range resp.Teachings {
		b.WriteString(fmt.Sprintf("%d. [%s] %s (confidence %.2f)\n",
			t.PriorityRank, t.Severity, t.PatternName, t.Confidence))
		b.WriteString(fmt.Sprintf("   Root cause: %s\n", t.RootCause))
		b.WriteString(fmt.Sprintf("   Recommendation: %s\n", t.Recommendation))
		if t.EstimatedEffort != "" {
			b.WriteString(fmt.Sprintf("   Estimated effort: %s\n", t.EstimatedEffort))
		}
		b.WriteString("\n")
	}

	if len(resp.Trend) > 0 {
		b.WriteString("Trend (latest run vs previous):\n")
		for analyzer, delta := range resp.Trend {
			b.WriteString(fmt.Sprintf("  %s:\n", analyzer))
			for signal, d := range delta {
				b.WriteString(fmt.Sprintf("    %s: %+g\n", signal, d))
			}
		}
	}

	return b.String(), nil
}

func formatResolveHuman(resp *ResolveResponseCLI) (string, error) {
	var b strings.Builder

	title := "Resolution"
	if resp.Batch.DryRun {
		title = "Resolution (dry run)"
	}
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("Batch: %s\n", resp.Batch.BatchID))
	b.WriteString(fmt.Sprintf("Total: %d  Resolved: %d  Failed: %d  Skipped: %d\n",
		resp.Batch.Total, resp.Batch.Resolved, resp.Batch.Failed, resp.Batch.Skipped))
	b.WriteString(fmt.Sprintf("Success rate: %.1f%%\n\n", resp.Batch.SuccessRate*100))

	for i, r := range resp.Batch.Results {
		b.WriteString(fmt.Sprintf("%d. %s %s", i+1, r.Status, r.Category))
		if r.Target != "" {
			b.WriteString(" " + r.Target)
		}
		b.WriteString("\n")
		for _, a := range r.Actions {
			if a.Dest != "" {
				b.WriteString(fmt.Sprintf("   %s %s -> %s\n", a.Op, a.Path, a.Dest))
			} else {
				b.WriteString(fmt.Sprintf("   %s %s\n", a.Op, a.Path))
			}
		}
		for _, e := range r.Errors {
			b.WriteString(fmt.Sprintf("   ! %s\n", e))
		}
	}

	return b.String(), nil
}

func formatSummaryHuman(resp *SummaryResponseCLI) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Report Summary: %s\n", resp.Analyzer))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("Findings: %d\n\n", resp.Total))

	b.WriteString("By severity:\n")
	for _, sev := range finding.Severities {
		b.WriteString(fmt.Sprintf("  %-8s %d\n", sev, resp.BySeverity[sev]))
	}
	b.WriteString("\nBy category:\n")
	for _, c := range resp.Categories {
		b.WriteString(fmt.Sprintf("  %-24s %d\n", c.Category, c.Count))
	}

	return b.String(), nil
}

func formatTrendHuman(resp *TrendResponseCLI) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Signal Trend: %s\n", resp.Analyzer))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if resp.Latest == nil {
		b.WriteString("No snapshots recorded.\n")
		return b.String(), nil
	}

	b.WriteString(fmt.Sprintf("Latest run: %s\n\n", resp.Latest.RecordedAt.Format("2006-01-02 15:04:05")))
	for signal, value := range resp.Latest.Signals {
		b.WriteString(fmt.Sprintf("  %-24s %g", signal, value))
		if d, ok := resp.Delta[signal]; ok {
			b.WriteString(fmt.Sprintf("  (%+g)", d))
		}
		b.WriteString("\n")
	}
	if resp.Delta == nil {
		b.WriteString("\nOnly one run recorded; no delta available.\n")
	}

	return b.String(), nil
}
