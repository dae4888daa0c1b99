package adapter

import (
	"qcorr/internal/finding"
)

// Source identifiers stamped onto findings by each adapter.
const (
	SourceStructural = "structure-scan"
	SourceMetrics    = "test-metrics"
)

// Adapter converts one analyzer's native report into canonical findings.
type Adapter struct {
	source string
}

// NewStructuralAdapter returns the adapter for the static/structural
// code-quality analyzer.
func NewStructuralAdapter() *Adapter {
	return &Adapter{source: SourceStructural}
}

// NewMetricsAdapter returns the adapter for the test-quality/metrics
// analyzer.
func NewMetricsAdapter() *Adapter {
	return &Adapter{source: SourceMetrics}
}

// Source returns the analyzer identifier this adapter stamps onto
// findings.
func (a *Adapter) Source() string {
	return a.source
}

// Parse converts every native record in the report into a canonical
// Finding, then applies the option filters. A single malformed record
// fails the whole call with a *ParseError.
func (a *Adapter) Parse(report *Report, opts ParseOptions) ([]finding.Finding, error) {
	if report == nil {
		return nil, &ParseError{Analyzer: a.source, Index: -1, Field: "report", Reason: "report is nil"}
	}

	source := report.Analyzer
	if source == "" {
		source = a.source
	}

	findings := make([]finding.Finding, 0, len(report.Findings))
	for i, item := range report.Findings {
		f, err := a.convert(source, i, item)
		if err != nil {
			return nil, err
		}
		findings = append(findings, f)
	}

	if opts.MinSeverity != "" {
		findings = finding.FilterBySeverity(findings, opts.MinSeverity)
	}
	if len(opts.Categories) > 0 {
		keep := make(map[string]bool, len(opts.Categories))
		for _, c := range opts.Categories {
			keep[c] = true
		}
		filtered := findings[:0]
		for _, f := range findings {
			if keep[f.Category] {
				filtered = append(filtered, f)
			}
		}
		findings = filtered
	}

	return findings, nil
}

// convert validates one native record and maps it into a Finding. The
// entire native map, extension fields included, is preserved verbatim
// in RawEvidence.
func (a *Adapter) convert(source string, index int, item map[string]interface{}) (finding.Finding, error) {
	category, ok := stringField(item, "category")
	if !ok || category == "" {
		return finding.Finding{}, &ParseError{Analyzer: source, Index: index, Field: "category", Reason: "missing or empty"}
	}

	rawSeverity, ok := stringField(item, "severity")
	if !ok {
		return finding.Finding{}, &ParseError{Analyzer: source, Index: index, Field: "severity", Reason: "missing"}
	}
	severity, err := finding.ParseSeverity(rawSeverity)
	if err != nil {
		return finding.Finding{}, &ParseError{Analyzer: source, Index: index, Field: "severity", Reason: err.Error()}
	}

	message, ok := stringField(item, "message")
	if !ok || message == "" {
		return finding.Finding{}, &ParseError{Analyzer: source, Index: index, Field: "message", Reason: "missing or empty"}
	}

	file, _ := stringField(item, "file")
	recommendation, _ := stringField(item, "recommendation")
	line := intField(item, "line")

	evidence := make(map[string]interface{}, len(item))
	for k, v := range item {
		evidence[k] = v
	}

	return finding.Finding{
		Category:       category,
		Severity:       severity,
		Source:         source,
		File:           file,
		Line:           line,
		Message:        message,
		Recommendation: recommendation,
		RawEvidence:    evidence,
	}, nil
}

func stringField(item map[string]interface{}, key string) (string, bool) {
	v, ok := item[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// intField tolerates the numeric types the three decoders produce
// (float64 from JSON, int from YAML, int64 from TOML).
func intField(item map[string]interface{}, key string) int {
	switch v := item[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case uint64:
		return int(v)
	default:
		return 0
	}
}
