package adapter

import (
	"errors"
	"reflect"
	"testing"

	"qcorr/internal/finding"
)

func sampleReport() *Report {
	return &Report{
		Analyzer: SourceStructural,
		Version:  "2.3.0",
		Findings: []map[string]interface{}{
			{
				"category":       "scattered_documents",
				"severity":       "CRITICAL",
				"file":           "NOTES.md",
				"message":        "planning document outside docs tree",
				"recommendation": "move NOTES.md to docs/NOTES.md",
				"doc_kind":       "planning", // analyzer extension field
			},
			{
				"category": "obsolete_file",
				"severity": "HIGH",
				"file":     "main_old.go",
				"line":     float64(1),
				"message":  "superseded implementation still present",
			},
			{
				"category": "bloated_directory",
				"severity": "MEDIUM",
				"file":     "scripts",
				"message":  "directory holds 94 loose files",
			},
		},
	}
}

func TestParseConvertsAll(t *testing.T) {
	a := NewStructuralAdapter()

	findings, err := a.Parse(sampleReport(), ParseOptions{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(findings) != 3 {
		t.Fatalf("Parse() returned %d findings, want 3", len(findings))
	}

	first := findings[0]
	if first.Category != "scattered_documents" {
		t.Errorf("Category = %q", first.Category)
	}
	if first.Severity != finding.SeverityCritical {
		t.Errorf("Severity = %q", first.Severity)
	}
	if first.Source != SourceStructural {
		t.Errorf("Source = %q", first.Source)
	}
	if first.Recommendation != "move NOTES.md to docs/NOTES.md" {
		t.Errorf("Recommendation = %q", first.Recommendation)
	}
}

func TestParsePreservesRawEvidence(t *testing.T) {
	a := NewStructuralAdapter()
	report := sampleReport()

	findings, err := a.Parse(report, ParseOptions{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// Every key of the native record, extension fields included, must
	// round-trip through RawEvidence unchanged.
	for i, f := range findings {
		native := report.Findings[i]
		if !reflect.DeepEqual(f.RawEvidence, native) {
			t.Errorf("finding %d RawEvidence = %v, want %v", i, f.RawEvidence, native)
		}
	}

	if findings[0].RawEvidence["doc_kind"] != "planning" {
		t.Error("extension field doc_kind was lost")
	}
}

func TestParseMinSeverity(t *testing.T) {
	a := NewStructuralAdapter()

	findings, err := a.Parse(sampleReport(), ParseOptions{MinSeverity: finding.SeverityHigh})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(findings) != 2 {
		t.Fatalf("Parse() with MinSeverity=HIGH returned %d findings, want 2", len(findings))
	}
	for _, f := range findings {
		if !f.Severity.AtLeast(finding.SeverityHigh) {
			t.Errorf("finding %q below min severity: %s", f.Category, f.Severity)
		}
	}
}

func TestParseCategoryFilter(t *testing.T) {
	a := NewStructuralAdapter()

	findings, err := a.Parse(sampleReport(), ParseOptions{Categories: []string{"obsolete_file"}})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(findings) != 1 || findings[0].Category != "obsolete_file" {
		t.Errorf("Parse() with category filter = %+v, want single obsolete_file", findings)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []struct {
		name      string
		item      map[string]interface{}
		wantField string
	}{
		{
			name:      "missing category",
			item:      map[string]interface{}{"severity": "HIGH", "message": "x"},
			wantField: "category",
		},
		{
			name:      "empty category",
			item:      map[string]interface{}{"category": "", "severity": "HIGH", "message": "x"},
			wantField: "category",
		},
		{
			name:      "missing severity",
			item:      map[string]interface{}{"category": "obsolete_file", "message": "x"},
			wantField: "severity",
		},
		{
			name:      "unknown severity",
			item:      map[string]interface{}{"category": "obsolete_file", "severity": "SEVERE", "message": "x"},
			wantField: "severity",
		},
		{
			name:      "missing message",
			item:      map[string]interface{}{"category": "obsolete_file", "severity": "LOW"},
			wantField: "message",
		},
	}

	a := NewStructuralAdapter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := &Report{
				Analyzer: SourceStructural,
				Findings: []map[string]interface{}{
					{"category": "ok", "severity": "LOW", "message": "fine"},
					tt.item,
				},
			}

			_, err := a.Parse(report, ParseOptions{})
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse() error = %v, want *ParseError", err)
			}
			if perr.Field != tt.wantField {
				t.Errorf("ParseError.Field = %q, want %q", perr.Field, tt.wantField)
			}
			// Rejection is wholesale: the offending item index is reported.
			if perr.Index != 1 {
				t.Errorf("ParseError.Index = %d, want 1", perr.Index)
			}
		})
	}
}

func TestParseNilReport(t *testing.T) {
	a := NewMetricsAdapter()
	_, err := a.Parse(nil, ParseOptions{})
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Parse(nil) error = %v, want *ParseError", err)
	}
}

func TestMetricsAdapterSource(t *testing.T) {
	a := NewMetricsAdapter()
	report := &Report{
		Findings: []map[string]interface{}{
			{"category": "flaky_test", "severity": "HIGH", "message": "test flaps"},
		},
	}

	findings, err := a.Parse(report, ParseOptions{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if findings[0].Source != SourceMetrics {
		t.Errorf("Source = %q, want %q (adapter default when report omits analyzer)", findings[0].Source, SourceMetrics)
	}
}

func TestIntFieldNumericTypes(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
		want int
	}{
		{"json float", float64(42), 42},
		{"yaml int", int(7), 7},
		{"toml int64", int64(9), 9},
		{"absent", nil, 0},
		{"wrong type", "12", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := map[string]interface{}{}
			if tt.v != nil {
				item["line"] = tt.v
			}
			if got := intField(item, "line"); got != tt.want {
				t.Errorf("intField = %d, want %d", got, tt.want)
			}
		})
	}
}
