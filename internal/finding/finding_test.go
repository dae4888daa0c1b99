package finding

import "testing"

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input   string
		want    Severity
		wantErr bool
	}{
		{"CRITICAL", SeverityCritical, false},
		{"HIGH", SeverityHigh, false},
		{"MEDIUM", SeverityMedium, false},
		{"LOW", SeverityLow, false},
		{"critical", "", true},
		{"URGENT", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSeverity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSeverity(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSeverityOrdering(t *testing.T) {
	if !SeverityCritical.AtLeast(SeverityLow) {
		t.Error("CRITICAL should be at least LOW")
	}
	if SeverityLow.AtLeast(SeverityHigh) {
		t.Error("LOW should not be at least HIGH")
	}
	if !SeverityMedium.AtLeast(SeverityMedium) {
		t.Error("a severity should be at least itself")
	}

	for i := 1; i < len(Severities); i++ {
		if Severities[i-1].Rank() >= Severities[i].Rank() {
			t.Errorf("Severities not strictly ordered at index %d", i)
		}
	}
}

func TestFilterBySeverity(t *testing.T) {
	findings := []Finding{
		{Category: "a", Severity: SeverityCritical},
		{Category: "b", Severity: SeverityLow},
		{Category: "c", Severity: SeverityHigh},
		{Category: "d", Severity: SeverityMedium},
	}

	got := FilterBySeverity(findings, SeverityHigh)
	if len(got) != 2 {
		t.Fatalf("FilterBySeverity returned %d findings, want 2", len(got))
	}
	// Order must be preserved
	if got[0].Category != "a" || got[1].Category != "c" {
		t.Errorf("FilterBySeverity order = [%s %s], want [a c]", got[0].Category, got[1].Category)
	}

	if len(findings) != 4 {
		t.Error("input slice was modified")
	}
}

func TestFilterByCategory(t *testing.T) {
	findings := []Finding{
		{Category: "scattered_documents", Message: "one"},
		{Category: "obsolete_file", Message: "two"},
		{Category: "scattered_documents", Message: "three"},
	}

	got := FilterByCategory(findings, "scattered_documents")
	if len(got) != 2 {
		t.Fatalf("FilterByCategory returned %d findings, want 2", len(got))
	}
	if got[0].Message != "one" || got[1].Message != "three" {
		t.Error("FilterByCategory did not preserve order")
	}
}

func TestGroupByCategory(t *testing.T) {
	findings := []Finding{
		{Category: "scattered_documents", Message: "first"},
		{Category: "obsolete_file", Message: "second"},
		{Category: "scattered_documents", Message: "third"},
	}

	groups := GroupByCategory(findings)
	if len(groups) != 2 {
		t.Fatalf("GroupByCategory returned %d groups, want 2", len(groups))
	}
	docs := groups["scattered_documents"]
	if len(docs) != 2 || docs[0].Message != "first" || docs[1].Message != "third" {
		t.Errorf("scattered_documents group = %+v, want insertion order preserved", docs)
	}
}

func TestSummaryZeroFilled(t *testing.T) {
	summary := Summary(nil)
	for _, sev := range Severities {
		count, ok := summary[sev]
		if !ok {
			t.Errorf("Summary missing key %s", sev)
		}
		if count != 0 {
			t.Errorf("Summary[%s] = %d, want 0", sev, count)
		}
	}
}

func TestSummaryCounts(t *testing.T) {
	findings := []Finding{
		{Severity: SeverityCritical},
		{Severity: SeverityCritical},
		{Severity: SeverityLow},
	}

	summary := Summary(findings)
	if summary[SeverityCritical] != 2 {
		t.Errorf("Summary[CRITICAL] = %d, want 2", summary[SeverityCritical])
	}
	if summary[SeverityLow] != 1 {
		t.Errorf("Summary[LOW] = %d, want 1", summary[SeverityLow])
	}
	if summary[SeverityHigh] != 0 || summary[SeverityMedium] != 0 {
		t.Error("untouched severities should be zero")
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		name string
		f    Finding
		want string
	}{
		{"file and line", Finding{File: "docs/plan.md", Line: 12}, "docs/plan.md:12"},
		{"file only", Finding{File: "docs/plan.md"}, "docs/plan.md"},
		{"no location", Finding{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Location(); got != tt.want {
				t.Errorf("Location() = %q, want %q", got, tt.want)
			}
		})
	}
}
