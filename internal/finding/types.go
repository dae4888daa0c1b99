// Package finding defines the canonical issue model shared by every
// analyzer adapter, correlation detector, and resolver in qcorr.
// Findings are created once at the adapter boundary and never mutated
// downstream.
package finding

import "fmt"

// Severity classifies how urgent a finding is.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// severityRank orders severities; lower rank = more severe.
var severityRank = map[Severity]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
	SeverityLow:      3,
}

// Severities lists all valid severities from most to least severe.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// ParseSeverity converts a native severity string into a Severity.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if _, ok := severityRank[sev]; !ok {
		return "", fmt.Errorf("unknown severity %q", s)
	}
	return sev, nil
}

// Rank returns the ordinal position of the severity (0 = most severe).
// Unknown severities rank below LOW.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return len(severityRank)
}

// AtLeast reports whether s is at least as severe as min.
func (s Severity) AtLeast(min Severity) bool {
	return s.Rank() <= min.Rank()
}

// Valid reports whether s is one of the four defined severities.
func (s Severity) Valid() bool {
	_, ok := severityRank[s]
	return ok
}

// Finding is one issue reported by an analyzer, normalized into the
// canonical shape. RawEvidence carries every field of the native record
// verbatim so nothing the analyzer said is lost in translation.
type Finding struct {
	Category       string                 `json:"category"`
	Severity       Severity               `json:"severity"`
	Source         string                 `json:"source"`
	File           string                 `json:"file,omitempty"`
	Line           int                    `json:"line,omitempty"`
	Message        string                 `json:"message"`
	Recommendation string                 `json:"recommendation,omitempty"`
	RawEvidence    map[string]interface{} `json:"rawEvidence,omitempty"`
}

// Location renders the file:line position, or "" when the finding has
// no location.
func (f Finding) Location() string {
	if f.File == "" {
		return ""
	}
	if f.Line > 0 {
		return fmt.Sprintf("%s:%d", f.File, f.Line)
	}
	return f.File
}
