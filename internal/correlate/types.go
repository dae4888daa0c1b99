// Package correlate detects cross-signal patterns between the
// structural analyzer's aggregates and the test-metrics analyzer's
// aggregates. A pattern match says the same root cause is likely
// showing up in both signal streams at once.
package correlate

// Signals is one analyzer's snapshot of named numeric aggregates.
// Absence of a key reads as zero.
type Signals map[string]float64

// Severity classifies how urgent a correlation is. This is a separate
// scale from finding.Severity: correlations use URGENT where single
// findings use CRITICAL, because a confirmed cross-signal pattern
// implicates both user pain and correctness risk at once.
type Severity string

const (
	SeverityUrgent Severity = "URGENT"
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

var severityRank = map[Severity]int{
	SeverityUrgent: 0,
	SeverityHigh:   1,
	SeverityMedium: 2,
	SeverityLow:    3,
}

// Rank returns the ordinal position of the severity (0 = most urgent).
// Unknown severities rank last.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return len(severityRank)
}

// PatternMatch is one detected correlation. It is transient: produced
// per run, handed to the prioritizer, never persisted here.
type PatternMatch struct {
	PatternName     string   `json:"patternName"`
	Confidence      float64  `json:"confidence"` // (0,1], min/max ratio of the two magnitudes
	Severity        Severity `json:"severity"`
	EvidenceA       float64  `json:"evidenceA"` // structural-side metric value
	EvidenceB       float64  `json:"evidenceB"` // test-side metric value
	RootCause       string   `json:"rootCause"`
	Recommendation  string   `json:"recommendation"`
	EstimatedEffort string   `json:"estimatedEffort"`
	CombinedValue   string   `json:"combinedValue"`
}
