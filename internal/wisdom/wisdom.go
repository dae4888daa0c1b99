// Package wisdom turns raw pattern matches into an ordered, actionable
// list of teachings. It is pure: same matches and impact scores in,
// same order out, no I/O.
package wisdom

import (
	"sort"

	"qcorr/internal/correlate"
)

// Teaching is the user-facing form of a pattern match, annotated with
// its position in the prioritized list.
type Teaching struct {
	correlate.PatternMatch
	PriorityRank int `json:"priorityRank"` // 1-based
}

// Prioritize orders matches into teachings. The total order is:
// severity rank ascending (URGENT first), confidence descending, then
// the caller-supplied impact score (keyed by pattern name) descending.
// Remaining ties keep the detector registration order via stable sort.
func Prioritize(matches []correlate.PatternMatch, impact map[string]float64) []Teaching {
	teachings := make([]Teaching, len(matches))
	for i, m := range matches {
		teachings[i] = Teaching{PatternMatch: m}
	}

	sort.SliceStable(teachings, func(i, j int) bool {
		a, b := teachings[i], teachings[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() < b.Severity.Rank()
		}
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		return impact[a.PatternName] > impact[b.PatternName]
	})

	for i := range teachings {
		teachings[i].PriorityRank = i + 1
	}
	return teachings
}
