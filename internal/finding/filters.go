package finding

// FilterBySeverity returns the findings at or above min severity.
// Input order is preserved; the input slice is never modified.
func FilterBySeverity(findings []Finding, min Severity) []Finding {
	out := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if f.Severity.AtLeast(min) {
			out = append(out, f)
		}
	}
	return out
}

// FilterByCategory returns the findings with the given category,
// preserving input order.
func FilterByCategory(findings []Finding, category string) []Finding {
	out := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

// GroupByCategory buckets findings by category. Within each bucket the
// original order is preserved.
func GroupByCategory(findings []Finding) map[string][]Finding {
	groups := make(map[string][]Finding)
	for _, f := range findings {
		groups[f.Category] = append(groups[f.Category], f)
	}
	return groups
}

// Summary counts findings per severity. All four severity keys are
// always present, zero-filled when empty.
func Summary(findings []Finding) map[Severity]int {
	counts := map[Severity]int{
		SeverityCritical: 0,
		SeverityHigh:     0,
		SeverityMedium:   0,
		SeverityLow:      0,
	}
	for _, f := range findings {
		counts[f.Severity]++
	}
	return counts
}
