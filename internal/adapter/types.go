// Package adapter translates native analyzer reports into canonical
// findings. Each analyzer gets its own adapter; the canonical model in
// internal/finding stays closed so nothing downstream ever sees an
// analyzer-specific shape.
package adapter

import (
	"fmt"

	"qcorr/internal/finding"
)

// Report is the envelope both analyzers emit: identifying metadata, a
// flat map of numeric signal aggregates, and a list of native finding
// records. Records are kept as raw maps so analyzer-version-specific
// extension fields survive into Finding.RawEvidence untouched.
type Report struct {
	Analyzer    string                   `json:"analyzer" yaml:"analyzer" toml:"analyzer"`
	Version     string                   `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	GeneratedAt string                   `json:"generated_at,omitempty" yaml:"generated_at,omitempty" toml:"generated_at,omitempty"`
	Signals     map[string]float64       `json:"signals,omitempty" yaml:"signals,omitempty" toml:"signals,omitempty"`
	Findings    []map[string]interface{} `json:"findings" yaml:"findings" toml:"findings"`
}

// ParseOptions filters the adapter output. The zero value keeps every
// finding.
type ParseOptions struct {
	MinSeverity finding.Severity // "" = no severity filter
	Categories  []string         // nil = all categories
}

// ParseError reports a malformed native finding record. Parsing is
// all-or-nothing: one bad record rejects the whole report so the
// analyzer integration gets fixed instead of silently losing items.
type ParseError struct {
	Analyzer string
	Index    int
	Field    string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed %s report: finding %d field %q: %s", e.Analyzer, e.Index, e.Field, e.Reason)
}
