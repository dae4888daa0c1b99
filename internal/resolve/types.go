// Package resolve routes findings through an ordered resolver pipeline
// that attempts automated remediation. Resolvers are conservative by
// contract: an instruction they cannot interpret safely becomes a
// PARTIAL or FAILED result, never a guessed action and never a panic,
// because unattended batches must survive any single bad input.
package resolve

import (
	"qcorr/internal/finding"
)

// Status is the outcome of one resolution attempt.
type Status string

const (
	StatusCompleted Status = "COMPLETED"
	StatusPartial   Status = "PARTIAL"
	StatusFailed    Status = "FAILED"
	StatusSkipped   Status = "SKIPPED"
)

// Action describes one concrete step a resolver took, or would take in
// dry-run. Dry-run and real execution of the same request produce
// identical action lists.
type Action struct {
	Op   string `json:"op"`             // move | archive | delete | mkdir
	Path string `json:"path"`           // target of the operation
	Dest string `json:"dest,omitempty"` // destination for move/archive
}

// ResolutionRequest is one finding plus the execution context a
// resolver needs to act on it.
type ResolutionRequest struct {
	Finding    finding.Finding `json:"finding"`
	DryRun     bool            `json:"dryRun"`
	ModulePath string          `json:"modulePath,omitempty"` // working tree root the paths are relative to
	FilePath   string          `json:"filePath,omitempty"`   // overrides Finding.File when set
}

// TargetPath returns the path the resolver should act on.
func (r ResolutionRequest) TargetPath() string {
	if r.FilePath != "" {
		return r.FilePath
	}
	return r.Finding.File
}

// ResolutionResult is the outcome of one request.
// StatusCompleted implies Errors is empty.
type ResolutionResult struct {
	Status   Status   `json:"status"`
	Resolver string   `json:"resolver,omitempty"`
	Category string   `json:"category"`
	Target   string   `json:"target,omitempty"`
	Actions  []Action `json:"actions,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// BatchResult aggregates one batch invocation. Results preserves
// request input order. Resolved counts COMPLETED outcomes only;
// Failed counts FAILED and PARTIAL.
type BatchResult struct {
	BatchID     string             `json:"batchId"`
	DryRun      bool               `json:"dryRun"`
	Total       int                `json:"total"`
	Resolved    int                `json:"resolved"`
	Failed      int                `json:"failed"`
	Skipped     int                `json:"skipped"`
	SuccessRate float64            `json:"successRate"`
	Results     []ResolutionResult `json:"results"`
}
