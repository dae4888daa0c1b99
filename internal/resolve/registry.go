package resolve

import (
	"fmt"

	"github.com/google/uuid"

	"qcorr/internal/adapter"
	"qcorr/internal/finding"
	"qcorr/internal/logging"
)

// Registry dispatches findings to an ordered resolver list.
// Registration order is precedence order: the first resolver whose
// CanResolve returns true wins. Registries are built explicitly by the
// caller; there is no package-level registration.
type Registry struct {
	resolvers []Resolver
	logger    *logging.Logger
}

// NewRegistry creates a registry over the given resolvers, in
// precedence order.
func NewRegistry(logger *logging.Logger, resolvers ...Resolver) *Registry {
	return &Registry{resolvers: resolvers, logger: logger}
}

// DefaultOptions configures the standard resolver set.
type DefaultOptions struct {
	DocsDir        string
	ArchiveDir     string
	ProtectedPaths []string // extra protected paths on top of the built-ins
}

// NewDefaultRegistry builds a registry with the standard resolvers:
// documents, then obsolete files, then directories.
func NewDefaultRegistry(opts DefaultOptions, logger *logging.Logger) *Registry {
	g := newGuard(opts.ProtectedPaths)
	return NewRegistry(logger,
		NewDocumentResolver(opts.DocsDir, g),
		NewObsoleteFileResolver(opts.ArchiveDir, g),
		NewDirectoryResolver(g),
	)
}

// Register appends a resolver at the lowest precedence.
func (r *Registry) Register(resolver Resolver) {
	r.resolvers = append(r.resolvers, resolver)
}

// GetResolver returns the first resolver capable of handling the
// finding, or nil when none match. A nil result is not an error: the
// caller records the finding as SKIPPED.
func (r *Registry) GetResolver(f finding.Finding) Resolver {
	for _, resolver := range r.resolvers {
		if resolver.CanResolve(f) {
			return resolver
		}
	}
	return nil
}

// ResolveOne resolves a single request, returning SKIPPED when no
// registered resolver can handle the finding.
func (r *Registry) ResolveOne(req ResolutionRequest) ResolutionResult {
	resolver := r.GetResolver(req.Finding)
	if resolver == nil {
		return ResolutionResult{
			Status:   StatusSkipped,
			Category: req.Finding.Category,
			Target:   req.TargetPath(),
		}
	}
	return r.resolveSafe(resolver, req)
}

// resolveSafe isolates a panicking resolver into a FAILED result so
// one bad input can never take down the batch.
func (r *Registry) resolveSafe(resolver Resolver, req ResolutionRequest) (result ResolutionResult) {
	defer func() {
		if p := recover(); p != nil {
			if r.logger != nil {
				r.logger.Error("resolver panicked", map[string]interface{}{
					"resolver": resolver.Name(),
					"category": req.Finding.Category,
					"panic":    fmt.Sprintf("%v", p),
				})
			}
			result = failed(resolver.Name(), req, fmt.Errorf("resolver panicked: %v", p))
		}
	}()
	return resolver.Resolve(req)
}

// BatchOptions configures one ResolveBatch invocation.
type BatchOptions struct {
	MinSeverity finding.Severity // "" = no filter
	DryRun      bool
}

// ResolveBatch filters the requests by severity, resolves each one
// independently, and aggregates the outcome. A failure in one request
// never aborts the rest, and Results preserves input order.
func (r *Registry) ResolveBatch(requests []ResolutionRequest, opts BatchOptions) BatchResult {
	batch := BatchResult{
		BatchID: uuid.NewString(),
		DryRun:  opts.DryRun,
		Results: make([]ResolutionResult, 0, len(requests)),
	}

	for _, req := range requests {
		if opts.MinSeverity != "" && !req.Finding.Severity.AtLeast(opts.MinSeverity) {
			continue
		}
		req.DryRun = opts.DryRun

		result := r.ResolveOne(req)
		batch.Results = append(batch.Results, result)
		batch.Total++
		switch result.Status {
		case StatusCompleted:
			batch.Resolved++
		case StatusSkipped:
			batch.Skipped++
		default:
			batch.Failed++
		}
	}

	if batch.Total > 0 {
		batch.SuccessRate = float64(batch.Resolved) / float64(batch.Total)
	}

	if r.logger != nil {
		r.logger.Info("batch complete", map[string]interface{}{
			"batchId":     batch.BatchID,
			"dryRun":      batch.DryRun,
			"total":       batch.Total,
			"resolved":    batch.Resolved,
			"failed":      batch.Failed,
			"skipped":     batch.Skipped,
			"successRate": batch.SuccessRate,
		})
	}
	return batch
}

// ProcessOptions configures an end-to-end ProcessReport call.
type ProcessOptions struct {
	MinSeverity finding.Severity
	Categories  []string
	DryRun      bool
	ModulePath  string // working tree root the report paths are relative to
}

// ProcessReport is the end-to-end entry point used by CLIs and
// pre-commit hooks: parse the native report through the adapter, build
// one request per finding, and resolve the batch. Parse errors are
// fatal and surfaced immediately; resolution errors are per-item.
func (r *Registry) ProcessReport(report *adapter.Report, a *adapter.Adapter, opts ProcessOptions) (BatchResult, error) {
	findings, err := a.Parse(report, adapter.ParseOptions{
		MinSeverity: opts.MinSeverity,
		Categories:  opts.Categories,
	})
	if err != nil {
		return BatchResult{}, err
	}

	requests := make([]ResolutionRequest, len(findings))
	for i, f := range findings {
		requests[i] = ResolutionRequest{
			Finding:    f,
			ModulePath: opts.ModulePath,
		}
	}

	// Severity filtering already happened in Parse; the batch call
	// only applies the dry-run flag.
	return r.ResolveBatch(requests, BatchOptions{DryRun: opts.DryRun}), nil
}
