package resolve

import (
	"path/filepath"

	"qcorr/internal/finding"
)

// DocumentResolver relocates documents that live outside the docs
// tree. It handles the scattered_documents and misplaced_document
// categories and only ever performs moves.
type DocumentResolver struct {
	docsDir string
	guard   *guard
}

// NewDocumentResolver creates a document resolver that moves stray
// documents under docsDir.
func NewDocumentResolver(docsDir string, g *guard) *DocumentResolver {
	if docsDir == "" {
		docsDir = "docs"
	}
	return &DocumentResolver{docsDir: docsDir, guard: g}
}

func (r *DocumentResolver) Name() string {
	return "documents"
}

func (r *DocumentResolver) CanResolve(f finding.Finding) bool {
	switch f.Category {
	case "scattered_documents", "misplaced_document":
		return true
	}
	return false
}

// Resolve moves the document to where the recommendation says, or into
// the docs directory when the finding carries no recommendation.
func (r *DocumentResolver) Resolve(req ResolutionRequest) ResolutionResult {
	src, dst, err := r.plan(req)
	if err != nil {
		return partial(r.Name(), req, err)
	}

	if err := r.guard.check(src); err != nil {
		return failed(r.Name(), req, err)
	}
	if err := r.guard.check(dst); err != nil {
		return failed(r.Name(), req, err)
	}

	absSrc := absPath(req, src)
	absDst := absPath(req, dst)
	if !fileExists(absSrc) {
		return failed(r.Name(), req, &ResolutionError{Op: "stat", Err: errNotFound(src)})
	}

	actions := []Action{
		{Op: "mkdir", Path: filepath.Dir(dst)},
		{Op: "move", Path: src, Dest: dst},
	}

	if !req.DryRun {
		if err := moveFile(absSrc, absDst); err != nil {
			return failed(r.Name(), req, err)
		}
	}

	return completed(r.Name(), req, actions)
}

// plan resolves the source and destination for the move without
// touching the filesystem.
func (r *DocumentResolver) plan(req ResolutionRequest) (src, dst string, err error) {
	rec := req.Finding.Recommendation
	if rec != "" {
		cmd, err := parseRecommendation(rec)
		if err != nil {
			return "", "", err
		}
		if cmd.Verb != "move" {
			return "", "", &UnclearRecommendationError{Text: rec}
		}
		return cmd.Source, cmd.Dest, nil
	}

	target := req.TargetPath()
	if target == "" {
		return "", "", &UnclearRecommendationError{Text: "(no recommendation and no target file)"}
	}
	return target, filepath.Join(r.docsDir, filepath.Base(target)), nil
}
