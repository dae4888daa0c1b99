package resolve

import (
	"os"
	"path/filepath"

	"qcorr/internal/finding"
)

// ObsoleteFileResolver retires superseded files. The safe default is
// archiving (a move into the archive directory); deletion happens only
// when the recommendation explicitly asks for it.
type ObsoleteFileResolver struct {
	archiveDir string
	guard      *guard
}

// NewObsoleteFileResolver creates a resolver that archives obsolete
// files under archiveDir.
func NewObsoleteFileResolver(archiveDir string, g *guard) *ObsoleteFileResolver {
	if archiveDir == "" {
		archiveDir = ".archive"
	}
	return &ObsoleteFileResolver{archiveDir: archiveDir, guard: g}
}

func (r *ObsoleteFileResolver) Name() string {
	return "obsolete-files"
}

func (r *ObsoleteFileResolver) CanResolve(f finding.Finding) bool {
	switch f.Category {
	case "obsolete_file", "superseded_file":
		return true
	}
	return false
}

func (r *ObsoleteFileResolver) Resolve(req ResolutionRequest) ResolutionResult {
	verb := "archive"
	src := req.TargetPath()

	if rec := req.Finding.Recommendation; rec != "" {
		cmd, err := parseRecommendation(rec)
		if err != nil {
			return partial(r.Name(), req, err)
		}
		switch cmd.Verb {
		case "archive", "delete":
			verb = cmd.Verb
			src = cmd.Source
		default:
			return partial(r.Name(), req, &UnclearRecommendationError{Text: rec})
		}
	}

	if src == "" {
		return partial(r.Name(), req, &UnclearRecommendationError{Text: "(no recommendation and no target file)"})
	}
	if err := r.guard.check(src); err != nil {
		return failed(r.Name(), req, err)
	}

	absSrc := absPath(req, src)
	if !fileExists(absSrc) {
		return failed(r.Name(), req, &ResolutionError{Op: "stat", Err: errNotFound(src)})
	}

	if verb == "delete" {
		actions := []Action{{Op: "delete", Path: src}}
		if !req.DryRun {
			if err := os.Remove(absSrc); err != nil {
				return failed(r.Name(), req, &ResolutionError{Op: "delete", Err: err})
			}
		}
		return completed(r.Name(), req, actions)
	}

	dst := filepath.Join(r.archiveDir, filepath.Base(src))
	if err := r.guard.check(dst); err != nil {
		return failed(r.Name(), req, err)
	}
	actions := []Action{
		{Op: "mkdir", Path: r.archiveDir},
		{Op: "archive", Path: src, Dest: dst},
	}
	if !req.DryRun {
		if err := moveFile(absSrc, absPath(req, dst)); err != nil {
			return failed(r.Name(), req, err)
		}
	}
	return completed(r.Name(), req, actions)
}
