package resolve

import (
	"fmt"
	"os"
	"path/filepath"

	"qcorr/internal/finding"
)

// Resolver attempts automated remediation for findings it declares
// capability for. Resolve never panics and never guesses: anything it
// cannot do safely comes back as a PARTIAL or FAILED result.
type Resolver interface {
	Name() string
	CanResolve(f finding.Finding) bool
	Resolve(req ResolutionRequest) ResolutionResult
}

// absPath anchors a report-relative path at the request's module root.
func absPath(req ResolutionRequest, path string) string {
	if req.ModulePath == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(req.ModulePath, path)
}

// moveFile performs the mkdir+rename pair behind every move/archive
// action. Callers have already passed the safety check.
func moveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return &ResolutionError{Op: "mkdir", Err: err}
	}
	if err := os.Rename(src, dst); err != nil {
		return &ResolutionError{Op: "move", Err: err}
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func errNotFound(path string) error {
	return fmt.Errorf("%s does not exist", path)
}

func failed(name string, req ResolutionRequest, errs ...error) ResolutionResult {
	messages := make([]string, len(errs))
	for i, err := range errs {
		messages[i] = err.Error()
	}
	return ResolutionResult{
		Status:   StatusFailed,
		Resolver: name,
		Category: req.Finding.Category,
		Target:   req.TargetPath(),
		Errors:   messages,
	}
}

func partial(name string, req ResolutionRequest, err error) ResolutionResult {
	return ResolutionResult{
		Status:   StatusPartial,
		Resolver: name,
		Category: req.Finding.Category,
		Target:   req.TargetPath(),
		Errors:   []string{err.Error()},
	}
}

func completed(name string, req ResolutionRequest, actions []Action) ResolutionResult {
	return ResolutionResult{
		Status:   StatusCompleted,
		Resolver: name,
		Category: req.Finding.Category,
		Target:   req.TargetPath(),
		Actions:  actions,
	}
}
