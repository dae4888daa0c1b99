package resolve

import (
	"path/filepath"
	"strings"
)

// defaultProtected lists path components a mutating resolver must
// never touch: version control state, build manifests, and qcorr's own
// working directory. Configuration can only add to this set.
var defaultProtected = []string{
	".git",
	".hg",
	".svn",
	".qcorr",
	"go.mod",
	"go.sum",
	"package.json",
	"Cargo.toml",
	"pyproject.toml",
	"LICENSE",
}

// guard checks mutation targets against the protected set.
type guard struct {
	protected []string
}

// newGuard builds a guard over the defaults plus any configured extra
// paths.
func newGuard(extra []string) *guard {
	protected := make([]string, 0, len(defaultProtected)+len(extra))
	protected = append(protected, defaultProtected...)
	protected = append(protected, extra...)
	return &guard{protected: protected}
}

// check returns an *UnsafeActionError when any component of path is
// protected, nil otherwise.
func (g *guard) check(path string) error {
	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == "." || clean == "/" || clean == "" {
		return &UnsafeActionError{Path: path}
	}

	for _, part := range strings.Split(clean, "/") {
		for _, p := range g.protected {
			if part == p {
				return &UnsafeActionError{Path: path}
			}
		}
	}
	return nil
}
