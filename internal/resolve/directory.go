package resolve

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"qcorr/internal/finding"
)

// DirectoryResolver splits bloated flat directories into per-extension
// subdirectories. Planning reads the directory listing; only the moves
// themselves are gated on dry-run.
type DirectoryResolver struct {
	guard *guard
}

// NewDirectoryResolver creates a resolver for the bloated_directory
// category.
func NewDirectoryResolver(g *guard) *DirectoryResolver {
	return &DirectoryResolver{guard: g}
}

func (r *DirectoryResolver) Name() string {
	return "directories"
}

func (r *DirectoryResolver) CanResolve(f finding.Finding) bool {
	return f.Category == "bloated_directory"
}

func (r *DirectoryResolver) Resolve(req ResolutionRequest) ResolutionResult {
	dir := req.TargetPath()

	if rec := req.Finding.Recommendation; rec != "" {
		cmd, err := parseRecommendation(rec)
		if err != nil {
			return partial(r.Name(), req, err)
		}
		if cmd.Verb != "split" {
			return partial(r.Name(), req, &UnclearRecommendationError{Text: rec})
		}
		dir = cmd.Source
	}

	if dir == "" {
		return partial(r.Name(), req, &UnclearRecommendationError{Text: "(no recommendation and no target directory)"})
	}
	if err := r.guard.check(dir); err != nil {
		return failed(r.Name(), req, err)
	}

	absDir := absPath(req, dir)
	entries, err := os.ReadDir(absDir)
	if err != nil {
		return failed(r.Name(), req, &ResolutionError{Op: "readdir", Err: err})
	}

	actions := planSplit(dir, entries)
	if len(actions) == 0 {
		// Nothing loose to organize; treat as done rather than failing
		// an already-clean directory.
		return completed(r.Name(), req, nil)
	}

	// Every planned path must clear the guard, dry-run included: a
	// protected file inside the directory vetoes the whole split.
	for _, a := range actions {
		if err := r.guard.check(a.Path); err != nil {
			return failed(r.Name(), req, err)
		}
		if a.Dest != "" {
			if err := r.guard.check(a.Dest); err != nil {
				return failed(r.Name(), req, err)
			}
		}
	}

	if !req.DryRun {
		for _, a := range actions {
			switch a.Op {
			case "mkdir":
				if err := os.MkdirAll(absPath(req, a.Path), 0755); err != nil {
					return failed(r.Name(), req, &ResolutionError{Op: "mkdir", Err: err})
				}
			case "move":
				if err := os.Rename(absPath(req, a.Path), absPath(req, a.Dest)); err != nil {
					return failed(r.Name(), req, &ResolutionError{Op: "move", Err: err})
				}
			}
		}
	}

	return completed(r.Name(), req, actions)
}

// planSplit produces the deterministic action list for one split:
// extensions sorted, then files sorted within each extension.
func planSplit(dir string, entries []os.DirEntry) []Action {
	groups := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		groups[subdirFor(entry.Name())] = append(groups[subdirFor(entry.Name())], entry.Name())
	}

	subdirs := make([]string, 0, len(groups))
	for sub := range groups {
		subdirs = append(subdirs, sub)
	}
	sort.Strings(subdirs)

	var actions []Action
	for _, sub := range subdirs {
		files := groups[sub]
		sort.Strings(files)
		actions = append(actions, Action{Op: "mkdir", Path: filepath.Join(dir, sub)})
		for _, name := range files {
			actions = append(actions, Action{
				Op:   "move",
				Path: filepath.Join(dir, name),
				Dest: filepath.Join(dir, sub, name),
			})
		}
	}
	return actions
}

// subdirFor names the subdirectory a file is filed under.
func subdirFor(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "misc"
	}
	return ext
}
