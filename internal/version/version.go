// Package version holds build-time version information for qcorr.
package version

// Overridable at build time:
// go build -ldflags "-X qcorr/internal/version.Version=1.2.0 -X qcorr/internal/version.Commit=abc123"
var (
	// Version is the semantic version of qcorr.
	Version = "0.4.0"

	// Commit is the git commit hash (set at build time).
	Commit = "unknown"

	// BuildDate is the build timestamp (set at build time).
	BuildDate = "unknown"
)

// Info returns a short version string for display.
func Info() string {
	if Commit != "unknown" && len(Commit) > 7 {
		return Version + " (" + Commit[:7] + ")"
	}
	return Version
}

// Full returns complete version information.
func Full() string {
	return "qcorr version " + Version + "\n" +
		"Commit: " + Commit + "\n" +
		"Built: " + BuildDate
}
