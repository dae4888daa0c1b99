package resolve

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRecommendation(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    command
		wantErr bool
	}{
		{
			name: "move to",
			text: "move NOTES.md to docs/NOTES.md",
			want: command{Verb: "move", Source: "NOTES.md", Dest: "docs/NOTES.md"},
		},
		{
			name: "move into",
			text: "Move plan.md into docs/plan.md",
			want: command{Verb: "move", Source: "plan.md", Dest: "docs/plan.md"},
		},
		{
			name: "archive",
			text: "archive main_old.go",
			want: command{Verb: "archive", Source: "main_old.go"},
		},
		{
			name: "delete",
			text: "delete tmp.bak",
			want: command{Verb: "delete", Source: "tmp.bak"},
		},
		{
			name: "remove alias",
			text: "remove tmp.bak",
			want: command{Verb: "delete", Source: "tmp.bak"},
		},
		{
			name: "split short form",
			text: "split scripts by extension",
			want: command{Verb: "split", Source: "scripts"},
		},
		{
			name: "split long form",
			text: "split directory scripts by extension",
			want: command{Verb: "split", Source: "scripts"},
		},
		{name: "free text", text: "fix this", wantErr: true},
		{name: "empty", text: "", wantErr: true},
		{name: "move missing dest", text: "move NOTES.md", wantErr: true},
		{name: "move wrong connective", text: "move NOTES.md at docs/", wantErr: true},
		{name: "unknown verb", text: "refactor everything now", wantErr: true},
		{name: "delete with extra words", text: "delete the file tmp.bak", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRecommendation(tt.text)
			if tt.wantErr {
				var uerr *UnclearRecommendationError
				if !errors.As(err, &uerr) {
					t.Fatalf("parseRecommendation(%q) error = %v, want *UnclearRecommendationError", tt.text, err)
				}
				if !strings.Contains(uerr.Error(), "unclear") {
					t.Errorf("error message %q should contain \"unclear\"", uerr.Error())
				}
				if uerr.Text != tt.text {
					t.Errorf("error should preserve text verbatim: got %q", uerr.Text)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRecommendation(%q) error = %v", tt.text, err)
			}
			if *got != tt.want {
				t.Errorf("parseRecommendation(%q) = %+v, want %+v", tt.text, *got, tt.want)
			}
		})
	}
}

func TestGuardProtectedPaths(t *testing.T) {
	g := newGuard([]string{"generated"})

	tests := []struct {
		path   string
		unsafe bool
	}{
		{"docs/plan.md", false},
		{".git/config", true},
		{"src/.git", true},
		{"go.mod", true},
		{"nested/go.sum", true},
		{".qcorr/config.json", true},
		{"generated/api.go", true}, // configured extra
		{"scripts/build.sh", false},
		{".", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := g.check(tt.path)
			if tt.unsafe {
				var uerr *UnsafeActionError
				if !errors.As(err, &uerr) {
					t.Fatalf("check(%q) = %v, want *UnsafeActionError", tt.path, err)
				}
				if !strings.Contains(uerr.Error(), "unsafe action") {
					t.Errorf("error %q should mention unsafe action", uerr.Error())
				}
			} else if err != nil {
				t.Errorf("check(%q) = %v, want nil", tt.path, err)
			}
		})
	}
}
