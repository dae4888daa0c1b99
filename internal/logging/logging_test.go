package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" warn ", LevelWarn},
		{"error", LevelError},
		{"verbose", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelGate(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: FormatHuman, Level: LevelWarn, Output: &buf})

	logger.Debug("not shown", nil)
	logger.Info("not shown", nil)
	logger.Warn("shown", nil)
	logger.Error("also shown", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "[warn] shown") {
		t.Errorf("first line = %q, want warn entry", lines[0])
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: FormatJSON, Level: LevelInfo, Output: &buf})

	logger.Info("batch complete", map[string]interface{}{"total": 3, "resolved": 2})

	var e struct {
		Level   string                 `json:"level"`
		Message string                 `json:"message"`
		Fields  map[string]interface{} `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if e.Level != "info" || e.Message != "batch complete" {
		t.Errorf("entry = %+v", e)
	}
	if e.Fields["total"] != float64(3) {
		t.Errorf("fields[total] = %v, want 3", e.Fields["total"])
	}
}

func TestHumanFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: FormatHuman, Level: LevelInfo, Output: &buf})

	logger.Info("msg", map[string]interface{}{"zebra": 1, "alpha": 2, "mid": 3})

	line := buf.String()
	ia := strings.Index(line, "alpha=")
	im := strings.Index(line, "mid=")
	iz := strings.Index(line, "zebra=")
	if ia < 0 || im < 0 || iz < 0 || !(ia < im && im < iz) {
		t.Errorf("fields not sorted in output: %q", line)
	}
}

func TestDefaults(t *testing.T) {
	logger := NewLogger(Config{})
	if logger.min != LevelInfo {
		t.Errorf("default level = %q, want info", logger.min)
	}
	if logger.format != FormatHuman {
		t.Errorf("default format = %q, want human", logger.format)
	}
}
