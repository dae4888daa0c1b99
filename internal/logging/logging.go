// Package logging provides the structured logger used across qcorr.
// Output is either JSON (one object per line, for CI consumption) or a
// human-readable single-line format.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// Level represents the severity of a log message.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var levelPriority = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := levelPriority[l]; ok {
		return l
	}
	return LevelInfo
}

// Format selects the log output encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatHuman Format = "human"
)

// Config holds logger configuration.
type Config struct {
	Format Format
	Level  Level
	Output io.Writer // defaults to stderr so command output stays clean
}

// Logger writes leveled, structured log lines.
type Logger struct {
	format Format
	min    Level
	out    io.Writer
}

// NewLogger creates a logger from config, applying defaults for any
// zero-valued field.
func NewLogger(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	min := cfg.Level
	if _, ok := levelPriority[min]; !ok {
		min = LevelInfo
	}
	format := cfg.Format
	if format != FormatJSON {
		format = FormatHuman
	}
	return &Logger{format: format, min: min, out: out}
}

type entry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

func (l *Logger) enabled(level Level) bool {
	return levelPriority[level] >= levelPriority[l.min]
}

func (l *Logger) write(level Level, message string, fields map[string]interface{}) {
	if !l.enabled(level) {
		return
	}

	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    fields,
	}

	if l.format == FormatJSON {
		data, err := json.Marshal(e)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log marshal failed: %v\n", err)
			return
		}
		fmt.Fprintln(l.out, string(data))
		return
	}

	var b strings.Builder
	b.WriteString(e.Timestamp)
	b.WriteString(" [")
	b.WriteString(e.Level)
	b.WriteString("] ")
	b.WriteString(e.Message)

	if len(fields) > 0 {
		// Sorted keys keep human output stable across runs.
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" |")
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, fields[k])
		}
	}
	fmt.Fprintln(l.out, b.String())
}

// Debug logs a debug message.
func (l *Logger) Debug(message string, fields map[string]interface{}) {
	l.write(LevelDebug, message, fields)
}

// Info logs an info message.
func (l *Logger) Info(message string, fields map[string]interface{}) {
	l.write(LevelInfo, message, fields)
}

// Warn logs a warning message.
func (l *Logger) Warn(message string, fields map[string]interface{}) {
	l.write(LevelWarn, message, fields)
}

// Error logs an error message.
func (l *Logger) Error(message string, fields map[string]interface{}) {
	l.write(LevelError, message, fields)
}
