package correlate

import (
	"qcorr/internal/logging"
)

// Engine runs a fixed, explicitly constructed detector list against a
// pair of signal snapshots. There is no global registry: callers build
// an Engine with exactly the detectors they want, which keeps tests
// isolated and makes adding a detector a pure append.
type Engine struct {
	detectors []Detector
	logger    *logging.Logger
}

// NewEngine creates an engine over the given detectors. Detector order
// is preserved; it determines output order before prioritization and
// nothing else.
func NewEngine(detectors []Detector, logger *logging.Logger) *Engine {
	return &Engine{detectors: detectors, logger: logger}
}

// NewDefaultEngine creates an engine with the standard detector set at
// the given confidence threshold (<= 0 selects the default).
func NewDefaultEngine(threshold float64, logger *logging.Logger) *Engine {
	if threshold <= 0 {
		threshold = DefaultConfidenceThreshold
	}
	return NewEngine(DefaultDetectors(threshold), logger)
}

// Detectors returns the registered detector names in order.
func (e *Engine) Detectors() []string {
	names := make([]string, len(e.detectors))
	for i, d := range e.detectors {
		names[i] = d.Name()
	}
	return names
}

// DetectPatterns runs every detector independently over the two
// snapshots and collects all non-abstaining matches, in detector
// registration order.
func (e *Engine) DetectPatterns(structural, metrics Signals) []PatternMatch {
	matches := make([]PatternMatch, 0, len(e.detectors))
	for _, d := range e.detectors {
		match := d.Detect(structural, metrics)
		if match == nil {
			continue
		}
		if e.logger != nil {
			e.logger.Debug("pattern detected", map[string]interface{}{
				"pattern":    match.PatternName,
				"confidence": match.Confidence,
				"severity":   string(match.Severity),
			})
		}
		matches = append(matches, *match)
	}
	return matches
}
