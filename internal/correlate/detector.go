package correlate

// DefaultConfidenceThreshold is the minimum confidence at which a
// detector emits a match. The min/max ratio and this cutoff are
// deliberate tunables, not fixed laws; the engine accepts overrides.
const DefaultConfidenceThreshold = 0.5

// Detector inspects the two signal snapshots and either abstains (nil)
// or emits a match with a confidence score. Detectors never observe
// each other's output.
type Detector interface {
	Name() string
	Detect(structural, metrics Signals) *PatternMatch
}

// ratioConfidence scores how closely two magnitudes agree: min/max,
// symmetric, in (0,1]. Near-equal counts from two independent analyzers
// are stronger evidence of a shared root cause than lopsided ones.
func ratioConfidence(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a < b {
		return a / b
	}
	return b / a
}

// pairDetector correlates one structural signal with one test signal.
// All concrete detectors are instances of this with domain knowledge
// baked into the descriptive fields.
type pairDetector struct {
	name            string
	structuralKey   string
	metricsKey      string
	severity        Severity
	rootCause       string
	recommendation  string
	estimatedEffort string
	combinedValue   string
	threshold       float64
}

func (d *pairDetector) Name() string {
	return d.name
}

// Detect abstains when either metric is zero or absent: a correlation
// needs evidence on both sides. Below-threshold confidence also
// abstains; the threshold boundary itself is inclusive.
func (d *pairDetector) Detect(structural, metrics Signals) *PatternMatch {
	a := structural[d.structuralKey]
	b := metrics[d.metricsKey]
	if a <= 0 || b <= 0 {
		return nil
	}

	confidence := ratioConfidence(a, b)
	if confidence < d.threshold {
		return nil
	}

	return &PatternMatch{
		PatternName:     d.name,
		Confidence:      confidence,
		Severity:        d.severity,
		EvidenceA:       a,
		EvidenceB:       b,
		RootCause:       d.rootCause,
		Recommendation:  d.recommendation,
		EstimatedEffort: d.estimatedEffort,
		CombinedValue:   d.combinedValue,
	}
}
