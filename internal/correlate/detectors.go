package correlate

// Signal keys emitted by the structural analyzer.
const (
	SignalDIViolations    = "di_violations"
	SignalGodObjects      = "god_objects"
	SignalCircularDeps    = "circular_dependencies"
	SignalDuplicateBlocks = "duplicate_blocks"
	SignalDeadSymbols     = "dead_symbols"
	SignalUndocumented    = "undocumented_modules"
)

// Signal keys emitted by the test-metrics analyzer.
const (
	SignalFlakyTests        = "flaky_tests"
	SignalSlowTests         = "slow_tests"
	SignalIsolationFailures = "isolation_failures"
	SignalCopiedTests       = "copied_test_blocks"
	SignalSkippedTests      = "skipped_tests"
	SignalUnclearTestNames  = "unclear_test_names"
)

// NewHardWiredDependencyDetector correlates hard-wired dependency
// violations with flaky tests. Code that constructs its own
// collaborators cannot be isolated under test, which is the classic
// source of intermittent failures.
func NewHardWiredDependencyDetector(threshold float64) Detector {
	return &pairDetector{
		name:            "hardwired_deps_flaky_tests",
		structuralKey:   SignalDIViolations,
		metricsKey:      SignalFlakyTests,
		severity:        SeverityUrgent,
		rootCause:       "components construct their own collaborators, so tests share hidden state and flap",
		recommendation:  "introduce constructor injection at the flagged call sites, then re-run the flaky set in isolation",
		estimatedEffort: "2-4 hours per component",
		combinedValue:   "fixing injection removes the flake source instead of quarantining symptoms test by test",
		threshold:       threshold,
	}
}

// NewGodObjectDetector correlates oversized types with slow tests:
// a type that does everything forces tests to set up everything.
func NewGodObjectDetector(threshold float64) Detector {
	return &pairDetector{
		name:            "god_objects_slow_tests",
		structuralKey:   SignalGodObjects,
		metricsKey:      SignalSlowTests,
		severity:        SeverityHigh,
		rootCause:       "oversized types drag their whole dependency graph into every test setup",
		recommendation:  "split the flagged types along their responsibility seams before optimizing any individual test",
		estimatedEffort: "1-2 days per type",
		combinedValue:   "smaller types shrink both production coupling and test fixture cost in one refactor",
		threshold:       threshold,
	}
}

// NewCircularDependencyDetector correlates import cycles with test
// isolation failures: cycles make partial initialization orders leak
// between tests.
func NewCircularDependencyDetector(threshold float64) Detector {
	return &pairDetector{
		name:            "circular_deps_isolation_failures",
		structuralKey:   SignalCircularDeps,
		metricsKey:      SignalIsolationFailures,
		severity:        SeverityHigh,
		rootCause:       "import cycles force shared initialization, so tests pass alone and fail together",
		recommendation:  "break the cycles with an interface at the narrowest edge, then re-run the failing pairs",
		estimatedEffort: "half a day per cycle",
		combinedValue:   "acyclic modules make test order irrelevant and unblock parallel test execution",
		threshold:       threshold,
	}
}

// NewDuplicateCodeDetector correlates duplicated production blocks
// with copy-pasted test blocks.
func NewDuplicateCodeDetector(threshold float64) Detector {
	return &pairDetector{
		name:            "duplicate_code_copied_tests",
		structuralKey:   SignalDuplicateBlocks,
		metricsKey:      SignalCopiedTests,
		severity:        SeverityMedium,
		rootCause:       "duplicated logic gets duplicated tests, so every fix must land in multiple places",
		recommendation:  "extract the shared block once and collapse its copied tests into one table-driven test",
		estimatedEffort: "2-3 hours per block",
		combinedValue:   "one extraction removes both the drift risk in code and the double maintenance in tests",
		threshold:       threshold,
	}
}

// NewDeadCodeDetector correlates dead symbols with skipped tests:
// both are abandoned surface that hides real regressions.
func NewDeadCodeDetector(threshold float64) Detector {
	return &pairDetector{
		name:            "dead_code_skipped_tests",
		structuralKey:   SignalDeadSymbols,
		metricsKey:      SignalSkippedTests,
		severity:        SeverityMedium,
		rootCause:       "unreferenced code and permanently skipped tests point at the same abandoned features",
		recommendation:  "delete the dead symbols together with their skipped tests in a single sweep",
		estimatedEffort: "1-2 hours",
		combinedValue:   "removing both at once keeps coverage numbers honest and the build fast",
		threshold:       threshold,
	}
}

// NewDocumentationGapDetector correlates undocumented modules with
// unclear test names: when intent is written down nowhere, tests stop
// explaining behavior too.
func NewDocumentationGapDetector(threshold float64) Detector {
	return &pairDetector{
		name:            "doc_gaps_unclear_test_names",
		structuralKey:   SignalUndocumented,
		metricsKey:      SignalUnclearTestNames,
		severity:        SeverityLow,
		rootCause:       "modules without stated intent breed tests whose names describe mechanics, not behavior",
		recommendation:  "write the module doc comment first, then rename its tests after the behaviors it promises",
		estimatedEffort: "30 minutes per module",
		combinedValue:   "documented intent makes both the code reviewable and the test suite readable as a spec",
		threshold:       threshold,
	}
}

// DefaultDetectors returns the standard detector set in registration
// order. Order never changes which matches are found, only their
// pre-prioritization output position.
func DefaultDetectors(threshold float64) []Detector {
	return []Detector{
		NewHardWiredDependencyDetector(threshold),
		NewGodObjectDetector(threshold),
		NewCircularDependencyDetector(threshold),
		NewDuplicateCodeDetector(threshold),
		NewDeadCodeDetector(threshold),
		NewDocumentationGapDetector(threshold),
	}
}
