package resolve

import "fmt"

// UnsafeActionError means a mutating resolver detected a protected
// target. The action is never attempted.
type UnsafeActionError struct {
	Path string
}

func (e *UnsafeActionError) Error() string {
	return fmt.Sprintf("unsafe action: %q is a protected path", e.Path)
}

// UnclearRecommendationError means the free-text recommendation did
// not map to a known safe action. The verbatim text is preserved so a
// human can review what the analyzer asked for.
type UnclearRecommendationError struct {
	Text string
}

func (e *UnclearRecommendationError) Error() string {
	return fmt.Sprintf("unclear recommendation: %q does not map to a known action", e.Text)
}

// ResolutionError wraps any other per-item failure. It is captured in
// the item's result and never aborts the batch.
type ResolutionError struct {
	Op  string
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolution failed during %s: %v", e.Op, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
