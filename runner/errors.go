package runner

import "fmt"

// CycleError aggregates the execution failures of one Cycle pass. Generators
// that failed remain pending in the source cache.
type CycleError struct {
	Attempted int
	Errs      []error
}

func (e *CycleError) Error() string {
	if len(e.Errs) == 1 {
		return fmt.Sprintf("cycle: %d/%d generators failed: %v", 1, e.Attempted, e.Errs[0])
	}
	return fmt.Sprintf("cycle: %d/%d generators failed (first: %v)", len(e.Errs), e.Attempted, e.Errs[0])
}

func (e *CycleError) Unwrap() []error { return e.Errs }
