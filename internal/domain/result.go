package domain

// TestResult holds the accumulated outcome of one test case
type TestResult struct {
	TestName       string              `json:"test_name"`
	ExecutedChecks int                 `json:"executed_checks"` // incremented on every check, pass or fail
	FailedChecks   []FailedCheck       `json:"failed_checks,omitempty"`
	Exceptions     []CapturedException `json:"exceptions,omitempty"`
}

// Status classifies the result. A captured exception outranks failed checks,
// which outrank a clean pass; a case that executed nothing is not performed.
func (r TestResult) Status() Status {
	switch {
	case len(r.Exceptions) > 0:
		return StatusException
	case len(r.FailedChecks) > 0:
		return StatusFailed
	case r.ExecutedChecks > 0:
		return StatusPassed
	default:
		return StatusNotPerformed
	}
}

// Clone returns a deep copy, so callers can hold on to a result without
// aliasing the slices the owning case keeps writing to during its run.
func (r TestResult) Clone() TestResult {
	out := r
	if r.FailedChecks != nil {
		out.FailedChecks = make([]FailedCheck, len(r.FailedChecks))
		copy(out.FailedChecks, r.FailedChecks)
	}
	if r.Exceptions != nil {
		out.Exceptions = make([]CapturedException, len(r.Exceptions))
		copy(out.Exceptions, r.Exceptions)
	}
	return out
}
