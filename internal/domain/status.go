package domain

// Status is the report classification of a test case
type Status int

const (
	// StatusNotPerformed marks a case that executed no checks and raised nothing
	StatusNotPerformed Status = iota
	// StatusPassed marks a case where every executed check passed
	StatusPassed
	// StatusFailed marks a case with at least one failed check
	StatusFailed
	// StatusException marks a case whose body ended with a captured exception
	StatusException
)

// String returns the label used in report tables and stored records
func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "PASSED"
	case StatusFailed:
		return "FAILED"
	case StatusException:
		return "EXCEPTION"
	default:
		return "NOT PERFORMED"
	}
}

// Summary aggregates the outcome counts of a whole run
type Summary struct {
	TotalCases     int
	ExecutedCases  int
	ExecutedChecks int
	FailedChecks   int
	Passed         int
	Failed         int
	Exceptions     int
	NotPerformed   int
}

// Success reports whether the run counts as an overall success, which is
// defined as zero failed checks. A run where every case executed zero checks
// therefore still succeeds; that is intentional, not a bug.
func (s Summary) Success() bool {
	return s.FailedChecks == 0
}

// ResultLabel returns the overall verdict used by reports and stored runs
func (s Summary) ResultLabel() string {
	if s.Success() {
		return "SUCCESS"
	}
	return "FAILED"
}
