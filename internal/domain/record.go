package domain

// RunMeta contains metadata about a harness run
type RunMeta struct {
	TotalCases        int     `json:"total_cases"`
	PassedCases       int     `json:"passed_cases"`
	FailedCases       int     `json:"failed_cases"`
	ExceptionCases    int     `json:"exception_cases"`
	NotPerformedCases int     `json:"not_performed_cases"`
	ExecutedChecks    int     `json:"executed_checks"`
	FailedChecks      int     `json:"failed_checks"`
	Result            string  `json:"result"`
	Duration          string  `json:"duration"`
	DurationSeconds   float64 `json:"duration_seconds"`
	Timestamp         string  `json:"timestamp"`
}

// CaseRecord is the persisted form of a single case result
type CaseRecord struct {
	TestName       string              `json:"test_name"`
	Status         string              `json:"status"`
	ExecutedChecks int                 `json:"executed_checks"`
	FailedChecks   []FailedCheck       `json:"failed_checks,omitempty"`
	Exceptions     []CapturedException `json:"exceptions,omitempty"`
	Resolved       bool                `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}

// RunRecord is the complete output structure for a stored run
type RunRecord struct {
	Meta  RunMeta      `json:"meta"`
	Cases []CaseRecord `json:"cases"`
}

// NewCaseRecord converts an in-memory case result into its persisted form
func NewCaseRecord(r TestResult) CaseRecord {
	return CaseRecord{
		TestName:       r.TestName,
		Status:         r.Status().String(),
		ExecutedChecks: r.ExecutedChecks,
		FailedChecks:   append([]FailedCheck(nil), r.FailedChecks...),
		Exceptions:     append([]CapturedException(nil), r.Exceptions...),
	}
}
