package harness

import "gcheck/internal/domain"

// Reporter consumes run progress and results. RunAll streams every case
// outcome to the reporter the moment the case finishes, so implementations
// can render live output; RunFinished delivers the aggregate once the whole
// run completed.
type Reporter interface {
	RunStarted(totalCases int)
	// CaseFinished receives the 1-based execution number and the case result.
	CaseFinished(number int, result domain.TestResult)
	RunFinished(summary domain.Summary)
}

// nopReporter discards everything; used when RunAll gets a nil reporter
type nopReporter struct{}

func (nopReporter) RunStarted(int)                      {}
func (nopReporter) CaseFinished(int, domain.TestResult) {}
func (nopReporter) RunFinished(domain.Summary)          {}
