package harness

import (
	"fmt"

	"gcheck/internal/domain"
)

// Registry holds the ordered list of registered test cases and drives a
// single deterministic pass over them. Create exactly one per run with
// NewRegistry and hand it to every NewCase call; cases cannot register
// themselves anywhere else.
type Registry struct {
	cases    []*Case
	executed int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// register appends a case to the ordered list. Called from NewCase only, so
// construction implies eligibility to run and a case cannot appear twice.
func (r *Registry) register(c *Case) {
	r.cases = append(r.cases, c)
}

// Len returns the number of registered cases
func (r *Registry) Len() int {
	return len(r.cases)
}

// Names returns the registered case names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.cases))
	for i, c := range r.cases {
		names[i] = c.Name()
	}
	return names
}

// Results returns result snapshots for all cases in registration order
func (r *Registry) Results() []domain.TestResult {
	results := make([]domain.TestResult, len(r.cases))
	for i, c := range r.cases {
		results[i] = c.Result()
	}
	return results
}

// RunAll executes every registered case sequentially in registration order,
// streaming each outcome to rep the moment the case finishes. Failed checks
// and captured faults never stop the run; an unrecognized error returned by
// a body aborts it and comes back wrapped with the case name. A nil rep runs
// silently.
func (r *Registry) RunAll(rep Reporter) (domain.Summary, error) {
	if rep == nil {
		rep = nopReporter{}
	}
	rep.RunStarted(len(r.cases))
	for i, c := range r.cases {
		if err := c.execute(); err != nil {
			return r.Summary(), fmt.Errorf("run test case %q: %w", c.Name(), err)
		}
		r.executed++
		rep.CaseFinished(i+1, c.Result())
	}
	summary := r.Summary()
	rep.RunFinished(summary)
	return summary, nil
}

// Summary aggregates check totals and the case partition across the registry
func (r *Registry) Summary() domain.Summary {
	s := domain.Summary{
		TotalCases:    len(r.cases),
		ExecutedCases: r.executed,
	}
	for _, c := range r.cases {
		result := c.Result()
		s.ExecutedChecks += result.ExecutedChecks
		s.FailedChecks += len(result.FailedChecks)
		switch result.Status() {
		case domain.StatusException:
			s.Exceptions++
		case domain.StatusFailed:
			s.Failed++
		case domain.StatusPassed:
			s.Passed++
		default:
			s.NotPerformed++
		}
	}
	return s
}
