package harness

import (
	"errors"

	"gcheck/internal/domain"
)

// Body is the logic of one test case. It issues checks through the supplied
// recorder and may end early by returning a *Fault; a nil return means the
// body ran to completion. Any other error is treated as a defect in the
// harness itself and aborts the run.
type Body func(t *T) error

// Case is one named test scenario with its own result record
type Case struct {
	name   string
	body   Body
	result domain.TestResult
}

// NewCase creates a test case and registers it with r as a construction side
// effect. Registration is the only way a case becomes eligible to run.
func NewCase(name string, r *Registry, body Body) *Case {
	c := &Case{
		name:   name,
		body:   body,
		result: domain.TestResult{TestName: name},
	}
	r.register(c)
	return c
}

// Name returns the case name supplied at construction
func (c *Case) Name() string {
	return c.name
}

// Result returns a snapshot of the accumulated result
func (c *Case) Result() domain.TestResult {
	return c.result.Clone()
}

// execute runs the body once, recording checks as they happen. A returned
// Fault is captured onto the result and ends the case without affecting the
// run; any other error propagates to the caller.
func (c *Case) execute() error {
	if c.body == nil {
		return nil
	}
	err := c.body(&T{result: &c.result})
	if err == nil {
		return nil
	}
	var fault *Fault
	if errors.As(err, &fault) {
		c.result.Exceptions = append(c.result.Exceptions, domain.CapturedException{
			Message: fault.Message,
			Type:    fault.Kind,
		})
		return nil
	}
	return err
}
