package harness

import (
	"fmt"

	"gcheck/internal/domain"
)

// T records check outcomes for the case currently executing. A T is only
// valid for the duration of one body invocation; bodies receive it as their
// sole argument and must not retain it.
type T struct {
	result *domain.TestResult
}

// Check records one equality comparison between actual and expected. The
// executed-check counter is incremented whether the check passes or not. On
// mismatch a FailedCheck is appended with the counter value as its number;
// execution continues either way. Returns whether the check passed.
func Check[V comparable](t *T, actual, expected V) bool {
	return CheckNamed(t, "", actual, expected)
}

// CheckNamed is Check with a name attached to the failure record
func CheckNamed[V comparable](t *T, name string, actual, expected V) bool {
	t.result.ExecutedChecks++
	if actual == expected {
		return true
	}
	t.result.FailedChecks = append(t.result.FailedChecks, domain.FailedCheck{
		Number:  t.result.ExecutedChecks,
		Name:    name,
		Message: fmt.Sprintf("Result: %v | Expected: %v", actual, expected),
	})
	return false
}
