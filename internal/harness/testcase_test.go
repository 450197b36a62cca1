package harness

import (
	"errors"
	"fmt"
	"testing"

	"gcheck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCase_RegistersWithTheRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 0, r.Len())

	NewCase("first", r, nil)
	NewCase("second", r, nil)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"first", "second"}, r.Names())
}

func TestCase_ResultIsASnapshot(t *testing.T) {
	r := NewRegistry()
	c := NewCase("snapshot", r, func(tt *T) error {
		Check(tt, 1, 2)
		return nil
	})
	_, err := r.RunAll(nil)
	require.NoError(t, err)

	snap := c.Result()
	snap.FailedChecks[0].Message = "mutated"
	snap.TestName = "mutated"

	fresh := c.Result()
	assert.Equal(t, "snapshot", fresh.TestName)
	assert.Equal(t, "Result: 1 | Expected: 2", fresh.FailedChecks[0].Message)
}

func TestCase_NilBodyIsNotPerformed(t *testing.T) {
	r := NewRegistry()
	c := NewCase("empty", r, nil)
	_, err := r.RunAll(nil)
	require.NoError(t, err)

	result := c.Result()
	assert.Equal(t, 0, result.ExecutedChecks)
	assert.Equal(t, domain.StatusNotPerformed, result.Status())
}

func TestCase_ZeroChecksIsNotPerformed(t *testing.T) {
	r := NewRegistry()
	c := NewCase("no checks", r, func(tt *T) error { return nil })
	_, err := r.RunAll(nil)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusNotPerformed, c.Result().Status())
}

func TestCase_FaultIsCaptured(t *testing.T) {
	r := NewRegistry()
	c := NewCase("throws", r, func(tt *T) error {
		Check(tt, 1, 1)
		return NewFault("OutOfRange", "index 7 out of range")
	})
	summary, err := r.RunAll(nil)
	require.NoError(t, err)

	result := c.Result()
	assert.Equal(t, 1, result.ExecutedChecks)
	assert.Empty(t, result.FailedChecks)
	require.Len(t, result.Exceptions, 1)
	assert.Equal(t, "OutOfRange", result.Exceptions[0].Type)
	assert.Equal(t, "index 7 out of range", result.Exceptions[0].Message)
	assert.Equal(t, domain.StatusException, result.Status())

	// Faults do not count as failed checks, so the run still succeeds.
	assert.True(t, summary.Success())
	assert.Equal(t, 1, summary.Exceptions)
}

func TestCase_WrappedFaultIsCaptured(t *testing.T) {
	r := NewRegistry()
	c := NewCase("wrapped", r, func(tt *T) error {
		return fmt.Errorf("loading fixture: %w", Faultf("IO", "open %s: no such file", "data.json"))
	})
	_, err := r.RunAll(nil)
	require.NoError(t, err)

	result := c.Result()
	require.Len(t, result.Exceptions, 1)
	assert.Equal(t, "IO", result.Exceptions[0].Type)
	assert.Equal(t, "open data.json: no such file", result.Exceptions[0].Message)
}

func TestCase_UnrecognizedErrorPropagates(t *testing.T) {
	boom := errors.New("harness defect")
	r := NewRegistry()
	NewCase("broken", r, func(tt *T) error {
		Check(tt, 1, 1)
		return boom
	})

	_, err := r.RunAll(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
}

func TestFault_Error(t *testing.T) {
	f := NewFault("OutOfRange", "index 7 out of range")
	assert.Equal(t, "OutOfRange(index 7 out of range)", f.Error())

	ff := Faultf("Parse", "line %d: unexpected %q", 3, "}")
	assert.Equal(t, `Parse(line 3: unexpected "}")`, ff.Error())
}
