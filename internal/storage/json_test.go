package storage

import (
	"testing"
	"time"

	"gcheck/internal/config"
	"gcheck/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStorage(t *testing.T) *JSONStorage {
	t.Helper()
	cfg := config.New()
	cfg.BaseDir = t.TempDir()
	return NewJSONStorage(cfg)
}

func sampleRun() ([]domain.TestResult, domain.Summary) {
	results := []domain.TestResult{
		{TestName: "passing", ExecutedChecks: 2},
		{
			TestName:       "failing",
			ExecutedChecks: 2,
			FailedChecks: []domain.FailedCheck{
				{Number: 2, Name: "sum", Message: "Result: 5 | Expected: 6"},
			},
		},
		{
			TestName:   "throwing",
			Exceptions: []domain.CapturedException{{Type: "Fault", Message: "boom"}},
		},
	}
	summary := domain.Summary{
		TotalCases:     3,
		ExecutedCases:  3,
		ExecutedChecks: 4,
		FailedChecks:   1,
		Passed:         1,
		Failed:         1,
		Exceptions:     1,
	}
	return results, summary
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	s := tempStorage(t)
	results, summary := sampleRun()

	err := s.Save(results, summary, 1500*time.Millisecond)
	require.NoError(t, err)

	record, err := s.Load()
	require.NoError(t, err)

	assert.Equal(t, 3, record.Meta.TotalCases)
	assert.Equal(t, 1, record.Meta.PassedCases)
	assert.Equal(t, 1, record.Meta.FailedCases)
	assert.Equal(t, 1, record.Meta.ExceptionCases)
	assert.Equal(t, 4, record.Meta.ExecutedChecks)
	assert.Equal(t, 1, record.Meta.FailedChecks)
	assert.Equal(t, "FAILED", record.Meta.Result)
	assert.Equal(t, "1.5s", record.Meta.Duration)
	assert.InDelta(t, 1.5, record.Meta.DurationSeconds, 0.001)
	assert.NotEmpty(t, record.Meta.Timestamp)

	require.Len(t, record.Cases, 3)
	assert.Equal(t, "PASSED", record.Cases[0].Status)
	assert.Equal(t, "FAILED", record.Cases[1].Status)
	assert.Equal(t, "EXCEPTION", record.Cases[2].Status)

	require.Len(t, record.Cases[1].FailedChecks, 1)
	assert.Equal(t, "sum", record.Cases[1].FailedChecks[0].Name)
	assert.Equal(t, "Result: 5 | Expected: 6", record.Cases[1].FailedChecks[0].Message)

	require.Len(t, record.Cases[2].Exceptions, 1)
	assert.Equal(t, "Fault(boom)", record.Cases[2].Exceptions[0].String())
}

func TestJSONStorage_Load_MissingFile(t *testing.T) {
	s := tempStorage(t)

	_, err := s.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read results file")
}

func TestJSONStorage_SaveRecord_KeepsResolvedMarks(t *testing.T) {
	s := tempStorage(t)
	results, summary := sampleRun()
	require.NoError(t, s.Save(results, summary, time.Second))

	record, err := s.Load()
	require.NoError(t, err)
	record.Cases[1].Resolved = true
	require.NoError(t, s.SaveRecord(record))

	reloaded, err := s.Load()
	require.NoError(t, err)
	assert.False(t, reloaded.Cases[0].Resolved)
	assert.True(t, reloaded.Cases[1].Resolved)
}

func TestJSONStorage_Save_SuccessRun(t *testing.T) {
	s := tempStorage(t)
	results := []domain.TestResult{{TestName: "only", ExecutedChecks: 1}}
	summary := domain.Summary{TotalCases: 1, ExecutedCases: 1, ExecutedChecks: 1, Passed: 1}

	require.NoError(t, s.Save(results, summary, time.Second))

	record, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "SUCCESS", record.Meta.Result)
	assert.Equal(t, 0, record.Meta.FailedChecks)
}
