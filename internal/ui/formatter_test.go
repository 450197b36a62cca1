package ui

import (
	"bytes"
	"strings"
	"testing"

	"gcheck/internal/domain"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// disableColor makes output deterministic for string assertions.
func disableColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func failingAddResult() domain.TestResult {
	return domain.TestResult{
		TestName:       "Add",
		ExecutedChecks: 2,
		FailedChecks: []domain.FailedCheck{
			{Number: 2, Name: "", Message: "Result: 5 | Expected: 6"},
		},
	}
}

func TestPrintTableRow_RejectsMismatchedArity(t *testing.T) {
	var buf bytes.Buffer

	err := printTableRow(&buf, []int{4, 30}, make([]*color.Color, 2), "only one cell")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must match the number of cells")

	err = printTableRow(&buf, []int{4, 30}, make([]*color.Color, 3), "a", "b")
	require.Error(t, err)
}

func TestTableReporter_RendersAlignedRows(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	rep := NewTableReporter(&buf)

	rep.RunStarted(3)
	rep.CaseFinished(1, domain.TestResult{TestName: "Passing", ExecutedChecks: 3})
	rep.CaseFinished(2, failingAddResult())
	rep.CaseFinished(3, domain.TestResult{TestName: "Empty"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	rowWidth := 0
	for _, w := range resultsTableColumnWidths {
		rowWidth += w
	}
	for _, line := range lines {
		assert.Len(t, line, rowWidth, "every row pads to the full table width")
	}

	assert.Equal(t, []string{"#", "Test", "Name", "Checks", "Failed", "Status"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "Passing", "3", "0", "PASSED"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2", "Add", "2", "1", "FAILED"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"3", "Empty", "0", "0", "NOT", "PERFORMED"}, strings.Fields(lines[3]))

	// Right alignment puts the status flush against the row end.
	assert.True(t, strings.HasSuffix(lines[1], "PASSED"))
	assert.True(t, strings.HasSuffix(lines[3], "NOT PERFORMED"))
}

func TestTableReporter_StatusColumnPrecedence(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	rep := NewTableReporter(&buf)

	rep.RunStarted(1)
	rep.CaseFinished(1, domain.TestResult{
		TestName:       "FailsThenThrows",
		ExecutedChecks: 1,
		FailedChecks:   []domain.FailedCheck{{Number: 1, Message: "Result: 1 | Expected: 2"}},
		Exceptions:     []domain.CapturedException{{Type: "Fault", Message: "boom"}},
	})

	assert.Contains(t, buf.String(), "EXCEPTION")
	assert.NotContains(t, buf.String(), "FAILED")
}

func TestTableReporter_SummaryBlock(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	rep := NewTableReporter(&buf)

	rep.RunStarted(3)
	rep.CaseFinished(1, domain.TestResult{TestName: "Passing", ExecutedChecks: 1})
	rep.CaseFinished(2, failingAddResult())
	rep.CaseFinished(3, domain.TestResult{
		TestName:       "Throws",
		ExecutedChecks: 1,
		Exceptions:     []domain.CapturedException{{Type: "Fault", Message: "boom"}},
	})
	rep.RunFinished(domain.Summary{
		TotalCases:     3,
		ExecutedCases:  3,
		ExecutedChecks: 4,
		FailedChecks:   1,
		Passed:         1,
		Failed:         1,
		Exceptions:     1,
	})

	out := buf.String()
	assert.Contains(t, out, "TEST SUMMARY: FAILED")
	assert.Contains(t, out, "  4 checks executed for 3 test cases.")
	assert.Contains(t, out, "  1 passed tests, 1 failed tests.")
	assert.Contains(t, out, "  1 tests were terminated with an exception.")
	assert.Contains(t, out, "# Failed: Add check 2 () | Result: 5 | Expected: 6")
	assert.Contains(t, out, "# Exception: Throws Fault(boom)")
}

func TestTableReporter_SuccessSummary(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	rep := NewTableReporter(&buf)

	rep.RunStarted(1)
	rep.CaseFinished(1, domain.TestResult{TestName: "Passing", ExecutedChecks: 2})
	rep.RunFinished(domain.Summary{TotalCases: 1, ExecutedCases: 1, ExecutedChecks: 2, Passed: 1})

	out := buf.String()
	assert.Contains(t, out, "TEST SUMMARY: SUCCESS!")
	assert.NotContains(t, out, "passed tests,")
	assert.NotContains(t, out, "# Failed:")
}

func TestProgressReporter_SummaryAfterFinish(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	rep := NewProgressReporter(&buf)

	rep.RunStarted(2)
	rep.CaseFinished(1, domain.TestResult{TestName: "Passing", ExecutedChecks: 1})
	rep.CaseFinished(2, failingAddResult())

	// Nothing of the report lands on out before the run finishes.
	assert.Empty(t, buf.String())

	rep.RunFinished(domain.Summary{
		TotalCases:     2,
		ExecutedCases:  2,
		ExecutedChecks: 3,
		FailedChecks:   1,
		Passed:         1,
		Failed:         1,
	})

	out := buf.String()
	assert.Contains(t, out, "TEST SUMMARY: FAILED")
	assert.Contains(t, out, "# Failed: Add check 2 () | Result: 5 | Expected: 6")
}

func TestFormatter_PrintCaseList(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	f := NewFormatter(&buf)

	f.PrintCaseList([]string{"Alpha", "Beta", "Gamma"}, map[string]struct{}{"Beta": {}})

	out := buf.String()
	assert.Contains(t, out, "Found 3 registered test case(s):")
	assert.Contains(t, out, "├── Alpha\n")
	assert.Contains(t, out, "├── Beta [F]\n")
	assert.Contains(t, out, "└── Gamma\n")
}
