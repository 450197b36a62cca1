package ui

import (
	"fmt"
	"io"

	"gcheck/internal/domain"

	"github.com/fatih/color"
)

// statusColumn is the index of the colored status cell in a result row
const statusColumn = 4

// resultsTableColumnWidths are the right-aligned column widths of the
// results table: number, test name, executed checks, failed checks, status.
var resultsTableColumnWidths = []int{4, 30, 10, 10, 15}

func defaultTableColumnColors() []*color.Color {
	return make([]*color.Color, len(resultsTableColumnWidths))
}

// printTableRow writes one right-aligned table row. Every cell gets a width
// and an optional color; mismatched counts are a programming error and come
// back as one.
func printTableRow(w io.Writer, widths []int, colors []*color.Color, cells ...any) error {
	if len(cells) != len(widths) || len(widths) != len(colors) {
		return fmt.Errorf("number of widths (%d) and colors (%d) must match the number of cells (%d)",
			len(widths), len(colors), len(cells))
	}

	for i, cell := range cells {
		text := fmt.Sprintf("%*v", widths[i], cell)
		if colors[i] != nil {
			text = colors[i].Sprint(text)
		}
		fmt.Fprint(w, text)
	}
	fmt.Fprintln(w)
	return nil
}

// printSummary writes the trailing summary block: the overall verdict, the
// aggregate counts, then one detail line per failed check and per captured
// exception, in case order.
func printSummary(w io.Writer, summary domain.Summary, results []domain.TestResult) {
	verdict := color.GreenString("SUCCESS!")
	if !summary.Success() {
		verdict = color.RedString("FAILED")
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "TEST SUMMARY: %s\n", verdict)
	fmt.Fprintf(w, "  %d checks executed for %d test cases.\n", summary.ExecutedChecks, summary.TotalCases)
	if summary.Failed > 0 {
		fmt.Fprintf(w, "  %d passed tests, %d failed tests.\n", summary.Passed, summary.Failed)
	}
	if summary.Exceptions > 0 {
		fmt.Fprintf(w, "  %d tests were terminated with an exception.\n", summary.Exceptions)
	}
	fmt.Fprintln(w)

	for _, result := range results {
		for _, check := range result.FailedChecks {
			fmt.Fprintf(w, "# Failed: %s check %d (%s) | %s\n", result.TestName, check.Number, check.Name, check.Message)
		}
	}
	for _, result := range results {
		for _, exc := range result.Exceptions {
			fmt.Fprintf(w, "# Exception: %s %s\n", result.TestName, exc)
		}
	}
	fmt.Fprintln(w)
}

// TableReporter streams the results table to an io.Writer: the header when
// the run starts, one row per case the moment it finishes, and the summary
// block with all failure details at the end.
type TableReporter struct {
	out     io.Writer
	results []domain.TestResult
}

// NewTableReporter creates a TableReporter writing to out
func NewTableReporter(out io.Writer) *TableReporter {
	return &TableReporter{out: out}
}

// RunStarted prints the table header
func (t *TableReporter) RunStarted(totalCases int) {
	_ = printTableRow(t.out, resultsTableColumnWidths, defaultTableColumnColors(),
		"#", "Test Name", "Checks", "Failed", "Status")
}

// CaseFinished prints the row for a finished case, status cell colored by
// classification
func (t *TableReporter) CaseFinished(number int, result domain.TestResult) {
	t.results = append(t.results, result)

	status := result.Status()
	colors := defaultTableColumnColors()
	switch status {
	case domain.StatusException:
		colors[statusColumn] = color.New(color.FgMagenta)
	case domain.StatusFailed:
		colors[statusColumn] = color.New(color.FgRed)
	case domain.StatusPassed:
		colors[statusColumn] = color.New(color.FgGreen)
	}

	_ = printTableRow(t.out, resultsTableColumnWidths, colors,
		number, result.TestName, result.ExecutedChecks, len(result.FailedChecks), status.String())
}

// RunFinished prints the summary block
func (t *TableReporter) RunFinished(summary domain.Summary) {
	printSummary(t.out, summary, t.results)
}

// Formatter formats and displays output outside the run report
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintCaseList prints registered case names as a tree.
// failedNames is optional; if set, cases in this set are marked with [F] in red (from last run).
func (f *Formatter) PrintCaseList(names []string, failedNames map[string]struct{}) {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	green.Fprintf(f.out, "Found %d registered test case(s):\n", len(names))

	for i, name := range names {
		failMarker := ""
		if len(failedNames) > 0 {
			if _, ok := failedNames[name]; ok {
				failMarker = " " + color.RedString("[F]")
			}
		}

		if i == len(names)-1 {
			cyan.Fprintf(f.out, "└── %s", name)
		} else {
			cyan.Fprintf(f.out, "├── %s", name)
		}
		fmt.Fprintln(f.out, failMarker)
	}
}
