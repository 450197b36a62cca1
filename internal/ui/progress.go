package ui

import (
	"fmt"
	"io"
	"os"

	"gcheck/internal/domain"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressReporter renders a live progress bar while cases execute and keeps
// the full report for the end: the bar goes to stderr, the summary block to
// out once the run finishes.
type ProgressReporter struct {
	out     io.Writer
	bar     *progressbar.ProgressBar
	passed  int
	failed  int
	results []domain.TestResult
}

// NewProgressReporter creates a progress reporter whose summary is written to out
func NewProgressReporter(out io.Writer) *ProgressReporter {
	return &ProgressReporter{out: out}
}

// RunStarted creates the bar sized to the number of registered cases
func (p *ProgressReporter) RunStarted(totalCases int) {
	p.bar = progressbar.NewOptions(totalCases,
		progressbar.OptionSetDescription(progressDescription(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// CaseFinished advances the bar and refreshes the passed/failed counts
func (p *ProgressReporter) CaseFinished(number int, result domain.TestResult) {
	p.results = append(p.results, result)

	switch result.Status() {
	case domain.StatusPassed:
		p.passed++
	case domain.StatusFailed, domain.StatusException:
		p.failed++
	}

	if p.bar != nil {
		p.bar.Set(number)
		p.bar.Describe(progressDescription(p.passed, p.failed))
	}
}

// RunFinished completes the bar and prints the summary block with details
func (p *ProgressReporter) RunFinished(summary domain.Summary) {
	if p.bar != nil {
		p.bar.Finish()
	}
	printSummary(p.out, summary, p.results)
}

func progressDescription(passed, failed int) string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[passed: %d", passed) +
		" | " +
		color.RedString("failed: %d]", failed)
}
