package ui

import (
	"fmt"
	"strings"

	"gcheck/internal/domain"
	"gcheck/internal/storage"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ErrorViewer displays failing test cases in an interactive TUI
type ErrorViewer struct {
	storage storage.Storage
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(st storage.Storage) *ErrorViewer {
	return &ErrorViewer{storage: st}
}

// failingCases returns the indices of cases with failed checks or exceptions
func failingCases(record *domain.RunRecord) []int {
	var failing []int
	for i, c := range record.Cases {
		if len(c.FailedChecks) > 0 || len(c.Exceptions) > 0 {
			failing = append(failing, i)
		}
	}
	return failing
}

// View displays the failing cases of a run record in an interactive TUI
func (ev *ErrorViewer) View(record *domain.RunRecord) error {
	failing := failingCases(record)
	if len(failing) == 0 {
		color.Green("✓ No failing test cases in the last run!")
		return nil
	}

	// Track resolved cases (by index into record.Cases) - loaded from JSON
	resolved := make(map[int]bool)
	for _, idx := range failing {
		if record.Cases[idx].Resolved {
			resolved[idx] = true
		}
	}

	// Function to save resolved status back to the record file
	saveResolvedStatus := func() error {
		for idx := range record.Cases {
			record.Cases[idx].Resolved = resolved[idx]
		}
		return ev.storage.SaveRecord(record)
	}

	// Create the application
	app := tview.NewApplication()

	// Create list for failing cases (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	// Function to get formatted text for a list item
	getListItemText := func(listIndex int) string {
		caseRecord := record.Cases[failing[listIndex]]
		testName := caseRecord.TestName
		if testName == "" {
			testName = fmt.Sprintf("Test %d", listIndex+1)
		}

		if resolved[failing[listIndex]] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", listIndex+1, testName)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", listIndex+1, testName)
	}

	// Function to update list item display with resolved status
	updateListItem := func(listIndex int) {
		if listIndex < 0 || listIndex >= list.GetItemCount() {
			return
		}
		list.SetItemText(listIndex, getListItemText(listIndex), "")
	}

	// Add failing cases to the list with numbers and colors
	for i := range failing {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	// Set list colors for better visibility
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Create stats header view (shows case name and status)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Create text view for failure details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	// Create a container with right padding for the details view
	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	// Create right side layout: stats on top, details below
	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// Create simple flex layout: list on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	// Count unresolved cases
	countUnresolved := func() int {
		count := 0
		for _, idx := range failing {
			if !resolved[idx] {
				count++
			}
		}
		return count
	}

	// Create header text view (so we can update it)
	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	// Function to update header
	updateHeader := func() {
		headerText := fmt.Sprintf(" Failing Test Cases (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ",
			len(failing), countUnresolved())
		headerView.SetText(headerText)
	}

	// Set initial header
	updateHeader()

	// Update details when selection changes
	updateDetails := func() {
		listIndex := list.GetCurrentItem()
		if listIndex >= 0 && listIndex < len(failing) {
			caseRecord := record.Cases[failing[listIndex]]
			statsView.SetText(ev.formatCaseStats(caseRecord, listIndex+1))
			detailsView.SetText(ev.formatCaseDetails(caseRecord))
		}
	}

	// Set up keyboard handlers for list
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				listIndex := list.GetCurrentItem()
				if listIndex >= 0 && listIndex < len(failing) {
					idx := failing[listIndex]
					resolved[idx] = !resolved[idx]
					updateListItem(listIndex)
					updateHeader()
					updateDetails()
					if err := saveResolvedStatus(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	// Set up keyboard handlers for details view
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	// Update details when list selection changes
	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	// Set initial details
	updateDetails()

	// Create main layout with title
	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(
			tview.NewBox().SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
				return x, y, width, height
			}),
			1, 0, false,
		).
		AddItem(flex, 0, 1, true)

	// Run the application
	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatCaseDetails formats a failing case for display using tview color tags ([red], [cyan], etc.)
func (ev *ErrorViewer) formatCaseDetails(caseRecord domain.CaseRecord) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[red]✗ Test: %s[white]\n\n", caseRecord.TestName)
	fmt.Fprintf(&builder, "[cyan]Executed checks: %d[white]\n\n", caseRecord.ExecutedChecks)

	if len(caseRecord.FailedChecks) > 0 {
		fmt.Fprintf(&builder, "[yellow]Failed checks:[white]\n")
		for _, check := range caseRecord.FailedChecks {
			name := check.Name
			if name == "" {
				name = "unnamed"
			}
			fmt.Fprintf(&builder, "  check %d (%s)\n    %s\n", check.Number, name, check.Message)
		}
		fmt.Fprintf(&builder, "\n")
	}

	if len(caseRecord.Exceptions) > 0 {
		fmt.Fprintf(&builder, "[yellow]Exceptions:[white]\n")
		for _, exc := range caseRecord.Exceptions {
			fmt.Fprintf(&builder, "  %s\n", exc)
		}
	}

	return builder.String()
}

// formatCaseStats formats the stats header for a failing case
func (ev *ErrorViewer) formatCaseStats(caseRecord domain.CaseRecord, number int) string {
	testName := caseRecord.TestName
	if testName == "" {
		testName = fmt.Sprintf("Test %d", number)
	}

	status := caseRecord.Status
	if status == "" {
		status = "UNKNOWN"
	}

	return fmt.Sprintf("[cyan]case:[white] [yellow]%s[white] | [cyan]status:[white] [yellow]%s[white]\n", testName, status)
}
