package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"mtr/domain"
	"mtr/internal/storage"
)

// FailureViewer displays assertion failures from the last run in an
// interactive TUI: failure list on the left, details on the right.
type FailureViewer struct {
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(st storage.Storage) *FailureViewer {
	return &FailureViewer{storage: st}
}

// View displays the failures of the given run output. Toggling a failure's
// resolved mark with 'r' persists the change back through the storage.
func (fv *FailureViewer) View(output *domain.RunOutput) error {
	if len(output.Details) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	resolved := make(map[int]bool)
	for i, failure := range output.Details {
		if failure.Resolved {
			resolved[i] = true
		}
	}

	saveResolved := func() error {
		for i := range output.Details {
			output.Details[i].Resolved = resolved[i]
		}
		return fv.storage.SaveOutput(output)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	listItemText := func(index int) string {
		failure := output.Details[index]
		name := fmt.Sprintf("%s.%s", failure.GroupName, failure.TestName)
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
	}

	for i := range output.Details {
		list.AddItem(listItemText(i), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		unresolved := 0
		for i := range output.Details {
			if !resolved[i] {
				unresolved++
			}
		}
		headerView.SetText(fmt.Sprintf(
			" Test Failures (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, Ctrl+C exit ",
			len(output.Details), unresolved))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(output.Details) {
			detailsView.SetText(formatFailureDetails(output.Details[index]))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(output.Details) {
					resolved[index] = !resolved[index]
					list.SetItemText(index, listItemText(index), "")
					updateHeader()
					if err := saveResolved(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFailureDetails formats one failure for the details pane using tview
// color tags ([red], [cyan], etc.)
func formatFailureDetails(failure domain.AssertionFailure) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[red]✗ %s.%s[white]\n\n", failure.GroupName, failure.TestName)
	fmt.Fprintf(&builder, "[cyan]Kind:[white] %s\n", failure.Kind)
	fmt.Fprintf(&builder, "[cyan]Location:[white] %s\n\n", failure.Location)
	if failure.Expected != "" || failure.Actual != "" {
		fmt.Fprintf(&builder, "[cyan]Expected:[white] %q\n", failure.Expected)
		fmt.Fprintf(&builder, "[cyan]Actual:[white]   %q\n\n", failure.Actual)
	}
	fmt.Fprintf(&builder, "[cyan]Message:[white]\n%s\n", failure.Message)
	if failure.Resolved {
		builder.WriteString("\n[gray]marked resolved[white]\n")
	}

	return builder.String()
}
