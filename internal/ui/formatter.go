package ui

import (
	"fmt"

	"github.com/fatih/color"

	"mtr/domain"
	"mtr/registry"
)

// Formatter formats and displays output
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintSummary displays the run statistics and, when there are failures,
// one report line per failure.
func (f *Formatter) PrintSummary(output *domain.RunOutput) {
	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════╗")
	color.Cyan("║                  Test Run Statistics                   ║")
	color.Cyan("╚═══════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────┬─────────────────────────┐")

	fmt.Printf("│ %-27s │ ", "Total Tests")
	color.White("%-23d │\n", meta.TotalTests)
	fmt.Println("├─────────────────────────────┼─────────────────────────┤")

	fmt.Printf("│ %-27s │ ", "Passed Tests")
	color.Green("%-23d │\n", meta.PassedTests)
	fmt.Println("├─────────────────────────────┼─────────────────────────┤")

	fmt.Printf("│ %-27s │ ", "Failed Tests")
	color.Red("%-23d │\n", meta.FailedTests)
	fmt.Println("├─────────────────────────────┼─────────────────────────┤")

	fmt.Printf("│ %-27s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-23s │\n", durationStr)
	fmt.Println("├─────────────────────────────┼─────────────────────────┤")

	fmt.Printf("│ %-27s │ ", "Timestamp")
	color.White("%-23s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────┴─────────────────────────┘")

	fmt.Println()
	if meta.FailedTests == 0 {
		color.Green("✓ All tests passed!")
		return
	}

	color.Red("✗ %d test(s) failed", meta.FailedTests)
	fmt.Println()
	for _, failure := range output.Details {
		color.Red("  %s", failure.String())
	}
}

// PrintTestList prints the registered groups and cases as a tree,
// without executing anything.
func (f *Formatter) PrintTestList(entries []registry.Entry, showCases bool) {
	// Preserve registration order of groups
	var groups []string
	cases := make(map[string][]string)
	for _, entry := range entries {
		if _, seen := cases[entry.GroupName]; !seen {
			groups = append(groups, entry.GroupName)
		}
		cases[entry.GroupName] = append(cases[entry.GroupName], entry.TestName)
	}

	if showCases {
		color.Green("Found %d test(s) in %d group(s):\n", len(entries), len(groups))
	} else {
		color.Green("Found %d group(s):\n", len(groups))
	}

	for i, group := range groups {
		isLastGroup := i == len(groups)-1
		if isLastGroup {
			color.Cyan("└── %s", group)
		} else {
			color.Cyan("├── %s", group)
		}

		if !showCases {
			continue
		}

		for j, name := range cases[group] {
			isLastCase := j == len(cases[group])-1
			var prefix string
			if isLastGroup {
				if isLastCase {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastCase {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}
			fmt.Printf("%s%s\n", prefix, color.YellowString(name))
		}
	}
}
