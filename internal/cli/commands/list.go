package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mtr/internal/config"
	"mtr/internal/filter"
	"mtr/internal/ui"
	"mtr/registry"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	registry  *registry.Registry
	filter    *filter.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	reg *registry.Registry,
	f *filter.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		registry:  reg,
		filter:    f,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	entries := lc.registry.AllTests()
	entries = lc.filter.ByName(entries, lc.config.Flags.Filter)

	if len(entries) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	lc.formatter.PrintTestList(entries, lc.config.Flags.Cases)
	return nil
}
