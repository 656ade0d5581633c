package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mtr/internal/config"
	"mtr/internal/filter"
	"mtr/internal/storage"
	"mtr/internal/ui"
	"mtr/registry"
	"mtr/runner"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	registry  *registry.Registry
	filter    *filter.Filter
	runner    *runner.Runner
	storage   storage.Storage
	history   storage.History
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	reg *registry.Registry,
	f *filter.Filter,
	r *runner.Runner,
	st storage.Storage,
	history storage.History,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		registry:  reg,
		filter:    f,
		runner:    r,
		storage:   st,
		history:   history,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	entries := rc.registry.AllTests()
	entries = rc.filter.ByName(entries, rc.config.Flags.Filter)

	if len(entries) == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	progressBar := ui.NewProgressBar(len(entries))
	rc.runner.SetProgress(progressBar)

	results, duration, err := rc.runner.Run(entries, rc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	output := runner.Summarize(results, duration)

	if err := rc.storage.SaveOutput(output); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	if rc.history != nil {
		if err := rc.history.Record(output.Meta); err != nil {
			color.Yellow("warning: failed to record run history: %v", err)
		}
	}

	rc.formatter.PrintSummary(output)

	if output.Meta.FailedTests > 0 {
		return fmt.Errorf("%d test(s) failed", output.Meta.FailedTests)
	}
	return nil
}
