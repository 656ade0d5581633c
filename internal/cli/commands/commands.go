package commands

import (
	"github.com/spf13/cobra"

	"mtr/internal/cli"
	"mtr/internal/config"
	"mtr/internal/filter"
	"mtr/internal/storage"
	"mtr/internal/ui"
	"mtr/registry"
	"mtr/runner"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, reg *registry.Registry) *Commands {
	nameFilter := filter.New()
	testRunner := runner.New()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	viewer := ui.NewFailureViewer(jsonStorage)

	var history storage.History
	if cfg.HistoryDSN != "" {
		history = storage.NewMySQLHistory(cfg.HistoryDSN)
	}

	return &Commands{
		Run:      NewRunCommand(cfg, reg, nameFilter, testRunner, jsonStorage, history, formatter),
		List:     NewListCommand(cfg, reg, nameFilter, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run registered tests",
		Long:  "Execute every registered test case and report the results",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter tests by name pattern against group.test (supports wildcards, e.g. 'strings.*' or '*Compare*')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first test failure")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered tests",
		Long:  "Show all registered groups and test cases without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter tests by name pattern against group.test (supports wildcards)")
	listCmd.Flags().BoolVarP(&flags.Cases, "cases", "c", false, "List test cases under each group instead of groups only")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
